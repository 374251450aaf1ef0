package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/99minutos/asset-management/internal/core/ports"
)

// CatalogHandler serves vendors and depreciation rules.
type CatalogHandler struct {
	vendors ports.VendorService
	rules   ports.RuleService
}

func NewCatalogHandler(vendors ports.VendorService, rules ports.RuleService) *CatalogHandler {
	return &CatalogHandler{vendors: vendors, rules: rules}
}

// CreateVendor handles POST /api/vendors.
//
// @Summary      Create a vendor
// @Tags         vendors
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createVendorRequest  true  "Vendor"
// @Success      201   {object}  vendorResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /api/vendors [post]
func (h *CatalogHandler) CreateVendor(c echo.Context) error {
	var req createVendorRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	v, err := h.vendors.CreateVendor(c.Request().Context(), ports.CreateVendorInput{
		Name:         req.VendorName,
		ContactEmail: req.ContactEmail,
		Phone:        req.Phone,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toVendorResponse(v))
}

// ListVendors handles GET /api/vendors.
//
// @Summary      List vendors
// @Tags         vendors
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   vendorResponse
// @Failure      401  {object}  errorResponse
// @Router       /api/vendors [get]
func (h *CatalogHandler) ListVendors(c echo.Context) error {
	vendors, err := h.vendors.ListVendors(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, mapAll(vendors, toVendorResponse))
}

// GetVendor handles GET /api/vendors/:id.
//
// @Summary      Get a vendor
// @Tags         vendors
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Vendor id"
// @Success      200  {object}  vendorResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/vendors/{id} [get]
func (h *CatalogHandler) GetVendor(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	v, err := h.vendors.GetVendor(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toVendorResponse(v))
}

// CreateRule handles POST /api/rules.
//
// @Summary      Create a depreciation rule
// @Tags         rules
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createRuleRequest  true  "Depreciation rule"
// @Success      201   {object}  ruleResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /api/rules [post]
func (h *CatalogHandler) CreateRule(c echo.Context) error {
	var req createRuleRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	r, err := h.rules.CreateRule(c.Request().Context(), ports.CreateRuleInput{
		Name:            req.RuleName,
		Method:          req.Method,
		UsefulLifeYears: req.UsefulLifeYears,
		SalvageValue:    req.SalvageValue,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toRuleResponse(r))
}

// ListRules handles GET /api/rules.
//
// @Summary      List depreciation rules
// @Tags         rules
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   ruleResponse
// @Failure      401  {object}  errorResponse
// @Router       /api/rules [get]
func (h *CatalogHandler) ListRules(c echo.Context) error {
	rules, err := h.rules.ListRules(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, mapAll(rules, toRuleResponse))
}
