package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/99minutos/asset-management/internal/api/metrics"
	"github.com/99minutos/asset-management/internal/core/ports"
)

type AssetHandler struct {
	assets    ports.AssetService
	lifecycle ports.LifecycleService
}

func NewAssetHandler(assets ports.AssetService, lifecycle ports.LifecycleService) *AssetHandler {
	return &AssetHandler{assets: assets, lifecycle: lifecycle}
}

// Create handles POST /api/assets/:vendorId/:ruleId.
//
// @Summary      Register an asset
// @Tags         assets
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        vendorId  path      int                 true  "Vendor id"
// @Param        ruleId    path      int                 true  "Depreciation rule id"
// @Param        body      body      createAssetRequest  true  "Asset"
// @Success      201       {object}  assetResponse
// @Failure      400       {object}  errorResponse
// @Failure      401       {object}  errorResponse
// @Failure      404       {object}  errorResponse
// @Failure      409       {object}  errorResponse
// @Router       /api/assets/{vendorId}/{ruleId} [post]
func (h *AssetHandler) Create(c echo.Context) error {
	vendorID, err := pathID(c, "vendorId")
	if err != nil {
		return err
	}
	ruleID, err := pathID(c, "ruleId")
	if err != nil {
		return err
	}
	identity, err := currentIdentity(c)
	if err != nil {
		return err
	}

	var req createAssetRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	a, err := h.assets.CreateAsset(c.Request().Context(), ports.CreateAssetInput{
		VendorID:     vendorID,
		RuleID:       ruleID,
		Tag:          req.AssetTag,
		Name:         req.AssetName,
		PurchaseDate: req.PurchaseDate.Time,
		PurchaseCost: req.PurchaseCost,
		Actor:        identity,
	})
	if err != nil {
		return err
	}

	metrics.AssetsCreatedTotal.WithLabelValues(string(a.Status)).Inc()
	return c.JSON(http.StatusCreated, toAssetResponse(a))
}

// List handles GET /api/assets.
//
// @Summary      List assets
// @Tags         assets
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   assetResponse
// @Failure      401  {object}  errorResponse
// @Router       /api/assets [get]
func (h *AssetHandler) List(c echo.Context) error {
	assets, err := h.assets.ListAssets(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, mapAll(assets, toAssetResponse))
}

// ListByStatus handles GET /api/assets/status/:status.
//
// @Summary      List assets by status
// @Tags         assets
// @Produce      json
// @Security     BearerAuth
// @Param        status  path      string  true  "ACTIVE, MAINTENANCE, TRANSFERRED or DISPOSED"
// @Success      200     {array}   assetResponse
// @Failure      400     {object}  errorResponse
// @Failure      401     {object}  errorResponse
// @Router       /api/assets/status/{status} [get]
func (h *AssetHandler) ListByStatus(c echo.Context) error {
	assets, err := h.assets.ListAssetsByStatus(c.Request().Context(), c.Param("status"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, mapAll(assets, toAssetResponse))
}

// Get handles GET /api/assets/:id.
//
// @Summary      Get an asset with its current book value
// @Tags         assets
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Asset id"
// @Success      200  {object}  assetDetailResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/assets/{id} [get]
func (h *AssetHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	detail, err := h.assets.GetAsset(c.Request().Context(), id)
	if err != nil {
		return err
	}

	resp := assetDetailResponse{
		assetResponse: toAssetResponse(detail.Asset),
		BookValue:     detail.BookValue,
	}
	if detail.Rule != nil {
		rule := toRuleResponse(detail.Rule)
		resp.Rule = &rule
	}
	return c.JSON(http.StatusOK, resp)
}

// LogEvent handles POST /api/events/:assetId.
//
// @Summary      Log a lifecycle event
// @Tags         events
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        assetId  path      int              true  "Asset id"
// @Param        body     body      logEventRequest  true  "Lifecycle event"
// @Success      201      {object}  lifecycleEventResponse
// @Failure      400      {object}  errorResponse
// @Failure      401      {object}  errorResponse
// @Failure      404      {object}  errorResponse
// @Router       /api/events/{assetId} [post]
func (h *AssetHandler) LogEvent(c echo.Context) error {
	assetID, err := pathID(c, "assetId")
	if err != nil {
		return err
	}
	identity, err := currentIdentity(c)
	if err != nil {
		return err
	}

	var req logEventRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	e, err := h.lifecycle.LogEvent(c.Request().Context(), ports.LogEventInput{
		AssetID:     assetID,
		Type:        req.EventType,
		Description: req.EventDescription,
		EventDate:   req.EventDate.Time,
		Actor:       identity,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toLifecycleEventResponse(e))
}

// ListEvents handles GET /api/events/asset/:assetId.
//
// @Summary      List an asset's lifecycle events, newest first
// @Tags         events
// @Produce      json
// @Security     BearerAuth
// @Param        assetId  path      int  true  "Asset id"
// @Success      200      {array}   lifecycleEventResponse
// @Failure      401      {object}  errorResponse
// @Failure      404      {object}  errorResponse
// @Router       /api/events/asset/{assetId} [get]
func (h *AssetHandler) ListEvents(c echo.Context) error {
	assetID, err := pathID(c, "assetId")
	if err != nil {
		return err
	}
	events, err := h.lifecycle.ListEvents(c.Request().Context(), assetID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, mapAll(events, toLifecycleEventResponse))
}
