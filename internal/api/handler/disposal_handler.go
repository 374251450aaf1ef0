package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/99minutos/asset-management/internal/api/metrics"
	"github.com/99minutos/asset-management/internal/core/domain"
	"github.com/99minutos/asset-management/internal/core/ports"
)

type DisposalHandler struct {
	service ports.DisposalService
}

func NewDisposalHandler(service ports.DisposalService) *DisposalHandler {
	return &DisposalHandler{service: service}
}

// Request handles POST /api/disposals/request/:assetId.
//
// @Summary      Request disposal of an asset
// @Tags         disposals
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        assetId          path      int                     true   "Asset id"
// @Param        Idempotency-Key  header    string                  false  "Replays the first result for 24h"
// @Param        body             body      requestDisposalRequest  true   "Disposal"
// @Success      201              {object}  disposalResponse
// @Success      200              {object}  disposalResponse  "Replayed request"
// @Failure      400              {object}  errorResponse
// @Failure      401              {object}  errorResponse
// @Failure      404              {object}  errorResponse
// @Failure      409              {object}  errorResponse  "Idempotency-Key reused for another asset or still in progress"
// @Router       /api/disposals/request/{assetId} [post]
func (h *DisposalHandler) Request(c echo.Context) error {
	assetID, err := pathID(c, "assetId")
	if err != nil {
		return err
	}
	identity, err := currentIdentity(c)
	if err != nil {
		return err
	}

	var req requestDisposalRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	result, err := h.service.RequestDisposal(c.Request().Context(), ports.RequestDisposalInput{
		AssetID:        assetID,
		Method:         req.DisposalMethod,
		Value:          req.DisposalValue,
		Date:           req.DisposalDate.Time,
		IdempotencyKey: c.Request().Header.Get("Idempotency-Key"),
		Actor:          identity,
	})
	if err != nil {
		return err
	}

	if result.AlreadyExisted {
		metrics.DisposalsTotal.WithLabelValues("replayed").Inc()
		return c.JSON(http.StatusOK, toDisposalResponse(result.Disposal))
	}
	metrics.DisposalsTotal.WithLabelValues("requested").Inc()
	return c.JSON(http.StatusCreated, toDisposalResponse(result.Disposal))
}

// Approve handles PUT /api/disposals/approve/:disposalId and the legacy
// PUT /api/disposals/approve/:disposalId/:adminId form.
//
// @Summary      Approve a disposal (ADMIN)
// @Tags         disposals
// @Produce      json
// @Security     BearerAuth
// @Param        disposalId  path      int  true  "Disposal id"
// @Success      200         {object}  disposalResponse
// @Failure      401         {object}  errorResponse
// @Failure      403         {object}  errorResponse
// @Failure      404         {object}  errorResponse
// @Failure      409         {object}  errorResponse
// @Router       /api/disposals/approve/{disposalId} [put]
func (h *DisposalHandler) Approve(c echo.Context) error {
	disposalID, err := pathID(c, "disposalId")
	if err != nil {
		return err
	}
	identity, err := currentIdentity(c)
	if err != nil {
		return err
	}
	if raw := c.Param("adminId"); raw != "" {
		adminID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || adminID != identity.UserID {
			return domain.ErrUnauthorized
		}
	}

	d, err := h.service.ApproveDisposal(c.Request().Context(), disposalID, identity)
	if err != nil {
		return err
	}

	metrics.DisposalsTotal.WithLabelValues("approved").Inc()
	return c.JSON(http.StatusOK, toDisposalResponse(d))
}

// List handles GET /api/disposals.
//
// @Summary      List disposals
// @Tags         disposals
// @Produce      json
// @Security     BearerAuth
// @Param        approvedBy  query     int  false  "Only disposals approved by this user id"
// @Success      200         {array}   disposalResponse
// @Failure      400         {object}  errorResponse
// @Failure      401         {object}  errorResponse
// @Router       /api/disposals [get]
func (h *DisposalHandler) List(c echo.Context) error {
	var approvedBy int64
	if raw := c.QueryParam("approvedBy"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			return domain.Invalid("invalid approvedBy")
		}
		approvedBy = id
	}

	disposals, err := h.service.ListDisposals(c.Request().Context(), approvedBy)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, mapAll(disposals, toDisposalResponse))
}
