package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/99minutos/asset-management/internal/core/ports"
)

const maxAuditLimit = 500

type AuditHandler struct {
	log ports.AuditLog
}

func NewAuditHandler(log ports.AuditLog) *AuditHandler {
	return &AuditHandler{log: log}
}

// ListByAsset handles GET /api/assets/:id/audit.
//
// @Summary      Audit trail of an asset (ADMIN)
// @Tags         assets
// @Produce      json
// @Security     BearerAuth
// @Param        id     path      int  true   "Asset id"
// @Param        limit  query     int  false  "Maximum events, newest first (default 100)"
// @Success      200    {object}  auditEventsResponse
// @Failure      401    {object}  errorResponse
// @Failure      403    {object}  errorResponse
// @Router       /api/assets/{id}/audit [get]
func (h *AuditHandler) ListByAsset(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	limit, _ := strconv.ParseInt(c.QueryParam("limit"), 10, 64)
	if limit > maxAuditLimit {
		limit = maxAuditLimit
	}

	events, err := h.log.ListByAsset(c.Request().Context(), id, limit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, auditEventsResponse{AssetID: id, Events: events})
}
