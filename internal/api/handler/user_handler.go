package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/99minutos/asset-management/internal/core/ports"
)

// UserHandler manages role membership. Routes are ADMIN only.
type UserHandler struct {
	users ports.UserService
}

func NewUserHandler(users ports.UserService) *UserHandler {
	return &UserHandler{users: users}
}

// GrantRole handles POST /api/users/:id/roles/:role.
//
// @Summary      Grant a role (ADMIN)
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int     true  "User id"
// @Param        role  path      string  true  "Role name"
// @Success      200   {object}  userResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/users/{id}/roles/{role} [post]
func (h *UserHandler) GrantRole(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	u, err := h.users.GrantRole(c.Request().Context(), id, c.Param("role"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserResponse(u))
}

// RevokeRole handles DELETE /api/users/:id/roles/:role.
//
// @Summary      Revoke a role (ADMIN)
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int     true  "User id"
// @Param        role  path      string  true  "Role name"
// @Success      200   {object}  userResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/users/{id}/roles/{role} [delete]
func (h *UserHandler) RevokeRole(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	u, err := h.users.RevokeRole(c.Request().Context(), id, c.Param("role"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserResponse(u))
}
