package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/99minutos/asset-management/internal/core/domain"
)

// RequireRole enforces that the bound identity holds role.
func RequireRole(role string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity, ok := IdentityFrom(c)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
			}
			if !domain.Authorize(identity, role) {
				return domain.ErrUnauthorized
			}
			return next(c)
		}
	}
}
