package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/99minutos/asset-management/internal/api/metrics"
	"github.com/99minutos/asset-management/internal/core/domain"
)

// IdentityKey is the echo context key the bound identity is mirrored under.
const IdentityKey = "identity"

// TokenAuthenticator turns a bearer token into an identity.
type TokenAuthenticator interface {
	Authenticate(token string) (*domain.Identity, error)
}

// Authenticate binds the caller's identity when a valid bearer token is
// present. It never rejects: a request without a usable token simply carries
// no identity, and guarded routes decide what to do with that.
func Authenticate(auth TokenAuthenticator, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				metrics.AuthGateTotal.WithLabelValues("no_header").Inc()
				return next(c)
			}

			token, ok := bearerToken(authHeader)
			if !ok {
				metrics.AuthGateTotal.WithLabelValues("not_bearer").Inc()
				return next(c)
			}

			identity, err := auth.Authenticate(token)
			if err != nil {
				metrics.AuthGateTotal.WithLabelValues("rejected").Inc()
				log.Debug().Err(err).
					Str("path", c.Request().URL.Path).
					Msg("bearer token rejected")
				return next(c)
			}

			bind(c, identity)
			metrics.AuthGateTotal.WithLabelValues("bound").Inc()
			return next(c)
		}
	}
}

func bearerToken(header string) (string, bool) {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", false
	}
	token := strings.TrimSpace(parts[1])
	return token, token != ""
}

func bind(c echo.Context, identity *domain.Identity) {
	req := c.Request()
	c.SetRequest(req.WithContext(domain.WithIdentity(req.Context(), identity)))
	c.Set(IdentityKey, identity)
}

// IdentityFrom returns the identity bound to the request, if any.
func IdentityFrom(c echo.Context) (*domain.Identity, bool) {
	return domain.IdentityFrom(c.Request().Context())
}

// RequireIdentity rejects requests that reached it without a bound identity.
func RequireIdentity() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if _, ok := IdentityFrom(c); !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
			}
			return next(c)
		}
	}
}
