package api

import (
	"github.com/google/uuid"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/99minutos/asset-management/docs"
	"github.com/99minutos/asset-management/internal/api/handler"
	"github.com/99minutos/asset-management/internal/api/metrics"
	"github.com/99minutos/asset-management/internal/api/middleware"
	"github.com/99minutos/asset-management/internal/core/domain"
	"github.com/99minutos/asset-management/internal/core/ports"
)

// Deps is everything the router needs. Limiter, AuditLog and HealthChecks
// entries are optional.
type Deps struct {
	Auth      ports.AuthService
	Users     ports.UserService
	Vendors   ports.VendorService
	Rules     ports.RuleService
	Assets    ports.AssetService
	Lifecycle ports.LifecycleService
	Disposals ports.DisposalService
	AuditLog  ports.AuditLog

	Limiter      middleware.Limiter
	HealthChecks map[string]handler.Check

	// Registerer receives the HTTP request metrics. Defaults to the global
	// Prometheus registerer.
	Registerer prometheus.Registerer
	Logger     zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Logger)

	registerer := d.Registerer
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestIDWithConfig(echomiddleware.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(middleware.RequestLogger(d.Logger))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Namespace:  "assets",
		Registerer: registerer,
	}))
	e.Use(middleware.Authenticate(d.Auth, d.Logger))

	// --- Health probes, metrics, docs (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(d.HealthChecks)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Auth routes ---
	authHandler := handler.NewAuthHandler(d.Auth)
	loginLimit := middleware.RateLimit(d.Limiter, d.Logger, func() {
		metrics.AuthLoginsTotal.WithLabelValues("rate_limited").Inc()
	})

	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login, loginLimit)
	e.GET("/auth/me", authHandler.Me, middleware.RequireIdentity())

	// --- Guarded API ---
	api := e.Group("/api", middleware.RequireIdentity())
	admin := middleware.RequireRole(domain.RoleAdmin)

	catalog := handler.NewCatalogHandler(d.Vendors, d.Rules)
	api.POST("/vendors", catalog.CreateVendor)
	api.GET("/vendors", catalog.ListVendors)
	api.GET("/vendors/:id", catalog.GetVendor)
	api.POST("/rules", catalog.CreateRule)
	api.GET("/rules", catalog.ListRules)

	assets := handler.NewAssetHandler(d.Assets, d.Lifecycle)
	api.POST("/assets/:vendorId/:ruleId", assets.Create)
	api.GET("/assets", assets.List)
	api.GET("/assets/status/:status", assets.ListByStatus)
	api.GET("/assets/:id", assets.Get)
	api.POST("/events/:assetId", assets.LogEvent)
	api.GET("/events/asset/:assetId", assets.ListEvents)

	if d.AuditLog != nil {
		audit := handler.NewAuditHandler(d.AuditLog)
		api.GET("/assets/:id/audit", audit.ListByAsset, admin)
	}

	disposals := handler.NewDisposalHandler(d.Disposals)
	api.POST("/disposals/request/:assetId", disposals.Request)
	api.PUT("/disposals/approve/:disposalId", disposals.Approve, admin)
	api.PUT("/disposals/approve/:disposalId/:adminId", disposals.Approve, admin)
	api.GET("/disposals", disposals.List)

	users := handler.NewUserHandler(d.Users)
	api.POST("/users/:id/roles/:role", users.GrantRole, admin)
	api.DELETE("/users/:id/roles/:role", users.RevokeRole, admin)

	return e
}
