// Command server runs the asset management API.
//
// @title                       Asset Management API
// @version                     1.0
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/99minutos/asset-management/internal/api"
	"github.com/99minutos/asset-management/internal/api/handler"
	"github.com/99minutos/asset-management/internal/api/middleware"
	"github.com/99minutos/asset-management/internal/core/ports"
	"github.com/99minutos/asset-management/internal/core/service"
	"github.com/99minutos/asset-management/internal/infrastructure/amqp"
	"github.com/99minutos/asset-management/internal/infrastructure/config"
	"github.com/99minutos/asset-management/internal/infrastructure/db/mongo"
	"github.com/99minutos/asset-management/internal/infrastructure/db/postgres"
	"github.com/99minutos/asset-management/internal/infrastructure/db/redis"
	"github.com/99minutos/asset-management/internal/infrastructure/queue"
	"github.com/99minutos/asset-management/pkg/logger"
	"github.com/99minutos/asset-management/pkg/password"
)

const serviceName = "asset-management"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	boot := zerolog.New(os.Stderr).With().Timestamp().Str("service", serviceName).Logger()
	cfg := config.MustLoad(ctx, boot)

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.LogPretty,
		Service: serviceName,
	})

	if err := run(ctx, cfg, log); err != nil {
		log.Error().Err(err).Msg("server stopped with error")
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {
	if cfg.GeneratedSecret {
		log.Warn().Msg("JWT_SECRET not set, using a random secret; tokens will not survive a restart")
	}

	// --- Postgres (system of record) ---
	db, err := postgres.Connect(ctx, postgres.Config{
		DSN:             cfg.Postgres.DSN,
		MaxOpenConns:    cfg.Postgres.MaxOpenConns,
		MaxIdleConns:    cfg.Postgres.MaxIdleConns,
		ConnMaxLifetime: cfg.Postgres.ConnMaxLifetime,
	})
	if err != nil {
		return err
	}
	defer db.Close()

	if cfg.Postgres.Migrate {
		if err := postgres.Migrate(ctx, db); err != nil {
			return err
		}
		log.Info().Msg("migrations applied")
	}

	checks := map[string]handler.Check{"postgres": db.PingContext}

	// --- Optional audit sinks ---
	var (
		sinks    []ports.AuditSink
		auditLog ports.AuditLog
	)

	if cfg.Mongo.URI != "" {
		store, err := mongo.OpenAuditStore(ctx, mongo.Config{
			URI:         cfg.Mongo.URI,
			Database:    cfg.Mongo.Database,
			AppName:     cfg.Mongo.AppName,
			MaxPoolSize: cfg.Mongo.MaxPoolSize,
			Timeout:     cfg.Mongo.Timeout,
		})
		if err != nil {
			return err
		}
		defer func() { _ = store.Close(context.Background()) }()

		sinks = append(sinks, store)
		auditLog = store
		checks["mongo"] = store.Ping
		log.Info().Str("database", cfg.Mongo.Database).Msg("audit store enabled")
	}

	if cfg.AMQP.URL != "" {
		pub, err := amqp.Dial(amqp.Config{URL: cfg.AMQP.URL, Exchange: cfg.AMQP.Exchange})
		if err != nil {
			return err
		}
		defer pub.Close()
		sinks = append(sinks, pub)
		log.Info().Str("exchange", cfg.AMQP.Exchange).Msg("event publishing enabled")
	}

	// --- Optional Redis: rate limiting and idempotency keys ---
	var (
		limiter     middleware.Limiter
		idempotency ports.IdempotencyStore
	)

	if cfg.Redis.Addr != "" {
		rdb, err := redis.Connect(ctx, redis.Config{Addr: cfg.Redis.Addr, Password: cfg.Redis.Password, DB: cfg.Redis.DB})
		if err != nil {
			return err
		}
		defer rdb.Close()

		idempotency = redis.NewIdempotencyStore(rdb)
		if cfg.RateLimit.Enabled {
			limiter = redis.NewRateLimiter(rdb, redis.RateLimitConfig{
				Capacity:       cfg.RateLimit.Capacity,
				RefillTokens:   cfg.RateLimit.RefillTokens,
				RefillInterval: cfg.RateLimit.RefillInterval,
				TTL:            cfg.RateLimit.TTL,
			})
		}
		checks["redis"] = func(ctx context.Context) error { return rdb.Ping(ctx).Err() }
		log.Info().Str("addr", cfg.Redis.Addr).Msg("redis enabled")
	}

	// --- Audit dispatcher ---
	var audit ports.AuditPublisher
	dispatchCtx, stopDispatch := context.WithCancel(context.Background())
	defer stopDispatch()

	var dispatcher *queue.Dispatcher
	if len(sinks) > 0 {
		dispatcher = queue.NewDispatcher(cfg.Dispatcher.Workers, sinks, logger.Component("audit"))
		dispatcher.Start(dispatchCtx)
		audit = dispatcher
	}

	// --- Services ---
	hasher, err := password.New(password.Options{
		Algorithm:    cfg.Password.Algorithm,
		BcryptCost:   cfg.Password.BcryptCost,
		ArgonTime:    cfg.Password.ArgonTime,
		ArgonMemory:  cfg.Password.ArgonMemory,
		ArgonThreads: cfg.Password.ArgonThreads,
	})
	if err != nil {
		return err
	}
	codec, err := service.NewTokenCodec(service.TokenConfig{
		Secret: []byte(cfg.JWT.Secret),
		TTL:    cfg.JWT.TTL,
		Issuer: cfg.JWT.Issuer,
	})
	if err != nil {
		return err
	}

	accounts := postgres.NewAccountRepository(db)
	vendorRepo := postgres.NewVendorRepository(db)
	ruleRepo := postgres.NewRuleRepository(db)
	assetRepo := postgres.NewAssetRepository(db)
	eventRepo := postgres.NewLifecycleRepository(db)
	disposalRepo := postgres.NewDisposalRepository(db)

	svcLog := logger.Component("service")
	seeder := service.NewSeeder(accounts, vendorRepo, ruleRepo, assetRepo, hasher, svcLog)
	if err := seeder.Seed(ctx, service.SeedOptions{
		AdminEmail:    cfg.Seed.AdminEmail,
		AdminPassword: cfg.Seed.AdminPassword,
		DemoData:      cfg.Seed.DemoData,
	}); err != nil {
		return err
	}

	e := api.NewRouter(api.Deps{
		Auth:         service.NewAuthService(accounts, hasher, codec, svcLog),
		Users:        service.NewUserService(accounts, svcLog),
		Vendors:      service.NewVendorService(vendorRepo, svcLog),
		Rules:        service.NewRuleService(ruleRepo, svcLog),
		Assets:       service.NewAssetService(assetRepo, vendorRepo, ruleRepo, audit, svcLog),
		Lifecycle:    service.NewLifecycleService(eventRepo, assetRepo, audit, svcLog),
		Disposals:    service.NewDisposalService(disposalRepo, assetRepo, accounts, idempotency, audit, svcLog),
		AuditLog:     auditLog,
		Limiter:      limiter,
		HealthChecks: checks,
		Logger:       logger.Component("http"),
	})

	// --- Serve until signalled ---
	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return err
		}
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Warn().Err(err).Msg("http shutdown")
	}

	if dispatcher != nil {
		stopDispatch()
		dispatcher.Wait()
	}
	return nil
}
