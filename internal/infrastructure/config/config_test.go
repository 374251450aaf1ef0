package config

import (
	"context"
	"testing"
	"time"

	"github.com/sethvargo/go-envconfig"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := loadWith(context.Background(), envconfig.MapLookuper(map[string]string{"JWT_SECRET": "k"}))
	if err != nil {
		t.Fatalf("loadWith: %v", err)
	}
	if cfg.Port != "8080" || cfg.Env != EnvProduction || cfg.IsDevelopment() {
		t.Errorf("unexpected defaults: port=%s env=%s", cfg.Port, cfg.Env)
	}
	if cfg.JWT.TTL != 10*time.Hour {
		t.Errorf("expected 10h ttl, got %s", cfg.JWT.TTL)
	}
	if cfg.Mongo.URI != "" || cfg.Redis.Addr != "" || cfg.AMQP.URL != "" {
		t.Errorf("optional components should be disabled by default: %+v %+v %+v", cfg.Mongo, cfg.Redis, cfg.AMQP)
	}
	if cfg.Mongo.AppName != "asset-management" || cfg.Mongo.MaxPoolSize != 20 || cfg.Mongo.Timeout != 10*time.Second {
		t.Errorf("unexpected mongo defaults %+v", cfg.Mongo)
	}
	if cfg.AMQP.Exchange != "asset.events" || cfg.Dispatcher.Workers != 4 {
		t.Errorf("unexpected defaults: exchange=%s workers=%d", cfg.AMQP.Exchange, cfg.Dispatcher.Workers)
	}
	if cfg.RateLimit.Capacity != 10 || cfg.RateLimit.RefillInterval != 6*time.Second {
		t.Errorf("unexpected rate limit defaults %+v", cfg.RateLimit)
	}
}

func TestLoad_UnsetEnvRequiresSecret(t *testing.T) {
	_, err := loadWith(context.Background(), envconfig.MapLookuper(map[string]string{}))
	if err == nil {
		t.Fatal("expected error when neither ENV nor JWT_SECRET is set")
	}
}

func TestLoad_DevelopmentGeneratesSecret(t *testing.T) {
	cfg, err := loadWith(context.Background(), envconfig.MapLookuper(map[string]string{"ENV": EnvDevelopment}))
	if err != nil {
		t.Fatalf("loadWith: %v", err)
	}
	if !cfg.GeneratedSecret || len(cfg.JWT.Secret) != 32 {
		t.Errorf("expected generated 32-byte secret in development, got %d bytes", len(cfg.JWT.Secret))
	}
}

func TestLoad_Overrides(t *testing.T) {
	cfg, err := loadWith(context.Background(), envconfig.MapLookuper(map[string]string{
		"ENV":                "production",
		"JWT_SECRET":         "k1",
		"JWT_TTL":            "30m",
		"PASSWORD_ALGORITHM": "argon2id",
		"REDIS_ADDR":         "redis:6379",
		"SEED_DEMO_DATA":     "true",
	}))
	if err != nil {
		t.Fatalf("loadWith: %v", err)
	}
	if cfg.JWT.Secret != "k1" || cfg.GeneratedSecret {
		t.Errorf("expected configured secret")
	}
	if cfg.JWT.TTL != 30*time.Minute {
		t.Errorf("expected 30m ttl, got %s", cfg.JWT.TTL)
	}
	if cfg.Password.Algorithm != "argon2id" || cfg.Redis.Addr != "redis:6379" || !cfg.Seed.DemoData {
		t.Errorf("overrides not applied: %+v", cfg)
	}
}

func TestLoad_SecretRequiredOutsideDevelopment(t *testing.T) {
	_, err := loadWith(context.Background(), envconfig.MapLookuper(map[string]string{"ENV": "production"}))
	if err == nil {
		t.Fatal("expected error without JWT_SECRET")
	}
}

func TestLoad_RejectsNonPositiveTTL(t *testing.T) {
	_, err := loadWith(context.Background(), envconfig.MapLookuper(map[string]string{
		"JWT_SECRET": "k",
		"JWT_TTL":    "0s",
	}))
	if err == nil {
		t.Fatal("expected error for zero ttl")
	}
}
