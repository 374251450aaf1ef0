package mongo

import (
	"context"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestConfig_ClientOptions(t *testing.T) {
	opts := Config{
		URI:         "mongodb://localhost:27017",
		Database:    "assets",
		AppName:     "asset-management",
		MaxPoolSize: 20,
		Timeout:     3 * time.Second,
	}.clientOptions()

	if opts.AppName == nil || *opts.AppName != "asset-management" {
		t.Errorf("unexpected app name %v", opts.AppName)
	}
	if opts.MaxPoolSize == nil || *opts.MaxPoolSize != 20 {
		t.Errorf("unexpected pool size %v", opts.MaxPoolSize)
	}
	if opts.ConnectTimeout == nil || *opts.ConnectTimeout != 3*time.Second {
		t.Errorf("unexpected connect timeout %v", opts.ConnectTimeout)
	}
	if opts.ServerSelectionTimeout == nil || *opts.ServerSelectionTimeout != 3*time.Second {
		t.Errorf("unexpected selection timeout %v", opts.ServerSelectionTimeout)
	}
	if len(opts.Hosts) != 1 || opts.Hosts[0] != "localhost:27017" {
		t.Errorf("unexpected hosts %v", opts.Hosts)
	}
}

func TestConfig_ClientOptionsDefaults(t *testing.T) {
	opts := Config{URI: "mongodb://localhost:27017"}.clientOptions()

	if opts.AppName != nil || opts.MaxPoolSize != nil {
		t.Errorf("unset fields should keep driver defaults: app=%v pool=%v", opts.AppName, opts.MaxPoolSize)
	}
	if opts.ConnectTimeout == nil || *opts.ConnectTimeout != defaultTimeout {
		t.Errorf("expected default timeout, got %v", opts.ConnectTimeout)
	}
}

func TestOpenAuditStore_RequiresDatabase(t *testing.T) {
	if _, err := OpenAuditStore(context.Background(), Config{URI: "mongodb://localhost:27017"}); err == nil {
		t.Fatal("expected error without database name")
	}
}

func TestAuditStore_Ping(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("reachable", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())
		store := &AuditStore{AuditRepository: NewAuditRepository(mt.DB), client: mt.Client}

		if err := store.Ping(context.Background()); err != nil {
			mt.Fatalf("Ping: %v", err)
		}
		if store.Name() != "mongo" {
			mt.Fatalf("unexpected sink name %q", store.Name())
		}
	})

	mt.Run("command error", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{Code: 13, Message: "unauthorized"}))
		store := &AuditStore{AuditRepository: NewAuditRepository(mt.DB), client: mt.Client}

		if err := store.Ping(context.Background()); err == nil {
			mt.Fatal("expected ping error")
		}
	})
}
