package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const defaultTimeout = 10 * time.Second

// Config holds the audit store connection settings.
type Config struct {
	URI         string
	Database    string
	AppName     string
	MaxPoolSize uint64
	Timeout     time.Duration
}

func (c Config) timeout() time.Duration {
	if c.Timeout <= 0 {
		return defaultTimeout
	}
	return c.Timeout
}

func (c Config) clientOptions() *options.ClientOptions {
	opts := options.Client().
		ApplyURI(c.URI).
		SetConnectTimeout(c.timeout()).
		SetServerSelectionTimeout(c.timeout()).
		SetRetryWrites(true)
	if c.AppName != "" {
		opts.SetAppName(c.AppName)
	}
	if c.MaxPoolSize > 0 {
		opts.SetMaxPoolSize(c.MaxPoolSize)
	}
	return opts
}

// AuditStore is an AuditRepository that owns its client. It serves as both
// an audit sink and the audit log.
type AuditStore struct {
	*AuditRepository
	client *mongo.Client
}

// OpenAuditStore connects, pings the primary and ensures the audit indexes.
// The client is disconnected again if any step fails.
func OpenAuditStore(ctx context.Context, cfg Config) (*AuditStore, error) {
	if cfg.Database == "" {
		return nil, errors.New("mongo: database name is required")
	}

	connectCtx, cancel := context.WithTimeout(ctx, cfg.timeout())
	defer cancel()

	client, err := mongo.Connect(connectCtx, cfg.clientOptions())
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}
	store := &AuditStore{AuditRepository: NewAuditRepository(client.Database(cfg.Database)), client: client}

	if err := store.Ping(connectCtx); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}
	if err := store.EnsureIndexes(ctx); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo indexes: %w", err)
	}
	return store, nil
}

// Ping checks that the primary is reachable. It backs the readiness check.
func (s *AuditStore) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("mongo ping: %w", err)
	}
	return nil
}

func (s *AuditStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
