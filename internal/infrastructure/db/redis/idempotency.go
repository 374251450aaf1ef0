package redis

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	idempotencyTTL = 24 * time.Hour
	reservationTTL = time.Minute
	pendingValue   = "pending"
)

type keyValue interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
	SetNX(ctx context.Context, key string, value any, expiration time.Duration) *redis.BoolCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// IdempotencyStore remembers which disposal a client-supplied key produced.
// Key format: idem:disposal:<key>, where callers scope key per actor.
// A reserved key holds "pending" for up to a minute until it is completed
// with the disposal id or released.
type IdempotencyStore struct {
	client     keyValue
	ttl        time.Duration
	reserveTTL time.Duration
}

// NewIdempotencyStore wraps client. Completed entries expire after 24h.
func NewIdempotencyStore(client keyValue) *IdempotencyStore {
	return &IdempotencyStore{client: client, ttl: idempotencyTTL, reserveTTL: reservationTTL}
}

// Reserve claims key with SETNX. It reports false when another request holds
// or has completed the key.
func (s *IdempotencyStore) Reserve(ctx context.Context, key string) (bool, error) {
	ok, err := s.client.SetNX(ctx, s.key(key), pendingValue, s.reserveTTL).Result()
	if err != nil {
		return false, fmt.Errorf("idempotency reserve: %w", err)
	}
	return ok, nil
}

// Lookup returns the disposal id stored under key, if any. A pending
// reservation is reported as found with id 0.
func (s *IdempotencyStore) Lookup(ctx context.Context, key string) (int64, bool, error) {
	raw, err := s.client.Get(ctx, s.key(key)).Result()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("idempotency lookup: %w", err)
	}
	if raw == pendingValue {
		return 0, true, nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, false, fmt.Errorf("idempotency lookup: corrupt value %q", raw)
	}
	return id, true, nil
}

// Complete replaces the reservation on key with id.
func (s *IdempotencyStore) Complete(ctx context.Context, key string, id int64) error {
	if err := s.client.Set(ctx, s.key(key), strconv.FormatInt(id, 10), s.ttl).Err(); err != nil {
		return fmt.Errorf("idempotency complete: %w", err)
	}
	return nil
}

// Release drops a reservation whose request failed, so the key can be retried.
func (s *IdempotencyStore) Release(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, s.key(key)).Err(); err != nil {
		return fmt.Errorf("idempotency release: %w", err)
	}
	return nil
}

func (s *IdempotencyStore) key(key string) string {
	return "idem:disposal:" + key
}
