package types

import (
	"context"
	"time"
)

// Cache abstracts the redis client so logic and middleware can run against
// fakes in tests.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	SetEx(ctx context.Context, key, value string, expiresAt time.Duration) error
	Expire(ctx context.Context, key string, expiration time.Duration) error
}
