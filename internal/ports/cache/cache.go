package cache

import (
	"context"
	"time"
)

// PageCache holds rendered listing pages for a bounded time. Readers may see
// a stale rendering until the TTL runs out; Clear makes new state visible
// immediately. Implementations must be safe for concurrent readers and a
// single clearer.
type PageCache interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Clear(ctx context.Context) error
}
