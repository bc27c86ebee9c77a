package redis

import (
	"context"
	"time"

	"inkwell/internal/config"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const keySetName = "pagecache:keys"

// PageCacheRedis caches rendered listing pages in Redis with a TTL. Cached
// keys are tracked in a set so Clear can drop them in one shot; Redis
// serializes the clear against concurrent readers, so a reader sees either
// the old rendering or a miss, never a torn state.
type PageCacheRedis struct {
	Client *redis.Client
}

func NewPageCacheRedis(client *redis.Client) *PageCacheRedis {
	return &PageCacheRedis{Client: client}
}

func (c *PageCacheRedis) Get(ctx context.Context, key string) (string, bool, error) {
	val, err := c.Client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return val, true, nil
}

func (c *PageCacheRedis) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	if err := c.Client.Set(ctx, key, value, ttl).Err(); err != nil {
		return err
	}
	// Track the key so Clear knows what to drop. The tracking entry outlives
	// the value's TTL; a stale member only costs one extra DEL.
	return c.Client.SAdd(ctx, keySetName, key).Err()
}

func (c *PageCacheRedis) Clear(ctx context.Context) error {
	keys, err := c.Client.SMembers(ctx, keySetName).Result()
	if err != nil {
		return err
	}
	if len(keys) > 0 {
		if err := c.Client.Del(ctx, keys...).Err(); err != nil {
			return err
		}
	}
	if err := c.Client.Del(ctx, keySetName).Err(); err != nil {
		return err
	}
	config.Logger.Info("page cache cleared", zap.Int("keys", len(keys)))
	return nil
}
