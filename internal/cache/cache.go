package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"sponsorhub_backend/internal/logger"

	"github.com/redis/go-redis/v9"
)

// Cache is a short-TTL read-through cache over Redis. TTL expiry is the
// primary consistency mechanism; only a few writes invalidate eagerly.
// Every failure degrades to a direct DB read.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

func New(addr, password string, db int, ttl time.Duration) *Cache {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	return &Cache{client: client, ttl: ttl}
}

// Ping verifies connectivity at startup.
func (c *Cache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// GetJSON loads a cached value into dest. Returns false on miss or any
// cache error.
func (c *Cache) GetJSON(ctx context.Context, key string, dest any) bool {
	raw, err := c.client.Get(ctx, key).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			logger.CtxWarn(ctx, "cache get failed", "key", key, "error", err.Error())
		}
		return false
	}
	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		logger.CtxWarn(ctx, "cache decode failed", "key", key, "error", err.Error())
		return false
	}
	return true
}

// SetJSON stores a value under the configured TTL. Errors are logged and
// swallowed.
func (c *Cache) SetJSON(ctx context.Context, key string, value any) {
	raw, err := json.Marshal(value)
	if err != nil {
		logger.CtxWarn(ctx, "cache encode failed", "key", key, "error", err.Error())
		return
	}
	if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		logger.CtxWarn(ctx, "cache set failed", "key", key, "error", err.Error())
	}
}

// Delete removes keys eagerly after a mutating operation.
func (c *Cache) Delete(ctx context.Context, keys ...string) {
	if len(keys) == 0 {
		return
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		logger.CtxWarn(ctx, "cache delete failed", "keys", keys, "error", err.Error())
	}
}

// Close releases the underlying connection pool.
func (c *Cache) Close() error {
	return c.client.Close()
}
