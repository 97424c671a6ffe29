// Package cache provides the TTL snapshot cache backing both services,
// with Redis and in-process memory drivers behind one interface.
package cache

import (
	"context"
	"log/slog"
	"time"

	"bizprofile/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

// scanBatchSize bounds how many keys a single SCAN iteration may return
// while flushing a region.
const scanBatchSize = 100

// redisCache implements service.Cache on top of a Redis server. Entries live
// under "region:key" with the configured TTL; flushing a region walks the
// region's prefix with SCAN and deletes in batches.
type redisCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// NewRedisCache is the constructor for redisCache.
func NewRedisCache(client *redis.Client, ttl time.Duration, logger *slog.Logger) service.Cache {
	return &redisCache{
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

// Get returns the live snapshot stored under region/key, or service.ErrCacheMiss.
func (c *redisCache) Get(ctx context.Context, region, key string) ([]byte, error) {
	value, err := c.client.Get(ctx, cacheKey(region, key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, service.ErrCacheMiss
		}

		return nil, errors.Wrap(err, "failed to get cache entry")
	}

	return value, nil
}

// Set stores a snapshot under region/key with the configured TTL.
func (c *redisCache) Set(ctx context.Context, region, key string, value []byte) error {
	if err := c.client.Set(ctx, cacheKey(region, key), value, c.ttl).Err(); err != nil {
		return errors.Wrap(err, "failed to set cache entry")
	}

	return nil
}

// Delete evicts the single entry under region/key.
func (c *redisCache) Delete(ctx context.Context, region, key string) error {
	if err := c.client.Del(ctx, cacheKey(region, key)).Err(); err != nil {
		return errors.Wrap(err, "failed to delete cache entry")
	}

	return nil
}

// DeleteAll evicts every entry in the region.
func (c *redisCache) DeleteAll(ctx context.Context, region string) error {
	pattern := region + ":*"

	var cursor uint64
	for {
		keys, next, err := c.client.Scan(ctx, cursor, pattern, scanBatchSize).Result()
		if err != nil {
			return errors.Wrap(err, "failed to scan cache region")
		}

		if len(keys) > 0 {
			if err := c.client.Del(ctx, keys...).Err(); err != nil {
				return errors.Wrap(err, "failed to delete cache region keys")
			}
		}

		cursor = next
		if cursor == 0 {
			break
		}
	}

	return nil
}

func cacheKey(region, key string) string {
	return region + ":" + key
}
