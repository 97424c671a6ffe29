package impl

import (
	"context"
	"encoding/json"
	"log/slog"

	"bizprofile/internal/domain/service"
	"bizprofile/internal/errors"
)

// cacheGet loads and decodes a cached snapshot. It reports !ok on a miss or
// on any cache failure so the caller falls back to the store. Failures other
// than a plain miss are logged.
func cacheGet[T any](ctx context.Context, cache service.Cache, logger *slog.Logger, region, key string) (T, bool) {
	var out T

	raw, err := cache.Get(ctx, region, key)
	if err != nil {
		if !errors.Is(err, service.ErrCacheMiss) {
			logger.Warn("cache read failed, falling back to store", "region", region, "key", key, "error", err)
		}

		return out, false
	}

	if err := json.Unmarshal(raw, &out); err != nil {
		logger.Warn("discarding undecodable cache entry", "region", region, "key", key, "error", err)

		return out, false
	}

	return out, true
}

// cacheSet encodes and stores a snapshot. The store is already the source of
// truth at this point, so failures are logged and swallowed.
func cacheSet(ctx context.Context, cache service.Cache, logger *slog.Logger, region, key string, value any) {
	raw, err := json.Marshal(value)
	if err != nil {
		logger.Warn("cache encode failed", "region", region, "key", key, "error", err)

		return
	}

	if err := cache.Set(ctx, region, key, raw); err != nil {
		logger.Warn("cache write failed", "region", region, "key", key, "error", err)
	}
}

// cacheDelete evicts a single entry, logging and swallowing failures.
func cacheDelete(ctx context.Context, cache service.Cache, logger *slog.Logger, region, key string) {
	if err := cache.Delete(ctx, region, key); err != nil {
		logger.Warn("cache eviction failed", "region", region, "key", key, "error", err)
	}
}

// cacheFlush clears a whole region, logging and swallowing failures.
func cacheFlush(ctx context.Context, cache service.Cache, logger *slog.Logger, region string) {
	if err := cache.DeleteAll(ctx, region); err != nil {
		logger.Warn("cache region flush failed", "region", region, "error", err)
	}
}
