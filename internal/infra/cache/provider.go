package cache

import (
	"context"
	"log/slog"

	"bizprofile/config"
	"bizprofile/internal/domain/lifecycle"
	"bizprofile/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// Params holds dependencies for the cache, injected by Fx
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New creates a service.Cache based on configuration.
func New(params Params) (service.Cache, error) {
	cfg := params.Config.Cache
	logger := params.Logger

	switch cfg.Driver {
	case config.CacheDriverRedis:
		if cfg.Redis == nil || cfg.Redis.Addr == "" {
			return nil, errors.New("redis address is required for the redis cache driver")
		}

		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})

		params.Append(fx.Hook{
			OnStart: func(startCtx context.Context) error {
				ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
				defer cancel()

				if err := client.Ping(ctx).Err(); err != nil {
					return errors.Wrap(err, "failed to ping redis")
				}

				return nil
			},
			OnStop: func(_ context.Context) error {
				return client.Close()
			},
		})

		logger.Info("Using redis cache driver",
			slog.String("addr", cfg.Redis.Addr),
			slog.Duration("ttl", cfg.TTL),
		)

		return NewRedisCache(client, cfg.TTL, logger), nil

	case config.CacheDriverMemory:
		logger.Info("Using in-memory cache driver", slog.Duration("ttl", cfg.TTL))

		return NewMemoryCache(cfg.TTL), nil

	default:
		return nil, errors.Errorf("unknown cache driver: %s", cfg.Driver)
	}
}
