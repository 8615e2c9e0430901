package lock

import (
	"context"
	"log/slog"

	"athan/config"
	"athan/internal/domain/lifecycle"
	"athan/internal/domain/repository"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// Params defines the dependencies of the tick lock provider
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// NewTickLock returns a Redis-backed lock when redis.addr is set and an
// in-process lock otherwise.
func NewTickLock(params Params) (repository.TickLock, error) {
	redisCfg := params.Config.Redis
	if redisCfg == nil || redisCfg.Addr == "" {
		params.Logger.Info("[Lock] Redis not configured, using in-process tick lock")

		return NewLocalTickLock(), nil
	}

	if redisCfg.LockKey == "" || redisCfg.LockTTL <= 0 {
		return nil, errors.New("redis lockKey and lockTTL are required")
	}

	client := redis.NewClient(&redis.Options{
		Addr:     redisCfg.Addr,
		Username: redisCfg.Username,
		Password: redisCfg.Password,
		DB:       redisCfg.DB,
	})

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx).Err(); err != nil {
				return errors.Wrap(err, "failed to ping Redis")
			}

			params.Logger.Info("[Lock] Redis tick lock ready",
				slog.String("addr", redisCfg.Addr),
				slog.String("key", redisCfg.LockKey),
				slog.Duration("ttl", redisCfg.LockTTL),
			)

			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return NewRedisTickLock(client, redisCfg.LockKey, redisCfg.LockTTL), nil
}
