package bootstrap

import (
	"context"
	"log/slog"

	"resort-booking/internal/infra/lock"
	"resort-booking/internal/pkg/config"

	"github.com/go-redis/redis/v8"
	"go.uber.org/fx"
)

var LockModule = fx.Module("lock",
	fx.Provide(
		NewLocker,
	),
)

// NewLocker shares booking locks through Redis when an address is set, and
// falls back to an in-process lock for single-instance deployments.
func NewLocker(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) lock.Locker {
	if cfg.Booking.LockRedisAddr == "" {
		return lock.NewLocal()
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Booking.LockRedisAddr,
		Password: cfg.Booking.LockRedisPassword,
		DB:       cfg.Booking.LockRedisDB,
	})

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := client.Ping(ctx).Err(); err != nil {
				logger.Warn("booking lock redis unreachable", slog.String("addr", cfg.Booking.LockRedisAddr), slog.Any("error", err))
			}
			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return lock.NewRedis(client, cfg.Booking.LockTTL, logger)
}
