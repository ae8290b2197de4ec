package bootstrap

import (
	"context"
	"log/slog"

	"grocery-pool/internal/infra/cache"
	"grocery-pool/internal/pkg/config"
	"grocery-pool/internal/usecase/shared"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var CacheModule = fx.Module("cache",
	fx.Provide(
		NewBalanceCache,
	),
)

func NewBalanceCache(lc fx.Lifecycle, cfg config.Config) shared.BalanceCache {
	if cfg.Redis.Addr == "" {
		slog.Info("balance cache disabled")
		return cache.NoopBalanceCache{}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			// the cache is optional; a dead redis only costs extra ledger reads
			if err := client.Ping(ctx).Err(); err != nil {
				slog.Warn("redis unreachable, balance cache will miss", "addr", cfg.Redis.Addr, "error", err.Error())
			}
			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return cache.NewRedisBalanceCache(client, cfg.Redis.TTL)
}
