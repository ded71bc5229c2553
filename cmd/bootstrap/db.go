package bootstrap

import (
	"context"
	"log/slog"

	"theater-console/internal/infra/broker"
	"theater-console/internal/infra/cache"
	"theater-console/internal/infra/db"
	"theater-console/internal/pkg/clock"
	"theater-console/internal/pkg/config"
	"theater-console/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var DBModule = fx.Module("db",
	fx.Provide(
		NewDB,
		NewRedis,
		NewEventPublisher,
	),
)

// NewDB connects only when shows are read from the replica; otherwise the pool is nil.
func NewDB(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (*pgxpool.Pool, error) {
	if cfg.Schedule.ShowSource != config.ShowSourcePostgres {
		return nil, nil
	}
	pool, cleanup, err := db.Connect(cfg.DB)
	if err != nil {
		return nil, err
	}
	logger.Info("connected to show replica", "host", cfg.DB.Host, "db", cfg.DB.DBName)

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	return pool, nil
}

// NewRedis returns nil when REDIS_ADDR is empty; callers fall back to uncached lookups.
func NewRedis(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (*redis.Client, error) {
	if !cfg.Redis.Enabled() {
		logger.Info("redis disabled; movie cache and show snapshots are off")
		return nil, nil
	}
	rdb, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return rdb.Close()
		},
	})

	return rdb, nil
}

func NewEventPublisher(lc fx.Lifecycle, cfg config.Config, clk clock.Clock, logger *slog.Logger) (shared.EventPublisher, error) {
	if !cfg.Broker.Enabled() {
		logger.Info("broker disabled; schedule events are dropped")
		return broker.NoopPublisher{}, nil
	}
	pub, closer, err := broker.Dial(cfg.Broker, clk, logger)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return closer()
		},
	})

	return pub, nil
}
