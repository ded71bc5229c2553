package components

import (
	"log/slog"
	"time"

	"theater-console/internal/infra/backend"
	"theater-console/internal/infra/cache"
	"theater-console/internal/infra/readstore"
	"theater-console/internal/pkg/clock"
	"theater-console/internal/pkg/config"
	"theater-console/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewBackendClient,
		backend.NewShowClient,
		backend.NewMovieClient,
		func(c *backend.ShowClient) shared.ShowWriter { return c },
		fx.Annotate(
			backend.NewScreenClient,
			fx.As(new(shared.ScreenDirectory)),
		),
		NewShowSource,
		NewShowMirror,
		NewMovieCatalog,
		NewSnapshotStore,
	),
)

func NewBackendClient(cfg config.Config, loc *time.Location, logger *slog.Logger) *backend.Client {
	return backend.NewClient(cfg.Backend, loc, logger)
}

// NewShowSource picks where existing shows are read from.
func NewShowSource(cfg config.Config, pool *pgxpool.Pool, client *backend.ShowClient, logger *slog.Logger) shared.ShowSource {
	if cfg.Schedule.ShowSource == config.ShowSourcePostgres && pool != nil {
		return readstore.NewShowReadStore(pool, logger)
	}
	return client
}

// NewShowMirror is nil unless the replica is in use.
func NewShowMirror(cfg config.Config, pool *pgxpool.Pool, logger *slog.Logger) shared.ShowMirror {
	if cfg.Schedule.ShowSource != config.ShowSourcePostgres || pool == nil {
		return nil
	}
	return readstore.NewShowReadStore(pool, logger)
}

func NewMovieCatalog(cfg config.Config, client *backend.MovieClient, rdb *redis.Client, logger *slog.Logger) shared.MovieCatalog {
	if rdb == nil {
		return client
	}
	return cache.NewMovieCache(client, rdb, cfg.Redis.MovieCacheTTL, logger)
}

func NewSnapshotStore(cfg config.Config, rdb *redis.Client, clk clock.Clock, logger *slog.Logger) shared.SnapshotStore {
	if rdb == nil {
		return cache.NoopSnapshotStore{}
	}
	return cache.NewSnapshotStore(rdb, cfg.Redis.SnapshotTTL, clk, logger)
}
