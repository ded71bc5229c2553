// Package cache holds the Redis-backed caches in front of the backend API.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"theater-console/internal/usecase/shared"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "console:"

type cachedMovie struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Duration    int      `json:"duration"`
	Experiences []string `json:"experiences"`
	Languages   []string `json:"languages"`
}

// MovieCache serves movie lookups from Redis and falls through to next on a miss.
// Redis failures degrade to a direct lookup.
type MovieCache struct {
	next   shared.MovieCatalog
	rdb    redis.Cmdable
	ttl    time.Duration
	logger *slog.Logger
}

func NewMovieCache(next shared.MovieCatalog, rdb redis.Cmdable, ttl time.Duration, logger *slog.Logger) *MovieCache {
	return &MovieCache{next: next, rdb: rdb, ttl: ttl, logger: logger}
}

var _ shared.MovieCatalog = (*MovieCache)(nil)

func movieKey(id string) string {
	return keyPrefix + "movie:" + id
}

func (c *MovieCache) FindByID(ctx context.Context, id string) (*shared.MovieSnapshot, error) {
	raw, err := c.rdb.Get(ctx, movieKey(id)).Bytes()
	switch {
	case err == nil:
		var m cachedMovie
		if jerr := json.Unmarshal(raw, &m); jerr == nil {
			return &shared.MovieSnapshot{
				ID:              m.ID,
				Title:           m.Title,
				DurationMinutes: m.Duration,
				Experiences:     m.Experiences,
				Languages:       m.Languages,
			}, nil
		}
		c.logger.Warn("discarding unreadable cached movie", "movie_id", id)
	case !errors.Is(err, redis.Nil):
		c.logger.Warn("movie cache read failed", "movie_id", id, "error", err)
	}

	movie, err := c.next.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(cachedMovie{
		ID:          movie.ID,
		Title:       movie.Title,
		Duration:    movie.DurationMinutes,
		Experiences: movie.Experiences,
		Languages:   movie.Languages,
	})
	if err == nil {
		err = c.rdb.Set(ctx, movieKey(id), payload, c.ttl).Err()
	}
	if err != nil {
		c.logger.Warn("movie cache write failed", "movie_id", id, "error", err)
	}
	return movie, nil
}

// Invalidate drops a cached movie so the next lookup refetches it.
func (c *MovieCache) Invalidate(ctx context.Context, id string) error {
	return c.rdb.Del(ctx, movieKey(id)).Err()
}
