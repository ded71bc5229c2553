package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"theater-console/internal/domain/show"
	"theater-console/internal/infra"
	"theater-console/internal/pkg/clock"
	"theater-console/internal/usecase/shared"

	"github.com/redis/go-redis/v9"
)

type cachedShow struct {
	ID              string             `json:"id"`
	MovieID         string             `json:"movieId"`
	MovieTitle      string             `json:"movieTitle"`
	TheaterID       string             `json:"theaterId"`
	ScreenNumber    int                `json:"screenNumber"`
	ShowTime        time.Time          `json:"showTime"`
	EndTime         time.Time          `json:"endTime"`
	Language        string             `json:"language"`
	Experience      string             `json:"experience"`
	IntervalMinutes int                `json:"intervalMinutes"`
	CleanupMinutes  int                `json:"cleanupMinutes"`
	Status          string             `json:"status"`
	Pricing         map[string]float64 `json:"pricing,omitempty"`
}

type snapshotEnvelope struct {
	SavedAt time.Time    `json:"savedAt"`
	Shows   []cachedShow `json:"shows"`
}

// SnapshotStore keeps the last existing-shows list fetched for each screen day.
type SnapshotStore struct {
	rdb    redis.Cmdable
	ttl    time.Duration
	clock  clock.Clock
	logger *slog.Logger
}

func NewSnapshotStore(rdb redis.Cmdable, ttl time.Duration, clk clock.Clock, logger *slog.Logger) *SnapshotStore {
	return &SnapshotStore{rdb: rdb, ttl: ttl, clock: clk, logger: logger}
}

var _ shared.SnapshotStore = (*SnapshotStore)(nil)

func snapshotKey(k shared.ScreenDay) string {
	return fmt.Sprintf("%ssnapshot:%s:%d:%s", keyPrefix, k.TheaterID, k.ScreenNumber, k.Date)
}

func (s *SnapshotStore) Save(ctx context.Context, key shared.ScreenDay, shows []*show.Show) error {
	env := snapshotEnvelope{SavedAt: s.clock.Now(), Shows: make([]cachedShow, 0, len(shows))}
	for _, sh := range shows {
		if sh == nil {
			continue
		}
		env.Shows = append(env.Shows, cachedShow{
			ID:              sh.ID(),
			MovieID:         sh.MovieID(),
			MovieTitle:      sh.MovieTitle(),
			TheaterID:       sh.TheaterID(),
			ScreenNumber:    sh.ScreenNumber(),
			ShowTime:        sh.ShowTime(),
			EndTime:         sh.EndTime(),
			Language:        sh.Language(),
			Experience:      sh.Experience(),
			IntervalMinutes: sh.IntervalMinutes(),
			CleanupMinutes:  sh.CleanupMinutes(),
			Status:          string(sh.Status()),
			Pricing:         sh.Pricing(),
		})
	}

	payload, err := json.Marshal(env)
	if err != nil {
		return infra.WrapRepoErr(s.logger, infra.KindCache, "failed to encode snapshot", err)
	}
	if err := s.rdb.Set(ctx, snapshotKey(key), payload, s.ttl).Err(); err != nil {
		return infra.WrapRepoErr(s.logger, infra.KindCache, "failed to store snapshot", err)
	}
	return nil
}

func (s *SnapshotStore) Load(ctx context.Context, key shared.ScreenDay) ([]*show.Show, time.Time, bool, error) {
	raw, err := s.rdb.Get(ctx, snapshotKey(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, time.Time{}, false, nil
	}
	if err != nil {
		return nil, time.Time{}, false, infra.WrapRepoErr(s.logger, infra.KindCache, "failed to read snapshot", err)
	}

	var env snapshotEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, time.Time{}, false, infra.WrapRepoErr(s.logger, infra.KindDecode, "failed to decode snapshot", err)
	}

	shows := make([]*show.Show, 0, len(env.Shows))
	for _, c := range env.Shows {
		sh, err := show.ReconstructShow(show.ShowRecord{
			ID:              c.ID,
			MovieID:         c.MovieID,
			MovieTitle:      c.MovieTitle,
			TheaterID:       c.TheaterID,
			ScreenNumber:    c.ScreenNumber,
			ShowTime:        c.ShowTime,
			EndTime:         c.EndTime,
			Language:        c.Language,
			Experience:      c.Experience,
			IntervalMinutes: c.IntervalMinutes,
			CleanupMinutes:  c.CleanupMinutes,
			Status:          c.Status,
			Pricing:         c.Pricing,
		})
		if err != nil {
			return nil, time.Time{}, false, infra.WrapRepoErr(s.logger, infra.KindDecode, "invalid show in snapshot", err)
		}
		shows = append(shows, sh)
	}
	return shows, env.SavedAt, true, nil
}

// NoopSnapshotStore is used when Redis is not configured; it never has a snapshot.
type NoopSnapshotStore struct{}

var _ shared.SnapshotStore = NoopSnapshotStore{}

func (NoopSnapshotStore) Save(context.Context, shared.ScreenDay, []*show.Show) error {
	return nil
}

func (NoopSnapshotStore) Load(context.Context, shared.ScreenDay) ([]*show.Show, time.Time, bool, error) {
	return nil, time.Time{}, false, nil
}
