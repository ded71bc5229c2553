package readstore

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"theater-console/internal/domain/show"
	"theater-console/internal/infra"
	"theater-console/internal/pkg/pgconv"
	"theater-console/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
)

// DBTX is satisfied by *pgxpool.Pool, *pgx.Conn and pgx.Tx.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const listByScreenSQL = `
SELECT id, movie_id, movie_title, theater_id, screen_number, slot,
       language, experience, interval_minutes, cleanup_minutes, status, pricing
FROM shows
WHERE theater_id = $1
  AND screen_number = $2
  AND lower(slot) <@ tstzrange($3, $4, '[]')
ORDER BY lower(slot), id`

type showRow struct {
	ID              pgtype.Text
	MovieID         pgtype.Text
	MovieTitle      pgtype.Text
	TheaterID       pgtype.Text
	ScreenNumber    pgtype.Int4
	Slot            pgconv.TimeRange
	Language        pgtype.Text
	Experience      pgtype.Text
	IntervalMinutes pgtype.Int4
	CleanupMinutes  pgtype.Int4
	Status          pgtype.Text
	Pricing         []byte
}

type ShowReadStore struct {
	db     DBTX
	logger *slog.Logger
}

func NewShowReadStore(db DBTX, logger *slog.Logger) *ShowReadStore {
	return &ShowReadStore{db: db, logger: logger}
}

var (
	_ shared.ShowSource = (*ShowReadStore)(nil)
	_ shared.ShowMirror = (*ShowReadStore)(nil)
)

func (r *ShowReadStore) ListByScreen(ctx context.Context, theaterID string, screenNumber int, from, to time.Time) ([]*show.Show, error) {
	rows, err := r.db.Query(ctx, listByScreenSQL, theaterID, screenNumber, pgconv.TimeToPgtype(from), pgconv.TimeToPgtype(to))
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to list shows by screen", err)
	}
	defer rows.Close()

	var result []*show.Show
	for rows.Next() {
		var row showRow
		if err := rows.Scan(
			&row.ID, &row.MovieID, &row.MovieTitle, &row.TheaterID, &row.ScreenNumber, &row.Slot,
			&row.Language, &row.Experience, &row.IntervalMinutes, &row.CleanupMinutes, &row.Status, &row.Pricing,
		); err != nil {
			return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to scan show", err)
		}
		s, err := rowToShow(row)
		if err != nil {
			return nil, infra.WrapRepoErr(r.logger, infra.KindDecode, "invalid show row", err)
		}
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to iterate shows", err)
	}
	return result, nil
}

func rowToShow(row showRow) (*show.Show, error) {
	start, end, err := pgconv.RangeToTimes(row.Slot)
	if err != nil {
		return nil, err
	}
	var pricing map[string]float64
	if len(row.Pricing) > 0 {
		if err := json.Unmarshal(row.Pricing, &pricing); err != nil {
			return nil, err
		}
	}
	return show.ReconstructShow(show.ShowRecord{
		ID:              pgconv.StringFromPgtype(row.ID),
		MovieID:         pgconv.StringFromPgtype(row.MovieID),
		MovieTitle:      pgconv.StringFromPgtype(row.MovieTitle),
		TheaterID:       pgconv.StringFromPgtype(row.TheaterID),
		ScreenNumber:    pgconv.IntFromPgtype(row.ScreenNumber),
		ShowTime:        start,
		EndTime:         end,
		Language:        pgconv.StringFromPgtype(row.Language),
		Experience:      pgconv.StringFromPgtype(row.Experience),
		IntervalMinutes: pgconv.IntFromPgtype(row.IntervalMinutes),
		CleanupMinutes:  pgconv.IntFromPgtype(row.CleanupMinutes),
		Status:          pgconv.StringFromPgtype(row.Status),
		Pricing:         pricing,
	})
}

// Upsert mirrors a backend show into the replica.
func (r *ShowReadStore) Upsert(ctx context.Context, s *show.Show) error {
	id := pgconv.StringToPgtype(s.ID())
	pricing, err := json.Marshal(s.Pricing())
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindDecode, "failed to encode pricing", err)
	}
	if s.Pricing() == nil {
		pricing = []byte("{}")
	}

	_, err = r.db.Exec(ctx, `
INSERT INTO shows (id, movie_id, movie_title, theater_id, screen_number, slot,
                   language, experience, interval_minutes, cleanup_minutes, status, pricing, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, now())
ON CONFLICT (id) DO UPDATE SET
    movie_id = EXCLUDED.movie_id,
    movie_title = EXCLUDED.movie_title,
    theater_id = EXCLUDED.theater_id,
    screen_number = EXCLUDED.screen_number,
    slot = EXCLUDED.slot,
    language = EXCLUDED.language,
    experience = EXCLUDED.experience,
    interval_minutes = EXCLUDED.interval_minutes,
    cleanup_minutes = EXCLUDED.cleanup_minutes,
    status = EXCLUDED.status,
    pricing = EXCLUDED.pricing,
    updated_at = now()`,
		id, s.MovieID(), s.MovieTitle(), s.TheaterID(), s.ScreenNumber(),
		pgconv.TimesToRange(s.ShowTime(), s.EndTime()),
		s.Language(), s.Experience(), s.IntervalMinutes(), s.CleanupMinutes(), string(s.Status()), pricing,
	)
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to upsert show", err)
	}
	return nil
}

func (r *ShowReadStore) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM shows WHERE id = $1`, pgconv.StringToPgtype(id))
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to delete show", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(r.logger, infra.KindNotFound, "show not found", nil)
	}
	return nil
}
