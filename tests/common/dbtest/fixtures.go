//go:build unit || e2e

package dbtest

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"theater-console/tests/common/builder"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// InsertShow writes a replica row straight into the shows table.
func InsertShow(t *testing.T, db DBLike, b *builder.ShowBuilder) {
	t.Helper()

	pricing, err := json.Marshal(b.Pricing)
	require.NoError(t, err)
	if b.Pricing == nil {
		pricing = []byte("{}")
	}

	_, err = db.Exec(context.Background(), `
INSERT INTO shows (id, movie_id, movie_title, theater_id, screen_number, slot,
                   language, experience, interval_minutes, cleanup_minutes, status, pricing)
VALUES ($1, $2, $3, $4, $5, tstzrange($6, $7, '[)'), $8, $9, $10, $11, $12, $13)`,
		b.ID, b.MovieID, b.MovieTitle, b.TheaterID, b.ScreenNumber, b.ShowTime, b.EndTime,
		b.Language, b.Experience, b.IntervalMinutes, b.CleanupMinutes, b.Status, pricing)
	require.NoError(t, err)
}

// CountShows returns how many replica rows carry the id.
func CountShows(t *testing.T, db DBLike, id string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), `SELECT count(*) FROM shows WHERE id = $1`, id).Scan(&n)
	require.NoError(t, err)
	return n
}

// ResetDB empties the replica between subtests.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := pool.Exec(ctx, `TRUNCATE shows`)
	return err
}
