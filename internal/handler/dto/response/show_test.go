//go:build unit

package response_test

import (
	"testing"
	"time"

	"theater-console/internal/domain/show"
	"theater-console/internal/handler/dto/response"
	"theater-console/internal/pkg/wallclock"
	"theater-console/internal/usecase/queries"
	"theater-console/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromConflictCheckView(t *testing.T) {
	t.Run("maps conflicts and timeline segments", func(t *testing.T) {
		end := time.Date(2026, time.May, 1, 17, 30, 0, 0, builder.IST)
		view := &queries.ConflictCheckView{
			Result: show.ConflictResult{
				Evaluated:   true,
				HasConflict: true,
				Conflicts:   []show.Conflict{{ShowID: "show-a", Message: `Conflicts with "Show A" (14:00 - 16:30)`}},
			},
			ComputedEndTime: &end,
			Timeline: []show.TimelineSegment{{
				ShowID:              "show-a",
				MovieTitle:          "Show A",
				Status:              show.StatusOpen,
				StartTime:           "14:00",
				EndTime:             "16:30",
				LeftPositionPercent: 58.3,
				WidthPercent:        10.4,
			}},
		}

		res, err := response.FromConflictCheckView(view, builder.IST)

		require.NoError(t, err)
		assert.Equal(t, []response.ConflictResponse{{ShowID: "show-a", Message: `Conflicts with "Show A" (14:00 - 16:30)`}}, res.Conflicts)
		assert.Equal(t, []response.TimelineSegmentResponse{{
			ShowID:              "show-a",
			MovieTitle:          "Show A",
			Status:              "OPEN",
			StartTime:           "14:00",
			EndTime:             "16:30",
			LeftPositionPercent: 58.3,
			WidthPercent:        10.4,
		}}, res.Timeline)
		require.NotNil(t, res.ComputedEndTime)
		assert.Equal(t, "2026-05-01T17:30:00", *res.ComputedEndTime)
		assert.Equal(t, []string{}, res.Warnings)
	})

	t.Run("empty results render as empty lists", func(t *testing.T) {
		res, err := response.FromConflictCheckView(&queries.ConflictCheckView{}, builder.IST)

		require.NoError(t, err)
		assert.NotNil(t, res.Conflicts)
		assert.Empty(t, res.Conflicts)
		assert.NotNil(t, res.Timeline)
		assert.Empty(t, res.Timeline)
		assert.Nil(t, res.ComputedEndTime)
		assert.Nil(t, res.SnapshotAt)
	})
}

func TestFromTimelineView(t *testing.T) {
	savedAt := time.Date(2026, time.May, 1, 3, 30, 0, 0, time.UTC)
	view := &queries.TimelineView{
		Date: wallclock.Date{Year: 2026, Month: time.May, Day: 1},
		Existing: queries.ExistingShows{
			Stale:      true,
			SnapshotAt: savedAt,
			Warnings:   []string{"show list could not be refreshed"},
		},
	}

	res, err := response.FromTimelineView(view, builder.IST)

	require.NoError(t, err)
	assert.Equal(t, "2026-05-01", res.Date)
	assert.NotNil(t, res.Timeline)
	assert.True(t, res.Stale)
	require.NotNil(t, res.SnapshotAt)
	assert.Equal(t, "2026-05-01T09:00:00", *res.SnapshotAt)
	assert.Equal(t, []string{"show list could not be refreshed"}, res.Warnings)
}
