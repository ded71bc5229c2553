//go:build e2e

package schedule_test

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"theater-console/internal/handler/dto/response"
	"theater-console/internal/infra"
	"theater-console/internal/infra/readstore"
	"theater-console/internal/usecase/shared"
	"theater-console/tests/common/backendtest"
	"theater-console/tests/common/builder"
	"theater-console/tests/common/dbtest"
	"theater-console/tests/common/httptest"
	"theater-console/tests/common/testutil"
	"theater-console/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	conflictsURL = "/api/schedule/conflicts"
	timelineURL  = "/api/theaters/th-1/screens/1/timeline?date=2026-05-01"
	showsURL     = "/api/shows"
)

type ScheduleSuite struct {
	e2e.SharedSuite
}

func (s *ScheduleSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestScheduleSuite(t *testing.T) {
	suite.Run(t, new(ScheduleSuite))
}

// seedCatalog registers the movies and the screen every scenario uses.
func (s *ScheduleSuite) seedCatalog() {
	s.Backend.AddMovie(backendtest.Movie{ID: "mv-1", Title: "Show A", Duration: 120, Experiences: []string{"2D"}, Languages: []string{"English"}})
	s.Backend.AddMovie(backendtest.Movie{ID: "mv-2", Title: "Show B", Duration: 120, Experiences: []string{"2D", "3D"}, Languages: []string{"English", "Hindi"}})
	s.Backend.AddScreen(backendtest.Screen{TheaterID: "th-1", ScreenNumber: 1, Experiences: []string{"2D"}})
}

// seedShowA puts the 14:00-16:30 show into the replica.
func (s *ScheduleSuite) seedShowA() *builder.ShowBuilder {
	a := builder.NewShowBuilder()
	dbtest.InsertShow(s.T(), s.DB, a)
	return a
}

func movieB(b *builder.ShowBuilder) {
	b.MovieID = "mv-2"
	b.MovieTitle = "Show B"
}

func (s *ScheduleSuite) createShow(b *builder.ShowBuilder) response.ShowResponse {
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, showsURL, b.BuildRequestDTO(), nil)
	var res response.ShowResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &res)
	require.NotEmpty(s.T(), res.ID)
	return res
}

// =============================================================================
// TestCheckConflicts
// =============================================================================

func (s *ScheduleSuite) TestCheckConflicts() {
	s.Run("overlapping draft reports the existing show", func() {
		s.seedCatalog()
		a := s.seedShowA()

		body := builder.NewShowBuilder().With(movieB).WithClock(15, 0, 17, 30).BuildConflictCheckDTO()
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, conflictsURL, body, httptest.SessionHeaders("tab-1"))

		var res response.ConflictCheckResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &res)

		want := response.ConflictCheckResponse{
			Evaluated:   true,
			HasConflict: true,
			Conflicts: []response.ConflictResponse{
				{ShowID: a.ID, Message: `Conflicts with "Show A" (14:00 - 16:30)`},
			},
			Timeline: []response.TimelineSegmentResponse{
				{
					ShowID:              a.ID,
					MovieTitle:          "Show A",
					Status:              "OPEN",
					StartTime:           "14:00",
					EndTime:             "16:30",
					LeftPositionPercent: 14.0 * 60 / 1440 * 100,
					WidthPercent:        150.0 / 1440 * 100,
				},
			},
			Warnings: []string{},
		}
		diff := cmp.Diff(want, res,
			cmpopts.IgnoreFields(response.ConflictCheckResponse{}, "ComputedEndTime"),
			cmpopts.EquateApprox(0, 1e-9),
		)
		s.Empty(diff)
		s.Require().NotNil(res.ComputedEndTime)
		s.Equal("2026-05-01T17:30:00", *res.ComputedEndTime)
	})

	s.Run("back-to-back draft is accepted", func() {
		s.seedCatalog()
		s.seedShowA()

		body := builder.NewShowBuilder().With(movieB).WithClock(16, 30, 19, 0).BuildConflictCheckDTO()
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, conflictsURL, body, nil)

		var res response.ConflictCheckResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &res)
		s.True(res.Evaluated)
		s.False(res.HasConflict)
		s.Empty(res.Conflicts)
	})

	s.Run("unknown movie leaves the draft unevaluated", func() {
		s.seedCatalog()
		s.seedShowA()

		body := testutil.DtoMap(s.T(),
			builder.NewShowBuilder().WithClock(15, 0, 17, 30).BuildConflictCheckDTO(),
			testutil.Field("movieId", "mv-404"))
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, conflictsURL, body, nil)

		var res response.ConflictCheckResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &res)
		s.False(res.Evaluated)
		s.False(res.HasConflict)
		s.Nil(res.ComputedEndTime)
		s.Len(res.Timeline, 1)
		s.NotEmpty(res.Warnings)
	})

	s.Run("cached movie keeps checks working while the catalog is down", func() {
		s.seedCatalog()
		s.seedShowA()

		body := builder.NewShowBuilder().With(movieB).WithClock(15, 0, 17, 30).BuildConflictCheckDTO()
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, conflictsURL, body, nil)
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, nil)

		s.Backend.SetDown(true)

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, conflictsURL, body, nil)
		var res response.ConflictCheckResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &res)
		s.True(res.Evaluated)
		s.True(res.HasConflict)
	})
}

// =============================================================================
// TestTimeline
// =============================================================================

func (s *ScheduleSuite) TestTimeline() {
	s.Run("lists only shows starting on the requested day", func() {
		late := builder.NewShowBuilder().With(movieB).WithClock(20, 0, 22, 30)
		nextDay := builder.NewShowBuilder().WithWindow(
			time.Date(2026, time.May, 2, 10, 0, 0, 0, builder.IST),
			time.Date(2026, time.May, 2, 12, 30, 0, 0, builder.IST),
		)
		a := s.seedShowA()
		dbtest.InsertShow(s.T(), s.DB, late)
		dbtest.InsertShow(s.T(), s.DB, nextDay)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, timelineURL, nil, nil)

		var res response.TimelineResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &res)
		s.Equal("2026-05-01", res.Date)
		s.Require().Len(res.Timeline, 2)
		s.Equal(a.ID, res.Timeline[0].ShowID)
		s.Equal(late.ID, res.Timeline[1].ShowID)
		s.False(res.Stale)
	})
}

// =============================================================================
// TestShowLifecycle
// =============================================================================

func (s *ScheduleSuite) TestShowLifecycle() {
	s.Run("create mirrors the show and publishes an event", func() {
		s.seedCatalog()
		s.seedShowA()

		created := s.createShow(builder.NewShowBuilder().With(movieB).WithClock(16, 30, 19, 0))

		s.Equal("2026-05-01T16:30:00", created.ShowTime)
		s.Equal("2026-05-01T19:00:00", created.EndTime)
		s.Len(s.Backend.Shows(), 1)
		s.Equal(1, dbtest.CountShows(s.T(), s.DB, created.ID))

		events := s.Publisher.Events()
		s.Require().Len(events, 1)
		s.Equal(shared.EventShowScheduled, events[0].Type)
		s.Equal(created.ID, events[0].ShowID)

		// the mirrored show now blocks its own slot
		body := builder.NewShowBuilder().WithClock(17, 0, 19, 30).BuildConflictCheckDTO()
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, conflictsURL, body, nil)
		var res response.ConflictCheckResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &res)
		s.True(res.HasConflict)
		s.Require().Len(res.Conflicts, 1)
		s.Equal(created.ID, res.Conflicts[0].ShowID)
	})

	s.Run("shows with non-uuid backend ids are mirrored and block overlaps", func() {
		s.seedCatalog()
		s.Backend.UseHexIDs()

		created := s.createShow(builder.NewShowBuilder().With(movieB).WithClock(16, 30, 19, 0))
		s.Len(created.ID, 24)
		s.Equal(1, dbtest.CountShows(s.T(), s.DB, created.ID))

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, showsURL,
			builder.NewShowBuilder().WithClock(17, 0, 19, 30).BuildRequestDTO(), nil)
		body := httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "conflicts")
		conflicts, ok := body.Detail["conflicts"].([]any)
		s.Require().True(ok)
		s.Require().Len(conflicts, 1)
		s.Equal(created.ID, conflicts[0].(map[string]any)["showId"])
		s.Len(s.Backend.Shows(), 1)

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodDelete, fmt.Sprintf("%s/%s", showsURL, created.ID), nil, nil)
		s.Equal(http.StatusNoContent, w.Code)
		s.Equal(0, dbtest.CountShows(s.T(), s.DB, created.ID))
	})

	s.Run("create is refused on overlap and nothing is written", func() {
		s.seedCatalog()
		a := s.seedShowA()

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, showsURL,
			builder.NewShowBuilder().With(movieB).WithClock(15, 0, 17, 30).BuildRequestDTO(), nil)

		body := httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "conflicts")
		conflicts, ok := body.Detail["conflicts"].([]any)
		s.Require().True(ok)
		s.Require().Len(conflicts, 1)
		s.Equal(a.ID, conflicts[0].(map[string]any)["showId"])
		s.Empty(s.Backend.Shows())
		s.Empty(s.Publisher.Events())
	})

	s.Run("create rejects an experience the screen cannot project", func() {
		s.seedCatalog()

		req := testutil.DtoMap(s.T(),
			builder.NewShowBuilder().With(movieB).WithClock(10, 0, 12, 30).BuildRequestDTO(),
			testutil.Field("experience", "3D"))
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, showsURL, req, nil)

		httptest.AssertErrorResponse(s.T(), w, http.StatusUnprocessableEntity, "Experience")
		s.Empty(s.Backend.Shows())
	})

	s.Run("update may overlap its own previous slot", func() {
		s.seedCatalog()
		created := s.createShow(builder.NewShowBuilder().With(movieB).WithClock(17, 0, 19, 30))
		s.Publisher.Reset()

		moved := builder.NewShowBuilder().With(movieB).WithClock(17, 15, 19, 45).BuildRequestDTO()
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPut, fmt.Sprintf("%s/%s", showsURL, created.ID), moved, nil)

		var res response.ShowResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &res)
		s.Equal(created.ID, res.ID)
		s.Equal("2026-05-01T17:15:00", res.ShowTime)

		events := s.Publisher.Events()
		s.Require().Len(events, 1)
		s.Equal(shared.EventShowUpdated, events[0].Type)
	})

	s.Run("update into another show's slot is refused", func() {
		s.seedCatalog()
		s.seedShowA()
		created := s.createShow(builder.NewShowBuilder().With(movieB).WithClock(17, 0, 19, 30))

		moved := builder.NewShowBuilder().With(movieB).WithClock(15, 0, 17, 30).BuildRequestDTO()
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPut, fmt.Sprintf("%s/%s", showsURL, created.ID), moved, nil)

		httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "conflicts")
		s.Equal("2026-05-01T17:00:00", s.Backend.Shows()[0].ShowTime)
	})

	s.Run("delete removes the show from backend and replica", func() {
		s.seedCatalog()
		created := s.createShow(builder.NewShowBuilder().With(movieB).WithClock(17, 0, 19, 30))

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodDelete, fmt.Sprintf("%s/%s", showsURL, created.ID), nil, nil)

		s.Equal(http.StatusNoContent, w.Code)
		s.Empty(s.Backend.Shows())
		s.Equal(0, dbtest.CountShows(s.T(), s.DB, created.ID))
		events := s.Publisher.Events()
		s.Require().NotEmpty(events)
		s.Equal(shared.EventShowDeleted, events[len(events)-1].Type)
	})

	s.Run("unknown show is 404 on update and delete", func() {
		s.seedCatalog()
		missing := fmt.Sprintf("%s/%s", showsURL, "3f0e9a52-5a0e-4d8e-9a7e-2f1f2c1c0b11")

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPut, missing, builder.NewShowBuilder().BuildRequestDTO(), nil)
		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Show not found")

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodDelete, missing, nil, nil)
		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Show not found")
	})

	s.Run("backend outage is a 502", func() {
		s.seedCatalog()
		s.Backend.SetDown(true)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, showsURL,
			builder.NewShowBuilder().With(movieB).WithClock(17, 0, 19, 30).BuildRequestDTO(), nil)
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadGateway, "Backend unavailable")
		s.Empty(s.Backend.Shows())
	})
}

// =============================================================================
// TestShowReadStore
// =============================================================================

func (s *ScheduleSuite) TestShowReadStore() {
	store := readstore.NewShowReadStore(s.DB, slog.Default())
	ctx := context.Background()
	dayStart := time.Date(2026, time.May, 1, 0, 0, 0, 0, builder.IST)
	dayEnd := dayStart.Add(24*time.Hour - time.Second)

	s.Run("upsert then list round-trips every field", func() {
		b := builder.NewShowBuilder()
		want := b.MustBuildDomain()
		s.Require().NoError(store.Upsert(ctx, want))

		got, err := store.ListByScreen(ctx, "th-1", 1, dayStart, dayEnd)
		s.Require().NoError(err)
		s.Require().Len(got, 1)
		s.Equal(want.ID(), got[0].ID())
		s.True(want.ShowTime().Equal(got[0].ShowTime()))
		s.True(want.EndTime().Equal(got[0].EndTime()))
		s.Equal(want.Pricing(), got[0].Pricing())
		s.Equal(want.Status(), got[0].Status())
	})

	s.Run("upsert replaces an existing row", func() {
		b := builder.NewShowBuilder()
		s.Require().NoError(store.Upsert(ctx, b.MustBuildDomain()))
		s.Require().NoError(store.Upsert(ctx, b.WithClock(18, 0, 20, 30).MustBuildDomain()))

		got, err := store.ListByScreen(ctx, "th-1", 1, dayStart, dayEnd)
		s.Require().NoError(err)
		s.Require().Len(got, 1)
		s.Equal(18, got[0].ShowTime().In(builder.IST).Hour())
	})

	s.Run("other screens are not listed", func() {
		dbtest.InsertShow(s.T(), s.DB, builder.NewShowBuilder().With(func(b *builder.ShowBuilder) { b.ScreenNumber = 2 }))

		got, err := store.ListByScreen(ctx, "th-1", 1, dayStart, dayEnd)
		s.Require().NoError(err)
		s.Empty(got)
	})

	s.Run("delete of a missing show is not found", func() {
		err := store.Delete(ctx, "3f0e9a52-5a0e-4d8e-9a7e-2f1f2c1c0b11")
		s.True(infra.IsKind(err, infra.KindNotFound))
	})
}
