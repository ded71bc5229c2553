//go:build unit

package api_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"theater-console/internal/domain/show"
	"theater-console/internal/handler/api"
	resdto "theater-console/internal/handler/dto/response"
	"theater-console/internal/pkg/errs"
	"theater-console/internal/pkg/generation"
	"theater-console/internal/pkg/wallclock"
	"theater-console/internal/usecase/queries"
	"theater-console/tests/common/builder"
	"theater-console/tests/common/httptest"
	"theater-console/tests/common/testutil"
	queriesmock "theater-console/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ScheduleHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockScheduleQueries
	handler     *api.ScheduleHandler
}

func (s *ScheduleHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockScheduleQueries(s.mockCtrl)
	s.handler = api.NewScheduleHandler(s.mockQueries, builder.IST)

	s.router.POST("/api/schedule/conflicts", s.handler.CheckConflicts)
	s.router.GET("/api/theaters/:theaterId/screens/:screenNumber/timeline", s.handler.Timeline)
}

func (s *ScheduleHandlerTestSuite) SetupSubTest() {
	s.SetupTest()
}

func (s *ScheduleHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestScheduleHandlerSuite(t *testing.T) {
	suite.Run(t, new(ScheduleHandlerTestSuite))
}

type testCaseSchedule struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

// conflictView is the result of checking a 15:00 draft against Show A (14:00-16:30).
func conflictView() *queries.ConflictCheckView {
	a := builder.NewShowBuilder().WithID("show-a").WithClock(14, 0, 16, 30).MustBuildDomain()
	sched := show.NewScheduler(builder.IST)
	draft := builder.NewDraftBuilder().At(15, 0).Build()
	end, _ := draft.ComputedEndTime(builder.IST)
	return &queries.ConflictCheckView{
		Result:          sched.CheckConflicts(draft, []*show.Show{a}, ""),
		ComputedEndTime: &end,
		Timeline:        sched.Timeline([]*show.Show{a}),
		Existing:        queries.ExistingShows{Shows: []*show.Show{a}},
	}
}

// ================================================================================
// TestCheckConflicts
// ================================================================================

func (s *ScheduleHandlerTestSuite) TestCheckConflicts() {
	url := "/api/schedule/conflicts"
	reqBody := builder.NewShowBuilder().WithClock(15, 0, 17, 30).BuildConflictCheckDTO()

	validation := []testCaseSchedule{
		{name: "missing field: theaterId (required)", mutate: testutil.Field("theaterId", nil), expectCode: http.StatusBadRequest},
		{name: "screenNumber below 1", mutate: testutil.Field("screenNumber", 0), expectCode: http.StatusBadRequest},
		{name: "malformed showDate", mutate: testutil.Field("showDate", "2026-13-01"), expectCode: http.StatusBadRequest},
		{name: "malformed showTime", mutate: testutil.Field("showTime", "25:00"), expectCode: http.StatusBadRequest},
		{name: "12-hour showTime", mutate: testutil.Field("showTime", "07:30 PM"), expectCode: http.StatusBadRequest},
		{name: "showTime with trailing text", mutate: testutil.Field("showTime", "19:30abc"), expectCode: http.StatusBadRequest},
		{name: "negative intervalTime", mutate: testutil.Field("intervalTime", -5), expectCode: http.StatusBadRequest},
		{name: "zero movieDuration", mutate: testutil.Field("movieDuration", 0), expectCode: http.StatusBadRequest},
		{name: "negative price", mutate: testutil.Field("pricing", map[string]any{"REGULAR": -1}), expectCode: http.StatusBadRequest},
	}

	partial := []testCaseSchedule{
		{name: "draft without date is still checked", mutate: testutil.Field("showDate", nil), expectCode: http.StatusOK},
		{name: "draft without time is still checked", mutate: testutil.Field("showTime", ""), expectCode: http.StatusOK},
		{name: "draft without movie is still checked", mutate: testutil.Field("movieId", nil), expectCode: http.StatusOK},
	}

	s.Run("success: returns conflicts timeline and computed end", func() {
		s.mockQueries.EXPECT().CheckConflicts(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, in queries.ConflictCheckInput) (*queries.ConflictCheckView, error) {
				s.Equal("tab-1", in.SessionID)
				s.Equal("show-a", in.ExcludeShowID)
				date, ok := in.Draft.ShowDate()
				s.True(ok)
				s.Equal(wallclock.Date{Year: 2026, Month: time.May, Day: 1}, date)
				return conflictView(), nil
			}).Times(1)

		body := testutil.DtoMap(s.T(), reqBody, testutil.Field("excludeShowId", "show-a"))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, httptest.SessionHeaders("tab-1"))

		var res resdto.ConflictCheckResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.True(res.Evaluated)
		s.True(res.HasConflict)
		s.Require().Len(res.Conflicts, 1)
		s.Equal("show-a", res.Conflicts[0].ShowID)
		s.Equal(`Conflicts with "Show A" (14:00 - 16:30)`, res.Conflicts[0].Message)
		s.Require().Len(res.Timeline, 1)
		s.Equal("14:00", res.Timeline[0].StartTime)
		s.Equal("OPEN", res.Timeline[0].Status)
		s.Require().NotNil(res.ComputedEndTime)
		s.Equal("2026-05-01T17:30:00", *res.ComputedEndTime)
		s.False(res.Stale)
		s.Nil(res.SnapshotAt)
		s.Empty(res.Warnings)
	})

	s.Run("success: stale snapshot is flagged", func() {
		view := conflictView()
		view.Existing.Stale = true
		view.Existing.SnapshotAt = time.Date(2026, time.May, 1, 9, 0, 0, 0, time.UTC)
		view.Existing.Warnings = []string{"show list could not be refreshed"}
		s.mockQueries.EXPECT().CheckConflicts(gomock.Any(), gomock.Any()).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, nil)

		var res resdto.ConflictCheckResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.True(res.Stale)
		s.Require().NotNil(res.SnapshotAt)
		s.Equal("2026-05-01T14:30:00", *res.SnapshotAt)
		s.Equal([]string{"show list could not be refreshed"}, res.Warnings)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		for _, tc := range validation {
			s.Run(tc.name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, testutil.DtoMap(s.T(), reqBody, tc.mutate), nil)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "Invalid request")
			})
		}
	})

	s.Run("success: partial drafts reach the scheduler", func() {
		for _, tc := range partial {
			s.Run(tc.name, func() {
				s.mockQueries.EXPECT().CheckConflicts(gomock.Any(), gomock.Any()).
					Return(&queries.ConflictCheckView{Result: show.ConflictResult{Reason: show.ReasonInsufficientInput}}, nil).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, testutil.DtoMap(s.T(), reqBody, tc.mutate), nil)

				var res resdto.ConflictCheckResponse
				httptest.AssertSuccessResponse(s.T(), rec, tc.expectCode, &res)
				s.False(res.Evaluated)
				s.Equal("insufficient_input", res.Reason)
				s.NotNil(res.Conflicts)
				s.NotNil(res.Timeline)
			})
		}
	})

	s.Run("error: usecase errors map to status codes", func() {
		cases := []struct {
			name   string
			err    error
			status int
			msg    string
		}{
			{"superseded", generation.ErrSuperseded, http.StatusConflict, "Superseded"},
			{"unknown screen", errs.Mark(errors.New("404"), errs.ErrScreenNotFound), http.StatusNotFound, "Screen not found"},
			{"backend down", errs.Mark(errors.New("503"), errs.ErrUpstreamUnavailable), http.StatusBadGateway, "Backend unavailable"},
			{"unexpected", errors.New("boom"), http.StatusInternalServerError, "Conflict check failed"},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockQueries.EXPECT().CheckConflicts(gomock.Any(), gomock.Any()).Return(nil, tc.err).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, nil)
				httptest.AssertErrorResponse(s.T(), rec, tc.status, tc.msg)
			})
		}
	})
}

// ================================================================================
// TestTimeline
// ================================================================================

func (s *ScheduleHandlerTestSuite) TestTimeline() {
	url := "/api/theaters/th-1/screens/1/timeline?date=2026-05-01"

	s.Run("success: returns segments for the day", func() {
		view := conflictView()
		s.mockQueries.EXPECT().Timeline(gomock.Any(), queries.TimelineInput{
			SessionID:    "tab-1",
			TheaterID:    "th-1",
			ScreenNumber: 1,
			Date:         wallclock.Date{Year: 2026, Month: time.May, Day: 1},
		}).Return(&queries.TimelineView{
			Date:     wallclock.Date{Year: 2026, Month: time.May, Day: 1},
			Timeline: view.Timeline,
		}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, httptest.SessionHeaders("tab-1"))

		var res resdto.TimelineResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Equal("2026-05-01", res.Date)
		s.Require().Len(res.Timeline, 1)
		s.Equal("show-a", res.Timeline[0].ShowID)
		s.InDelta(14.0*60/1440*100, res.Timeline[0].LeftPositionPercent, 1e-9)
		s.InDelta(150.0/1440*100, res.Timeline[0].WidthPercent, 1e-9)
	})

	s.Run("error: 400 on bad path or query", func() {
		for _, path := range []string{
			"/api/theaters/th-1/screens/abc/timeline?date=2026-05-01",
			"/api/theaters/th-1/screens/0/timeline?date=2026-05-01",
			"/api/theaters/th-1/screens/1/timeline",
			"/api/theaters/th-1/screens/1/timeline?date=05/01/2026",
		} {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, path, nil, nil)
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid")
		}
	})

	s.Run("error: 502 when the backend is down and nothing is cached", func() {
		s.mockQueries.EXPECT().Timeline(gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(errors.New("dial tcp"), errs.ErrUpstreamUnavailable)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadGateway, "Backend unavailable")
	})
}
