//go:build unit

package api_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"theater-console/internal/domain/show"
	"theater-console/internal/handler/api"
	resdto "theater-console/internal/handler/dto/response"
	"theater-console/internal/pkg/errs"
	"theater-console/internal/usecase/commands"
	"theater-console/tests/common/builder"
	"theater-console/tests/common/httptest"
	"theater-console/tests/common/testutil"
	commandsmock "theater-console/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ShowHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockShowCommands
	handler      *api.ShowHandler
}

func (s *ShowHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockShowCommands(s.mockCtrl)
	s.handler = api.NewShowHandler(s.mockCommands, builder.IST)

	s.router.POST("/api/shows", s.handler.Create)
	s.router.PUT("/api/shows/:id", s.handler.Update)
	s.router.DELETE("/api/shows/:id", s.handler.Delete)
}

func (s *ShowHandlerTestSuite) SetupSubTest() {
	s.SetupTest()
}

func (s *ShowHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestShowHandlerSuite(t *testing.T) {
	suite.Run(t, new(ShowHandlerTestSuite))
}

type testCaseShow struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

type usecaseErrorCase struct {
	name   string
	err    error
	status int
	msg    string
}

func marked(sentinel error) error {
	return errs.Mark(errors.New("cause"), sentinel)
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *ShowHandlerTestSuite) TestCreate() {
	url := "/api/shows"
	b := builder.NewShowBuilder().WithID("show-b").WithClock(17, 0, 19, 30)
	reqBody := b.BuildRequestDTO()
	created := b.MustBuildDomain()

	missing := []testCaseShow{
		{name: "missing field: theaterId (required)", mutate: testutil.Field("theaterId", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: screenNumber (required)", mutate: testutil.Field("screenNumber", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: showDate (required)", mutate: testutil.Field("showDate", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: showTime (required)", mutate: testutil.Field("showTime", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: movieId (required)", mutate: testutil.Field("movieId", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: language (required)", mutate: testutil.Field("language", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: experience (required)", mutate: testutil.Field("experience", nil), expectCode: http.StatusBadRequest},
	}

	malformed := []testCaseShow{
		{name: "malformed showDate", mutate: testutil.Field("showDate", "01-05-2026"), expectCode: http.StatusBadRequest},
		{name: "malformed showTime", mutate: testutil.Field("showTime", "7pm"), expectCode: http.StatusBadRequest},
		{name: "12-hour showTime", mutate: testutil.Field("showTime", "07:30 PM"), expectCode: http.StatusBadRequest},
		{name: "showTime with bad seconds", mutate: testutil.Field("showTime", "12:30:99"), expectCode: http.StatusBadRequest},
		{name: "showTime with trailing text", mutate: testutil.Field("showTime", "19:30abc"), expectCode: http.StatusBadRequest},
		{name: "negative cleanupTime", mutate: testutil.Field("cleanupTime", -1), expectCode: http.StatusBadRequest},
	}

	s.Run("success: returns 201 Created with the persisted show", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, in commands.CreateShowInput) (*show.Show, error) {
				start, ok := in.Draft.Start(builder.IST)
				s.True(ok)
				s.True(start.Equal(created.ShowTime()))
				s.Equal(15, in.Draft.CleanupMinutes())
				return created, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, nil)

		var res resdto.ShowResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &res)
		s.Equal("show-b", res.ID)
		s.Equal("2026-05-01T17:00:00", res.ShowTime)
		s.Equal("2026-05-01T19:30:00", res.EndTime)
		s.Equal("OPEN", res.Status)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Location": "/api/shows/show-b"})
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		for _, group := range [][]testCaseShow{missing, malformed} {
			for _, tc := range group {
				s.Run(tc.name, func() {
					rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, testutil.DtoMap(s.T(), reqBody, tc.mutate), nil)
					httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "Invalid request")
				})
			}
		}
	})

	s.Run("error: 409 Conflict lists the overlapping shows", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(nil, &commands.ConflictError{Conflicts: []show.Conflict{
				{ShowID: "show-a", Message: `Conflicts with "Show A" (14:00 - 16:30)`},
			}}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, nil)

		body := httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "conflicts")
		conflicts, ok := body.Detail["conflicts"].([]any)
		s.Require().True(ok)
		s.Require().Len(conflicts, 1)
		s.Equal("show-a", conflicts[0].(map[string]any)["showId"])
	})

	s.Run("error: usecase errors map to status codes", func() {
		cases := []usecaseErrorCase{
			{"buffers out of range", marked(errs.ErrBufferOutOfRange), http.StatusBadRequest, "out of range"},
			{"incomplete show", marked(errs.ErrDomainValidation), http.StatusBadRequest, "Invalid show"},
			{"unknown screen", marked(errs.ErrScreenNotFound), http.StatusNotFound, "Screen not found"},
			{"unknown movie", marked(errs.ErrMovieNotFound), http.StatusNotFound, "Movie not found"},
			{"unresolved duration", marked(errs.ErrDurationUnresolved), http.StatusUnprocessableEntity, "duration"},
			{"unsupported experience", marked(errs.ErrExperienceUnsupported), http.StatusUnprocessableEntity, "Experience"},
			{"unsupported language", marked(errs.ErrLanguageUnsupported), http.StatusUnprocessableEntity, "Language"},
			{"backend conflict", marked(errs.ErrShowConflict), http.StatusConflict, "conflicts"},
			{"backend down", marked(errs.ErrUpstreamUnavailable), http.StatusBadGateway, "Backend unavailable"},
			{"unexpected", errors.New("boom"), http.StatusInternalServerError, "Create show failed"},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, tc.err).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, nil)
				httptest.AssertErrorResponse(s.T(), rec, tc.status, tc.msg)
			})
		}
	})
}

// ================================================================================
// TestUpdate
// ================================================================================

func (s *ShowHandlerTestSuite) TestUpdate() {
	b := builder.NewShowBuilder().WithID("show-a")
	reqBody := b.BuildRequestDTO()

	s.Run("success: returns the rescheduled show", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), "show-a", gomock.Any()).Return(b.MustBuildDomain(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/api/shows/show-a", reqBody, nil)

		var res resdto.ShowResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Equal("show-a", res.ID)
		s.Equal("2026-05-01T14:00:00", res.ShowTime)
	})

	s.Run("error: 404 for an unknown show", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), "missing", gomock.Any()).Return(nil, marked(errs.ErrShowNotFound)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/api/shows/missing", reqBody, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Show not found")
	})

	s.Run("error: 400 on an invalid body", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/api/shows/show-a",
			testutil.DtoMap(s.T(), reqBody, testutil.Field("screenNumber", -1)), nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})
}

// ================================================================================
// TestDelete
// ================================================================================

func (s *ShowHandlerTestSuite) TestDelete() {
	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), "show-a").Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/api/shows/show-a", nil, nil)
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: usecase errors map to status codes", func() {
		cases := []usecaseErrorCase{
			{"unknown show", marked(errs.ErrShowNotFound), http.StatusNotFound, "Show not found"},
			{"backend down", marked(errs.ErrUpstreamUnavailable), http.StatusBadGateway, "Backend unavailable"},
			{"deadline", context.DeadlineExceeded, http.StatusGatewayTimeout, "timed out"},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Delete(gomock.Any(), "show-a").Return(tc.err).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/api/shows/show-a", nil, nil)
				httptest.AssertErrorResponse(s.T(), rec, tc.status, tc.msg)
			})
		}
	})
}
