package api

import (
	"net/http"
	"strconv"
	"time"

	reqdto "theater-console/internal/handler/dto/request"
	resdto "theater-console/internal/handler/dto/response"
	"theater-console/internal/handler/httperr"
	"theater-console/internal/handler/middleware"
	"theater-console/internal/pkg/wallclock"
	"theater-console/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ScheduleHandler struct {
	q   queries.ScheduleQueries
	loc *time.Location
}

func NewScheduleHandler(q queries.ScheduleQueries, loc *time.Location) *ScheduleHandler {
	return &ScheduleHandler{q: q, loc: loc}
}

// @Summary Check a draft for conflicts
// @Description Evaluate a show draft against the shows already on its screen and date
// @Tags schedule
// @Accept json
// @Produce json
// @Param X-Console-Session header string false "Console tab identifier; newer checks supersede older ones"
// @Param request body reqdto.ConflictCheckRequest true "Show draft"
// @Success 200 {object} resdto.ConflictCheckResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /api/schedule/conflicts [post]
func (h *ScheduleHandler) CheckConflicts(c *gin.Context) {
	var req reqdto.ConflictCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	draft, err := req.ToDomain()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	view, err := h.q.CheckConflicts(c.Request.Context(), queries.ConflictCheckInput{
		SessionID:     c.GetHeader(middleware.SessionHeader),
		Draft:         draft,
		ExcludeShowID: req.ExcludeShowID,
	})
	if err != nil {
		abortWithUsecaseError(c, err, "Conflict check failed")
		return
	}
	res, err := resdto.FromConflictCheckView(view, h.loc)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Conflict check failed", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Screen timeline
// @Description Lay out the shows of one screen on one day
// @Tags schedule
// @Produce json
// @Param theaterId path string true "Theater ID"
// @Param screenNumber path int true "Screen number"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} resdto.TimelineResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /api/theaters/{theaterId}/screens/{screenNumber}/timeline [get]
func (h *ScheduleHandler) Timeline(c *gin.Context) {
	screenNumber, err := strconv.Atoi(c.Param("screenNumber"))
	if err != nil || screenNumber < 1 {
		httperr.AbortWithError(c, http.StatusBadRequest, errOrInvalid(err, "screen number"), "Invalid screen number", nil)
		return
	}
	date, err := wallclock.ParseDate(c.Query("date"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date", nil)
		return
	}

	view, err := h.q.Timeline(c.Request.Context(), queries.TimelineInput{
		SessionID:    c.GetHeader(middleware.SessionHeader),
		TheaterID:    c.Param("theaterId"),
		ScreenNumber: screenNumber,
		Date:         date,
	})
	if err != nil {
		abortWithUsecaseError(c, err, "Failed to load timeline")
		return
	}
	res, err := resdto.FromTimelineView(view, h.loc)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load timeline", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}
