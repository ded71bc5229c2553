package api

import (
	"net/http"
	"strings"
	"time"

	reqdto "theater-console/internal/handler/dto/request"
	resdto "theater-console/internal/handler/dto/response"
	"theater-console/internal/handler/httperr"
	"theater-console/internal/pkg/errs"
	"theater-console/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type ShowHandler struct {
	cmds commands.ShowCommands
	loc  *time.Location
}

func NewShowHandler(cmds commands.ShowCommands, loc *time.Location) *ShowHandler {
	return &ShowHandler{cmds: cmds, loc: loc}
}

// @Summary Schedule a show
// @Description Validate a complete show against the screen's day and persist it
// @Tags shows
// @Accept json
// @Produce json
// @Param request body reqdto.ShowRequest true "Show"
// @Success 201 {object} resdto.ShowResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /api/shows [post]
func (h *ShowHandler) Create(c *gin.Context) {
	var req reqdto.ShowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	draft, err := req.ToDomain()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	created, err := h.cmds.Create(c.Request.Context(), commands.CreateShowInput{Draft: draft})
	if err != nil {
		abortWithUsecaseError(c, err, "Create show failed")
		return
	}
	c.Header("Location", "/api/shows/"+created.ID())
	c.JSON(http.StatusCreated, resdto.FromShow(created, h.loc))
}

// @Summary Reschedule a show
// @Description Replace a show; the show never conflicts with itself
// @Tags shows
// @Accept json
// @Produce json
// @Param id path string true "Show ID"
// @Param request body reqdto.ShowRequest true "Show"
// @Success 200 {object} resdto.ShowResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /api/shows/{id} [put]
func (h *ShowHandler) Update(c *gin.Context) {
	id, ok := showID(c)
	if !ok {
		return
	}
	var req reqdto.ShowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	draft, err := req.ToDomain()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	updated, err := h.cmds.Update(c.Request.Context(), id, commands.UpdateShowInput{Draft: draft})
	if err != nil {
		abortWithUsecaseError(c, err, "Update show failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromShow(updated, h.loc))
}

// @Summary Delete a show
// @Tags shows
// @Param id path string true "Show ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /api/shows/{id} [delete]
func (h *ShowHandler) Delete(c *gin.Context) {
	id, ok := showID(c)
	if !ok {
		return
	}
	if err := h.cmds.Delete(c.Request.Context(), id); err != nil {
		abortWithUsecaseError(c, err, "Delete show failed")
		return
	}
	c.Status(http.StatusNoContent)
}

func showID(c *gin.Context) (string, bool) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		httperr.AbortWithError(c, http.StatusBadRequest, errOrInvalid(nil, "show id"), "Invalid id", nil)
		return "", false
	}
	return id, true
}

func errOrInvalid(err error, what string) error {
	if err != nil {
		return err
	}
	return errs.Newf("invalid %s", what)
}
