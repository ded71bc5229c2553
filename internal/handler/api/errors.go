package api

import (
	"context"
	"errors"
	"net/http"

	resdto "theater-console/internal/handler/dto/response"
	"theater-console/internal/handler/httperr"
	"theater-console/internal/pkg/errs"
	"theater-console/internal/pkg/generation"
	"theater-console/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type errorMapping struct {
	target error
	status int
	msg    string
}

// checked in order; the first match wins
var usecaseErrors = []errorMapping{
	{generation.ErrSuperseded, http.StatusConflict, "Superseded by a newer request"},
	{errs.ErrShowConflict, http.StatusConflict, "Show conflicts with existing shows"},
	{errs.ErrDomainValidation, http.StatusBadRequest, "Invalid show"},
	{errs.ErrBufferOutOfRange, http.StatusBadRequest, "Interval or cleanup minutes out of range"},
	{errs.ErrScreenNotFound, http.StatusNotFound, "Screen not found"},
	{errs.ErrMovieNotFound, http.StatusNotFound, "Movie not found"},
	{errs.ErrShowNotFound, http.StatusNotFound, "Show not found"},
	{errs.ErrDurationUnresolved, http.StatusUnprocessableEntity, "Movie duration could not be resolved"},
	{errs.ErrExperienceUnsupported, http.StatusUnprocessableEntity, "Experience not supported"},
	{errs.ErrLanguageUnsupported, http.StatusUnprocessableEntity, "Language not supported"},
	{errs.ErrUpstreamUnavailable, http.StatusBadGateway, "Backend unavailable"},
	{context.DeadlineExceeded, http.StatusGatewayTimeout, "Backend timed out"},
	{context.Canceled, http.StatusRequestTimeout, "Request cancelled"},
}

func abortWithUsecaseError(c *gin.Context, err error, fallback string) {
	var conflictErr *commands.ConflictError
	if errors.As(err, &conflictErr) {
		conflicts, derr := resdto.FromConflicts(conflictErr.Conflicts)
		if derr != nil {
			httperr.AbortWithError(c, http.StatusInternalServerError, derr, fallback, nil)
			return
		}
		httperr.AbortWithError(c, http.StatusConflict, err, "Show conflicts with existing shows",
			gin.H{"conflicts": conflicts})
		return
	}
	for _, m := range usecaseErrors {
		if errs.Is(err, m.target) {
			httperr.AbortWithError(c, m.status, err, m.msg, nil)
			return
		}
	}
	httperr.AbortWithError(c, http.StatusInternalServerError, err, fallback, nil)
}
