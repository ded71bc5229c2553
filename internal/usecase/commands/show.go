package commands

//go:generate mockgen -source=show.go -destination=../../../tests/mock/commands/mock_show.go -package=commandsmock

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"theater-console/internal/domain/show"
	"theater-console/internal/infra"
	"theater-console/internal/pkg/errs"
	"theater-console/internal/usecase/shared"
)

// ConflictError blocks a submission whose window overlaps existing shows.
type ConflictError struct {
	Conflicts []show.Conflict
}

func (e *ConflictError) Error() string {
	msgs := make([]string, len(e.Conflicts))
	for i, c := range e.Conflicts {
		msgs[i] = c.Message
	}
	return errs.ErrShowConflict.Error() + ": " + strings.Join(msgs, "; ")
}

func (e *ConflictError) Is(target error) bool {
	return target == errs.ErrShowConflict
}

type CreateShowInput struct {
	Draft show.Draft
}

type UpdateShowInput struct {
	Draft show.Draft
}

type ShowCommands interface {
	Create(ctx context.Context, in CreateShowInput) (*show.Show, error)
	Update(ctx context.Context, id string, in UpdateShowInput) (*show.Show, error)
	Delete(ctx context.Context, id string) error
}

type ShowCommandDeps struct {
	Scheduler *show.Scheduler
	Policy    show.BufferPolicy
	Shows     shared.ShowSource
	Writer    shared.ShowWriter
	Movies    shared.MovieCatalog
	Screens   shared.ScreenDirectory
	Publisher shared.EventPublisher
	Mirror    shared.ShowMirror
	Logger    *slog.Logger
}

type showCommandsImpl struct {
	ShowCommandDeps
}

func NewShowCommands(deps ShowCommandDeps) ShowCommands {
	return &showCommandsImpl{ShowCommandDeps: deps}
}

func (uc *showCommandsImpl) Create(ctx context.Context, in CreateShowInput) (*show.Show, error) {
	w, err := uc.admit(ctx, in.Draft, "")
	if err != nil {
		return nil, err
	}

	created, err := uc.Writer.Create(ctx, w)
	if err != nil {
		return nil, uc.writeError(err, "create show")
	}
	uc.afterWrite(ctx, shared.EventShowScheduled, created)
	return created, nil
}

func (uc *showCommandsImpl) Update(ctx context.Context, id string, in UpdateShowInput) (*show.Show, error) {
	if _, err := uc.Writer.FindByID(ctx, id); err != nil {
		return nil, uc.writeError(err, "load show")
	}

	w, err := uc.admit(ctx, in.Draft, id)
	if err != nil {
		return nil, err
	}

	updated, err := uc.Writer.Update(ctx, id, w)
	if err != nil {
		return nil, uc.writeError(err, "update show")
	}
	uc.afterWrite(ctx, shared.EventShowUpdated, updated)
	return updated, nil
}

func (uc *showCommandsImpl) Delete(ctx context.Context, id string) error {
	existing, err := uc.Writer.FindByID(ctx, id)
	if err != nil {
		return uc.writeError(err, "load show")
	}
	if err := uc.Writer.Delete(ctx, id); err != nil {
		return uc.writeError(err, "delete show")
	}

	if uc.Mirror != nil {
		if merr := uc.Mirror.Delete(ctx, id); merr != nil && !infra.IsKind(merr, infra.KindNotFound) {
			uc.Logger.Warn("failed to remove show from replica", "show_id", id, "error", merr)
		}
	}
	uc.publish(ctx, shared.ScheduleEvent{
		Type:         shared.EventShowDeleted,
		ShowID:       id,
		TheaterID:    existing.TheaterID(),
		ScreenNumber: existing.ScreenNumber(),
		MovieID:      existing.MovieID(),
	})
	return nil
}

// admit runs the submission gate and returns the payload to persist.
func (uc *showCommandsImpl) admit(ctx context.Context, draft show.Draft, excludeID string) (shared.ShowWrite, error) {
	if err := requireComplete(draft); err != nil {
		return shared.ShowWrite{}, err
	}
	if err := uc.Policy.Validate(draft.IntervalMinutes(), draft.CleanupMinutes()); err != nil {
		return shared.ShowWrite{}, errs.Mark(err, errs.ErrBufferOutOfRange)
	}

	screen, err := uc.Screens.Find(ctx, draft.TheaterID(), draft.ScreenNumber())
	if err != nil {
		return shared.ShowWrite{}, uc.lookupError(ctx, err, errs.ErrScreenNotFound, errs.ErrUpstreamUnavailable)
	}

	movie, err := uc.Movies.FindByID(ctx, draft.MovieID())
	if err != nil {
		// an unreachable catalog must not let a show through unchecked
		return shared.ShowWrite{}, uc.lookupError(ctx, err, errs.ErrMovieNotFound, errs.ErrDurationUnresolved)
	}
	if movie.DurationMinutes <= 0 {
		return shared.ShowWrite{}, errs.Mark(errs.Newf("movie %s has no duration", movie.ID), errs.ErrDurationUnresolved)
	}
	draft = draft.WithMovieDuration(movie.DurationMinutes)

	if len(movie.Experiences) > 0 && !movie.SupportsExperience(draft.Experience()) {
		return shared.ShowWrite{}, errs.Mark(errs.Newf("movie %s is not available in %s", movie.ID, draft.Experience()), errs.ErrExperienceUnsupported)
	}
	if len(screen.Experiences) > 0 && !screen.SupportsExperience(draft.Experience()) {
		return shared.ShowWrite{}, errs.Mark(errs.Newf("screen %d does not support %s", screen.ScreenNumber, draft.Experience()), errs.ErrExperienceUnsupported)
	}
	if len(movie.Languages) > 0 && !movie.SupportsLanguage(draft.Language()) {
		return shared.ShowWrite{}, errs.Mark(errs.Newf("movie %s is not available in %s", movie.ID, draft.Language()), errs.ErrLanguageUnsupported)
	}

	// always compare against a fresh list; a stale snapshot is not good enough to admit a show
	loc := uc.Scheduler.Location()
	date, _ := draft.ShowDate()
	from, next := date.Bounds(loc)
	existing, err := uc.Shows.ListByScreen(ctx, draft.TheaterID(), draft.ScreenNumber(), from, next.Add(-time.Second))
	if err != nil {
		return shared.ShowWrite{}, uc.lookupError(ctx, err, errs.ErrScreenNotFound, errs.ErrUpstreamUnavailable)
	}

	result := uc.Scheduler.CheckConflicts(draft, existing, excludeID)
	if result.HasConflict {
		return shared.ShowWrite{}, &ConflictError{Conflicts: result.Conflicts}
	}

	start, _ := draft.Start(loc)
	return shared.ShowWrite{
		MovieID:         draft.MovieID(),
		TheaterID:       draft.TheaterID(),
		ScreenNumber:    draft.ScreenNumber(),
		ShowTime:        start,
		Language:        draft.Language(),
		Experience:      draft.Experience(),
		IntervalMinutes: draft.IntervalMinutes(),
		CleanupMinutes:  draft.CleanupMinutes(),
		Pricing:         draft.Pricing(),
	}, nil
}

func requireComplete(draft show.Draft) error {
	var missing []string
	if draft.TheaterID() == "" || draft.ScreenNumber() <= 0 {
		missing = append(missing, "screen")
	}
	if _, ok := draft.ShowDate(); !ok {
		missing = append(missing, "showDate")
	}
	if _, ok := draft.ShowTime(); !ok {
		missing = append(missing, "showTime")
	}
	if draft.MovieID() == "" {
		missing = append(missing, "movieId")
	}
	if draft.Language() == "" {
		missing = append(missing, "language")
	}
	if draft.Experience() == "" {
		missing = append(missing, "experience")
	}
	if len(missing) == 0 {
		return nil
	}
	return errs.Mark(fmt.Errorf("missing %s", strings.Join(missing, ", ")), errs.ErrDomainValidation)
}

func (uc *showCommandsImpl) lookupError(ctx context.Context, err error, notFound, otherwise error) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(err, notFound)
	}
	return errs.Mark(err, otherwise)
}

func (uc *showCommandsImpl) writeError(err error, op string) error {
	switch {
	case infra.IsKind(err, infra.KindNotFound):
		return errs.Mark(errs.Wrap(err, op), errs.ErrShowNotFound)
	case infra.IsKind(err, infra.KindConflict):
		// the backend saw a conflict this service could not
		return errs.Mark(errs.Wrap(err, op), errs.ErrShowConflict)
	case infra.IsKind(err, infra.KindUpstream), infra.IsKind(err, infra.KindDecode):
		return errs.Mark(errs.Wrap(err, op), errs.ErrUpstreamUnavailable)
	default:
		return errs.Wrap(err, op)
	}
}

func (uc *showCommandsImpl) afterWrite(ctx context.Context, typ shared.EventType, s *show.Show) {
	if uc.Mirror != nil {
		if err := uc.Mirror.Upsert(ctx, s); err != nil {
			uc.Logger.Warn("failed to mirror show", "show_id", s.ID(), "error", err)
		}
	}
	uc.publish(ctx, shared.ScheduleEvent{
		Type:         typ,
		ShowID:       s.ID(),
		TheaterID:    s.TheaterID(),
		ScreenNumber: s.ScreenNumber(),
		MovieID:      s.MovieID(),
		ShowTime:     s.ShowTime(),
		EndTime:      s.EndTime(),
	})
}

// publish never fails the request; the backend already holds the change.
func (uc *showCommandsImpl) publish(ctx context.Context, ev shared.ScheduleEvent) {
	if err := uc.Publisher.Publish(ctx, ev); err != nil {
		uc.Logger.Error("failed to publish schedule event", "type", string(ev.Type), "show_id", ev.ShowID, "error", err)
	}
}
