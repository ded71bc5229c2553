package queries

//go:generate mockgen -source=schedule.go -destination=../../../tests/mock/queries/mock_schedule.go -package=queriesmock

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"theater-console/internal/domain/show"
	"theater-console/internal/infra"
	"theater-console/internal/pkg/errs"
	"theater-console/internal/pkg/generation"
	"theater-console/internal/pkg/wallclock"
	"theater-console/internal/usecase/shared"
)

type ConflictCheckInput struct {
	// SessionID identifies the console tab; a newer check from the same
	// session and screen supersedes an older one still in flight.
	SessionID     string
	Draft         show.Draft
	ExcludeShowID string
}

type TimelineInput struct {
	SessionID    string
	TheaterID    string
	ScreenNumber int
	Date         wallclock.Date
}

type ConflictCheckView struct {
	Result          show.ConflictResult
	ComputedEndTime *time.Time
	Timeline        []show.TimelineSegment
	Existing        ExistingShows
}

type TimelineView struct {
	Date     wallclock.Date
	Timeline []show.TimelineSegment
	Existing ExistingShows
}

// ExistingShows is the comparison set for one screen day. Stale is set when the
// backend could not be reached and a previously fetched snapshot was used instead.
type ExistingShows struct {
	Shows      []*show.Show
	Stale      bool
	SnapshotAt time.Time
	Warnings   []string
}

type ScheduleQueries interface {
	CheckConflicts(ctx context.Context, in ConflictCheckInput) (*ConflictCheckView, error)
	Timeline(ctx context.Context, in TimelineInput) (*TimelineView, error)
}

type trackerKey struct {
	session      string
	theaterID    string
	screenNumber int
}

type scheduleQueriesImpl struct {
	scheduler *show.Scheduler
	policy    show.BufferPolicy
	shows     shared.ShowSource
	movies    shared.MovieCatalog
	snapshots shared.SnapshotStore
	tracker   *generation.Tracker[trackerKey]
	logger    *slog.Logger
}

func NewScheduleQueries(
	scheduler *show.Scheduler,
	policy show.BufferPolicy,
	shows shared.ShowSource,
	movies shared.MovieCatalog,
	snapshots shared.SnapshotStore,
	logger *slog.Logger,
) ScheduleQueries {
	return &scheduleQueriesImpl{
		scheduler: scheduler,
		policy:    policy,
		shows:     shows,
		movies:    movies,
		snapshots: snapshots,
		tracker:   generation.NewTracker[trackerKey](),
		logger:    logger,
	}
}

func (q *scheduleQueriesImpl) CheckConflicts(ctx context.Context, in ConflictCheckInput) (*ConflictCheckView, error) {
	draft := in.Draft
	ticket, ctx := q.begin(ctx, in.SessionID, draft.TheaterID(), draft.ScreenNumber())

	// the live check still runs; submission rejects out-of-range buffers
	var warnings []string
	if err := q.policy.Validate(draft.IntervalMinutes(), draft.CleanupMinutes()); err != nil {
		warnings = append(warnings, fmt.Sprintf("%s; this show cannot be submitted", err))
	}

	date, hasDate := draft.ShowDate()
	if !hasDate {
		// nothing to fetch until a date is picked
		if err := q.finish(ticket); err != nil {
			return nil, err
		}
		return &ConflictCheckView{
			Result:   q.scheduler.CheckConflicts(draft, nil, in.ExcludeShowID),
			Timeline: []show.TimelineSegment{},
			Existing: ExistingShows{Warnings: warnings},
		}, nil
	}

	draft, warning, err := q.resolveDuration(ctx, draft)
	if err != nil {
		return nil, q.supersededOr(ticket, err)
	}
	if warning != "" {
		warnings = append(warnings, warning)
	}

	existing, err := q.loadExisting(ctx, shared.ScreenDay{
		TheaterID:    draft.TheaterID(),
		ScreenNumber: draft.ScreenNumber(),
		Date:         date,
	})
	if err != nil {
		return nil, q.supersededOr(ticket, err)
	}
	existing.Warnings = append(warnings, existing.Warnings...)

	if err := q.finish(ticket); err != nil {
		return nil, err
	}

	view := &ConflictCheckView{
		Result:   q.scheduler.CheckConflicts(draft, existing.Shows, in.ExcludeShowID),
		Timeline: q.scheduler.Timeline(existing.Shows),
		Existing: existing,
	}
	if end, ok := draft.ComputedEndTime(q.scheduler.Location()); ok {
		view.ComputedEndTime = &end
	}
	return view, nil
}

func (q *scheduleQueriesImpl) Timeline(ctx context.Context, in TimelineInput) (*TimelineView, error) {
	ticket, ctx := q.begin(ctx, in.SessionID, in.TheaterID, in.ScreenNumber)

	existing, err := q.loadExisting(ctx, shared.ScreenDay{
		TheaterID:    in.TheaterID,
		ScreenNumber: in.ScreenNumber,
		Date:         in.Date,
	})
	if err != nil {
		return nil, q.supersededOr(ticket, err)
	}
	if err := q.finish(ticket); err != nil {
		return nil, err
	}

	return &TimelineView{
		Date:     in.Date,
		Timeline: q.scheduler.Timeline(existing.Shows),
		Existing: existing,
	}, nil
}

// resolveDuration fills in the movie runtime. A movie that cannot be resolved
// leaves the draft unevaluable, which the scheduler reports as no conflict.
func (q *scheduleQueriesImpl) resolveDuration(ctx context.Context, draft show.Draft) (show.Draft, string, error) {
	if draft.MovieID() == "" {
		return draft, "", nil
	}
	if _, ok := draft.MovieDuration(); ok {
		return draft, "", nil
	}

	movie, err := q.movies.FindByID(ctx, draft.MovieID())
	switch {
	case err == nil && movie.DurationMinutes <= 0:
		return draft, "movie duration unavailable; conflicts cannot be checked", nil
	case err == nil:
		return draft.WithMovieDuration(movie.DurationMinutes), "", nil
	case ctx.Err() != nil:
		return draft, "", ctx.Err()
	case infra.IsKind(err, infra.KindNotFound):
		return draft, "movie not found; conflicts cannot be checked", nil
	default:
		q.logger.Warn("movie lookup failed during conflict check", "movie_id", draft.MovieID(), "error", err)
		return draft, "movie duration unavailable; conflicts cannot be checked", nil
	}
}

// loadExisting fetches the shows starting on the given screen day. On an upstream
// failure it falls back to the last stored snapshot, flagged stale.
func (q *scheduleQueriesImpl) loadExisting(ctx context.Context, day shared.ScreenDay) (ExistingShows, error) {
	loc, logger, snapshots := q.scheduler.Location(), q.logger, q.snapshots
	from, next := day.Date.Bounds(loc)
	to := next.Add(-time.Second)

	shows, err := q.shows.ListByScreen(ctx, day.TheaterID, day.ScreenNumber, from, to)
	if err == nil {
		if serr := snapshots.Save(ctx, day, shows); serr != nil {
			logger.Warn("failed to store show snapshot", "theater_id", day.TheaterID, "screen", day.ScreenNumber, "error", serr)
		}
		return ExistingShows{Shows: shows}, nil
	}
	if ctx.Err() != nil {
		return ExistingShows{}, ctx.Err()
	}
	if infra.IsKind(err, infra.KindNotFound) {
		return ExistingShows{}, errs.Mark(err, errs.ErrScreenNotFound)
	}

	cached, savedAt, found, lerr := snapshots.Load(ctx, day)
	if lerr != nil {
		logger.Warn("failed to load show snapshot", "theater_id", day.TheaterID, "screen", day.ScreenNumber, "error", lerr)
	}
	if lerr != nil || !found {
		return ExistingShows{}, errs.Mark(err, errs.ErrUpstreamUnavailable)
	}

	logger.Warn("serving stale show snapshot", "theater_id", day.TheaterID, "screen", day.ScreenNumber,
		"date", day.Date.String(), "saved_at", savedAt, "error", err)
	return ExistingShows{
		Shows:      cached,
		Stale:      true,
		SnapshotAt: savedAt,
		Warnings: []string{
			fmt.Sprintf("show list could not be refreshed; using data from %s", savedAt.In(loc).Format(wallclock.LocalLayout)),
		},
	}, nil
}

func (q *scheduleQueriesImpl) begin(ctx context.Context, session, theaterID string, screenNumber int) (*generation.Ticket[trackerKey], context.Context) {
	if session == "" {
		return nil, ctx
	}
	return q.tracker.Begin(ctx, trackerKey{session: session, theaterID: theaterID, screenNumber: screenNumber})
}

func (q *scheduleQueriesImpl) finish(ticket *generation.Ticket[trackerKey]) error {
	if ticket == nil || ticket.Done() {
		return nil
	}
	return generation.ErrSuperseded
}

// supersededOr discards the outcome of a request a newer one has replaced,
// including the cancellation that replacement caused.
func (q *scheduleQueriesImpl) supersededOr(ticket *generation.Ticket[trackerKey], err error) error {
	if ticket != nil && !ticket.Done() {
		return generation.ErrSuperseded
	}
	return err
}
