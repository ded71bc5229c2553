package show

import (
	"cmp"
	"fmt"
	"slices"
	"time"

	"theater-console/internal/pkg/wallclock"
)

type Reason string

const (
	ReasonNone               Reason = ""
	ReasonInsufficientInput  Reason = "insufficient_input"
	ReasonDurationUnresolved Reason = "duration_unresolved"
)

type Conflict struct {
	ShowID  string
	Message string
}

// ConflictResult is the outcome of a conflict check. Evaluated is false when the
// draft lacks what the check needs; HasConflict is then always false.
type ConflictResult struct {
	Evaluated   bool
	Reason      Reason
	Window      Interval
	HasConflict bool
	Conflicts   []Conflict
}

type TimelineSegment struct {
	ShowID              string
	MovieTitle          string
	Status              Status
	StartTime           string
	EndTime             string
	LeftPositionPercent float64
	WidthPercent        float64
}

// Scheduler evaluates drafts against the shows already on a screen for one day.
// It reads no clock and keeps no state; all wall-clock math happens in loc.
type Scheduler struct {
	loc *time.Location
}

func NewScheduler(loc *time.Location) *Scheduler {
	if loc == nil {
		loc = time.UTC
	}
	return &Scheduler{loc: loc}
}

func (s *Scheduler) Location() *time.Location {
	return s.loc
}

func (s *Scheduler) CheckConflicts(draft Draft, existing []*Show, excludeShowID string) ConflictResult {
	if _, ok := draft.Start(s.loc); !ok {
		return notEvaluated(ReasonInsufficientInput)
	}
	window, ok := draft.Window(s.loc)
	if !ok {
		return notEvaluated(ReasonDurationUnresolved)
	}

	conflicts := []Conflict{}
	for _, existingShow := range existing {
		if existingShow == nil {
			continue
		}
		if excludeShowID != "" && existingShow.ID() == excludeShowID {
			continue
		}
		if window.Overlaps(existingShow.Window()) {
			conflicts = append(conflicts, Conflict{
				ShowID:  existingShow.ID(),
				Message: s.conflictMessage(existingShow),
			})
		}
	}

	return ConflictResult{
		Evaluated:   true,
		Window:      window,
		HasConflict: len(conflicts) > 0,
		Conflicts:   conflicts,
	}
}

func (s *Scheduler) conflictMessage(existing *Show) string {
	return fmt.Sprintf("Conflicts with \"%s\" (%s - %s)",
		existing.MovieTitle(),
		wallclock.FormatClock(existing.ShowTime(), s.loc),
		wallclock.FormatClock(existing.EndTime(), s.loc),
	)
}

// Timeline lays every show out on a 1440-minute day. A show running past
// midnight keeps its full width, so left+width may exceed 100.
func (s *Scheduler) Timeline(existing []*Show) []TimelineSegment {
	shows := make([]*Show, 0, len(existing))
	for _, sh := range existing {
		if sh != nil {
			shows = append(shows, sh)
		}
	}
	slices.SortStableFunc(shows, func(a, b *Show) int {
		if c := a.ShowTime().Compare(b.ShowTime()); c != 0 {
			return c
		}
		return cmp.Compare(a.ID(), b.ID())
	})

	segments := make([]TimelineSegment, 0, len(shows))
	for _, sh := range shows {
		startOfDay := wallclock.TimeOfDayOf(sh.ShowTime().In(s.loc)).MinutesSinceMidnight()
		durationMinutes := sh.Window().Duration().Minutes()
		segments = append(segments, TimelineSegment{
			ShowID:              sh.ID(),
			MovieTitle:          sh.MovieTitle(),
			Status:              sh.Status(),
			StartTime:           wallclock.FormatClock(sh.ShowTime(), s.loc),
			EndTime:             wallclock.FormatClock(sh.EndTime(), s.loc),
			LeftPositionPercent: dayPercent(float64(startOfDay)),
			WidthPercent:        dayPercent(durationMinutes),
		})
	}
	return segments
}

func dayPercent(minutes float64) float64 {
	return minutes / wallclock.MinutesPerDay * 100
}

func notEvaluated(reason Reason) ConflictResult {
	return ConflictResult{
		Reason:    reason,
		Conflicts: []Conflict{},
	}
}
