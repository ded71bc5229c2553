package response

import (
	"time"

	"theater-console/internal/domain/show"
	"theater-console/internal/pkg/errs"
	"theater-console/internal/pkg/wallclock"
	"theater-console/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type ConflictResponse struct {
	ShowID  string `json:"showId"`
	Message string `json:"message"`
}

type TimelineSegmentResponse struct {
	ShowID              string  `json:"showId"`
	MovieTitle          string  `json:"movieTitle"`
	Status              string  `json:"status"`
	StartTime           string  `json:"startTime"`
	EndTime             string  `json:"endTime"`
	LeftPositionPercent float64 `json:"leftPositionPercent"`
	WidthPercent        float64 `json:"widthPercent"`
}

type ConflictCheckResponse struct {
	Evaluated       bool                      `json:"evaluated"`
	Reason          string                    `json:"reason,omitempty"`
	HasConflict     bool                      `json:"hasConflict"`
	Conflicts       []ConflictResponse        `json:"conflicts"`
	ComputedEndTime *string                   `json:"computedEndTime"`
	Timeline        []TimelineSegmentResponse `json:"timeline"`
	Stale           bool                      `json:"stale"`
	SnapshotAt      *string                   `json:"snapshotAt,omitempty"`
	Warnings        []string                  `json:"warnings"`
}

type TimelineResponse struct {
	Date       string                    `json:"date"`
	Timeline   []TimelineSegmentResponse `json:"timeline"`
	Stale      bool                      `json:"stale"`
	SnapshotAt *string                   `json:"snapshotAt,omitempty"`
	Warnings   []string                  `json:"warnings"`
}

type ShowResponse struct {
	ID           string             `json:"id"`
	MovieID      string             `json:"movieId"`
	MovieTitle   string             `json:"movieTitle"`
	TheaterID    string             `json:"theaterId"`
	ScreenNumber int                `json:"screenNumber"`
	ShowTime     string             `json:"showTime"`
	EndTime      string             `json:"endTime"`
	Language     string             `json:"language"`
	Experience   string             `json:"experience"`
	IntervalTime int                `json:"intervalTime"`
	CleanupTime  int                `json:"cleanupTime"`
	Status       string             `json:"status"`
	Pricing      map[string]float64 `json:"pricing"`
}

func FromConflictCheckView(v *queries.ConflictCheckView, loc *time.Location) (*ConflictCheckResponse, error) {
	conflicts, err := FromConflicts(v.Result.Conflicts)
	if err != nil {
		return nil, err
	}
	timeline, err := FromTimeline(v.Timeline)
	if err != nil {
		return nil, err
	}
	res := &ConflictCheckResponse{
		Evaluated:   v.Result.Evaluated,
		Reason:      string(v.Result.Reason),
		HasConflict: v.Result.HasConflict,
		Conflicts:   conflicts,
		Timeline:    timeline,
		Stale:       v.Existing.Stale,
		SnapshotAt:  localPtr(v.Existing.SnapshotAt, loc),
		Warnings:    nonNil(v.Existing.Warnings),
	}
	if v.ComputedEndTime != nil {
		res.ComputedEndTime = localPtr(*v.ComputedEndTime, loc)
	}
	return res, nil
}

func FromTimelineView(v *queries.TimelineView, loc *time.Location) (*TimelineResponse, error) {
	timeline, err := FromTimeline(v.Timeline)
	if err != nil {
		return nil, err
	}
	return &TimelineResponse{
		Date:       v.Date.String(),
		Timeline:   timeline,
		Stale:      v.Existing.Stale,
		SnapshotAt: localPtr(v.Existing.SnapshotAt, loc),
		Warnings:   nonNil(v.Existing.Warnings),
	}, nil
}

func FromConflicts(conflicts []show.Conflict) ([]ConflictResponse, error) {
	res := make([]ConflictResponse, 0, len(conflicts))
	if len(conflicts) == 0 {
		return res, nil
	}
	if err := copier.Copy(&res, conflicts); err != nil {
		return nil, errs.Wrap(err, "failed to map conflicts")
	}
	return res, nil
}

func FromTimeline(segments []show.TimelineSegment) ([]TimelineSegmentResponse, error) {
	res := make([]TimelineSegmentResponse, 0, len(segments))
	if len(segments) == 0 {
		return res, nil
	}
	if err := copier.Copy(&res, segments); err != nil {
		return nil, errs.Wrap(err, "failed to map timeline")
	}
	return res, nil
}

func FromShow(s *show.Show, loc *time.Location) *ShowResponse {
	return &ShowResponse{
		ID:           s.ID(),
		MovieID:      s.MovieID(),
		MovieTitle:   s.MovieTitle(),
		TheaterID:    s.TheaterID(),
		ScreenNumber: s.ScreenNumber(),
		ShowTime:     wallclock.FormatShowTime(s.ShowTime(), loc),
		EndTime:      wallclock.FormatShowTime(s.EndTime(), loc),
		Language:     s.Language(),
		Experience:   s.Experience(),
		IntervalTime: s.IntervalMinutes(),
		CleanupTime:  s.CleanupMinutes(),
		Status:       s.Status().String(),
		Pricing:      s.Pricing(),
	}
}

func localPtr(t time.Time, loc *time.Location) *string {
	if t.IsZero() {
		return nil
	}
	s := wallclock.FormatShowTime(t, loc)
	return &s
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
