package request

import (
	"strings"

	domshow "theater-console/internal/domain/show"
	"theater-console/internal/pkg/wallclock"
)

// ShowDraftRequest mirrors the console form. Every field except the screen may be
// missing while the operator is still filling it in.
type ShowDraftRequest struct {
	TheaterID     string             `json:"theaterId" binding:"required"`
	ScreenNumber  int                `json:"screenNumber" binding:"required,min=1"`
	ShowDate      string             `json:"showDate"`
	ShowTime      string             `json:"showTime"`
	MovieID       string             `json:"movieId"`
	MovieDuration *int               `json:"movieDuration" binding:"omitempty,min=1"`
	IntervalTime  int                `json:"intervalTime" binding:"min=0"`
	CleanupTime   int                `json:"cleanupTime" binding:"min=0"`
	Language      string             `json:"language"`
	Experience    string             `json:"experience"`
	Pricing       map[string]float64 `json:"pricing" binding:"omitempty,dive,min=0"`
}

type ConflictCheckRequest struct {
	ShowDraftRequest
	// ExcludeShowID is the show being edited, if any.
	ExcludeShowID string `json:"excludeShowId"`
}

// ShowRequest is the payload of create and update; unlike a draft it must be complete.
type ShowRequest struct {
	TheaterID    string             `json:"theaterId" binding:"required"`
	ScreenNumber int                `json:"screenNumber" binding:"required,min=1"`
	ShowDate     string             `json:"showDate" binding:"required"`
	ShowTime     string             `json:"showTime" binding:"required"`
	MovieID      string             `json:"movieId" binding:"required"`
	IntervalTime int                `json:"intervalTime" binding:"min=0"`
	CleanupTime  int                `json:"cleanupTime" binding:"min=0"`
	Language     string             `json:"language" binding:"required"`
	Experience   string             `json:"experience" binding:"required"`
	Pricing      map[string]float64 `json:"pricing" binding:"omitempty,dive,min=0"`
}

func (r *ShowDraftRequest) ToDomain() (domshow.Draft, error) {
	d := domshow.NewDraft(strings.TrimSpace(r.TheaterID), r.ScreenNumber).
		WithMovie(strings.TrimSpace(r.MovieID)).
		WithIntervalMinutes(r.IntervalTime).
		WithCleanupMinutes(r.CleanupTime).
		WithLanguage(strings.TrimSpace(r.Language)).
		WithExperience(strings.TrimSpace(r.Experience)).
		WithPricing(r.Pricing)

	if r.MovieDuration != nil {
		d = d.WithMovieDuration(*r.MovieDuration)
	}
	if strings.TrimSpace(r.ShowDate) != "" {
		date, err := wallclock.ParseDate(r.ShowDate)
		if err != nil {
			return domshow.Draft{}, err
		}
		d = d.WithShowDate(date)
	}
	if strings.TrimSpace(r.ShowTime) != "" {
		tod, err := wallclock.ParseTimeOfDay(r.ShowTime)
		if err != nil {
			return domshow.Draft{}, err
		}
		d = d.WithShowTime(tod)
	}
	return d, nil
}

func (r *ShowRequest) ToDomain() (domshow.Draft, error) {
	draft := ShowDraftRequest{
		TheaterID:    r.TheaterID,
		ScreenNumber: r.ScreenNumber,
		ShowDate:     r.ShowDate,
		ShowTime:     r.ShowTime,
		MovieID:      r.MovieID,
		IntervalTime: r.IntervalTime,
		CleanupTime:  r.CleanupTime,
		Language:     r.Language,
		Experience:   r.Experience,
		Pricing:      r.Pricing,
	}
	return draft.ToDomain()
}
