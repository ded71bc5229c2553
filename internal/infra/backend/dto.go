package backend

import (
	"time"

	"theater-console/internal/domain/show"
	"theater-console/internal/pkg/wallclock"
	"theater-console/internal/usecase/shared"
)

type movieRef struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

type showDTO struct {
	ID           string             `json:"id"`
	Movie        movieRef           `json:"movie"`
	MovieID      string             `json:"movieId,omitempty"`
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

type showPayload struct {
	MovieID      string             `json:"movieId"`
	TheaterID    string             `json:"theaterId"`
	ScreenNumber int                `json:"screenNumber"`
	ShowTime     string             `json:"showTime"`
	Language     string             `json:"language"`
	Experience   string             `json:"experience"`
	CleanupTime  int                `json:"cleanupTime"`
	IntervalTime int                `json:"intervalTime"`
	Pricing      map[string]float64 `json:"pricing"`
}

type movieDTO struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Duration    int      `json:"duration"`
	Experiences []string `json:"experience"`
	Languages   []string `json:"languages"`
}

type screenDTO struct {
	TheaterID    string   `json:"theaterId"`
	ScreenNumber int      `json:"screenNumber"`
	Experiences  []string `json:"experiences"`
}

// toDomain reads showTime/endTime as instants; zone-less values are taken in loc.
func (d showDTO) toDomain(loc *time.Location) (*show.Show, error) {
	start, err := wallclock.ParseInstant(d.ShowTime, loc)
	if err != nil {
		return nil, err
	}
	end, err := wallclock.ParseInstant(d.EndTime, loc)
	if err != nil {
		return nil, err
	}
	movieID := d.Movie.ID
	if movieID == "" {
		movieID = d.MovieID
	}
	return show.ReconstructShow(show.ShowRecord{
		ID:              d.ID,
		MovieID:         movieID,
		MovieTitle:      d.Movie.Title,
		TheaterID:       d.TheaterID,
		ScreenNumber:    d.ScreenNumber,
		ShowTime:        start,
		EndTime:         end,
		Language:        d.Language,
		Experience:      d.Experience,
		IntervalMinutes: d.IntervalTime,
		CleanupMinutes:  d.CleanupTime,
		Status:          d.Status,
		Pricing:         d.Pricing,
	})
}

func toPayload(w shared.ShowWrite, loc *time.Location) showPayload {
	return showPayload{
		MovieID:      w.MovieID,
		TheaterID:    w.TheaterID,
		ScreenNumber: w.ScreenNumber,
		ShowTime:     wallclock.FormatShowTime(w.ShowTime, loc),
		Language:     w.Language,
		Experience:   w.Experience,
		CleanupTime:  w.CleanupMinutes,
		IntervalTime: w.IntervalMinutes,
		Pricing:      w.Pricing,
	}
}

func (d movieDTO) toSnapshot() *shared.MovieSnapshot {
	return &shared.MovieSnapshot{
		ID:              d.ID,
		Title:           d.Title,
		DurationMinutes: d.Duration,
		Experiences:     d.Experiences,
		Languages:       d.Languages,
	}
}

func (d screenDTO) toSnapshot() *shared.ScreenSnapshot {
	return &shared.ScreenSnapshot{
		TheaterID:    d.TheaterID,
		ScreenNumber: d.ScreenNumber,
		Experiences:  d.Experiences,
	}
}
