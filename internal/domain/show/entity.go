package show

import (
	"errors"
	"maps"
	"strings"
	"time"
)

var (
	ErrInvalidShowWindow  = errors.New("show end time must be after its start time")
	ErrInvalidStatus      = errors.New("invalid show status")
	ErrEmptyShowID        = errors.New("show id is required")
	ErrIntervalOutOfRange = errors.New("interval minutes out of range")
	ErrCleanupOutOfRange  = errors.New("cleanup minutes out of range")
	ErrNegativeMinutes    = errors.New("minutes cannot be negative")
)

// Show is a persisted screening owned by the backend. The scheduler only reads it.
type Show struct {
	id              string
	movieID         string
	movieTitle      string
	theaterID       string
	screenNumber    int
	window          Interval
	language        string
	experience      string
	intervalMinutes int
	cleanupMinutes  int
	status          Status
	pricing         map[string]float64
}

type ShowRecord struct {
	ID              string
	MovieID         string
	MovieTitle      string
	TheaterID       string
	ScreenNumber    int
	ShowTime        time.Time
	EndTime         time.Time
	Language        string
	Experience      string
	IntervalMinutes int
	CleanupMinutes  int
	Status          string
	Pricing         map[string]float64
}

func ReconstructShow(r ShowRecord) (*Show, error) {
	id := strings.TrimSpace(r.ID)
	if id == "" {
		return nil, ErrEmptyShowID
	}
	window, err := NewInterval(r.ShowTime, r.EndTime)
	if err != nil {
		return nil, err
	}
	if r.IntervalMinutes < 0 || r.CleanupMinutes < 0 {
		return nil, ErrNegativeMinutes
	}
	status := StatusOpen
	if r.Status != "" {
		if status, err = ParseStatus(r.Status); err != nil {
			return nil, err
		}
	}
	return &Show{
		id:              id,
		movieID:         r.MovieID,
		movieTitle:      r.MovieTitle,
		theaterID:       r.TheaterID,
		screenNumber:    r.ScreenNumber,
		window:          window,
		language:        r.Language,
		experience:      r.Experience,
		intervalMinutes: r.IntervalMinutes,
		cleanupMinutes:  r.CleanupMinutes,
		status:          status,
		pricing:         maps.Clone(r.Pricing),
	}, nil
}

func (s *Show) ID() string                  { return s.id }
func (s *Show) MovieID() string             { return s.movieID }
func (s *Show) MovieTitle() string          { return s.movieTitle }
func (s *Show) TheaterID() string           { return s.theaterID }
func (s *Show) ScreenNumber() int           { return s.screenNumber }
func (s *Show) Window() Interval            { return s.window }
func (s *Show) ShowTime() time.Time         { return s.window.Start() }
func (s *Show) EndTime() time.Time          { return s.window.End() }
func (s *Show) Language() string            { return s.language }
func (s *Show) Experience() string          { return s.experience }
func (s *Show) IntervalMinutes() int        { return s.intervalMinutes }
func (s *Show) CleanupMinutes() int         { return s.cleanupMinutes }
func (s *Show) Status() Status              { return s.status }
func (s *Show) Pricing() map[string]float64 { return maps.Clone(s.pricing) }
