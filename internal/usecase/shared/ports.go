package shared

//go:generate mockgen -source=ports.go -destination=../../../tests/mock/shared/mock_ports.go -package=sharedmock

import (
	"context"
	"slices"
	"strings"
	"time"

	"theater-console/internal/domain/show"
	"theater-console/internal/pkg/wallclock"
)

// Snapshots decouple usecases from the backend wire format

type MovieSnapshot struct {
	ID              string
	Title           string
	DurationMinutes int
	Experiences     []string
	Languages       []string
}

func (m MovieSnapshot) SupportsExperience(experience string) bool {
	return containsFold(m.Experiences, experience)
}

func (m MovieSnapshot) SupportsLanguage(language string) bool {
	return containsFold(m.Languages, language)
}

type ScreenSnapshot struct {
	TheaterID    string
	ScreenNumber int
	Experiences  []string
}

func (s ScreenSnapshot) SupportsExperience(experience string) bool {
	return containsFold(s.Experiences, experience)
}

func containsFold(values []string, v string) bool {
	return slices.ContainsFunc(values, func(x string) bool { return strings.EqualFold(x, v) })
}

// ShowWrite is the payload persisted by the backend for create and update.
type ShowWrite struct {
	MovieID         string
	TheaterID       string
	ScreenNumber    int
	ShowTime        time.Time
	Language        string
	Experience      string
	IntervalMinutes int
	CleanupMinutes  int
	Pricing         map[string]float64
}

// ScreenDay identifies the shows of one screen on one local calendar day.
type ScreenDay struct {
	TheaterID    string
	ScreenNumber int
	Date         wallclock.Date
}

type EventType string

const (
	EventShowScheduled EventType = "show.scheduled"
	EventShowUpdated   EventType = "show.updated"
	EventShowDeleted   EventType = "show.deleted"
)

type ScheduleEvent struct {
	Type         EventType
	ShowID       string
	TheaterID    string
	ScreenNumber int
	MovieID      string
	ShowTime     time.Time
	EndTime      time.Time
}

// ShowSource lists the shows occupying a screen whose start falls in [from, to].
type ShowSource interface {
	ListByScreen(ctx context.Context, theaterID string, screenNumber int, from, to time.Time) ([]*show.Show, error)
}

type ShowWriter interface {
	FindByID(ctx context.Context, id string) (*show.Show, error)
	Create(ctx context.Context, w ShowWrite) (*show.Show, error)
	Update(ctx context.Context, id string, w ShowWrite) (*show.Show, error)
	Delete(ctx context.Context, id string) error
}

type MovieCatalog interface {
	FindByID(ctx context.Context, id string) (*MovieSnapshot, error)
}

type ScreenDirectory interface {
	Find(ctx context.Context, theaterID string, screenNumber int) (*ScreenSnapshot, error)
}

// SnapshotStore remembers the last successful existing-shows fetch per screen day.
type SnapshotStore interface {
	Save(ctx context.Context, key ScreenDay, shows []*show.Show) error
	Load(ctx context.Context, key ScreenDay) (shows []*show.Show, savedAt time.Time, found bool, err error)
}

type EventPublisher interface {
	Publish(ctx context.Context, ev ScheduleEvent) error
}

// ShowMirror keeps a local replica in step with backend writes.
type ShowMirror interface {
	Upsert(ctx context.Context, s *show.Show) error
	Delete(ctx context.Context, id string) error
}
