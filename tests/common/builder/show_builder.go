//go:build unit || e2e

package builder

import (
	"time"

	domshow "theater-console/internal/domain/show"
	reqdto "theater-console/internal/handler/dto/request"
	"theater-console/internal/pkg/wallclock"

	"github.com/google/uuid"
)

// IST is the zone the builders place shows in unless told otherwise.
var IST = time.FixedZone("IST", 5*3600+30*60)

type ShowBuilder struct {
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

// NewShowBuilder returns a 14:00-16:30 show (120 min movie + 15 interval + 15 cleanup)
// on screen 1 of theater "th-1" on 2026-05-01 IST.
func NewShowBuilder() *ShowBuilder {
	start := time.Date(2026, time.May, 1, 14, 0, 0, 0, IST)
	return &ShowBuilder{
		ID:              uuid.NewString(),
		MovieID:         "mv-1",
		MovieTitle:      "Show A",
		TheaterID:       "th-1",
		ScreenNumber:    1,
		ShowTime:        start,
		EndTime:         start.Add(150 * time.Minute),
		Language:        "English",
		Experience:      "2D",
		IntervalMinutes: 15,
		CleanupMinutes:  15,
		Status:          string(domshow.StatusOpen),
		Pricing:         map[string]float64{"REGULAR": 200, "PREMIUM": 350},
	}
}

func (b *ShowBuilder) With(mutate func(*ShowBuilder)) *ShowBuilder {
	mutate(b)
	return b
}

func (b *ShowBuilder) WithID(id string) *ShowBuilder {
	b.ID = id
	return b
}

func (b *ShowBuilder) WithTitle(title string) *ShowBuilder {
	b.MovieTitle = title
	return b
}

// WithClock places the show on the builder's date from hh:mm to hh:mm (IST).
func (b *ShowBuilder) WithClock(startHour, startMinute, endHour, endMinute int) *ShowBuilder {
	y, m, d := b.ShowTime.In(IST).Date()
	b.ShowTime = time.Date(y, m, d, startHour, startMinute, 0, 0, IST)
	b.EndTime = time.Date(y, m, d, endHour, endMinute, 0, 0, IST)
	return b
}

func (b *ShowBuilder) WithWindow(start, end time.Time) *ShowBuilder {
	b.ShowTime = start
	b.EndTime = end
	return b
}

func (b *ShowBuilder) WithStatus(status domshow.Status) *ShowBuilder {
	b.Status = string(status)
	return b
}

func (b *ShowBuilder) Record() domshow.ShowRecord {
	return domshow.ShowRecord{
		ID:              b.ID,
		MovieID:         b.MovieID,
		MovieTitle:      b.MovieTitle,
		TheaterID:       b.TheaterID,
		ScreenNumber:    b.ScreenNumber,
		ShowTime:        b.ShowTime,
		EndTime:         b.EndTime,
		Language:        b.Language,
		Experience:      b.Experience,
		IntervalMinutes: b.IntervalMinutes,
		CleanupMinutes:  b.CleanupMinutes,
		Status:          b.Status,
		Pricing:         b.Pricing,
	}
}

func (b *ShowBuilder) BuildDomain() (*domshow.Show, error) {
	return domshow.ReconstructShow(b.Record())
}

// MustBuildDomain panics on invalid builder state; use it only with valid fixtures.
func (b *ShowBuilder) MustBuildDomain() *domshow.Show {
	s, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	return s
}

// BuildRequestDTO renders the show as the console would submit it.
func (b *ShowBuilder) BuildRequestDTO() reqdto.ShowRequest {
	local := b.ShowTime.In(IST)
	return reqdto.ShowRequest{
		TheaterID:    b.TheaterID,
		ScreenNumber: b.ScreenNumber,
		ShowDate:     wallclock.DateOf(local).String(),
		ShowTime:     wallclock.TimeOfDayOf(local).String(),
		MovieID:      b.MovieID,
		IntervalTime: b.IntervalMinutes,
		CleanupTime:  b.CleanupMinutes,
		Language:     b.Language,
		Experience:   b.Experience,
		Pricing:      b.Pricing,
	}
}

func (b *ShowBuilder) BuildConflictCheckDTO() reqdto.ConflictCheckRequest {
	r := b.BuildRequestDTO()
	return reqdto.ConflictCheckRequest{
		ShowDraftRequest: reqdto.ShowDraftRequest{
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
		},
	}
}

// DraftBuilder assembles a schedule draft on the same screen and day as NewShowBuilder.
type DraftBuilder struct {
	draft domshow.Draft
}

func NewDraftBuilder() *DraftBuilder {
	d := domshow.NewDraft("th-1", 1).
		WithShowDate(wallclock.Date{Year: 2026, Month: time.May, Day: 1}).
		WithShowTime(wallclock.TimeOfDay{Hour: 16, Minute: 30}).
		WithMovie("mv-2").
		WithMovieDuration(120).
		WithIntervalMinutes(15).
		WithCleanupMinutes(15).
		WithLanguage("English").
		WithExperience("2D").
		WithPricing(map[string]float64{"REGULAR": 200})
	return &DraftBuilder{draft: d}
}

func (b *DraftBuilder) At(hour, minute int) *DraftBuilder {
	b.draft = b.draft.WithShowTime(wallclock.TimeOfDay{Hour: hour, Minute: minute})
	return b
}

// Lasting sets the movie duration and zeroes the interval and cleanup buffers.
func (b *DraftBuilder) Lasting(minutes int) *DraftBuilder {
	b.draft = b.draft.WithMovieDuration(minutes).WithIntervalMinutes(0).WithCleanupMinutes(0)
	return b
}

func (b *DraftBuilder) Buffers(interval, cleanup int) *DraftBuilder {
	b.draft = b.draft.WithIntervalMinutes(interval).WithCleanupMinutes(cleanup)
	return b
}

func (b *DraftBuilder) Map(f func(domshow.Draft) domshow.Draft) *DraftBuilder {
	b.draft = f(b.draft)
	return b
}

func (b *DraftBuilder) Build() domshow.Draft {
	return b.draft
}
