package show

import (
	"maps"
	"time"

	"theater-console/internal/pkg/wallclock"
)

// Draft is the candidate show held while a schedule form is being filled in.
// It is a value: every With* method returns an updated copy and leaves the
// receiver untouched.
type Draft struct {
	movieID         string
	theaterID       string
	screenNumber    int
	showDate        wallclock.Date
	hasDate         bool
	showTime        wallclock.TimeOfDay
	hasTime         bool
	movieDuration   int
	hasDuration     bool
	intervalMinutes int
	cleanupMinutes  int
	language        string
	experience      string
	pricing         map[string]float64
}

func NewDraft(theaterID string, screenNumber int) Draft {
	return Draft{theaterID: theaterID, screenNumber: screenNumber}
}

func (d Draft) WithScreen(theaterID string, screenNumber int) Draft {
	d.theaterID = theaterID
	d.screenNumber = screenNumber
	return d
}

func (d Draft) WithShowDate(date wallclock.Date) Draft {
	d.showDate = date
	d.hasDate = true
	return d
}

func (d Draft) WithShowTime(t wallclock.TimeOfDay) Draft {
	d.showTime = t
	d.hasTime = true
	return d
}

// WithMovie switches the movie; its duration is unknown until WithMovieDuration.
func (d Draft) WithMovie(movieID string) Draft {
	if movieID != d.movieID {
		d.movieDuration = 0
		d.hasDuration = false
	}
	d.movieID = movieID
	return d
}

// WithMovieDuration records the catalog runtime. A negative value leaves it unresolved.
func (d Draft) WithMovieDuration(minutes int) Draft {
	if minutes < 0 {
		d.movieDuration = 0
		d.hasDuration = false
		return d
	}
	d.movieDuration = minutes
	d.hasDuration = true
	return d
}

func (d Draft) WithIntervalMinutes(minutes int) Draft {
	d.intervalMinutes = minutes
	return d
}

func (d Draft) WithCleanupMinutes(minutes int) Draft {
	d.cleanupMinutes = minutes
	return d
}

func (d Draft) WithLanguage(language string) Draft {
	d.language = language
	return d
}

func (d Draft) WithExperience(experience string) Draft {
	d.experience = experience
	return d
}

func (d Draft) WithPricing(pricing map[string]float64) Draft {
	d.pricing = maps.Clone(pricing)
	return d
}

func (d Draft) MovieID() string                       { return d.movieID }
func (d Draft) TheaterID() string                     { return d.theaterID }
func (d Draft) ScreenNumber() int                     { return d.screenNumber }
func (d Draft) ShowDate() (wallclock.Date, bool)      { return d.showDate, d.hasDate }
func (d Draft) ShowTime() (wallclock.TimeOfDay, bool) { return d.showTime, d.hasTime }
func (d Draft) MovieDuration() (int, bool)            { return d.movieDuration, d.hasDuration }
func (d Draft) IntervalMinutes() int                  { return d.intervalMinutes }
func (d Draft) CleanupMinutes() int                   { return d.cleanupMinutes }
func (d Draft) Language() string                      { return d.language }
func (d Draft) Experience() string                    { return d.experience }
func (d Draft) Pricing() map[string]float64           { return maps.Clone(d.pricing) }

func (d Draft) TotalDurationMinutes() int {
	return d.movieDuration + d.intervalMinutes + d.cleanupMinutes
}

// Start is the draft's start instant on the wall clock of loc.
func (d Draft) Start(loc *time.Location) (time.Time, bool) {
	if !d.hasDate || !d.hasTime {
		return time.Time{}, false
	}
	return wallclock.Combine(d.showDate, d.showTime, loc), true
}

// Window is the occupied interval [start, start+movie+interval+cleanup).
// It reports false while date, time or movie duration is missing.
func (d Draft) Window(loc *time.Location) (Interval, bool) {
	start, ok := d.Start(loc)
	if !ok || !d.hasDuration {
		return Interval{}, false
	}
	end := start.Add(time.Duration(d.TotalDurationMinutes()) * time.Minute)
	return Interval{start: start, end: end}, true
}

func (d Draft) ComputedEndTime(loc *time.Location) (time.Time, bool) {
	w, ok := d.Window(loc)
	if !ok {
		return time.Time{}, false
	}
	return w.End(), true
}
