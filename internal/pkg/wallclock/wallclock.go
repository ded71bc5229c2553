// Package wallclock handles the zone-less date and time-of-day values the console
// and the backend exchange. Every wall-clock value becomes an instant exactly once,
// through Combine or ParseInstant, using a single configured location.
package wallclock

import (
	"fmt"
	"strings"
	"time"
)

const (
	DateLayout             = "2006-01-02"
	TimeOfDayLayout        = "15:04"
	timeOfDaySecondsLayout = "15:04:05"
	LocalLayout            = "2006-01-02T15:04:05"
	showTimeLayout         = "2006-01-02T15:04:00"

	MinutesPerDay = 24 * 60
)

type Date struct {
	Year  int
	Month time.Month
	Day   int
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return DateOf(t), nil
}

// DateOf returns the calendar date of t in t's own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

func (d Date) IsZero() bool {
	return d.Year == 0 && d.Month == 0 && d.Day == 0
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// StartOfDay is the backend's inclusive lower bound for a day range query.
func (d Date) StartOfDay() string {
	return d.String() + "T00:00:00"
}

// EndOfDay is the backend's inclusive upper bound for a day range query.
func (d Date) EndOfDay() string {
	return d.String() + "T23:59:59"
}

// Bounds returns [00:00, next day 00:00) of d in loc.
func (d Date) Bounds(loc *time.Location) (time.Time, time.Time) {
	start := time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
	return start, time.Date(d.Year, d.Month, d.Day+1, 0, 0, 0, 0, loc)
}

type TimeOfDay struct {
	Hour   int
	Minute int
}

func ParseTimeOfDay(s string) (TimeOfDay, error) {
	s = strings.TrimSpace(s)
	layout := TimeOfDayLayout
	// the console time picker sometimes sends seconds
	if len(s) == len(timeOfDaySecondsLayout) {
		layout = timeOfDaySecondsLayout
	}
	t, err := time.Parse(layout, s)
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("invalid time of day %q: %w", s, err)
	}
	return TimeOfDay{Hour: t.Hour(), Minute: t.Minute()}, nil
}

func TimeOfDayOf(t time.Time) TimeOfDay {
	return TimeOfDay{Hour: t.Hour(), Minute: t.Minute()}
}

func (t TimeOfDay) MinutesSinceMidnight() int {
	return t.Hour*60 + t.Minute
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// Combine builds the instant for date d at time of day t on the wall clock of loc.
func Combine(d Date, t TimeOfDay, loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, t.Hour, t.Minute, 0, 0, loc)
}

// FormatShowTime renders an instant as the zone-less "YYYY-MM-DDTHH:mm:00" the backend expects.
func FormatShowTime(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(showTimeLayout)
}

// FormatClock renders an instant as "HH:MM" on the wall clock of loc.
func FormatClock(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(TimeOfDayLayout)
}

// ParseInstant accepts RFC3339 (with offset or Z) or a zone-less local date-time,
// which is interpreted in loc.
func ParseInstant(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t.In(loc), nil
	}
	for _, layout := range []string{LocalLayout, "2006-01-02T15:04", "2006-01-02 15:04:05"} {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date-time %q", s)
}

// LoadLocation resolves an IANA zone name, treating "" as UTC.
func LoadLocation(name string) (*time.Location, error) {
	if name == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("unknown time zone %q: %w", name, err)
	}
	return loc, nil
}
