package show

import (
	"fmt"
	"time"
)

// Interval is the occupied window [start, end) of a show on its screen.
type Interval struct {
	start time.Time
	end   time.Time
}

func NewInterval(start, end time.Time) (Interval, error) {
	if !end.After(start) {
		return Interval{}, ErrInvalidShowWindow
	}
	return Interval{start: start, end: end}, nil
}

func (i Interval) Start() time.Time {
	return i.start
}

func (i Interval) End() time.Time {
	return i.end
}

func (i Interval) Duration() time.Duration {
	return i.end.Sub(i.start)
}

// Overlaps reports whether i collides with other. It is the union of three tests:
//
//	A: i.start in [other.start, other.end)
//	B: i.end   in (other.start, other.end]
//	C: i contains other
//
// Touching boundaries (back-to-back shows) do not overlap.
func (i Interval) Overlaps(other Interval) bool {
	startsInside := !i.start.Before(other.start) && i.start.Before(other.end)
	endsInside := i.end.After(other.start) && !i.end.After(other.end)
	contains := !i.start.After(other.start) && !i.end.Before(other.end)
	return startsInside || endsInside || contains
}

func (i Interval) ToTstzrange() string {
	return fmt.Sprintf("[%s,%s)", i.start.Format(time.RFC3339), i.end.Format(time.RFC3339))
}
