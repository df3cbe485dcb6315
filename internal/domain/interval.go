package domain

import (
	"time"
)

// Interval represents a span between two clock times within one nominal day.
type Interval struct {
	Start ClockTime
	End   ClockTime
}

// NewInterval creates a new Interval from start to end.
func NewInterval(start, end ClockTime) Interval {
	return Interval{
		Start: start,
		End:   end,
	}
}

// Duration returns the signed duration of the interval.
// An interval whose end is before its start yields a negative duration.
func (i Interval) Duration() time.Duration {
	return i.End.Sub(i.Start)
}

// Hours returns the signed duration of the interval in fractional hours.
func (i Interval) Hours() float64 {
	return i.Start.HoursUntil(i.End)
}

// String returns the interval formatted as "HH:MM-HH:MM".
func (i Interval) String() string {
	return i.Start.String() + "-" + i.End.String()
}
