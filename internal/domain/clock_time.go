package domain

import (
	"fmt"
	"strings"
	"time"
)

// ClockLayout is the wall-clock format accepted for travel day timestamps.
const ClockLayout = "15:04"

// ClockTime represents a wall-clock time of day without date or timezone.
// All arithmetic happens on the shared reference date produced by parsing
// ClockLayout, so subtracting two values is plain duration math.
type ClockTime struct {
	Hour   int
	Minute int
}

// NewClockTime creates a ClockTime from hour and minute values.
func NewClockTime(hour, minute int) ClockTime {
	return ClockTime{Hour: hour, Minute: minute}
}

// ParseClockTime parses an "HH:MM" string into a ClockTime.
func ParseClockTime(s string) (ClockTime, error) {
	t, err := time.Parse(ClockLayout, strings.TrimSpace(s))
	if err != nil {
		return ClockTime{}, fmt.Errorf("invalid clock time %q: expected HH:MM", s)
	}
	return ClockTime{Hour: t.Hour(), Minute: t.Minute()}, nil
}

// MustParseClockTime is like ParseClockTime but panics on malformed input.
func MustParseClockTime(s string) ClockTime {
	c, err := ParseClockTime(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Time returns the clock time placed on the reference date.
func (c ClockTime) Time() time.Time {
	return time.Date(0, time.January, 1, c.Hour, c.Minute, 0, 0, time.UTC)
}

// Sub returns the signed duration from other to c.
func (c ClockTime) Sub(other ClockTime) time.Duration {
	return c.Time().Sub(other.Time())
}

// HoursUntil returns the fractional hours from c to end. The result is
// negative when end is earlier in the day than c.
func (c ClockTime) HoursUntil(end ClockTime) float64 {
	return end.Sub(c).Hours()
}

// IsValid reports whether the hour and minute are within a single day.
func (c ClockTime) IsValid() bool {
	return c.Hour >= 0 && c.Hour <= 23 && c.Minute >= 0 && c.Minute <= 59
}

// String returns the clock time formatted as HH:MM.
func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// MarshalText implements encoding.TextMarshaler.
func (c ClockTime) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *ClockTime) UnmarshalText(text []byte) error {
	parsed, err := ParseClockTime(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
