package clock

import (
	"errors"
	"fmt"
	"time"
)

const (
	// MinutesPerDay is 24 hours * 60 minutes.
	MinutesPerDay = 24 * 60

	layout = "15:04"
)

// ErrOutOfRange is returned when hour or minute fall outside a 24-hour clock.
var ErrOutOfRange = errors.New("time of day out of range")

// TimeOfDay is a wall-clock time with minute resolution, stored as minutes
// from midnight. Valid values are 0 (00:00) through MinutesPerDay-1 (23:59).
type TimeOfDay int

// At builds a TimeOfDay from an hour (0-23) and minute (0-59).
func At(hour, minute int) (TimeOfDay, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("%w: %02d:%02d", ErrOutOfRange, hour, minute)
	}
	return TimeOfDay(hour*60 + minute), nil
}

// MustAt is At for constants and tests. It panics on invalid input.
func MustAt(hour, minute int) TimeOfDay {
	t, err := At(hour, minute)
	if err != nil {
		panic(err)
	}
	return t
}

// FromTime drops the date, seconds and zone of t.
func FromTime(t time.Time) TimeOfDay {
	return TimeOfDay(t.Hour()*60 + t.Minute())
}

// Hour returns the hour component, 0-23.
func (t TimeOfDay) Hour() int { return int(t) / 60 }

// Minute returns the minute component, 0-59.
func (t TimeOfDay) Minute() int { return int(t) % 60 }

// Before reports whether t is strictly earlier than u.
func (t TimeOfDay) Before(u TimeOfDay) bool { return t < u }

// After reports whether t is strictly later than u.
func (t TimeOfDay) After(u TimeOfDay) bool { return t > u }

// Valid reports whether t lies within a single 24-hour day.
func (t TimeOfDay) Valid() bool { return t >= 0 && t < MinutesPerDay }

// String formats t as HH:mm.
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

// MarshalText encodes t as HH:mm, which also makes JSON output readable.
func (t TimeOfDay) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("%w: %d minutes", ErrOutOfRange, int(t))
	}
	return []byte(t.String()), nil
}

// UnmarshalText decodes the HH:mm form produced by MarshalText.
func (t *TimeOfDay) UnmarshalText(b []byte) error {
	parsed, err := time.Parse(layout, string(b))
	if err != nil {
		return fmt.Errorf("%w: %q", ErrOutOfRange, string(b))
	}
	*t = FromTime(parsed)
	return nil
}
