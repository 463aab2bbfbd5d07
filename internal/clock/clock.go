// Package clock provides time-of-day values for the daily schedule and an
// injectable source of the current time.
//
// A TimeOfDay carries no date and no zone: it is a minute offset from
// midnight on a 24-hour clock. The Clock interface exists so commands that
// look at "now" (such as finding the next pending task) can be tested with a
// fixed time.
package clock

import "time"

// Clock reports the current wall-clock time.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// RealClock implements Clock using the system time.
type RealClock struct{}

// Now returns the current system time.
func (c *RealClock) Now() time.Time {
	return time.Now()
}

// FakeClock is a Clock frozen at a settable instant.
type FakeClock struct {
	current time.Time
}

// NewFakeClock returns a FakeClock fixed at t.
func NewFakeClock(t time.Time) *FakeClock {
	return &FakeClock{current: t}
}

// Now returns the fixed time.
func (c *FakeClock) Now() time.Time {
	return c.current
}

// Set moves the clock to t.
func (c *FakeClock) Set(t time.Time) {
	c.current = t
}

// Advance moves the clock forward by d. Negative durations move it back.
func (c *FakeClock) Advance(d time.Duration) {
	c.current = c.current.Add(d)
}

// CurrentTimeOfDay returns the time of day c currently reports, truncated to
// the minute.
func CurrentTimeOfDay(c Clock) TimeOfDay {
	return FromTime(c.Now())
}
