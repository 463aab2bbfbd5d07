// Package taskinput turns user-typed strings into validated schedule values.
//
// The schedule package never parses text; the shell and script runner go
// through this package first.
package taskinput

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/danieljhkim/astrosched/internal/clock"
	"github.com/danieljhkim/astrosched/internal/schedule"
)

var (
	// ErrInvalidTime indicates a time that is not H:mm or HH:mm.
	ErrInvalidTime = errors.New("invalid time format, use HH:mm or H:mm")

	// ErrInvalidPriority indicates an unknown priority name.
	ErrInvalidPriority = errors.New("invalid priority, use High, Medium, or Low")

	// ErrEmptyDescription indicates a blank description.
	ErrEmptyDescription = errors.New("description must not be empty")
)

// timeLayout accepts one- or two-digit hours and two-digit minutes.
const timeLayout = "15:04"

// ParseTime parses "7:00" or "07:00" into a TimeOfDay.
func ParseTime(s string) (clock.TimeOfDay, error) {
	s = strings.TrimSpace(s)
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTime, s)
	}
	return clock.FromTime(t), nil
}

// ParsePriority parses a priority name, ignoring case.
func ParsePriority(s string) (schedule.Priority, error) {
	p := schedule.Priority(strings.ToUpper(strings.TrimSpace(s)))
	if !p.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidPriority, s)
	}
	return p, nil
}

// ParseCompleted maps a yes/no style answer to a completed flag. Anything
// that is not an affirmative answer means pending.
func ParseCompleted(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes", "y", "true", "done", "completed":
		return true
	}
	return false
}

// Build parses the four user fields of a task and returns a task ready to be
// added to a schedule.Store.
func Build(description, start, end, priority string) (schedule.Task, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return schedule.Task{}, ErrEmptyDescription
	}

	startTime, err := ParseTime(start)
	if err != nil {
		return schedule.Task{}, fmt.Errorf("start: %w", err)
	}
	endTime, err := ParseTime(end)
	if err != nil {
		return schedule.Task{}, fmt.Errorf("end: %w", err)
	}
	p, err := ParsePriority(priority)
	if err != nil {
		return schedule.Task{}, err
	}

	return schedule.NewTask(description, startTime, endTime, p)
}

// Edit describes a partial change to a stored task. Empty fields keep the
// current value.
type Edit struct {
	Description string
	Start       string
	End         string
	Priority    string
}

// Apply merges e over current and returns the resulting fields.
func (e Edit) Apply(current schedule.Task) (description string, start, end clock.TimeOfDay, priority schedule.Priority, err error) {
	description, start, end, priority = current.Description, current.Start, current.End, current.Priority

	if d := strings.TrimSpace(e.Description); d != "" {
		description = d
	}
	if e.Start != "" {
		if start, err = ParseTime(e.Start); err != nil {
			return "", 0, 0, "", fmt.Errorf("start: %w", err)
		}
	}
	if e.End != "" {
		if end, err = ParseTime(e.End); err != nil {
			return "", 0, 0, "", fmt.Errorf("end: %w", err)
		}
	}
	if e.Priority != "" {
		if priority, err = ParsePriority(e.Priority); err != nil {
			return "", 0, 0, "", err
		}
	}
	return description, start, end, priority, nil
}
