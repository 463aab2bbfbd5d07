package schedule

import (
	"fmt"

	"github.com/danieljhkim/astrosched/internal/clock"
)

// Priority ranks a task. The zero value is not a valid priority.
type Priority string

const (
	PriorityHigh   Priority = "HIGH"
	PriorityMedium Priority = "MEDIUM"
	PriorityLow    Priority = "LOW"
)

// Priorities lists every valid priority, highest first.
var Priorities = []Priority{PriorityHigh, PriorityMedium, PriorityLow}

// Valid reports whether p is one of High, Medium or Low.
func (p Priority) Valid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

func (p Priority) String() string {
	return string(p)
}

// Task is one entry of the daily schedule.
//
// Task is a value: the Store hands out copies, so changing a returned Task
// never affects the schedule. ID is zero until the Store accepts the task.
type Task struct {
	ID          int             `json:"id"`
	Description string          `json:"description"`
	Start       clock.TimeOfDay `json:"start"`
	End         clock.TimeOfDay `json:"end"`
	Priority    Priority        `json:"priority"`
	Completed   bool            `json:"completed"`
}

// NewTask returns a pending, not yet stored task after checking that the
// interval is well formed and the priority is known.
func NewTask(description string, start, end clock.TimeOfDay, priority Priority) (Task, error) {
	t := Task{
		Description: description,
		Start:       start,
		End:         end,
		Priority:    priority,
	}
	if err := t.validate(); err != nil {
		return Task{}, err
	}
	return t, nil
}

func (t Task) validate() error {
	if !t.Start.Valid() || !t.End.Valid() {
		return fmt.Errorf("%w: %d-%d", clock.ErrOutOfRange, int(t.Start), int(t.End))
	}
	if !t.Start.Before(t.End) {
		return fmt.Errorf("%w: %s-%s", ErrInvalidInterval, t.Start, t.End)
	}
	if !t.Priority.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidPriority, string(t.Priority))
	}
	return nil
}

// Status returns COMPLETED or PENDING.
func (t Task) Status() string {
	if t.Completed {
		return "COMPLETED"
	}
	return "PENDING"
}

// String renders the task as
// "ID: <id> | <start> - <end> | <description> [<priority>] - <status>".
func (t Task) String() string {
	return fmt.Sprintf("ID: %d | %s - %s | %s [%s] - %s",
		t.ID, t.Start, t.End, t.Description, t.Priority, t.Status())
}
