package schedule

import (
	"errors"
	"fmt"
)

var (
	// ErrConflict indicates a mutation would make two tasks overlap.
	ErrConflict = errors.New("conflict detected")

	// ErrNotFound indicates no task has the requested id.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInterval indicates a task whose start is not before its end.
	ErrInvalidInterval = errors.New("end time must be after start time")

	// ErrInvalidPriority indicates a priority outside High, Medium, Low.
	ErrInvalidPriority = errors.New("invalid priority")
)

// ConflictError reports the stored task that a candidate collided with.
// It matches ErrConflict under errors.Is.
type ConflictError struct {
	Existing  Task
	Candidate Task
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%v: %s-%s overlaps task %d %q (%s-%s)",
		ErrConflict,
		e.Candidate.Start, e.Candidate.End,
		e.Existing.ID, e.Existing.Description,
		e.Existing.Start, e.Existing.End)
}

func (e *ConflictError) Unwrap() error {
	return ErrConflict
}

// NotFoundError reports a task id that is not in the store.
// It matches ErrNotFound under errors.Is.
type NotFoundError struct {
	ID int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("task with ID %d %v", e.ID, ErrNotFound)
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}
