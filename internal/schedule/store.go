package schedule

import (
	"cmp"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"sync"

	"github.com/danieljhkim/astrosched/internal/clock"
)

// Store owns the tasks of one day and keeps them free of overlaps.
//
// All methods are safe for concurrent use. Add and Edit hold the write lock
// across the conflict scan and the mutation, so two writers cannot both pass
// the scan and then insert overlapping tasks.
type Store struct {
	mu    sync.RWMutex
	tasks []Task // insertion order

	ids      *IDGenerator
	notifier *Notifier
	logger   *slog.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithIDGenerator makes the store draw ids from g instead of a private one.
func WithIDGenerator(g *IDGenerator) Option {
	return func(s *Store) {
		s.ids = g
	}
}

// WithNotifier makes the store publish conflicts through n.
func WithNotifier(n *Notifier) Option {
	return func(s *Store) {
		s.notifier = n
	}
}

// WithLogger sets the logger for store events. By default nothing is logged.
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) {
		s.logger = l
	}
}

// NewStore creates an empty Store.
func NewStore(opts ...Option) *Store {
	s := &Store{}
	for _, opt := range opts {
		opt(s)
	}
	if s.ids == nil {
		s.ids = NewIDGenerator()
	}
	if s.notifier == nil {
		s.notifier = NewNotifier()
	}
	if s.logger == nil {
		s.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return s
}

// Subscribe registers l for conflict messages.
func (s *Store) Subscribe(l Listener) {
	s.notifier.Register(l)
}

// Unsubscribe removes l.
func (s *Store) Unsubscribe(l Listener) {
	s.notifier.Remove(l)
}

// Add inserts task if it overlaps no stored task and returns it with its
// assigned id. On overlap, listeners are notified and a *ConflictError is
// returned; the store is left unchanged and no id is consumed.
func (s *Store) Add(task Task) (Task, error) {
	if err := task.validate(); err != nil {
		return Task{}, err
	}

	s.mu.Lock()
	if existing, ok := findConflict(s.tasks, task, noExclusion); ok {
		s.mu.Unlock()
		return Task{}, s.reportConflict(existing, task)
	}
	task.ID = s.ids.Next()
	s.tasks = append(s.tasks, task)
	s.mu.Unlock()

	s.logger.Info("task added",
		"id", task.ID,
		"description", task.Description,
		"start", task.Start.String(),
		"end", task.End.String())
	return task, nil
}

// Remove deletes the task with the given id.
func (s *Store) Remove(id int) error {
	s.mu.Lock()
	i := s.indexLocked(id)
	if i < 0 {
		s.mu.Unlock()
		return &NotFoundError{ID: id}
	}
	s.tasks = slices.Delete(s.tasks, i, i+1)
	s.mu.Unlock()

	s.logger.Info("task removed", "id", id)
	return nil
}

// FindByID returns a copy of the task with the given id.
func (s *Store) FindByID(id int) (Task, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexLocked(id)
	if i < 0 {
		return Task{}, false
	}
	return s.tasks[i], true
}

// Edit replaces the description, interval and priority of a stored task.
// The id and completed flag are kept. The edited task is checked against
// every other task; on overlap, listeners are notified, a *ConflictError is
// returned and the stored task is not modified.
func (s *Store) Edit(id int, description string, start, end clock.TimeOfDay, priority Priority) error {
	s.mu.Lock()
	i := s.indexLocked(id)
	if i < 0 {
		s.mu.Unlock()
		return &NotFoundError{ID: id}
	}

	candidate := s.tasks[i]
	candidate.Description = description
	candidate.Start = start
	candidate.End = end
	candidate.Priority = priority

	if err := candidate.validate(); err != nil {
		s.mu.Unlock()
		return err
	}
	if existing, ok := findConflict(s.tasks, candidate, id); ok {
		s.mu.Unlock()
		return s.reportConflict(existing, candidate)
	}
	s.tasks[i] = candidate
	s.mu.Unlock()

	s.logger.Info("task edited",
		"id", id,
		"start", start.String(),
		"end", end.String(),
		"priority", priority.String())
	return nil
}

// SetCompleted sets the completed flag of a stored task. Status changes
// never affect overlaps, so no conflict check is made.
func (s *Store) SetCompleted(id int, completed bool) error {
	s.mu.Lock()
	i := s.indexLocked(id)
	if i < 0 {
		s.mu.Unlock()
		return &NotFoundError{ID: id}
	}
	s.tasks[i].Completed = completed
	status := s.tasks[i].Status()
	s.mu.Unlock()

	s.logger.Info("task status changed", "id", id, "status", status)
	return nil
}

// ListAll returns a copy of every task ordered by start time.
func (s *Store) ListAll() []Task {
	return s.list(func(Task) bool { return true })
}

// ListByPriority returns a copy of the tasks with priority p, ordered by
// start time.
func (s *Store) ListByPriority(p Priority) []Task {
	return s.list(func(t Task) bool { return t.Priority == p })
}

// Next returns the earliest pending task starting at or after at.
func (s *Store) Next(at clock.TimeOfDay) (Task, bool) {
	for _, t := range s.ListAll() {
		if !t.Completed && !t.Start.Before(at) {
			return t, true
		}
	}
	return Task{}, false
}

// Len returns the number of stored tasks.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.tasks)
}

func (s *Store) list(keep func(Task) bool) []Task {
	s.mu.RLock()
	out := make([]Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		if keep(t) {
			out = append(out, t)
		}
	}
	s.mu.RUnlock()

	slices.SortStableFunc(out, func(a, b Task) int {
		return cmp.Compare(a.Start, b.Start)
	})
	return out
}

// indexLocked returns the slice index of id, or -1. Callers hold s.mu.
func (s *Store) indexLocked(id int) int {
	return slices.IndexFunc(s.tasks, func(t Task) bool { return t.ID == id })
}

// reportConflict notifies listeners and builds the error for a rejected
// candidate. It must be called without s.mu held so listeners may query the
// store.
func (s *Store) reportConflict(existing, candidate Task) error {
	s.logger.Warn("conflict detected",
		"existing_id", existing.ID,
		"start", candidate.Start.String(),
		"end", candidate.End.String())
	s.notifier.Notify(fmt.Sprintf("Task conflicts with existing task %q.", existing.String()))
	return &ConflictError{Existing: existing, Candidate: candidate}
}
