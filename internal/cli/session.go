package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"
	"github.com/mattn/go-shellwords"

	"github.com/danieljhkim/astrosched/internal/clock"
	"github.com/danieljhkim/astrosched/internal/logging"
	"github.com/danieljhkim/astrosched/internal/schedule"
	"github.com/danieljhkim/astrosched/internal/taskinput"
)

// session is one in-memory schedule and the streams its commands use.
// Nothing outlives a session.
type session struct {
	id       string
	store    *schedule.Store
	clock    clock.Clock
	printer  *printer
	out      io.Writer
	jsonMode bool
	logger   *slog.Logger
	conflict *conflictReporter
}

// sessionOptions configures newSession.
type sessionOptions struct {
	Out    io.Writer
	ErrOut io.Writer
	JSON   bool
	Logger *slog.Logger
	Clock  clock.Clock
}

func newSession(opts sessionOptions) *session {
	id := uuid.New().String()
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	logger = logger.With("session", id)
	clk := opts.Clock
	if clk == nil {
		clk = &clock.RealClock{}
	}

	s := &session{
		id:       id,
		store:    schedule.NewStore(schedule.WithLogger(logger)),
		clock:    clk,
		printer:  newPrinter(opts.Out, opts.ErrOut),
		out:      opts.Out,
		jsonMode: opts.JSON,
		logger:   logger,
	}
	s.conflict = &conflictReporter{printer: s.printer}
	s.store.Subscribe(s.conflict)
	return s
}

// conflictReporter prints conflict messages as soon as the store detects
// them.
type conflictReporter struct {
	printer *printer
}

func (r *conflictReporter) ConflictDetected(message string) {
	r.printer.Error("Error: " + message)
}

// execLine splits a line with shell quoting rules and runs it as a session
// command.
func (s *session) execLine(line string) error {
	args, err := shellwords.Parse(line)
	if err != nil {
		return fmt.Errorf("%w: %v", errBadInput, err)
	}
	if len(args) == 0 {
		return nil
	}
	return s.exec(args)
}

// exec runs args against a fresh command tree so flag values never leak
// from one line into the next.
func (s *session) exec(args []string) error {
	cmd := newSessionRoot(s)
	cmd.SetArgs(args)
	return cmd.Execute()
}

// errBadInput marks a line that could not be tokenized.
var errBadInput = errors.New("invalid input")

// isRecoverable reports whether err is a user-facing scheduling or input
// error after which a session continues.
func isRecoverable(err error) bool {
	for _, target := range []error{
		schedule.ErrConflict,
		schedule.ErrNotFound,
		schedule.ErrInvalidInterval,
		schedule.ErrInvalidPriority,
		clock.ErrOutOfRange,
		taskinput.ErrInvalidTime,
		taskinput.ErrInvalidPriority,
		taskinput.ErrEmptyDescription,
		errBadID,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// report shows a failed command to the user. Conflicts were already
// printed by the listener when they were detected.
func (s *session) report(err error) {
	s.logger.Debug("command failed", "error", err)
	if s.jsonMode {
		_ = s.outputJSON(map[string]any{
			"success": false,
			"error":   err.Error(),
		})
		return
	}
	if errors.Is(err, schedule.ErrConflict) {
		return
	}
	s.printer.Error("Error: " + err.Error())
}

// outputJSON writes v as indented JSON to the session output.
func (s *session) outputJSON(v any) error {
	return writeJSON(s.out, v)
}
