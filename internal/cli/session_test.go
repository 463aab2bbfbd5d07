package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/danieljhkim/astrosched/internal/clock"
	"github.com/danieljhkim/astrosched/internal/schedule"
)

type testSession struct {
	*session
	out    *bytes.Buffer
	errOut *bytes.Buffer
	clock  *clock.FakeClock
}

func newTestSession(t *testing.T, jsonMode bool) *testSession {
	t.Helper()
	disableColor(t)

	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	clk := clock.NewFakeClock(time.Date(2024, 3, 1, 8, 15, 0, 0, time.UTC))
	s := newSession(sessionOptions{
		Out:    out,
		ErrOut: errOut,
		JSON:   jsonMode,
		Clock:  clk,
	})
	return &testSession{session: s, out: out, errOut: errOut, clock: clk}
}

func (ts *testSession) mustExec(t *testing.T, line string) {
	t.Helper()
	if err := ts.execLine(line); err != nil {
		t.Fatalf("execLine(%q) error = %v", line, err)
	}
}

func TestSession_Scenario(t *testing.T) {
	ts := newTestSession(t, false)

	ts.mustExec(t, `add A 07:00 08:00 high`)

	err := ts.execLine(`add B 07:30 08:30 low`)
	if !errors.Is(err, schedule.ErrConflict) {
		t.Fatalf("add B error = %v, want ErrConflict", err)
	}
	if !strings.Contains(ts.errOut.String(), `Error: Task conflicts with existing task "ID: 1 | 07:00 - 08:00 | A [HIGH] - PENDING".`) {
		t.Errorf("conflict not reported by listener: %q", ts.errOut.String())
	}

	ts.mustExec(t, `add C 8:00 9:00 Medium`)
	if !strings.Contains(ts.out.String(), "(ID 2)") {
		t.Errorf("C should get id 2: %q", ts.out.String())
	}

	ts.out.Reset()
	ts.mustExec(t, "list")

	out := ts.out.String()
	a := strings.Index(out, "ID: 1 | 07:00 - 08:00 | A [HIGH] - PENDING")
	c := strings.Index(out, "ID: 2 | 08:00 - 09:00 | C [MEDIUM] - PENDING")
	if a < 0 || c < 0 || a > c {
		t.Errorf("list output not A then C:\n%s", out)
	}
	if strings.Contains(out, "| B [") {
		t.Errorf("rejected task B listed:\n%s", out)
	}
}

func TestSession_QuotedDescription(t *testing.T) {
	ts := newTestSession(t, false)
	ts.mustExec(t, `add "Morning exercise" 7:00 8:00 high`)

	task, ok := ts.store.FindByID(1)
	if !ok || task.Description != "Morning exercise" {
		t.Errorf("FindByID(1) = %+v, %v", task, ok)
	}
}

func TestSession_EditKeepsUnsetFields(t *testing.T) {
	ts := newTestSession(t, false)
	ts.mustExec(t, `add Lab 10:00 11:00 medium`)

	ts.mustExec(t, `edit 1 --desc "Lab work"`)
	// A fresh command tree per line: --desc from the previous line must not
	// carry over.
	ts.mustExec(t, `edit 1 --start 10:30 --end 11:30`)

	got, _ := ts.store.FindByID(1)
	want := schedule.Task{
		ID:          1,
		Description: "Lab work",
		Start:       clock.MustAt(10, 30),
		End:         clock.MustAt(11, 30),
		Priority:    schedule.PriorityMedium,
	}
	if got != want {
		t.Errorf("after edits = %+v, want %+v", got, want)
	}
}

func TestSession_EditConflict(t *testing.T) {
	ts := newTestSession(t, false)
	ts.mustExec(t, `add a 07:00 08:00 high`)
	ts.mustExec(t, `add b 09:00 10:00 low`)

	err := ts.execLine(`edit 1 --start 09:30 --end 10:30`)
	if !errors.Is(err, schedule.ErrConflict) {
		t.Fatalf("edit error = %v, want ErrConflict", err)
	}

	got, _ := ts.store.FindByID(1)
	if got.Start != clock.MustAt(7, 0) || got.End != clock.MustAt(8, 0) {
		t.Errorf("task moved despite conflict: %+v", got)
	}
}

func TestSession_EditNotFound(t *testing.T) {
	ts := newTestSession(t, false)
	if err := ts.execLine(`edit 9 --desc x`); !errors.Is(err, schedule.ErrNotFound) {
		t.Errorf("edit error = %v, want ErrNotFound", err)
	}
}

func TestSession_StatusCommands(t *testing.T) {
	ts := newTestSession(t, false)
	ts.mustExec(t, `add a 07:00 08:00 high`)
	ts.mustExec(t, `add b 08:00 09:00 low`)

	ts.mustExec(t, `done 1`)
	if task, _ := ts.store.FindByID(1); !task.Completed {
		t.Error("done should complete task 1")
	}
	if task, _ := ts.store.FindByID(2); task.Completed {
		t.Error("task 2 should be untouched")
	}

	ts.mustExec(t, `pending 1`)
	if task, _ := ts.store.FindByID(1); task.Completed {
		t.Error("pending should reopen task 1")
	}

	ts.mustExec(t, `mark 2 yes`)
	if task, _ := ts.store.FindByID(2); !task.Completed {
		t.Error("mark yes should complete task 2")
	}
	ts.mustExec(t, `mark 2 no`)
	if task, _ := ts.store.FindByID(2); task.Completed {
		t.Error("mark no should reopen task 2")
	}

	if err := ts.execLine(`done 42`); !errors.Is(err, schedule.ErrNotFound) {
		t.Errorf("done 42 error = %v, want ErrNotFound", err)
	}
}

func TestSession_Remove(t *testing.T) {
	ts := newTestSession(t, false)
	ts.mustExec(t, `add a 07:00 08:00 high`)

	ts.mustExec(t, `rm 1`)
	if ts.store.Len() != 0 {
		t.Errorf("Len() = %d, want 0", ts.store.Len())
	}

	if err := ts.execLine(`rm 1`); !errors.Is(err, schedule.ErrNotFound) {
		t.Errorf("second rm error = %v, want ErrNotFound", err)
	}
	if err := ts.execLine(`rm one`); !errors.Is(err, errBadID) {
		t.Errorf("rm one error = %v, want errBadID", err)
	}
}

func TestSession_Priority(t *testing.T) {
	ts := newTestSession(t, false)
	ts.mustExec(t, `add late 15:00 16:00 high`)
	ts.mustExec(t, `add mid 10:00 11:00 low`)
	ts.mustExec(t, `add early 06:00 07:00 HIGH`)

	ts.out.Reset()
	ts.mustExec(t, `priority high`)
	out := ts.out.String()
	if !strings.Contains(out, "Tasks with Priority: HIGH") {
		t.Errorf("missing header:\n%s", out)
	}
	if strings.Index(out, "early") > strings.Index(out, "late") || strings.Contains(out, "mid") {
		t.Errorf("unexpected priority listing:\n%s", out)
	}

	ts.out.Reset()
	ts.mustExec(t, `priority medium`)
	if !strings.Contains(ts.out.String(), "No tasks found with priority: MEDIUM") {
		t.Errorf("output = %q", ts.out.String())
	}

	if err := ts.execLine(`priority urgent`); !isRecoverable(err) {
		t.Errorf("priority urgent error = %v, want recoverable", err)
	}
}

func TestSession_Next(t *testing.T) {
	ts := newTestSession(t, false)
	ts.mustExec(t, `add breakfast 07:00 08:00 low`)
	ts.mustExec(t, `add briefing 09:00 09:30 high`)

	// Fake clock reads 08:15.
	ts.out.Reset()
	ts.mustExec(t, `next`)
	if !strings.Contains(ts.out.String(), "briefing") {
		t.Errorf("next from 08:15 = %q, want briefing", ts.out.String())
	}

	ts.out.Reset()
	ts.mustExec(t, `next --at 6:00`)
	if !strings.Contains(ts.out.String(), "breakfast") {
		t.Errorf("next --at 6:00 = %q, want breakfast", ts.out.String())
	}

	ts.clock.Advance(2 * time.Hour)
	ts.out.Reset()
	ts.mustExec(t, `next`)
	if !strings.Contains(ts.out.String(), "No pending tasks from 10:15.") {
		t.Errorf("next from 10:15 = %q", ts.out.String())
	}
}

func TestSession_Show(t *testing.T) {
	ts := newTestSession(t, false)
	ts.mustExec(t, `add "Dock check" 09:00 09:45 medium`)

	ts.out.Reset()
	ts.mustExec(t, `show 1`)
	out := ts.out.String()
	for _, want := range []string{"Task 1", "Dock check", "09:00 - 09:45", "MEDIUM", "PENDING"} {
		if !strings.Contains(out, want) {
			t.Errorf("show output missing %q:\n%s", want, out)
		}
	}
}

func TestSession_JSON(t *testing.T) {
	ts := newTestSession(t, true)
	ts.mustExec(t, `add b 09:00 10:00 low`)
	ts.mustExec(t, `add a 07:00 08:00 high`)

	ts.out.Reset()
	ts.mustExec(t, `list`)

	var tasks []schedule.Task
	if err := json.Unmarshal(ts.out.Bytes(), &tasks); err != nil {
		t.Fatalf("list output is not a task array: %v\n%s", err, ts.out.String())
	}
	if len(tasks) != 2 || tasks[0].Description != "a" || tasks[1].Description != "b" {
		t.Errorf("tasks = %+v", tasks)
	}
	if tasks[0].Start != clock.MustAt(7, 0) {
		t.Errorf("start = %v, want 07:00", tasks[0].Start)
	}

	ts.out.Reset()
	err := ts.execLine(`add c 07:30 07:45 low`)
	ts.report(err)

	var failure map[string]any
	if err := json.Unmarshal(ts.out.Bytes(), &failure); err != nil {
		t.Fatalf("error output is not JSON: %v\n%s", err, ts.out.String())
	}
	if failure["success"] != false {
		t.Errorf("failure = %v", failure)
	}
}

func TestSession_Report(t *testing.T) {
	ts := newTestSession(t, false)
	ts.mustExec(t, `add a 07:00 08:00 high`)
	ts.errOut.Reset()

	// Conflicts are printed once, by the listener.
	err := ts.execLine(`add b 07:00 08:00 high`)
	ts.report(err)
	if n := strings.Count(ts.errOut.String(), "conflicts with existing task"); n != 1 {
		t.Errorf("conflict printed %d times:\n%s", n, ts.errOut.String())
	}

	ts.errOut.Reset()
	ts.report(ts.execLine(`rm 5`))
	if !strings.Contains(ts.errOut.String(), "Error: task with ID 5 not found") {
		t.Errorf("errOut = %q", ts.errOut.String())
	}
}

func TestSession_UsageErrors(t *testing.T) {
	ts := newTestSession(t, false)

	tests := []struct {
		name string
		line string
	}{
		{"unknown command", "launch"},
		{"missing args", "add only-description"},
		{"unknown flag", "list --verbose"},
		{"unterminated quote", `add "oops 7:00 8:00 high`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ts.execLine(tt.line)
			if err == nil {
				t.Fatalf("execLine(%q) expected error", tt.line)
			}
			if isRecoverable(err) {
				t.Errorf("execLine(%q) error %v should not be recoverable", tt.line, err)
			}
		})
	}
}

func TestSession_InputErrorsAreRecoverable(t *testing.T) {
	ts := newTestSession(t, false)

	for _, line := range []string{
		`add x 7am 8:00 high`,
		`add x 8:00 8:00 high`,
		`add x 9:00 8:00 high`,
		`add x 8:00 9:00 someday`,
		`add " " 8:00 9:00 high`,
		`show zero`,
	} {
		err := ts.execLine(line)
		if err == nil || !isRecoverable(err) {
			t.Errorf("execLine(%q) error = %v, want recoverable", line, err)
		}
	}
	if ts.store.Len() != 0 {
		t.Errorf("Len() = %d, want 0", ts.store.Len())
	}
}

func TestSession_Help(t *testing.T) {
	ts := newTestSession(t, false)
	ts.mustExec(t, "help")

	out := ts.out.String()
	for _, want := range []string{"Scheduling:", "add", "Viewing:", "next"} {
		if !strings.Contains(out, want) {
			t.Errorf("help missing %q:\n%s", want, out)
		}
	}
}
