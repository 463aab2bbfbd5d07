package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/danieljhkim/astrosched/internal/schedule"
)

var (
	// fatih/color disables these when stdout is not a TTY or --no-color is set
	successColor = color.New(color.FgGreen, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	errorColor   = color.New(color.FgRed, color.Bold)
	infoColor    = color.New(color.FgCyan)
	headerColor  = color.New(color.FgBlue, color.Bold)
	labelColor   = color.New(color.FgWhite, color.Bold)
	valueColor   = color.New(color.FgHiBlack)
	dimColor     = color.New(color.FgHiBlack)

	priorityColors = map[schedule.Priority]*color.Color{
		schedule.PriorityHigh:   color.New(color.FgRed),
		schedule.PriorityMedium: color.New(color.FgYellow),
		schedule.PriorityLow:    color.New(color.FgGreen),
	}
)

// printer writes human-readable output. Errors and warnings go to errOut.
type printer struct {
	out    io.Writer
	errOut io.Writer
}

func newPrinter(out, errOut io.Writer) *printer {
	return &printer{out: out, errOut: errOut}
}

// Section prints a section header
func (p *printer) Section(title string) {
	fmt.Fprintln(p.out)
	_, _ = headerColor.Fprintf(p.out, "▸ %s\n", title)
}

// Success prints a success message with a checkmark
func (p *printer) Success(msg string) {
	_, _ = successColor.Fprintf(p.out, "✓ %s\n", msg)
}

// Warning prints a warning message with a warning symbol
func (p *printer) Warning(msg string) {
	_, _ = warningColor.Fprintf(p.errOut, "⚠ %s\n", msg)
}

// Error prints an error message
func (p *printer) Error(msg string) {
	_, _ = errorColor.Fprintf(p.errOut, "✗ %s\n", msg)
}

// Info prints an informational message
func (p *printer) Info(msg string) {
	fmt.Fprintln(p.out, msg)
}

// LabelValue prints a label-value pair
func (p *printer) LabelValue(label, value string) {
	_, _ = labelColor.Fprintf(p.out, "  %s: ", label)
	_, _ = valueColor.Fprintln(p.out, value)
}

// EmptyState prints a message when there's no data to show
func (p *printer) EmptyState(msg string) {
	_, _ = dimColor.Fprintf(p.out, "  %s\n", msg)
}

// Separator prints a visual separator line
func (p *printer) Separator() {
	_, _ = labelColor.Fprintln(p.out, "  "+strings.Repeat("─", 58))
}

// Task prints one task line. Completed tasks are dimmed and the priority
// tag is colored.
func (p *printer) Task(t schedule.Task) {
	line := fmt.Sprintf("  ID: %d | %s - %s | %s ", t.ID, t.Start, t.End, t.Description)
	tag := fmt.Sprintf("[%s]", t.Priority)
	status := " - " + t.Status()

	if t.Completed {
		_, _ = dimColor.Fprintln(p.out, line+tag+status)
		return
	}
	fmt.Fprint(p.out, line)
	if c, ok := priorityColors[t.Priority]; ok {
		_, _ = c.Fprint(p.out, tag)
	} else {
		fmt.Fprint(p.out, tag)
	}
	fmt.Fprintln(p.out, status)
}

// Tasks prints a titled task list, or emptyMsg when there are none.
func (p *printer) Tasks(title string, tasks []schedule.Task, emptyMsg string) {
	p.Section(title)
	if len(tasks) == 0 {
		p.EmptyState(emptyMsg)
		return
	}
	for _, t := range tasks {
		p.Task(t)
	}
	p.Separator()
	p.EmptyState(countLabel(len(tasks), "task", "tasks"))
}

// countLabel formats a count with a singular or plural noun
func countLabel(count int, singular, plural string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %s", count, plural)
}
