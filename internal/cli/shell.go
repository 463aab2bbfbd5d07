package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

// runShell reads commands from in until EOF or exit. Every failed command is
// reported and the shell keeps going.
func runShell(in io.Reader, s *session, prompt string) error {
	s.logger.Info("shell started")
	s.printer.Section("Astronaut Daily Schedule Organizer")
	s.printer.EmptyState(`Type "help" for commands, "exit" to quit.`)

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(s.out, prompt)
		if !scanner.Scan() {
			break
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if isExit(line) {
			s.printer.Info("Exiting application. Goodbye!")
			return nil
		}

		if err := s.execLine(line); err != nil {
			s.report(err)
		}
	}
	fmt.Fprintln(s.out)

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	return nil
}

// runScript executes one command per line. Blank lines and lines starting
// with # are skipped. Scheduling errors are reported and the script goes on;
// any other error (unknown command, wrong arguments) stops it.
func runScript(in io.Reader, s *session) (failed int, err error) {
	scanner := bufio.NewScanner(in)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if isExit(line) {
			break
		}

		if err := s.execLine(line); err != nil {
			if !isRecoverable(err) {
				return failed, fmt.Errorf("line %d: %w", lineNo, err)
			}
			failed++
			s.report(err)
		}
	}

	if err := scanner.Err(); err != nil {
		return failed, fmt.Errorf("failed to read script: %w", err)
	}
	return failed, nil
}

func isExit(line string) bool {
	switch strings.ToLower(line) {
	case "exit", "quit":
		return true
	}
	return false
}

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Start an interactive scheduling session",
	Long: `Start an interactive session on an empty schedule.

Each line is one command (type "help" to list them). Quote descriptions that
contain spaces. The schedule is discarded when the shell exits.`,
	Args: cobra.NoArgs,
	RunE: runShellCommand,
}

func runShellCommand(cmd *cobra.Command, args []string) error {
	s, cfg, err := newSessionFromCmd(cmd)
	if err != nil {
		return err
	}
	return runShell(cmd.InOrStdin(), s, cfg.Shell.Prompt)
}
