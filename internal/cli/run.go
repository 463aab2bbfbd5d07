package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run <script|->",
	Short: "Run schedule commands from a file or stdin",
	Long: `Run a script of session commands, one per line, against an empty schedule.

Blank lines and lines starting with # are ignored. Conflicts, unknown task
IDs and invalid times are reported and the script continues; an unknown
command or wrong arguments stop it. The exit status is non-zero if any
command failed.`,
	Example: `  astrosched run day.txt
  printf 'add "Dock check" 9:00 9:30 high\nlist\n' | astrosched run -`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, _, err := newSessionFromCmd(cmd)
		if err != nil {
			return err
		}

		var in io.Reader = cmd.InOrStdin()
		if args[0] != "-" {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("failed to open script: %w", err)
			}
			defer func() {
				_ = f.Close()
			}()
			in = f
		}

		failed, err := runScript(in, s)
		if err != nil {
			return err
		}
		if failed > 0 {
			return fmt.Errorf("%d command(s) failed", failed)
		}
		return nil
	},
}
