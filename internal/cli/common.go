package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/danieljhkim/astrosched/internal/config"
	"github.com/danieljhkim/astrosched/internal/logging"
)

// loadSettings resolves the effective configuration: defaults, config file,
// environment, then command-line flags.
func loadSettings() (*config.Config, error) {
	path := configPath
	if path == "" {
		paths, err := config.DefaultPaths()
		if err != nil {
			return nil, fmt.Errorf("failed to get config paths: %w", err)
		}
		path = paths.Config
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	if jsonOutput {
		cfg.Output.JSON = true
	}
	if noColor {
		cfg.Output.Color = false
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if !cfg.Output.Color {
		color.NoColor = true
	}
	return cfg, nil
}

// newSessionFromCmd creates a session writing to the command's streams with
// logging to stderr.
func newSessionFromCmd(cmd *cobra.Command) (*session, *config.Config, error) {
	cfg, err := loadSettings()
	if err != nil {
		return nil, nil, err
	}

	logger, err := logging.New(os.Stderr, cfg.Log)
	if err != nil {
		return nil, nil, err
	}

	s := newSession(sessionOptions{
		Out:    cmd.OutOrStdout(),
		ErrOut: cmd.ErrOrStderr(),
		JSON:   cfg.Output.JSON,
		Logger: logger,
	})
	return s, cfg, nil
}

// writeJSON writes v to w as indented JSON.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
