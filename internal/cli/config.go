package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/danieljhkim/astrosched/internal/config"
)

var configInitForce bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect or create the configuration file",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file",
	Long: `Write the default configuration as YAML to --config, or to
~/.astrosched/config.yaml (ASTROSCHED_ROOT moves the directory).`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := configPath
		if path == "" {
			paths, err := config.DefaultPaths()
			if err != nil {
				return fmt.Errorf("failed to get config paths: %w", err)
			}
			if err := paths.EnsureDirectories(); err != nil {
				return fmt.Errorf("failed to ensure directories: %w", err)
			}
			path = paths.Config
		}

		if err := config.WriteDefault(path, configInitForce); err != nil {
			return err
		}

		p := newPrinter(cmd.OutOrStdout(), cmd.ErrOrStderr())
		p.Success(fmt.Sprintf("Wrote %s", path))
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadSettings()
		if err != nil {
			return err
		}

		if cfg.Output.JSON {
			return writeJSON(cmd.OutOrStdout(), cfg)
		}

		data, err := yaml.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("failed to marshal config: %w", err)
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

func init() {
	configInitCmd.Flags().BoolVarP(&configInitForce, "force", "f", false, "Overwrite an existing config file")
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
}
