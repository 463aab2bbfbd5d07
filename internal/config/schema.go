package config

// Config is the effective astrosched configuration.
type Config struct {
	Log    LogConfig    `mapstructure:"log" yaml:"log" json:"log"`
	Output OutputConfig `mapstructure:"output" yaml:"output" json:"output"`
	Shell  ShellConfig  `mapstructure:"shell" yaml:"shell" json:"shell"`
}

// LogConfig controls the structured log written to stderr.
type LogConfig struct {
	// Level is one of debug, info, warn, error
	Level string `mapstructure:"level" yaml:"level" json:"level"`

	// Format is "text" or "json"
	Format string `mapstructure:"format" yaml:"format" json:"format"`
}

// OutputConfig controls what commands print.
type OutputConfig struct {
	// Color enables ANSI colors on a terminal
	Color bool `mapstructure:"color" yaml:"color" json:"color"`

	// JSON makes commands print JSON instead of text
	JSON bool `mapstructure:"json" yaml:"json" json:"json"`
}

// ShellConfig controls the interactive shell.
type ShellConfig struct {
	Prompt string `mapstructure:"prompt" yaml:"prompt" json:"prompt"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		Log: LogConfig{
			Level:  "warn",
			Format: "text",
		},
		Output: OutputConfig{
			Color: true,
		},
		Shell: ShellConfig{
			Prompt: "astrosched> ",
		},
	}
}
