// Package config manages astrosched configuration and its filesystem paths.
//
// Settings are layered: built-in defaults, then an optional YAML file
// (default ~/.astrosched/config.yaml), then ASTROSCHED_* environment
// variables. The root directory can be moved with ASTROSCHED_ROOT.
package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Paths contains the filesystem paths used by astrosched.
type Paths struct {
	// Root is the base directory (default: ~/.astrosched)
	Root string

	// Config is the path to the config file
	Config string
}

// DefaultPaths returns the default paths.
// ASTROSCHED_ROOT overrides the root directory.
func DefaultPaths() (*Paths, error) {
	root := os.Getenv("ASTROSCHED_ROOT")
	if root == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get user home directory: %w", err)
		}
		root = filepath.Join(home, ".astrosched")
	}

	return &Paths{
		Root:   root,
		Config: filepath.Join(root, "config.yaml"),
	}, nil
}

// EnsureDirectories creates the root directory if it doesn't exist.
func (p *Paths) EnsureDirectories() error {
	if err := os.MkdirAll(p.Root, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", p.Root, err)
	}
	return nil
}
