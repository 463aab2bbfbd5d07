package config

import (
	"path/filepath"
	"testing"
)

func TestDefaultPaths(t *testing.T) {
	t.Run("defaults under home directory", func(t *testing.T) {
		t.Setenv("ASTROSCHED_ROOT", "")

		paths, err := DefaultPaths()
		if err != nil {
			t.Fatalf("DefaultPaths failed: %v", err)
		}

		if filepath.Base(paths.Root) != ".astrosched" {
			t.Errorf("Root should end with .astrosched, got: %s", paths.Root)
		}
		if paths.Config != filepath.Join(paths.Root, "config.yaml") {
			t.Errorf("Config path incorrect: got %s", paths.Config)
		}
	})

	t.Run("respects ASTROSCHED_ROOT", func(t *testing.T) {
		customRoot := "/custom/astrosched/path"
		t.Setenv("ASTROSCHED_ROOT", customRoot)

		paths, err := DefaultPaths()
		if err != nil {
			t.Fatalf("DefaultPaths failed: %v", err)
		}

		if paths.Root != customRoot {
			t.Errorf("Expected root %s, got %s", customRoot, paths.Root)
		}
		if paths.Config != filepath.Join(customRoot, "config.yaml") {
			t.Errorf("Config path incorrect: got %s", paths.Config)
		}
	})
}

func TestEnsureDirectories(t *testing.T) {
	root := filepath.Join(t.TempDir(), "nested", ".astrosched")
	paths := &Paths{Root: root, Config: filepath.Join(root, "config.yaml")}

	if err := paths.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories failed: %v", err)
	}
	// Idempotent.
	if err := paths.EnsureDirectories(); err != nil {
		t.Fatalf("second EnsureDirectories failed: %v", err)
	}
}
