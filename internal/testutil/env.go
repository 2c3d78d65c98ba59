// Package testutil provides utilities for testing fluentenv in isolation.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// SetupTestEnv creates isolated test directories for each test.
// This ensures tests never touch:
// - The user's real shell configuration files
// - The user's fluentenv configuration
// - The optional ~/.nixpkgs/shellhook.sh hook script
//
// Cleanup is automatic via t.TempDir and t.Setenv.
func SetupTestEnv(t *testing.T) string {
	t.Helper()

	tmpDir := t.TempDir()

	// Redirect the home directory so rc files and hook lookups stay in
	// the sandbox.
	t.Setenv("HOME", tmpDir)

	// Point fluentenv at an isolated config directory.
	t.Setenv("FLUENTENV_DIR", filepath.Join(tmpDir, "config", "fluentenv"))

	// A known shell keeps detection deterministic.
	t.Setenv("SHELL", "/bin/bash")

	dirs := []string{
		filepath.Join(tmpDir, "config", "fluentenv"),
		filepath.Join(tmpDir, "cache"),
	}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			t.Fatalf("failed to create test directory %s: %v", dir, err)
		}
	}

	return tmpDir
}
