// Package testutil provides utilities for testing the installer in isolation.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// Env describes the isolated environment created by SetupTestEnv.
type Env struct {
	Root    string
	Home    string
	PathDir string
}

// FallbackBinDir is where the installer lands when no npm prefix is available.
func (e Env) FallbackBinDir() string {
	return filepath.Join(e.Home, ".npm-global", "bin")
}

// SetupTestEnv creates isolated test directories for each test.
// This ensures tests never interfere with:
// - The user's real home directory
// - A globally configured npm prefix
// - Any ci binary already on the system
//
// PATH is replaced by an empty directory so the npm helper cannot be found
// and install directory resolution takes the home fallback. The cleanup is
// handled by t.TempDir and t.Setenv.
func SetupTestEnv(t *testing.T) Env {
	t.Helper()

	tmpDir := t.TempDir()
	env := Env{
		Root:    tmpDir,
		Home:    filepath.Join(tmpDir, "home"),
		PathDir: filepath.Join(tmpDir, "path"),
	}

	for _, dir := range []string{env.Home, env.PathDir} {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			t.Fatalf("failed to create test directory %s: %v", dir, err)
		}
	}

	t.Setenv("HOME", env.Home)
	t.Setenv("USERPROFILE", env.Home)
	t.Setenv("PATH", env.PathDir)
	t.Setenv("npm_config_prefix", "")

	return env
}
