// Package installdir decides where the ci binary is installed.
//
// Resolution has two steps. The package manager's global prefix is asked
// for first (npm prefix -g); when that helper is missing, fails or prints
// nothing, a fixed directory under the user's home is used instead. The
// returned Location records which step produced the directory.
package installdir

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/code-input/ci-install/internal/logging"
)

// Source tells which resolution step produced a Location.
type Source int

const (
	// SourceConfigured means the package manager's global prefix was used.
	SourceConfigured Source = iota
	// SourceFallback means the prefix was unavailable and the home default was used.
	SourceFallback
)

// String returns the string representation of the source
func (s Source) String() string {
	switch s {
	case SourceConfigured:
		return "configured"
	case SourceFallback:
		return "fallback"
	default:
		return "unknown"
	}
}

// FallbackSubdir is the home-relative directory used when no prefix is configured.
var FallbackSubdir = filepath.Join(".npm-global", "bin")

// ErrNoHomeDir is returned when the fallback directory cannot be computed.
var ErrNoHomeDir = errors.New("cannot determine home directory")

// Location is a resolved install directory tagged with its source.
type Location struct {
	Source Source
	Dir    string
}

// Configured builds a Location from the package manager prefix.
func Configured(dir string) Location {
	return Location{Source: SourceConfigured, Dir: dir}
}

// FallbackDefault builds a Location from the home directory default.
func FallbackDefault(dir string) Location {
	return Location{Source: SourceFallback, Dir: dir}
}

// CommandRunner runs an external helper and returns its stdout.
type CommandRunner interface {
	Output(ctx context.Context, name string, args ...string) ([]byte, error)
}

// ExecRunner runs helpers with os/exec.
type ExecRunner struct{}

// Output runs the command and returns its standard output.
func (ExecRunner) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).Output()
}

// Resolver computes the install directory.
type Resolver struct {
	// Runner invokes the prefix helper (default: ExecRunner).
	Runner CommandRunner
	// HomeDir returns the user's home directory (default: os.UserHomeDir).
	HomeDir func() (string, error)
	// GOOS selects the prefix layout (default: runtime.GOOS).
	GOOS   string
	Logger logging.Logger
}

// NewResolver creates a resolver bound to the real environment.
func NewResolver(logger logging.Logger) *Resolver {
	return &Resolver{
		Runner:  ExecRunner{},
		HomeDir: os.UserHomeDir,
		GOOS:    runtime.GOOS,
		Logger:  logging.OrNop(logger),
	}
}

// Resolve returns the configured prefix directory, or the home fallback.
// Only a missing home directory on the fallback path is an error.
func (r *Resolver) Resolve(ctx context.Context) (Location, error) {
	logger := logging.OrNop(r.Logger)

	prefix, err := r.globalPrefix(ctx)
	if err == nil {
		return Configured(r.prefixBinDir(prefix)), nil
	}
	logger.Debug("global prefix unavailable, using home fallback", "error", err)

	homeDir := r.HomeDir
	if homeDir == nil {
		homeDir = os.UserHomeDir
	}
	home, err := homeDir()
	if err != nil {
		return Location{}, fmt.Errorf("%w: %v", ErrNoHomeDir, err)
	}
	if home == "" {
		return Location{}, ErrNoHomeDir
	}

	return FallbackDefault(filepath.Join(home, FallbackSubdir)), nil
}

// globalPrefix asks npm for its global install prefix.
func (r *Resolver) globalPrefix(ctx context.Context) (string, error) {
	runner := r.Runner
	if runner == nil {
		runner = ExecRunner{}
	}

	out, err := runner.Output(ctx, "npm", "prefix", "-g")
	if err != nil {
		return "", fmt.Errorf("npm prefix -g: %w", err)
	}

	prefix := strings.TrimSpace(string(out))
	if prefix == "" {
		return "", errors.New("npm prefix -g: empty output")
	}
	return prefix, nil
}

// prefixBinDir maps a prefix to its executable directory.
// npm places global binaries in the prefix root on Windows.
func (r *Resolver) prefixBinDir(prefix string) string {
	goos := r.GOOS
	if goos == "" {
		goos = runtime.GOOS
	}
	if goos == "windows" {
		return prefix
	}
	return filepath.Join(prefix, "bin")
}
