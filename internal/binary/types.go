package binary

import (
	"path/filepath"
	"time"

	"github.com/code-input/ci-install/internal/installdir"
	"github.com/code-input/ci-install/internal/platform"
)

const (
	// BinaryName is the installed executable's base name.
	BinaryName = "ci"
	// DefaultVersion is the release tag this installer fetches.
	DefaultVersion = "v0.0.3"
	// DefaultRepo is the GitHub repository publishing the releases.
	DefaultRepo = "code-input/cli"
	// DefaultBaseURL is the release host.
	DefaultBaseURL = "https://github.com"
)

// Release identifies a published set of artifacts.
type Release struct {
	BaseURL string
	Repo    string
	Version string
	Binary  string
}

// DefaultRelease returns the release this installer is pinned to.
func DefaultRelease() Release {
	return Release{
		BaseURL: DefaultBaseURL,
		Repo:    DefaultRepo,
		Version: DefaultVersion,
		Binary:  BinaryName,
	}
}

// Target is the install destination for an artifact.
type Target struct {
	Dir      string
	FileName string
	// Executable requests rwxr-xr-x after download. Windows relies on the
	// .exe extension instead.
	Executable bool
}

// NewTarget builds the destination for release on spec inside dir.
func NewTarget(dir string, release Release, spec platform.Spec) Target {
	return Target{
		Dir:        dir,
		FileName:   release.FileName(spec),
		Executable: !spec.IsWindows(),
	}
}

// Path returns the full destination path.
func (t Target) Path() string {
	return filepath.Join(t.Dir, t.FileName)
}

// InstallResult contains information about a completed install
type InstallResult struct {
	Spec         platform.Spec
	Version      string
	URL          string
	Path         string
	Source       installdir.Source
	DownloadTime time.Duration
}
