package binary

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/code-input/ci-install/internal/installdir"
	"github.com/code-input/ci-install/internal/logging"
	"github.com/code-input/ci-install/internal/platform"
)

// DirResolver picks the install directory.
type DirResolver interface {
	Resolve(ctx context.Context) (installdir.Location, error)
}

// Fetcher downloads url into target.
type Fetcher interface {
	DownloadToFile(ctx context.Context, url string, target Target) error
}

// Manager orchestrates platform resolution, download and installation
type Manager struct {
	release    Release
	detector   platform.Detector
	dirs       DirResolver
	downloader Fetcher
	logger     logging.Logger
	stdout     io.Writer
}

// Config holds configuration for the binary manager
type Config struct {
	// Release defaults to DefaultRelease().
	Release *Release
	// Detector reports the host platform.
	Detector platform.Detector
	// Dirs resolves the install directory.
	Dirs DirResolver
	// Downloader defaults to NewDownloader(WithLogger(Logger)).
	Downloader Fetcher
	Logger     logging.Logger
	// Stdout receives progress lines (default: os.Stdout).
	Stdout io.Writer
}

// NewManager creates a new binary manager
func NewManager(config Config) (*Manager, error) {
	if config.Detector == nil {
		return nil, fmt.Errorf("Detector is required")
	}

	if config.Dirs == nil {
		return nil, fmt.Errorf("Dirs is required")
	}

	release := DefaultRelease()
	if config.Release != nil {
		release = *config.Release
	}

	logger := logging.OrNop(config.Logger)

	downloader := config.Downloader
	if downloader == nil {
		downloader = NewDownloader(WithLogger(logger))
	}

	stdout := config.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}

	return &Manager{
		release:    release,
		detector:   config.Detector,
		dirs:       config.Dirs,
		downloader: downloader,
		logger:     logger,
		stdout:     stdout,
	}, nil
}

// Install resolves the host platform and install directory, then downloads
// the matching artifact. An unsupported host fails before any network call.
func (m *Manager) Install(ctx context.Context) (*InstallResult, error) {
	startTime := time.Now()

	info, err := m.detector.Detect(ctx)
	if err != nil {
		return nil, fmt.Errorf("detect platform: %w", err)
	}
	if info == nil {
		return nil, fmt.Errorf("detect platform: no host information")
	}

	spec, err := info.Resolve()
	if err != nil {
		return nil, err
	}
	hostKV := []interface{}{"goos", info.OS, "goarch", info.Arch, "platform", spec.String()}
	if distro := info.GetDistro(); distro != nil {
		hostKV = append(hostKV, "distro", distro.ID, "family", distro.Family, "distro_version", distro.Version)
	}
	m.logger.Debug("resolved platform", hostKV...)

	loc, err := m.dirs.Resolve(ctx)
	if err != nil {
		return nil, fmt.Errorf("resolve install directory: %w", err)
	}
	m.logger.Debug("resolved install directory", "dir", loc.Dir, "source", loc.Source.String())

	target := NewTarget(loc.Dir, m.release, spec)
	url := m.release.ArtifactURL(spec)

	fmt.Fprintf(m.stdout, "Downloading %s %s for %s...\n", m.release.Binary, m.release.Version, spec)

	if err := os.MkdirAll(target.Dir, dirMode); err != nil {
		return nil, &FilesystemError{Op: "create directory", Path: target.Dir, Err: err}
	}

	if err := m.downloader.DownloadToFile(ctx, url, target); err != nil {
		return nil, fmt.Errorf("download %s: %w", url, err)
	}

	return &InstallResult{
		Spec:         spec,
		Version:      m.release.Version,
		URL:          url,
		Path:         target.Path(),
		Source:       loc.Source,
		DownloadTime: time.Since(startTime),
	}, nil
}

// Release returns the release the manager installs.
func (m *Manager) Release() Release {
	return m.release
}
