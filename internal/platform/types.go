// Package platform maps the running host to the canonical platform names
// used by ci release artifacts.
//
// Detection reads the Go runtime's OS and architecture and, on Linux,
// enriches the result with distribution details from gopsutil. Resolution
// is a pure mapping from raw host identifiers to a Spec; any value outside
// the supported set is rejected before the installer touches the network.
package platform

import "context"

// Canonical operating system names used in artifact file names.
const (
	OSLinux   = "linux"
	OSMacOS   = "macos"
	OSWindows = "windows"
)

// Canonical architecture names used in artifact file names.
const (
	ArchX86_64  = "x86_64"
	ArchAarch64 = "aarch64"
)

// Linux distribution family constants.
const (
	FamilyDebian  = "debian"  // Debian, Ubuntu, Linux Mint
	FamilyRHEL    = "rhel"    // RHEL, CentOS, Rocky Linux, AlmaLinux
	FamilyFedora  = "fedora"  // Fedora
	FamilySUSE    = "suse"    // openSUSE, SLES
	FamilyArch    = "arch"    // Arch Linux, Manjaro
	FamilyAlpine  = "alpine"  // Alpine Linux
	FamilyGentoo  = "gentoo"  // Gentoo
	FamilyUnknown = "unknown" // Unrecognized distributions
)

// Spec is the canonical (OS, architecture) pair that selects a release artifact.
type Spec struct {
	OS   string // "linux", "macos", "windows"
	Arch string // "x86_64", "aarch64"
}

// String returns the "<os>-<arch>" form used in artifact names.
func (s Spec) String() string {
	return s.OS + "-" + s.Arch
}

// IsWindows returns true if the spec targets Windows.
func (s Spec) IsWindows() bool {
	return s.OS == OSWindows
}

// Ext returns the executable file extension for the platform.
func (s Spec) Ext() string {
	if s.IsWindows() {
		return ".exe"
	}
	return ""
}

// Info contains raw host detection information.
type Info struct {
	OS       string // GOOS, e.g. "linux", "darwin", "windows"
	Arch     string // GOARCH, e.g. "amd64", "arm64"
	Platform string // distro ID (Linux only, e.g., "ubuntu", "arch")
	Family   string // canonical family (e.g., "debian", "rhel", "arch")
	Version  string // distro version (Linux only, e.g., "22.04")
}

// Distro contains Linux distribution information.
// This is nil on non-Linux platforms.
type Distro struct {
	ID      string
	Family  string
	Version string
}

// GetDistro returns distro information if this is a Linux platform.
// Returns nil for non-Linux platforms or if distro detection failed.
func (i *Info) GetDistro() *Distro {
	if i.OS != "linux" || i.Platform == "" {
		return nil
	}
	return &Distro{
		ID:      i.Platform,
		Family:  i.Family,
		Version: i.Version,
	}
}

// Resolve maps the detected host to a Spec.
func (i *Info) Resolve() (Spec, error) {
	return Resolve(i.OS, i.Arch)
}

// Detector is the interface for platform detection.
type Detector interface {
	Detect(ctx context.Context) (*Info, error)
}
