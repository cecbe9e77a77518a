package platform

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnsupportedPlatform is matched by UnsupportedPlatformError.
	ErrUnsupportedPlatform = errors.New("unsupported platform")
	// ErrUnsupportedArchitecture is matched by UnsupportedArchitectureError.
	ErrUnsupportedArchitecture = errors.New("unsupported architecture")
)

// UnsupportedPlatformError reports an operating system with no release artifact.
type UnsupportedPlatformError struct {
	Value string
}

func (e *UnsupportedPlatformError) Error() string {
	return fmt.Sprintf("unsupported platform: %s", e.Value)
}

// Is lets errors.Is match ErrUnsupportedPlatform.
func (e *UnsupportedPlatformError) Is(target error) bool {
	return target == ErrUnsupportedPlatform
}

// UnsupportedArchitectureError reports a CPU architecture with no release artifact.
type UnsupportedArchitectureError struct {
	Value string
}

func (e *UnsupportedArchitectureError) Error() string {
	return fmt.Sprintf("unsupported architecture: %s", e.Value)
}

// Is lets errors.Is match ErrUnsupportedArchitecture.
func (e *UnsupportedArchitectureError) Is(target error) bool {
	return target == ErrUnsupportedArchitecture
}

// osMap maps GOOS values to canonical OS names.
var osMap = map[string]string{
	"linux":   OSLinux,
	"darwin":  OSMacOS,
	"windows": OSWindows,
}

// archMap accepts both GOARCH and uname-style spellings.
var archMap = map[string]string{
	"amd64":   ArchX86_64,
	"x86_64":  ArchX86_64,
	"arm64":   ArchAarch64,
	"aarch64": ArchAarch64,
}

// familyMap maps distribution names to their canonical family names.
// This is used to normalize variations of family strings from gopsutil.
var familyMap = map[string]string{
	"debian":   FamilyDebian,
	"ubuntu":   FamilyDebian, // gopsutil might return ubuntu as family
	"rhel":     FamilyRHEL,
	"centos":   FamilyRHEL,
	"rocky":    FamilyRHEL,
	"fedora":   FamilyFedora,
	"suse":     FamilySUSE,
	"opensuse": FamilySUSE,
	"arch":     FamilyArch,
	"manjaro":  FamilyArch,
	"alpine":   FamilyAlpine,
	"gentoo":   FamilyGentoo,
}

// Resolve maps raw host OS and architecture identifiers to a Spec.
// The OS is checked first; nothing is returned on partial success.
func Resolve(goos, goarch string) (Spec, error) {
	osName, ok := osMap[goos]
	if !ok {
		return Spec{}, &UnsupportedPlatformError{Value: goos}
	}

	archName, ok := archMap[goarch]
	if !ok {
		return Spec{}, &UnsupportedArchitectureError{Value: goarch}
	}

	return Spec{OS: osName, Arch: archName}, nil
}

// normalizePlatform converts platform IDs to lowercase for consistency.
func normalizePlatform(platform string) string {
	return strings.ToLower(strings.TrimSpace(platform))
}

// mapFamily maps distribution family strings to canonical family names.
func mapFamily(family string) string {
	normalized := strings.ToLower(strings.TrimSpace(family))
	if canonical, ok := familyMap[normalized]; ok {
		return canonical
	}

	return FamilyUnknown
}
