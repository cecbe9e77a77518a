package binary

import (
	"fmt"
	"strings"

	"github.com/code-input/ci-install/internal/platform"
)

// ArtifactName returns the release asset name for spec.
// Pattern: {binary}-{os}-{arch}{ext}
func (r Release) ArtifactName(spec platform.Spec) string {
	return fmt.Sprintf("%s-%s-%s%s", r.Binary, spec.OS, spec.Arch, spec.Ext())
}

// ArtifactURL returns the download URL for spec.
// Pattern: {base}/{repo}/releases/download/{version}/{binary}-{os}-{arch}{ext}
func (r Release) ArtifactURL(spec platform.Spec) string {
	base := strings.TrimRight(r.BaseURL, "/")
	return fmt.Sprintf("%s/%s/releases/download/%s/%s", base, r.Repo, r.Version, r.ArtifactName(spec))
}

// FileName returns the installed file name for spec.
func (r Release) FileName(spec platform.Spec) string {
	return r.Binary + spec.Ext()
}
