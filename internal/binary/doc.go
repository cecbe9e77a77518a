// Package binary downloads the ci release artifact for the host platform
// and installs it as an executable.
//
// # Artifacts
//
// Release artifacts are single, uncompressed executables published on
// GitHub releases under a fixed naming scheme:
//
//	https://github.com/code-input/cli/releases/download/<version>/ci-<os>-<arch>[.exe]
//
// # Downloading
//
// The Downloader follows 301 and 302 redirects itself, up to a fixed
// limit, and streams the terminal 200 response straight into the
// destination file. Any other status is a failure and leaves no file
// behind. A transfer that breaks mid-stream removes the partial file.
//
// There is no retry, caching or checksum verification: the artifact is
// trusted on the strength of HTTPS alone.
//
// # Usage
//
//	mgr, err := binary.NewManager(binary.Config{
//	    Detector: platform.NewDetector(),
//	    Dirs:     installdir.NewResolver(logger),
//	    Logger:   logger,
//	})
//	if err != nil {
//	    return err
//	}
//
//	result, err := mgr.Install(ctx)
//
// # Architecture
//
//   - Manager: detect platform, resolve directory, download, report
//   - Downloader: HTTP download with manual redirect handling
//   - Release/Target: artifact URL and install path construction
package binary
