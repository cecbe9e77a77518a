package binary

import (
	"errors"
	"fmt"
)

// Download error kinds. The typed errors below match these with errors.Is.
var (
	ErrDownloadFailed   = errors.New("download failed")
	ErrTooManyRedirects = errors.New("too many redirects")
	ErrMissingLocation  = errors.New("redirect without Location header")
	ErrNetwork          = errors.New("network error")
	ErrFilesystem       = errors.New("filesystem error")
)

// DownloadFailedError reports a terminal non-success HTTP status.
type DownloadFailedError struct {
	StatusCode int
	URL        string
}

func (e *DownloadFailedError) Error() string {
	return fmt.Sprintf("failed to download: %d", e.StatusCode)
}

// Is lets errors.Is match ErrDownloadFailed.
func (e *DownloadFailedError) Is(target error) bool {
	return target == ErrDownloadFailed
}

// NetworkError wraps a transport-level failure for one request URL.
type NetworkError struct {
	URL string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is match ErrNetwork.
func (e *NetworkError) Is(target error) bool {
	return target == ErrNetwork
}

// FilesystemError wraps a failure to create, write or chmod the destination.
type FilesystemError struct {
	Op   string
	Path string
	Err  error
}

func (e *FilesystemError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FilesystemError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is match ErrFilesystem.
func (e *FilesystemError) Is(target error) bool {
	return target == ErrFilesystem
}
