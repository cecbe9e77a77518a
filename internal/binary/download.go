package binary

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/code-input/ci-install/internal/logging"
)

const (
	// DefaultMaxRedirects bounds how many 301/302 hops are followed.
	DefaultMaxRedirects = 5
	// DefaultUserAgent is the User-Agent header sent with requests
	DefaultUserAgent = "ci-install/" + DefaultVersion

	// executableMode is rwxr-xr-x.
	executableMode os.FileMode = 0o755
	dirMode        os.FileMode = 0o755

	// redirect bodies are drained up to this size so connections can be reused
	maxDrainBytes = 4 << 10
)

// Downloader fetches artifacts over HTTP.
//
// No request timeout is applied: artifacts can be large and the caller's
// context is the only way to abort a transfer.
type Downloader struct {
	client       *http.Client
	userAgent    string
	maxRedirects int
	logger       logging.Logger
	chmod        func(name string, mode os.FileMode) error
}

// Option configures a Downloader.
type Option func(*Downloader)

// WithHTTPClient uses a copy of client. Its redirect policy is replaced so
// that redirects are always handled by the Downloader.
func WithHTTPClient(client *http.Client) Option {
	return func(d *Downloader) {
		if client != nil {
			c := *client
			c.CheckRedirect = stopRedirects
			d.client = &c
		}
	}
}

// WithLogger sets the diagnostic logger.
func WithLogger(logger logging.Logger) Option {
	return func(d *Downloader) {
		if logger != nil {
			d.logger = logger
		}
	}
}

// WithMaxRedirects overrides DefaultMaxRedirects. Negative values are ignored.
func WithMaxRedirects(n int) Option {
	return func(d *Downloader) {
		if n >= 0 {
			d.maxRedirects = n
		}
	}
}

// WithUserAgent overrides DefaultUserAgent.
func WithUserAgent(ua string) Option {
	return func(d *Downloader) {
		if ua != "" {
			d.userAgent = ua
		}
	}
}

// NewDownloader creates a new downloader
func NewDownloader(opts ...Option) *Downloader {
	d := &Downloader{
		client:       &http.Client{CheckRedirect: stopRedirects},
		userAgent:    DefaultUserAgent,
		maxRedirects: DefaultMaxRedirects,
		logger:       logging.Nop(),
		chmod:        os.Chmod,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func stopRedirects(*http.Request, []*http.Request) error {
	return http.ErrUseLastResponse
}

// DownloadToFile fetches url and streams the terminal 200 response into
// target. Only a 200 response creates or truncates the destination file.
func (d *Downloader) DownloadToFile(ctx context.Context, url string, target Target) error {
	resp, finalURL, err := d.get(ctx, url)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &DownloadFailedError{StatusCode: resp.StatusCode, URL: finalURL}
	}

	return d.writeTarget(resp.Body, finalURL, target)
}

// get issues GET requests, following 301/302 until a terminal response.
// It returns the terminal response and the URL that produced it; the caller
// owns the response body.
func (d *Downloader) get(ctx context.Context, url string) (*http.Response, string, error) {
	current := url

	for redirects := 0; ; redirects++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, current, nil)
		if err != nil {
			return nil, "", fmt.Errorf("create request: %w", err)
		}
		req.Header.Set("User-Agent", d.userAgent)

		resp, err := d.client.Do(req)
		if err != nil {
			return nil, "", &NetworkError{URL: current, Err: err}
		}

		if resp.StatusCode != http.StatusMovedPermanently && resp.StatusCode != http.StatusFound {
			return resp, current, nil
		}

		loc, err := resp.Location()
		drainAndClose(resp.Body)
		if err != nil {
			if errors.Is(err, http.ErrNoLocation) {
				return nil, "", fmt.Errorf("%w: %d from %s", ErrMissingLocation, resp.StatusCode, current)
			}
			return nil, "", fmt.Errorf("parse redirect location: %w", err)
		}

		if redirects >= d.maxRedirects {
			return nil, "", fmt.Errorf("%w: stopped after %d", ErrTooManyRedirects, d.maxRedirects)
		}

		d.logger.Debug("following redirect", "status", resp.StatusCode, "from", current, "to", loc.String(), "hop", redirects+1)
		current = loc.String()
	}
}

// writeTarget streams body into the target file and applies permissions.
// target.Dir must already exist; the Manager creates it before fetching.
func (d *Downloader) writeTarget(body io.Reader, url string, target Target) error {
	destPath := target.Path()
	file, err := os.Create(destPath)
	if err != nil {
		return &FilesystemError{Op: "create file", Path: destPath, Err: err}
	}

	src := &readTracker{r: body}
	if _, err := io.Copy(file, src); err != nil {
		file.Close()
		d.removePartial(destPath)
		if src.err != nil {
			return &NetworkError{URL: url, Err: src.err}
		}
		return &FilesystemError{Op: "write", Path: destPath, Err: err}
	}

	if err := file.Close(); err != nil {
		d.removePartial(destPath)
		return &FilesystemError{Op: "close", Path: destPath, Err: err}
	}

	if target.Executable {
		if err := d.chmod(destPath, executableMode); err != nil {
			// a non-executable binary is not a valid install
			d.removePartial(destPath)
			return &FilesystemError{Op: "chmod", Path: destPath, Err: err}
		}
	}

	return nil
}

// removePartial deletes a partially written file. Failure is logged, not returned.
func (d *Downloader) removePartial(path string) {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		d.logger.Debug("failed to remove partial download", "path", path, "error", err)
	}
}

func drainAndClose(body io.ReadCloser) {
	_, _ = io.Copy(io.Discard, io.LimitReader(body, maxDrainBytes))
	body.Close()
}

// readTracker records the first non-EOF read error so a failed copy can be
// attributed to the network rather than the disk.
type readTracker struct {
	r   io.Reader
	err error
}

func (t *readTracker) Read(p []byte) (int, error) {
	n, err := t.r.Read(p)
	if err != nil && err != io.EOF && t.err == nil {
		t.err = err
	}
	return n, err
}
