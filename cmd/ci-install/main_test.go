package main

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/code-input/ci-install/internal/binary"
	"github.com/code-input/ci-install/internal/platform"
	"github.com/code-input/ci-install/internal/testutil"
)

type fixedDetector struct {
	info platform.Info
}

func (f fixedDetector) Detect(ctx context.Context) (*platform.Info, error) {
	info := f.info
	return &info, nil
}

func newTestOptions(t *testing.T, goos, goarch string, handler http.Handler) (rootOptions, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	release := binary.DefaultRelease()
	release.BaseURL = server.URL

	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	return rootOptions{
		release:  release,
		detector: fixedDetector{info: platform.Info{OS: goos, Arch: goarch}},
		stdout:   stdout,
		stderr:   stderr,
	}, stdout, stderr
}

func TestExecute_Success(t *testing.T) {
	env := testutil.SetupTestEnv(t)

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/code-input/cli/releases/download/v0.0.3/ci-linux-x86_64" {
			http.NotFound(w, r)
			return
		}
		if _, err := w.Write([]byte("ci binary")); err != nil {
			t.Errorf("failed to write response: %v", err)
		}
	})
	opts, stdout, stderr := newTestOptions(t, "linux", "amd64", handler)

	if code := execute(context.Background(), nil, opts); code != 0 {
		t.Fatalf("exit code = %d, stderr = %q", code, stderr.String())
	}

	dest := filepath.Join(env.FallbackBinDir(), "ci")
	content, err := os.ReadFile(dest)
	if err != nil {
		t.Fatalf("read installed binary: %v", err)
	}
	if string(content) != "ci binary" {
		t.Errorf("content = %q", content)
	}

	want := "Downloading ci v0.0.3 for linux-x86_64...\nInstalled ci to " + dest + "\n"
	if stdout.String() != want {
		t.Errorf("stdout = %q, want %q", stdout.String(), want)
	}
	if stderr.Len() != 0 {
		t.Errorf("stderr = %q, want empty", stderr.String())
	}
}

func TestExecute_Failures(t *testing.T) {
	notFound := http.NotFoundHandler()

	tests := []struct {
		name       string
		goos       string
		goarch     string
		args       []string
		wantStderr string
	}{
		{
			name:       "artifact_missing",
			goos:       "linux",
			goarch:     "arm64",
			wantStderr: "failed to download: 404",
		},
		{
			name:       "unsupported_platform",
			goos:       "solaris",
			goarch:     "amd64",
			wantStderr: "unsupported platform: solaris",
		},
		{
			name:       "unsupported_architecture",
			goos:       "darwin",
			goarch:     "ppc64le",
			wantStderr: "unsupported architecture: ppc64le",
		},
		{
			name:       "positional_arguments_rejected",
			goos:       "linux",
			goarch:     "amd64",
			args:       []string{"extra"},
			wantStderr: "unknown command",
		},
		{
			name:       "version_flag_rejected",
			goos:       "linux",
			goarch:     "amd64",
			args:       []string{"--version"},
			wantStderr: "unknown flag: --version",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := testutil.SetupTestEnv(t)
			opts, _, stderr := newTestOptions(t, tt.goos, tt.goarch, notFound)

			if code := execute(context.Background(), tt.args, opts); code != 1 {
				t.Fatalf("exit code = %d, want 1", code)
			}

			if !strings.HasPrefix(stderr.String(), "Failed to install: ") {
				t.Errorf("stderr missing prefix: %q", stderr.String())
			}
			if !strings.Contains(stderr.String(), tt.wantStderr) {
				t.Errorf("stderr = %q, want it to contain %q", stderr.String(), tt.wantStderr)
			}

			if _, err := os.Stat(filepath.Join(env.FallbackBinDir(), "ci")); !os.IsNotExist(err) {
				t.Error("no binary should be installed on failure")
			}
		})
	}
}
