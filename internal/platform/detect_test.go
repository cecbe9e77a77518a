package platform

import (
	"context"
	"errors"
	"runtime"
	"testing"
)

// MockDetector is a test implementation of Detector.
type MockDetector struct {
	info *Info
	err  error
}

// NewMockDetector creates a mock detector with specified return values.
func NewMockDetector(info *Info, err error) Detector {
	return &MockDetector{info: info, err: err}
}

// Detect returns the pre-configured info and error.
func (m *MockDetector) Detect(ctx context.Context) (*Info, error) {
	return m.info, m.err
}

func TestRealDetector_Detect(t *testing.T) {
	info, err := NewDetector().Detect(context.Background())
	if err != nil {
		t.Fatalf("Detect() error = %v", err)
	}

	if info.OS != runtime.GOOS {
		t.Errorf("OS = %v, want %v", info.OS, runtime.GOOS)
	}
	if info.Arch != runtime.GOARCH {
		t.Errorf("Arch = %v, want %v", info.Arch, runtime.GOARCH)
	}

	// Distro details are best effort, but family is always set alongside platform.
	if info.Platform != "" && info.Family == "" {
		t.Error("If Platform is set, Family should also be set")
	}

	if runtime.GOOS != "linux" && info.GetDistro() != nil {
		t.Errorf("distro should be nil on %s", runtime.GOOS)
	}
}

func TestRealDetector_UnsupportedArchStillDetects(t *testing.T) {
	d := &RealDetector{goos: "darwin", goarch: "riscv64"}

	info, err := d.Detect(context.Background())
	if err != nil {
		t.Fatalf("Detect() error = %v", err)
	}
	if info.Arch != "riscv64" {
		t.Errorf("Arch = %v, want riscv64", info.Arch)
	}

	if _, err := info.Resolve(); !errors.Is(err, ErrUnsupportedArchitecture) {
		t.Errorf("Resolve() error = %v, want ErrUnsupportedArchitecture", err)
	}
}

func TestRealDetector_CancelledContext(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("distro detection only runs on linux")
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	d := &RealDetector{goos: "linux", goarch: "amd64"}
	info, err := d.Detect(ctx)
	// gopsutil may answer from files without consulting ctx; either outcome is valid
	// as long as a cancelled detection never returns partial info.
	if err != nil && info != nil {
		t.Errorf("Detect() returned info alongside error: %+v", info)
	}
}

func TestInfo_GetDistro(t *testing.T) {
	tests := []struct {
		name string
		info *Info
		want *Distro
	}{
		{
			name: "Linux with distro info",
			info: &Info{OS: "linux", Arch: "amd64", Platform: "ubuntu", Family: "debian", Version: "22.04"},
			want: &Distro{ID: "ubuntu", Family: "debian", Version: "22.04"},
		},
		{
			name: "Linux without distro info",
			info: &Info{OS: "linux", Arch: "amd64"},
			want: nil,
		},
		{
			name: "macOS",
			info: &Info{OS: "darwin", Arch: "arm64"},
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.info.GetDistro()
			if tt.want == nil {
				if got != nil {
					t.Errorf("GetDistro() = %+v, want nil", got)
				}
				return
			}
			if got == nil || *got != *tt.want {
				t.Errorf("GetDistro() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestMockDetector(t *testing.T) {
	want := &Info{OS: "windows", Arch: "arm64"}
	info, err := NewMockDetector(want, nil).Detect(context.Background())
	if err != nil {
		t.Fatalf("Detect() error = %v", err)
	}

	spec, err := info.Resolve()
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if spec != (Spec{OS: OSWindows, Arch: ArchAarch64}) {
		t.Errorf("Resolve() = %+v", spec)
	}
}
