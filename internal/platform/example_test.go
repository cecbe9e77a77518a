package platform_test

import (
	"fmt"

	"github.com/code-input/ci-install/internal/platform"
)

func ExampleResolve() {
	spec, err := platform.Resolve("darwin", "arm64")
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(spec)
	// Output: macos-aarch64
}

func ExampleResolve_unsupported() {
	_, err := platform.Resolve("linux", "s390x")
	fmt.Println(err)
	// Output: unsupported architecture: s390x
}
