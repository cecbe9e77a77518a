package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/code-input/ci-install/internal/binary"
	"github.com/code-input/ci-install/internal/installdir"
	"github.com/code-input/ci-install/internal/logging"
	"github.com/code-input/ci-install/internal/platform"
)

// rootOptions holds the collaborators the root command wires together.
type rootOptions struct {
	release  binary.Release
	detector platform.Detector
	stdout   io.Writer
	stderr   io.Writer
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := execute(ctx, os.Args[1:], rootOptions{
		release:  binary.DefaultRelease(),
		detector: platform.NewDetector(),
		stdout:   os.Stdout,
		stderr:   os.Stderr,
	})
	stop()
	os.Exit(code)
}

// execute runs the root command and maps its outcome to a process exit code.
func execute(ctx context.Context, args []string, opts rootOptions) int {
	if args == nil {
		// cobra falls back to os.Args when args is nil
		args = []string{}
	}

	cmd := newRootCmd(opts)
	cmd.SetArgs(args)

	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(opts.stderr, "Failed to install: %v\n", err)
		return 1
	}
	return 0
}

func newRootCmd(opts rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "ci-install",
		Short:         fmt.Sprintf("Install the %s %s binary for this platform", opts.release.Binary, opts.release.Version),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInstall(cmd.Context(), opts)
		},
	}
	cmd.SetOut(opts.stdout)
	cmd.SetErr(opts.stderr)

	return cmd
}

func runInstall(ctx context.Context, opts rootOptions) error {
	logger := logging.NewLogger("ci-install", logging.GetLogLevel(), opts.stderr)
	release := opts.release

	mgr, err := binary.NewManager(binary.Config{
		Release:  &release,
		Detector: opts.detector,
		Dirs:     installdir.NewResolver(logger),
		Logger:   logger,
		Stdout:   opts.stdout,
	})
	if err != nil {
		return err
	}

	result, err := mgr.Install(ctx)
	if err != nil {
		return err
	}

	logger.Debug("install complete", "path", result.Path, "source", result.Source.String(), "duration", result.DownloadTime)
	fmt.Fprintf(opts.stdout, "Installed %s to %s\n", mgr.Release().Binary, result.Path)
	return nil
}
