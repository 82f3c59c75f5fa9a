// Package main implements the modelfetch CLI.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"modelfetch/internal/platform/errors"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// Exit codes
const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

func main() {
	ctx, cancel := rootContextWithSignals()
	code := execute(ctx, os.Args[1:])
	cancel()
	os.Exit(code)
}

// execute runs the command tree and maps the result to a process exit code.
func execute(ctx context.Context, args []string) int {
	a := newApp()
	root := a.rootCommand()
	root.SetArgs(args)

	err := root.ExecuteContext(ctx)
	if a.ui != nil {
		_ = a.ui.Close()
	}
	if err == nil {
		return exitOK
	}

	var exit *exitError
	if errors.As(err, &exit) {
		return exit.code
	}

	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	if errors.IsInvalidInput(err) || isUsageError(err) {
		fmt.Fprintln(os.Stderr, "Try: modelfetch --help")
		return exitUsage
	}
	return exitFailure
}

// exitError carries a run's exit code out of cobra without printing anything;
// the presenter has already narrated the failure.
type exitError struct {
	code int
}

func (e *exitError) Error() string {
	return fmt.Sprintf("exit status %d", e.code)
}

// rootContextWithSignals creates a root context cancelled on SIGINT/SIGTERM.
// The returned cancel function also releases the signal handler.
func rootContextWithSignals() (context.Context, context.CancelFunc) {
	base, baseCancel := context.WithCancel(context.Background())

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		select {
		case <-ch:
			fmt.Fprintln(os.Stderr, "\nReceived interrupt signal. Stopping the current strategy...")
			baseCancel()
		case <-base.Done():
		}
	}()

	cleanup := func() {
		signal.Stop(ch)
		baseCancel()
	}

	return base, cleanup
}
