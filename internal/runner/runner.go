// Package runner launches the external notebook-validation tool and reports
// its exit status. It does not interpret the result beyond distinguishing
// "could not start" from "ran and exited".
package runner

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"os/signal"

	"github.com/ebmdatalab/nbgate/internal/exitcode"
)

// Spec describes a single tool invocation.
type Spec struct {
	Argv []string // argv[0] is resolved via PATH
	Env  []string // nil means inherit the parent environment
}

// LaunchError reports that the validation tool could not be started at all.
// This is an environment problem (missing installation, bad PATH), distinct
// from the tool running and reporting failures.
type LaunchError struct {
	Tool string
	Err  error
}

func (e *LaunchError) Error() string {
	return fmt.Sprintf("failed to start %s: %v", e.Tool, e.Err)
}

func (e *LaunchError) Unwrap() error {
	return e.Err
}

// Runner executes the validation tool as a subprocess with inherited stdio.
type Runner struct {
	log *slog.Logger
}

// New creates a runner instance.
func New(logger *slog.Logger) *Runner {
	return &Runner{log: logger}
}

// Run launches the tool described by spec, blocks until it terminates, and
// returns the raw exit code. The child's stdout and stderr are the parent's,
// unmodified. On a LaunchError the returned code is exitcode.LaunchFailure.
func (r *Runner) Run(ctx context.Context, spec Spec) (int, error) {
	if len(spec.Argv) == 0 {
		return exitcode.LaunchFailure, &LaunchError{Err: fmt.Errorf("no command specified")}
	}

	cmd := exec.CommandContext(ctx, spec.Argv[0], spec.Argv[1:]...)
	cmd.Env = spec.Env
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	// Run the tool in its own process group so terminal signals reach it
	// through our forwarding path, not twice (Unix only).
	setProcessGroup(cmd)

	if err := cmd.Start(); err != nil {
		return exitcode.LaunchFailure, &LaunchError{Tool: spec.Argv[0], Err: err}
	}

	r.log.Debug("validation tool started", "tool", spec.Argv[0], "pid", cmd.Process.Pid)

	// Forward interrupt and terminate to the child; only those two are
	// portable to Windows.
	sigChan := make(chan os.Signal, 1)
	registerSignals(sigChan)

	go func() {
		for sig := range sigChan {
			if cmd.Process != nil {
				_ = cmd.Process.Signal(sig)
			}
		}
	}()

	waitErr := cmd.Wait()

	signal.Stop(sigChan)
	close(sigChan)

	if waitErr != nil {
		if exitError, ok := waitErr.(*exec.ExitError); ok {
			return exitError.ExitCode(), nil
		}
		return exitcode.LaunchFailure, &LaunchError{Tool: spec.Argv[0], Err: waitErr}
	}

	return exitcode.Success, nil
}
