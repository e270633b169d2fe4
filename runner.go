package oas2pdf

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
)

// CommandRunner abstracts command execution to enable testing without real
// subprocesses.
type CommandRunner interface {
	Run(ctx context.Context, name string, args ...string) error
}

// ExecRunner implements CommandRunner using os/exec. Tool output is
// captured and surfaced only on failure; the tools themselves write their
// artifacts to disk.
type ExecRunner struct{}

// Compile-time interface implementation check.
var _ CommandRunner = (*ExecRunner)(nil)

// Run executes the command and classifies failures: a missing binary wraps
// ErrExecNotFound with exit code 127, a non-zero exit carries the
// subprocess's own code. Both come back as *CommandError.
func (r *ExecRunner) Run(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err == nil {
		return nil
	}

	argv := append([]string{name}, args...)

	if errors.Is(err, exec.ErrNotFound) {
		return &CommandError{Argv: argv, ExitCode: 127, Err: ErrExecNotFound}
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		wrapped := err
		if msg := bytes.TrimSpace(stderr.Bytes()); len(msg) > 0 {
			wrapped = fmt.Errorf("%s: %w", msg, err)
		}
		return &CommandError{Argv: argv, ExitCode: exitErr.ExitCode(), Err: wrapped}
	}

	// Start failures other than ErrNotFound (permissions, bad path).
	return &CommandError{Argv: argv, ExitCode: 127, Err: ErrExecNotFound}
}
