package oas2pdf

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for library operations.
var (
	ErrNoSpecs       = errors.New("no .yaml/.yml/.json files found")
	ErrNoBundler     = errors.New("neither npx nor redoc-cli found")
	ErrNoRenderer    = errors.New("neither Chrome/Chromium nor wkhtmltopdf found")
	ErrBundleFailed  = errors.New("ReDoc bundling failed")
	ErrRenderFailed  = errors.New("PDF rendering failed")
	ErrExecNotFound  = errors.New("executable not found")
	ErrSourceDir     = errors.New("source directory not usable")
	ErrOutputDir     = errors.New("failed to create output directory")
	ErrEmptySource   = errors.New("source directory cannot be empty")
	ErrInvalidMargin = errors.New("invalid margin")
)

// CommandError reports a failed external tool invocation. It wraps either
// ErrExecNotFound (the binary vanished between discovery and invocation) or
// the underlying exec error, and records the exit code for propagation.
type CommandError struct {
	Argv     []string // full command line, argv[0] first
	ExitCode int      // subprocess exit code; 127 when not found
	Err      error    // ErrExecNotFound or the raw exec error
}

func (e *CommandError) Error() string {
	if errors.Is(e.Err, ErrExecNotFound) {
		return fmt.Sprintf("executable not found: %s", e.Argv[0])
	}
	return fmt.Sprintf("command failed: %s: %v", strings.Join(e.Argv, " "), e.Err)
}

func (e *CommandError) Unwrap() error { return e.Err }

// NotFound reports whether the command failed because the executable was
// missing rather than because it exited non-zero.
func (e *CommandError) NotFound() bool { return errors.Is(e.Err, ErrExecNotFound) }

// asCommandError extracts a *CommandError from an error chain.
func asCommandError(err error) (*CommandError, bool) {
	var cmdErr *CommandError
	ok := errors.As(err, &cmdErr)
	return cmdErr, ok
}
