package main

import (
	"errors"

	oas2pdf "github.com/alnah/go-oas2pdf"
	"github.com/alnah/go-oas2pdf/internal/config"
)

// Exit codes for the oas2pdf CLI. Follows Unix conventions: 0=success,
// 1=general, 2=usage, 127=command not found. A failing subprocess's own
// exit code is propagated so callers can tell whose failure it was.
const (
	ExitSuccess     = 0   // every file converted
	ExitGeneral     = 1   // no renderer, no specs, no bundler, unexpected error
	ExitUsage       = 2   // invalid flags, config, or validation
	ExitExecMissing = 127 // a required executable vanished at invocation time
)

// exitCodeFor returns the appropriate exit code for an error. It uses
// errors.Is/As to check wrapped errors, so callers must use
// fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Subprocess failures: 127 for missing executables, otherwise the
	// child's own exit code.
	var cmdErr *oas2pdf.CommandError
	if errors.As(err, &cmdErr) {
		if cmdErr.NotFound() {
			return ExitExecMissing
		}
		if cmdErr.ExitCode > 0 {
			return cmdErr.ExitCode
		}
		return ExitGeneral
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrNoSource) ||
		errors.Is(err, oas2pdf.ErrEmptySource) ||
		errors.Is(err, oas2pdf.ErrInvalidMargin) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) {
		return ExitUsage
	}

	return ExitGeneral
}
