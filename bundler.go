package oas2pdf

import (
	"context"
	"fmt"

	"github.com/alnah/go-oas2pdf/internal/hints"
)

// bundler abstracts spec-to-HTML bundling to allow different backends.
type bundler interface {
	Bundle(ctx context.Context, specPath, outHTML string, extraArgs []string) error
}

// redocBundler invokes redoc-cli to bundle an OpenAPI spec into one
// self-contained HTML file. The npx-wrapped form is preferred over a global
// install because `npx --yes` fetches the package on demand.
type redocBundler struct {
	npx    string // npx binary, "" if absent
	redoc  string // global redoc-cli binary, "" if absent
	runner CommandRunner
}

// Compile-time interface implementation check.
var _ bundler = (*redocBundler)(nil)

func newRedocBundler(tools Toolset, runner CommandRunner) *redocBundler {
	return &redocBundler{npx: tools.Npx, redoc: tools.Redoc, runner: runner}
}

// Bundle writes exactly one HTML file at outHTML. Extra arguments are
// forwarded to redoc-cli verbatim, after the output flag.
func (b *redocBundler) Bundle(ctx context.Context, specPath, outHTML string, extraArgs []string) error {
	switch {
	case b.npx != "":
		args := append([]string{"--yes", "redoc-cli", "bundle", specPath, "-o", outHTML}, extraArgs...)
		return b.runner.Run(ctx, b.npx, args...)
	case b.redoc != "":
		args := append([]string{"bundle", specPath, "-o", outHTML}, extraArgs...)
		return b.runner.Run(ctx, b.redoc, args...)
	default:
		return fmt.Errorf("%w%s", ErrNoBundler, hints.ForBundler())
	}
}
