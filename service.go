package oas2pdf

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/alnah/go-oas2pdf/internal/fileutil"
	"github.com/alnah/go-oas2pdf/internal/hints"
)

// Directory permissions for created output directories.
const dirPermissions = 0o750

// Service orchestrates the spec-to-PDF pipeline: tool resolution, spec
// discovery, then a sequential per-file bundle-and-render loop. One spec is
// fully processed before the next begins; the first fatal error aborts the
// remaining batch.
type Service struct {
	locator *Locator
	runner  CommandRunner
	stdout  io.Writer
	stderr  io.Writer
}

// New creates a Service with default configuration. Use options to inject
// test doubles or redirect output.
func New(opts ...Option) *Service {
	s := &Service{
		locator: NewLocator(DefaultProbes()),
		runner:  &ExecRunner{},
		stdout:  os.Stdout,
		stderr:  os.Stderr,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run executes one batch conversion. The context cancels in-flight tool
// invocations; the run-scoped temporary directory holding intermediate HTML
// is removed on every exit path.
func (s *Service) Run(ctx context.Context, in Input) error {
	if err := in.Validate(); err != nil {
		return err
	}

	outDir, err := filepath.Abs(in.OutputDir)
	if err != nil {
		return fmt.Errorf("resolving output directory: %w", err)
	}
	if err := os.MkdirAll(outDir, dirPermissions); err != nil {
		return fmt.Errorf("%w: %v%s", ErrOutputDir, err, hints.ForOutputDirectory())
	}

	tools := s.locator.Locate(in.ChromePath, in.WkhtmlPath)
	if !tools.HasRenderer() {
		return fmt.Errorf("%w%s", ErrNoRenderer, hints.ForRenderer())
	}
	if !tools.HasBundler() {
		return fmt.Errorf("%w%s", ErrNoBundler, hints.ForBundler())
	}

	specs, err := DiscoverSpecs(in.SourceDir, in.Recursive)
	if err != nil {
		return err
	}
	if len(specs) == 0 {
		return fmt.Errorf("%w in %s", ErrNoSpecs, in.SourceDir)
	}

	tmpDir, err := os.MkdirTemp("", "oas2pdf-html-")
	if err != nil {
		return fmt.Errorf("creating temp directory: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	bundle := newRedocBundler(tools, s.runner)
	chain := newRenderChain(tools, in, s.runner, func(format string, args ...any) {
		fmt.Fprintf(s.stderr, "warning: "+format+"\n", args...)
	})

	for _, spec := range specs {
		if err := s.convertOne(ctx, spec, outDir, tmpDir, in, bundle, chain); err != nil {
			return err
		}
	}

	fmt.Fprintf(s.stdout, "\nDone. PDFs available in %s\n", outDir)
	return nil
}

// convertOne bundles a single spec to HTML and renders it to PDF. Artifact
// names derive from the spec's base name with the extension stripped.
func (s *Service) convertOne(ctx context.Context, spec, outDir, tmpDir string, in Input, bundle bundler, chain *renderChain) error {
	name := baseName(spec)
	htmlTmp := filepath.Join(tmpDir, name+".html")
	pdfPath := filepath.Join(outDir, name+".pdf")

	fmt.Fprintf(s.stdout, "[%s] bundling with ReDoc\n", name)
	if err := bundle.Bundle(ctx, spec, htmlTmp, in.RedocArgs); err != nil {
		return fmt.Errorf("%w for %s: %w", ErrBundleFailed, spec, err)
	}

	// Retention failure is the one non-fatal error path: the PDF is still
	// produced from the temp copy.
	if in.KeepHTML {
		htmlOut := filepath.Join(outDir, name+".html")
		if err := fileutil.CopyFile(htmlTmp, htmlOut); err != nil {
			fmt.Fprintf(s.stderr, "warning: could not keep HTML for %s: %v\n", name, err)
		}
	}

	fmt.Fprintf(s.stdout, "[%s] rendering HTML to PDF\n", name)
	if err := chain.Render(ctx, htmlTmp, pdfPath); err != nil {
		return err
	}

	fmt.Fprintf(s.stdout, "[%s] created %s\n", name, pdfPath)
	return nil
}
