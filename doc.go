// Package oas2pdf batch-converts OpenAPI specifications (YAML/JSON) to PDF
// by orchestrating external tools: ReDoc bundles each spec into a single
// self-contained HTML page, then headless Chrome (or wkhtmltopdf as a
// fallback) prints that page to PDF.
//
// # Quick Start
//
// Create a service and run a batch:
//
//	svc := oas2pdf.New()
//	err := svc.Run(ctx, oas2pdf.Input{
//	    SourceDir: "./specs",
//	    OutputDir: "./pdf",
//	})
//
// Run scans SourceDir for .yaml/.yml/.json files, bundles each one with
// redoc-cli (preferring the npx-wrapped form, which installs the package on
// demand), and renders the resulting HTML to <OutputDir>/<name>.pdf. The
// intermediate HTML lives in a run-scoped temporary directory removed on
// every exit path; set Input.KeepHTML to also copy it next to each PDF.
//
// # Tool Discovery
//
// External tools are located once per run: explicit override paths first,
// then an ordered candidate search on PATH, then OS-specific well-known
// install directories (Windows Program Files for Chrome/Edge, %AppData%\npm
// for npm shims). Chrome discovery additionally consults go-rod's launcher,
// which knows per-platform install locations. A missing bundler, or a run
// with neither renderer installed, aborts before any file is processed.
//
// # Failure Policy
//
// The run is fail-fast: the first bundling or rendering error aborts the
// remaining batch. The only retry is the per-file fallback from the Chrome
// backend to wkhtmltopdf. Subprocess failures carry the failing command and
// its exit code via CommandError.
//
// # Configuration
//
// Use functional options to customize the service:
//
//	svc := oas2pdf.New(
//	    oas2pdf.WithStdout(os.Stdout),
//	    oas2pdf.WithRunner(myRunner),   // tests
//	    oas2pdf.WithProbes(myProbes),   // tests
//	)
package oas2pdf
