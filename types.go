package oas2pdf

import (
	"fmt"
	"io"
	"regexp"
)

// Recognized OpenAPI spec file extensions, matched case-sensitively the way
// the shell glob would.
var specExtensions = []string{".yaml", ".yml", ".json"}

// DefaultMargin is the page margin applied by the wkhtmltopdf backend when
// none is specified. The Chrome backend uses its own print defaults.
const DefaultMargin = "12mm"

// virtualTimeBudgetMS bounds how long headless Chrome lets the ReDoc page
// settle before printing.
const virtualTimeBudgetMS = 20000

// Input describes one batch conversion run. Fields mirror the CLI flags and
// are fixed for the whole run.
type Input struct {
	SourceDir string // directory scanned for specs (required)
	OutputDir string // destination for PDFs, created if absent
	Recursive bool   // scan subdirectories too
	KeepHTML  bool   // copy the intermediate HTML next to each PDF

	Landscape bool   // landscape orientation
	Margin    string // page margin, wkhtmltopdf backend only ("" = DefaultMargin)

	ChromePath string   // explicit browser executable override
	WkhtmlPath string   // explicit wkhtmltopdf executable override
	RedocArgs  []string // extra arguments forwarded verbatim to redoc-cli
}

// marginPattern accepts wkhtmltopdf's margin forms: a number with an
// optional mm/cm/in/px unit.
var marginPattern = regexp.MustCompile(`^\d+(\.\d+)?(mm|cm|in|px)?$`)

// Validate checks that the input is runnable before any tool is invoked.
func (in Input) Validate() error {
	if in.SourceDir == "" {
		return ErrEmptySource
	}
	if in.Margin != "" && !marginPattern.MatchString(in.Margin) {
		return fmt.Errorf("%w: %q (want e.g. 12mm, 0.5in, 10px)", ErrInvalidMargin, in.Margin)
	}
	return nil
}

// margin returns the effective margin for the wkhtmltopdf backend.
func (in Input) margin() string {
	if in.Margin == "" {
		return DefaultMargin
	}
	return in.Margin
}

// Option configures a Service.
type Option func(*Service)

// WithRunner replaces the subprocess runner. Used by tests to avoid
// spawning real processes.
func WithRunner(r CommandRunner) Option {
	if r == nil {
		panic("oas2pdf: WithRunner requires a non-nil runner")
	}
	return func(s *Service) { s.runner = r }
}

// WithProbes replaces the filesystem/PATH probes used for tool discovery.
func WithProbes(p Probes) Option {
	return func(s *Service) { s.locator = NewLocator(p) }
}

// WithStdout sets the writer for per-file progress output.
func WithStdout(w io.Writer) Option {
	return func(s *Service) { s.stdout = w }
}

// WithStderr sets the writer for warnings.
func WithStderr(w io.Writer) Option {
	return func(s *Service) { s.stderr = w }
}
