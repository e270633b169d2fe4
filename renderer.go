package oas2pdf

import (
	"context"
	"fmt"

	"github.com/alnah/go-oas2pdf/internal/hints"
)

// renderer abstracts HTML to PDF rendering to allow interchangeable
// backends.
type renderer interface {
	// Render produces a PDF at pdfPath from the HTML file at htmlPath.
	Render(ctx context.Context, htmlPath, pdfPath string) error
	// Name identifies the backend in progress and warning output.
	Name() string
}

// renderChain tries backends in order, falling through to the next on a
// non-zero exit. Adding a backend means appending to the list, not nesting
// another conditional.
type renderChain struct {
	backends []renderer
	warnf    func(format string, args ...any)
}

// newRenderChain builds the backend order for one run: Chrome first when
// available, wkhtmltopdf second. An empty chain is the caller's error.
func newRenderChain(tools Toolset, in Input, runner CommandRunner, warnf func(string, ...any)) *renderChain {
	var backends []renderer
	if tools.Chrome != "" {
		backends = append(backends, &chromeRenderer{
			bin:       tools.Chrome,
			landscape: in.Landscape,
			runner:    runner,
		})
	}
	if tools.Wkhtml != "" {
		backends = append(backends, &wkhtmltopdfRenderer{
			bin:       tools.Wkhtml,
			landscape: in.Landscape,
			margin:    in.margin(),
			runner:    runner,
		})
	}
	return &renderChain{backends: backends, warnf: warnf}
}

// Render runs the chain for one file. A missing-executable failure is not
// retried: the tool was present at discovery time, so its disappearance is
// an environment problem the next backend would not fix meaningfully better
// than reporting it.
func (c *renderChain) Render(ctx context.Context, htmlPath, pdfPath string) error {
	if len(c.backends) == 0 {
		return fmt.Errorf("%w%s", ErrNoRenderer, hints.ForRenderer())
	}

	var lastErr error
	for i, backend := range c.backends {
		err := backend.Render(ctx, htmlPath, pdfPath)
		if err == nil {
			return nil
		}
		lastErr = err

		if cmdErr, ok := asCommandError(err); ok && cmdErr.NotFound() {
			return err
		}
		if i+1 < len(c.backends) {
			c.warnf("%s failed, retrying with %s", backend.Name(), c.backends[i+1].Name())
		}
	}
	return fmt.Errorf("%w: %w", ErrRenderFailed, lastErr)
}
