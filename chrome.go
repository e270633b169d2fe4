package oas2pdf

import (
	"context"
	"fmt"
	"net/url"
	"path/filepath"
	"strings"
)

// chromeRenderer prints a local HTML file to PDF with headless Chrome,
// Edge or Chromium. GPU acceleration is disabled and the built-in
// header/footer suppressed; the page gets a bounded virtual time budget to
// settle before printing.
type chromeRenderer struct {
	bin       string
	landscape bool
	runner    CommandRunner
}

var _ renderer = (*chromeRenderer)(nil)

func (r *chromeRenderer) Name() string { return "Chrome headless" }

func (r *chromeRenderer) Render(ctx context.Context, htmlPath, pdfPath string) error {
	uri, err := fileURI(htmlPath)
	if err != nil {
		return err
	}

	args := []string{
		"--headless=new",
		"--disable-gpu",
		"--print-to-pdf=" + pdfPath,
		"--print-to-pdf-no-header",
		fmt.Sprintf("--virtual-time-budget=%d", virtualTimeBudgetMS),
	}
	if r.landscape {
		args = append(args, "--landscape")
	}
	args = append(args, uri)

	return r.runner.Run(ctx, r.bin, args...)
}

// fileURI converts a filesystem path to a file:// URL Chrome accepts on
// every platform, including Windows drive paths (file:///C:/...).
func fileURI(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", path, err)
	}
	slashed := filepath.ToSlash(abs)
	if !strings.HasPrefix(slashed, "/") {
		slashed = "/" + slashed
	}
	u := url.URL{Scheme: "file", Path: slashed}
	return u.String(), nil
}
