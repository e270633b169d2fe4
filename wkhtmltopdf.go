package oas2pdf

import "context"

// wkhtmltopdfRenderer prints an HTML file to PDF with wkhtmltopdf:
// print-media CSS emulation, local file access, uniform margins on all four
// sides, and an explicit orientation argument when landscape.
type wkhtmltopdfRenderer struct {
	bin       string
	landscape bool
	margin    string
	runner    CommandRunner
}

var _ renderer = (*wkhtmltopdfRenderer)(nil)

func (r *wkhtmltopdfRenderer) Name() string { return "wkhtmltopdf" }

func (r *wkhtmltopdfRenderer) Render(ctx context.Context, htmlPath, pdfPath string) error {
	args := []string{
		"--print-media-type",
		"--enable-local-file-access",
	}
	if r.landscape {
		args = append(args, "--orientation", "Landscape")
	}
	args = append(args,
		"--margin-top", r.margin,
		"--margin-right", r.margin,
		"--margin-bottom", r.margin,
		"--margin-left", r.margin,
		htmlPath, pdfPath,
	)

	return r.runner.Run(ctx, r.bin, args...)
}
