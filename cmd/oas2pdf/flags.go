package main

import (
	"os"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// ioFlags holds source/destination flags.
type ioFlags struct {
	src       string
	out       string
	recursive bool
	keepHTML  bool
}

// pageFlags holds page layout flags.
type pageFlags struct {
	landscape bool
	margin    string
}

// toolFlags holds explicit executable overrides.
type toolFlags struct {
	chromePath string
	wkhtmlPath string
}

// convertFlags holds all flags for the convert command.
type convertFlags struct {
	common    commonFlags
	io        ioFlags
	page      pageFlags
	tools     toolFlags
	redocArgs string
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show resolved tools and timing")
}

// addIOFlags adds source/destination flags to a FlagSet.
func addIOFlags(fs *flag.FlagSet, f *ioFlags) {
	fs.StringVar(&f.src, "src", "", "source directory with .yaml/.yml/.json specs")
	fs.StringVar(&f.out, "out", "", "output directory for PDFs (default ./pdf)")
	fs.BoolVar(&f.recursive, "recursive", false, "scan subdirectories too")
	fs.BoolVar(&f.keepHTML, "keep-html", false, "keep intermediate HTML next to each PDF")
}

// addPageFlags adds page layout flags to a FlagSet.
func addPageFlags(fs *flag.FlagSet, f *pageFlags) {
	fs.BoolVar(&f.landscape, "landscape", false, "render PDF in landscape orientation")
	fs.StringVar(&f.margin, "margin", "", "page margin, wkhtmltopdf only (default 12mm)")
}

// addToolFlags adds executable override flags to a FlagSet.
func addToolFlags(fs *flag.FlagSet, f *toolFlags) {
	fs.StringVar(&f.chromePath, "chrome-path", "", "explicit Chrome/Edge/Chromium executable")
	fs.StringVar(&f.wkhtmlPath, "wkhtml-path", "", "explicit wkhtmltopdf executable")
}

// parseConvertFlags parses convert command flags.
func parseConvertFlags(args []string) (*convertFlags, error) {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	f := &convertFlags{}

	addCommonFlags(fs, &f.common)
	addIOFlags(fs, &f.io)
	addPageFlags(fs, &f.page)
	addToolFlags(fs, &f.tools)
	fs.StringVar(&f.redocArgs, "redoc-args", "", "extra whitespace-separated args for redoc-cli")

	fs.Usage = func() { printConvertUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return f, nil
}
