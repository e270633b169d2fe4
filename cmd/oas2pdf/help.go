package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: oas2pdf <command> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  convert    Convert OpenAPI specs to PDF (default when flags are given)")
	fmt.Fprintln(w, "  doctor     Diagnose external tool availability")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'oas2pdf help <command>' for details on a specific command.")
}

// printConvertUsage prints usage for the convert command.
func printConvertUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: oas2pdf convert --src <dir> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert every OpenAPI spec (.yaml/.yml/.json) under --src to PDF.")
	fmt.Fprintln(w, "Pipeline: spec -> ReDoc HTML -> Chrome headless (wkhtmltopdf fallback).")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "      --src <dir>           Source directory with specs (required)")
	fmt.Fprintln(w, "      --out <dir>           Output directory, created if absent (default ./pdf)")
	fmt.Fprintln(w, "      --recursive           Scan subdirectories too")
	fmt.Fprintln(w, "      --keep-html           Keep intermediate HTML next to each PDF")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Page:")
	fmt.Fprintln(w, "      --landscape           Landscape orientation")
	fmt.Fprintln(w, "      --margin <s>          Page margin, wkhtmltopdf only (default 12mm)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Tools:")
	fmt.Fprintln(w, "      --chrome-path <path>  Explicit Chrome/Edge/Chromium executable")
	fmt.Fprintln(w, "      --wkhtml-path <path>  Explicit wkhtmltopdf executable")
	fmt.Fprintln(w, "      --redoc-args <s>      Extra args forwarded to redoc-cli,")
	fmt.Fprintln(w, "                            whitespace-separated (no shell quoting)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show timing")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return
	}

	switch args[0] {
	case "convert":
		printConvertUsage(env.Stdout)
	case "doctor":
		fmt.Fprintln(env.Stdout, "Usage: oas2pdf doctor [--json]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Check that ReDoc, Chrome and wkhtmltopdf can be found.")
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: oas2pdf version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: oas2pdf help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
	}
}
