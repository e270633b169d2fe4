// Package hints provides actionable error hints for common failure
// scenarios. Hints are formatted consistently as "\n  hint: <text>" for
// appending to error messages.
package hints

import (
	"runtime"
	"strings"
)

// GOOS is swappable for testing platform-specific hints.
var GOOS = func() string { return runtime.GOOS }

// ForRenderer returns installation hints when neither Chrome nor
// wkhtmltopdf was found.
func ForRenderer() string {
	switch GOOS() {
	case "windows":
		return formatHints([]string{
			"install Chrome: winget install -e --id Google.Chrome",
			"or wkhtmltopdf: winget install wkhtmltopdf",
		})
	case "darwin":
		return formatHints([]string{
			"install Chrome or: brew install --cask wkhtmltopdf",
		})
	default:
		return formatHints([]string{
			"install Chromium or: apt install wkhtmltopdf",
		})
	}
}

// ForBundler returns installation hints when neither npx nor redoc-cli was
// found.
func ForBundler() string {
	return formatHints([]string{
		"install Node LTS (includes npx)",
		"or npm i -g redoc-cli",
	})
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
