package oas2pdf

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/go-rod/rod/lib/launcher"
)

// Probes holds the environment lookups used for tool discovery. Injectable
// so tests can simulate any combination of installed tools without touching
// PATH or the real filesystem.
type Probes struct {
	LookPath   func(name string) (string, error) // PATH search
	FileExists func(path string) bool            // regular-file check
	Getenv     func(key string) string
	GOOS       string

	// BrowserLookPath finds an installed browser in per-OS well-known
	// locations. Defaults to go-rod's launcher.LookPath.
	BrowserLookPath func() (string, bool)
}

// DefaultProbes returns probes backed by the real environment.
func DefaultProbes() Probes {
	return Probes{
		LookPath: exec.LookPath,
		FileExists: func(path string) bool {
			info, err := os.Stat(path)
			return err == nil && !info.IsDir()
		},
		Getenv:          os.Getenv,
		GOOS:            runtime.GOOS,
		BrowserLookPath: launcher.LookPath,
	}
}

// Toolset holds the resolved executable locations for one run. An empty
// string means the tool was not found; absence is reported to the caller,
// which decides whether it is fatal.
type Toolset struct {
	Chrome string // Chrome, Edge or Chromium binary
	Wkhtml string // wkhtmltopdf binary
	Npx    string // npx (preferred bundler entry point)
	Redoc  string // globally installed redoc-cli
}

// HasRenderer reports whether at least one PDF backend is available.
func (t Toolset) HasRenderer() bool { return t.Chrome != "" || t.Wkhtml != "" }

// HasBundler reports whether ReDoc can be invoked at all.
func (t Toolset) HasBundler() bool { return t.Npx != "" || t.Redoc != "" }

// Locator finds installed executables using an ordered candidate list and
// OS-specific well-known install paths.
type Locator struct {
	probes Probes
}

// NewLocator creates a Locator with the given probes.
func NewLocator(probes Probes) *Locator {
	return &Locator{probes: probes}
}

// Browser binary names searched on PATH, in preference order. The .exe
// variants cost nothing off Windows: LookPath simply misses them.
var chromeCandidates = []string{
	"chrome.exe", "msedge.exe",
	"google-chrome", "chromium", "chromium-browser", "msedge",
}

// Well-known Windows install directories for Chrome and Edge.
var chromeWindowsGuesses = []string{
	`C:\Program Files\Google\Chrome\Application\chrome.exe`,
	`C:\Program Files (x86)\Google\Chrome\Application\chrome.exe`,
	`C:\Program Files (x86)\Microsoft\Edge\Application\msedge.exe`,
	`C:\Program Files\Microsoft\Edge\Application\msedge.exe`,
}

// Locate resolves every tool once. Overrides are used when they exist on
// disk and otherwise ignored in favor of discovery.
func (l *Locator) Locate(chromeOverride, wkhtmlOverride string) Toolset {
	return Toolset{
		Chrome: l.findChrome(chromeOverride),
		Wkhtml: l.findWkhtml(wkhtmlOverride),
		Npx:    l.findNpmShim("npx"),
		Redoc:  l.findNpmShim("redoc-cli"),
	}
}

// findChrome locates a browser binary: override, PATH candidates, rod's
// per-OS lookup, then Windows install guesses.
func (l *Locator) findChrome(override string) string {
	if override != "" && l.probes.FileExists(override) {
		return override
	}
	if p := l.whichMany(chromeCandidates); p != "" {
		return p
	}
	if l.probes.BrowserLookPath != nil {
		if p, found := l.probes.BrowserLookPath(); found {
			return p
		}
	}
	if l.probes.GOOS == "windows" {
		for _, guess := range chromeWindowsGuesses {
			if l.probes.FileExists(guess) {
				return guess
			}
		}
	}
	return ""
}

func (l *Locator) findWkhtml(override string) string {
	if override != "" && l.probes.FileExists(override) {
		return override
	}
	return l.whichMany([]string{"wkhtmltopdf.exe", "wkhtmltopdf"})
}

// findNpmShim locates an npm-installed command (npx or redoc-cli). On
// Windows global npm shims live under %AppData%\npm and are .cmd files
// that PATH search can miss.
func (l *Locator) findNpmShim(name string) string {
	if p := l.whichMany([]string{name + ".cmd", name}); p != "" {
		return p
	}
	if l.probes.GOOS == "windows" {
		if appData := l.probes.Getenv("AppData"); appData != "" {
			guess := filepath.Join(appData, "npm", name+".cmd")
			if l.probes.FileExists(guess) {
				return guess
			}
		}
	}
	return ""
}

// whichMany returns the first candidate found on PATH.
func (l *Locator) whichMany(candidates []string) string {
	for _, c := range candidates {
		if p, err := l.probes.LookPath(c); err == nil {
			return p
		}
	}
	return ""
}
