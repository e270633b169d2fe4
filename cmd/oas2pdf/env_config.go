package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alnah/go-oas2pdf/internal/config"
)

// envConfig holds configuration from environment variables. Provides
// CI/CD-friendly overrides without requiring a YAML file.
type envConfig struct {
	ConfigPath string // OAS2PDF_CONFIG: config file name or path
	SourceDir  string // OAS2PDF_SRC: source directory
	OutputDir  string // OAS2PDF_OUT: output directory
	Margin     string // OAS2PDF_MARGIN: wkhtmltopdf page margin
	ChromePath string // OAS2PDF_CHROME_PATH: browser executable
	WkhtmlPath string // OAS2PDF_WKHTML_PATH: wkhtmltopdf executable
	RedocArgs  string // OAS2PDF_REDOC_ARGS: extra redoc-cli arguments
}

// knownEnvVars lists valid OAS2PDF_* environment variables. Used to detect
// typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"OAS2PDF_CONFIG":      true,
	"OAS2PDF_SRC":         true,
	"OAS2PDF_OUT":         true,
	"OAS2PDF_MARGIN":      true,
	"OAS2PDF_CHROME_PATH": true,
	"OAS2PDF_WKHTML_PATH": true,
	"OAS2PDF_REDOC_ARGS":  true,
	"OAS2PDF_CONTAINER":   true, // doctor-only container detection override
}

// loadEnvConfig reads configuration from environment variables.
func loadEnvConfig() *envConfig {
	return &envConfig{
		ConfigPath: os.Getenv("OAS2PDF_CONFIG"),
		SourceDir:  os.Getenv("OAS2PDF_SRC"),
		OutputDir:  os.Getenv("OAS2PDF_OUT"),
		Margin:     os.Getenv("OAS2PDF_MARGIN"),
		ChromePath: os.Getenv("OAS2PDF_CHROME_PATH"),
		WkhtmlPath: os.Getenv("OAS2PDF_WKHTML_PATH"),
		RedocArgs:  os.Getenv("OAS2PDF_REDOC_ARGS"),
	}
}

// warnUnknownEnvVars logs warnings for unrecognized OAS2PDF_* variables.
// Helps catch typos like OAS2PDF_CHROME instead of OAS2PDF_CHROME_PATH.
func warnUnknownEnvVars(w io.Writer) {
	for _, env := range os.Environ() {
		if strings.HasPrefix(env, "OAS2PDF_") {
			name := strings.SplitN(env, "=", 2)[0]
			if !knownEnvVars[name] {
				fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
			}
		}
	}
}

// applyEnvConfig applies environment variable values to config. Only sets
// values the config left empty, preserving the precedence
// CLI flags > env vars > config file > defaults (flags are merged later).
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.SourceDir != "" && cfg.Input.SourceDir == "" {
		cfg.Input.SourceDir = env.SourceDir
	}
	if env.OutputDir != "" && cfg.Output.Dir == "" {
		cfg.Output.Dir = env.OutputDir
	}
	if env.Margin != "" && cfg.Page.Margin == "" {
		cfg.Page.Margin = env.Margin
	}
	if env.ChromePath != "" && cfg.Tools.ChromePath == "" {
		cfg.Tools.ChromePath = env.ChromePath
	}
	if env.WkhtmlPath != "" && cfg.Tools.WkhtmlPath == "" {
		cfg.Tools.WkhtmlPath = env.WkhtmlPath
	}
	if env.RedocArgs != "" && len(cfg.Redoc.ExtraArgs) == 0 {
		cfg.Redoc.ExtraArgs = strings.Fields(env.RedocArgs)
	}
}
