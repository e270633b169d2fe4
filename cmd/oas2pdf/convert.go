package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	oas2pdf "github.com/alnah/go-oas2pdf"
	"github.com/alnah/go-oas2pdf/internal/config"
)

// Sentinel errors for CLI operations.
var ErrNoSource = errors.New("no source directory specified (--src)")

// defaultOutputDir receives PDFs when neither flag, env, nor config names
// one.
const defaultOutputDir = "./pdf"

// BatchRunner is the interface for the conversion service.
type BatchRunner interface {
	Run(ctx context.Context, in oas2pdf.Input) error
}

// Compile-time interface implementation check.
var _ BatchRunner = (*oas2pdf.Service)(nil)

// runConvertCmd parses flags, builds the service, and maps the outcome to
// an exit code.
func runConvertCmd(ctx context.Context, args []string, env *Environment) int {
	flags, err := parseConvertFlags(args)
	if err != nil {
		return ExitUsage
	}

	stdout := env.Stdout
	if flags.common.quiet {
		stdout = io.Discard
	}
	svc := oas2pdf.New(
		oas2pdf.WithStdout(stdout),
		oas2pdf.WithStderr(env.Stderr),
	)

	if err := runConvert(ctx, flags, svc, env); err != nil {
		fmt.Fprintln(env.Stderr, err)
		return exitCodeFor(err)
	}
	return ExitSuccess
}

// runConvert resolves configuration and delegates to the service.
// Precedence: CLI flags > environment variables > config file > defaults.
func runConvert(ctx context.Context, flags *convertFlags, svc BatchRunner, env *Environment) error {
	envCfg := loadEnvConfig()
	warnUnknownEnvVars(env.Stderr)

	cfg := config.DefaultConfig()
	configName := flags.common.config
	if configName == "" {
		configName = envCfg.ConfigPath
	}
	if configName != "" {
		var err error
		cfg, err = config.LoadConfig(configName)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
	}

	applyEnvConfig(envCfg, cfg)
	mergeFlags(flags, cfg)

	if cfg.Input.SourceDir == "" {
		return ErrNoSource
	}
	if cfg.Output.Dir == "" {
		cfg.Output.Dir = defaultOutputDir
	}

	input := oas2pdf.Input{
		SourceDir:  cfg.Input.SourceDir,
		OutputDir:  cfg.Output.Dir,
		Recursive:  cfg.Input.Recursive,
		KeepHTML:   cfg.Output.KeepHTML,
		Landscape:  cfg.Page.Landscape,
		Margin:     cfg.Page.Margin,
		ChromePath: cfg.Tools.ChromePath,
		WkhtmlPath: cfg.Tools.WkhtmlPath,
		RedocArgs:  cfg.Redoc.ExtraArgs,
	}

	start := env.Now()
	if err := svc.Run(ctx, input); err != nil {
		return err
	}
	if flags.common.verbose {
		fmt.Fprintf(env.Stderr, "completed in %v\n", env.Now().Sub(start).Round(time.Millisecond))
	}
	return nil
}

// mergeFlags merges CLI flags into config. CLI values override config
// values; boolean flags can only enable, matching the CLI surface.
func mergeFlags(flags *convertFlags, cfg *config.Config) {
	if flags.io.src != "" {
		cfg.Input.SourceDir = flags.io.src
	}
	if flags.io.out != "" {
		cfg.Output.Dir = flags.io.out
	}
	if flags.io.recursive {
		cfg.Input.Recursive = true
	}
	if flags.io.keepHTML {
		cfg.Output.KeepHTML = true
	}
	if flags.page.landscape {
		cfg.Page.Landscape = true
	}
	if flags.page.margin != "" {
		cfg.Page.Margin = flags.page.margin
	}
	if flags.tools.chromePath != "" {
		cfg.Tools.ChromePath = flags.tools.chromePath
	}
	if flags.tools.wkhtmlPath != "" {
		cfg.Tools.WkhtmlPath = flags.tools.wkhtmlPath
	}
	if flags.redocArgs != "" {
		cfg.Redoc.ExtraArgs = strings.Fields(flags.redocArgs)
	}
}
