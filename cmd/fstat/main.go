// Package main provides the fstat command line tool. It opens each
// argument path through the portable file handle, prints the normalized
// metadata, and can refresh timestamps. Rendering options come from an
// optional TOML config file.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/isseis/go-portable-fileio/internal/inspect"
	"github.com/isseis/go-portable-fileio/internal/logging"
	"github.com/isseis/go-portable-fileio/internal/terminal"
)

// Error definitions
var (
	ErrNoPaths = errors.New("at least one path is required")
)

var (
	configPath   = flag.String("config", "", "path to TOML config file")
	logLevel     = flag.String("log-level", "info", "log level (debug, info, warn, error)")
	touch        = flag.Bool("touch", false, "set access and modification times to now before reporting")
	forceColor   = flag.Bool("color", false, "force colored output")
	disableColor = flag.Bool("no-color", false, "disable colored output")
)

func main() {
	runID := logging.GenerateRunID()

	if err := run(runID); err != nil {
		fmt.Fprintf(os.Stderr, "fstat: %v\n", err)
		os.Exit(1)
	}
}

func run(runID string) error {
	flag.Parse()

	logger, err := logging.Setup(os.Stderr, *logLevel, runID)
	if err != nil {
		return err
	}

	paths := flag.Args()
	if len(paths) == 0 {
		return ErrNoPaths
	}

	cfg := inspect.DefaultConfig()
	if *configPath != "" {
		cfg, err = inspect.LoadConfig(*configPath)
		if err != nil {
			return err
		}
	}

	ins := inspect.NewInspector(cfg, colorEnabled(cfg), logger)

	failed := 0
	for _, path := range paths {
		report, err := inspectPath(ins, path)
		if err != nil {
			logger.Error("inspection failed", slog.String("path", path), slog.Any("error", err))
			ins.RenderError(os.Stdout, path, err)
			failed++
			continue
		}
		if err := ins.Render(os.Stdout, report); err != nil {
			return err
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d paths failed", failed, len(paths))
	}
	return nil
}

func inspectPath(ins *inspect.Inspector, path string) (inspect.Report, error) {
	if *touch {
		return ins.Touch(path, time.Now())
	}
	return ins.Inspect(path)
}

// colorEnabled resolves the config's color mode against the terminal
// capabilities and the command line overrides.
func colorEnabled(cfg inspect.Config) bool {
	switch cfg.Color {
	case inspect.ColorAlways:
		return true
	case inspect.ColorNever:
		return false
	}

	caps := terminal.NewCapabilities(terminal.Options{
		PreferenceOptions: terminal.PreferenceOptions{
			ForceColor:   *forceColor,
			DisableColor: *disableColor,
		},
	})
	return caps.SupportsColor()
}
