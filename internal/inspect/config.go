// Package inspect reports file metadata through the portable handle.
// It loads rendering options from a TOML file and turns Stat records
// into human readable report lines.
package inspect

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/isseis/go-portable-fileio/internal/fileio"
)

// Error definitions for the config loader
var (
	// ErrInvalidColorMode indicates a color value outside auto/always/never.
	ErrInvalidColorMode = errors.New("invalid color mode")

	// ErrInvalidTimeFormat indicates an empty time format.
	ErrInvalidTimeFormat = errors.New("invalid time format")
)

// Color modes accepted by Config.Color.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config holds the rendering options for the inspector.
type Config struct {
	// TimeFormat is a Go time layout used for timestamp rendering.
	TimeFormat string `toml:"time_format"`

	// Color selects colored output: auto, always or never.
	Color string `toml:"color"`
}

// DefaultConfig returns the options used when no config file is given.
func DefaultConfig() Config {
	return Config{
		TimeFormat: time.RFC3339,
		Color:      ColorAuto,
	}
}

// Validate checks the loaded option values.
func (c Config) Validate() error {
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidColorMode, c.Color)
	}
	if c.TimeFormat == "" {
		return ErrInvalidTimeFormat
	}
	return nil
}

// LoadConfig reads and validates a TOML config file through the portable
// handle. Missing keys keep their defaults.
func LoadConfig(path string) (Config, error) {
	f, err := fileio.Open(path, fileio.FlagRead)
	if err != nil {
		return Config{}, fmt.Errorf("failed to open config: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	content, err := io.ReadAll(f.Reader())
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(content, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
