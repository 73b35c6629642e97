package terminal

import (
	"os"

	"github.com/isseis/go-portable-fileio/internal/fileio"
)

// Options contains all terminal-related configuration options
type Options struct {
	// PreferenceOptions for color settings
	PreferenceOptions PreferenceOptions
	// DetectorOptions for interactive detection
	DetectorOptions DetectorOptions
}

// Capabilities provides a unified interface for terminal capability
// detection, combining interactive detection, the handle's ANSI probe
// and explicit user preferences.
type Capabilities interface {
	IsInteractive() bool
	SupportsColor() bool
	HasExplicitUserPreference() bool
}

// DefaultCapabilities implements the Capabilities interface.
type DefaultCapabilities struct {
	interactiveDetector InteractiveDetector
	userPreference      *UserPreference
	stdout              *fileio.File
}

// NewCapabilities creates a new Capabilities instance with the given options.
func NewCapabilities(options Options) Capabilities {
	return &DefaultCapabilities{
		interactiveDetector: NewInteractiveDetector(options.DetectorOptions),
		userPreference:      NewUserPreference(options.PreferenceOptions),
		stdout:              fileio.Stdout(),
	}
}

// IsInteractive returns true if the current environment should be treated
// as interactive.
func (c *DefaultCapabilities) IsInteractive() bool {
	return c.interactiveDetector.IsInteractive()
}

// SupportsColor returns true if color output should be enabled:
//  1. command line arguments (highest priority)
//  2. CLICOLOR_FORCE=1
//  3. NO_COLOR
//  4. CLICOLOR (interactive mode only)
//  5. the output handle's ANSI escape probe
func (c *DefaultCapabilities) SupportsColor() bool {
	if c.userPreference.HasExplicitPreference() {
		return c.userPreference.SupportsColor()
	}

	if !c.IsInteractive() || !c.stdout.SupportsANSIEscapeCodes() {
		return false
	}

	if cliColor := os.Getenv("CLICOLOR"); cliColor != "" {
		return isTruthy(cliColor)
	}

	return true
}

// HasExplicitUserPreference returns true if the user has explicitly set
// a color preference through command line options or environment variables.
func (c *DefaultCapabilities) HasExplicitUserPreference() bool {
	return c.userPreference.HasExplicitPreference()
}
