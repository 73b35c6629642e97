package terminal

import (
	"os"
	"strings"
)

// PreferenceOptions contains command-line options for color preferences.
type PreferenceOptions struct {
	ForceColor   bool // Force color output regardless of environment
	DisableColor bool // Disable color output regardless of environment
}

// UserPreference resolves explicit user color preferences from options
// and environment variables.
type UserPreference struct {
	options PreferenceOptions
}

// NewUserPreference creates a new UserPreference instance.
func NewUserPreference(options PreferenceOptions) *UserPreference {
	return &UserPreference{options: options}
}

// SupportsColor returns true if the explicit preferences enable color.
// Command line options beat CLICOLOR_FORCE, which beats NO_COLOR.
func (p *UserPreference) SupportsColor() bool {
	if p.options.ForceColor {
		return true
	}
	if p.options.DisableColor {
		return false
	}

	if cliColorForce := os.Getenv("CLICOLOR_FORCE"); cliColorForce != "" && isTruthy(cliColorForce) {
		return true
	}

	// NO_COLOR disables color when set to any value, even empty
	if _, exists := os.LookupEnv("NO_COLOR"); exists {
		return false
	}

	return false
}

// HasExplicitPreference returns true if the user stated a color
// preference at all; when false the caller falls back to terminal
// capability detection.
func (p *UserPreference) HasExplicitPreference() bool {
	if p.options.ForceColor || p.options.DisableColor {
		return true
	}

	if cliColorForce := os.Getenv("CLICOLOR_FORCE"); cliColorForce != "" && isTruthy(cliColorForce) {
		return true
	}

	if _, exists := os.LookupEnv("NO_COLOR"); exists {
		return true
	}

	// CLICOLOR is not explicit; it only applies in interactive mode
	return false
}

// isTruthy checks if a string value should be considered "true".
// Supports: "1", "true", "yes" (case insensitive).
func isTruthy(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "yes":
		return true
	default:
		return false
	}
}
