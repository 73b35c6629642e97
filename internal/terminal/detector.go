// Package terminal decides whether the current process should be treated
// as interactive and whether colored output is appropriate. TTY and ANSI
// probes are delegated to the portable file handle; this package adds the
// CI-environment and user-preference policy on top.
package terminal

import (
	"os"
	"strings"

	"github.com/isseis/go-portable-fileio/internal/fileio"
)

// ciEnvVars contains common CI environment variables
var ciEnvVars = []string{
	"CI",                     // Generic CI indicator
	"CONTINUOUS_INTEGRATION", // Generic CI indicator
	"GITHUB_ACTIONS",         // GitHub Actions
	"TRAVIS",                 // Travis CI
	"CIRCLECI",               // Circle CI
	"JENKINS_URL",            // Jenkins
	"GITLAB_CI",              // GitLab CI
	"BUILDKITE",              // Buildkite
	"DRONE",                  // Drone CI
	"TF_BUILD",               // Azure DevOps
}

// DetectorOptions contains options for controlling interactive detection
type DetectorOptions struct {
	ForceInteractive    bool // Force interactive mode regardless of environment
	ForceNonInteractive bool // Force non-interactive mode regardless of environment
}

// InteractiveDetector reports whether the process runs attached to an
// interactive terminal.
type InteractiveDetector interface {
	IsInteractive() bool
	IsTerminal() bool
	IsCIEnvironment() bool
}

// DefaultInteractiveDetector implements InteractiveDetector on top of the
// standard output and error handles.
type DefaultInteractiveDetector struct {
	options DetectorOptions
	stdout  *fileio.File
	stderr  *fileio.File
}

// NewInteractiveDetector creates a detector probing the process standard
// streams.
func NewInteractiveDetector(options DetectorOptions) InteractiveDetector {
	return &DefaultInteractiveDetector{
		options: options,
		stdout:  fileio.Stdout(),
		stderr:  fileio.Stderr(),
	}
}

// IsInteractive returns true if the current environment is interactive.
// Command line options win over CI detection, which wins over the TTY
// probe.
func (d *DefaultInteractiveDetector) IsInteractive() bool {
	if d.options.ForceInteractive {
		return true
	}
	if d.options.ForceNonInteractive {
		return false
	}

	if d.IsCIEnvironment() {
		return false
	}

	return d.IsTerminal()
}

// IsTerminal checks if both stdout and stderr are connected to a terminal.
func (d *DefaultInteractiveDetector) IsTerminal() bool {
	return d.stdout.IsTTY() && d.stderr.IsTTY()
}

// IsCIEnvironment checks if the current environment is a CI/CD system.
func (d *DefaultInteractiveDetector) IsCIEnvironment() bool {
	for _, envVar := range ciEnvVars {
		if value := os.Getenv(envVar); value != "" {
			// CI itself must be truthy; CI=false is not a CI environment
			if envVar == "CI" {
				return isCITruthy(value)
			}
			return true
		}
	}

	return false
}

func isCITruthy(value string) bool {
	lower := strings.ToLower(strings.TrimSpace(value))
	return lower != "false" && lower != "0" && lower != "no"
}
