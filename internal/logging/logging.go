// Package logging configures the slog logger used by the command line
// tools and tags every record with a per-run identifier.
package logging

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/oklog/ulid/v2"
)

// Error definitions
var (
	// ErrInvalidLogLevel indicates an unrecognized log level name.
	ErrInvalidLogLevel = errors.New("invalid log level")
)

// GenerateRunID generates a new ULID for run identification. ULIDs sort
// by creation time, which keeps aggregated logs in invocation order.
func GenerateRunID() string {
	return ulid.Make().String()
}

// ParseLevel converts a level name (debug, info, warn, error) to a
// slog.Level.
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidLogLevel, name)
	}
}

// Setup builds a text-handler logger writing to w at the named level,
// tagged with runID, and installs it as the process default.
func Setup(w io.Writer, levelName, runID string) (*slog.Logger, error) {
	level, err := ParseLevel(levelName)
	if err != nil {
		return nil, err
	}

	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	logger := slog.New(handler).With(slog.String("run_id", runID))
	slog.SetDefault(logger)
	return logger, nil
}
