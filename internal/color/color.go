// Package color provides small helpers for coloring terminal output using
// ANSI escape sequences. A Palette bundles the roles the file inspector
// renders with; the disabled palette passes text through unchanged so
// callers never branch on color support themselves.
//
//nolint:revive // package name conflicts with standard library
package color

// ANSI color codes
const (
	resetCode  = "\033[0m"
	grayCode   = "\033[90m" // Bright black/gray
	greenCode  = "\033[32m"
	yellowCode = "\033[33m"
	redCode    = "\033[31m"
	cyanCode   = "\033[36m"
)

// Color represents a color function that wraps text with ANSI escape
// sequences.
type Color func(text string) string

// NewColor creates a color function with the specified ANSI code.
func NewColor(ansiCode string) Color {
	return func(text string) string {
		return ansiCode + text + resetCode
	}
}

// None returns text unchanged; it is the disabled counterpart of every
// color function.
func None(text string) string { return text }

// Predefined color functions
var (
	// Gray colors text in gray (bright black)
	Gray = NewColor(grayCode)

	// Green colors text in green
	Green = NewColor(greenCode)

	// Yellow colors text in yellow
	Yellow = NewColor(yellowCode)

	// Red colors text in red
	Red = NewColor(redCode)

	// Cyan colors text in cyan
	Cyan = NewColor(cyanCode)
)

// Palette maps output roles to color functions.
type Palette struct {
	Path      Color
	Size      Color
	Mode      Color
	Timestamp Color
	Error     Color
}

// NewPalette returns the rendering palette; when enabled is false every
// role is the identity function.
func NewPalette(enabled bool) Palette {
	if !enabled {
		return Palette{
			Path:      None,
			Size:      None,
			Mode:      None,
			Timestamp: None,
			Error:     None,
		}
	}
	return Palette{
		Path:      Cyan,
		Size:      Green,
		Mode:      Yellow,
		Timestamp: Gray,
		Error:     Red,
	}
}
