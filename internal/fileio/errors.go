package fileio

import (
	"errors"
	"fmt"
)

// Error definitions for the stream adapters
var (
	// ErrInvalidOffset is returned by Seeker for a negative absolute offset.
	ErrInvalidOffset = errors.New("invalid seek offset")

	// ErrInvalidWhence is returned by Seeker for an unknown whence value.
	ErrInvalidWhence = errors.New("invalid seek whence")
)

// ErrorKind classifies a failed open call. Platform status values that do
// not fit a known kind are reported as KindUnexpected with the raw status
// preserved in the wrapped error.
type ErrorKind int

const (
	// KindUnexpected is an unanticipated platform status.
	KindUnexpected ErrorKind = iota

	// KindNotFound indicates the path does not exist.
	KindNotFound

	// KindAccessDenied indicates insufficient permissions.
	KindAccessDenied

	// KindTooManyOpenFiles indicates a process or system descriptor limit.
	KindTooManyOpenFiles

	// KindOutOfMemory indicates the platform could not allocate memory.
	KindOutOfMemory

	// KindResourceLimit indicates an exhausted quota or disk resource.
	KindResourceLimit
)

// String returns a human readable name for the kind.
func (k ErrorKind) String() string {
	switch k {
	case KindNotFound:
		return "not found"
	case KindAccessDenied:
		return "access denied"
	case KindTooManyOpenFiles:
		return "too many open files"
	case KindOutOfMemory:
		return "out of memory"
	case KindResourceLimit:
		return "resource limit"
	default:
		return "unexpected"
	}
}

// OpenError reports a failed open call with its classified kind and the
// raw platform error.
type OpenError struct {
	Path string
	Kind ErrorKind
	Err  error
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("open %s: %s: %v", e.Path, e.Kind, e.Err)
}

// Unwrap returns the raw platform error.
func (e *OpenError) Unwrap() error { return e.Err }

// ReadError reports a failed read call.
type ReadError struct {
	Err error
}

func (e *ReadError) Error() string { return "read: " + e.Err.Error() }

// Unwrap returns the raw platform error.
func (e *ReadError) Unwrap() error { return e.Err }

// WriteError reports a write call that could not transmit the full byte
// sequence.
type WriteError struct {
	Err error
}

func (e *WriteError) Error() string { return "write: " + e.Err.Error() }

// Unwrap returns the raw platform error.
func (e *WriteError) Unwrap() error { return e.Err }

// SeekError reports a failed cursor reposition or position query.
type SeekError struct {
	Err error
}

func (e *SeekError) Error() string { return "seek: " + e.Err.Error() }

// Unwrap returns the raw platform error.
func (e *SeekError) Unwrap() error { return e.Err }

// StatError reports a failed metadata query.
type StatError struct {
	Err error
}

func (e *StatError) Error() string { return "stat: " + e.Err.Error() }

// Unwrap returns the raw platform error.
func (e *StatError) Unwrap() error { return e.Err }

// UpdateTimesError reports a failed timestamp update.
type UpdateTimesError struct {
	Err error
}

func (e *UpdateTimesError) Error() string { return "update times: " + e.Err.Error() }

// Unwrap returns the raw platform error.
func (e *UpdateTimesError) Unwrap() error { return e.Err }
