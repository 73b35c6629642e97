// Package fileio provides a portable file-handle abstraction over the
// POSIX descriptor model and the Windows handle model. A File owns one
// open platform resource and exposes blocking read/write/seek/stat and
// timestamp operations with a uniform error taxonomy; the stream adapters
// bind a File to the generic io interfaces without taking ownership.
//
// A File is not safe for concurrent use: every operation mutates the
// cursor or resource state, so simultaneous calls race without external
// synchronization. Close must be called exactly once; the package does
// not guard against use after close.
package fileio

import (
	"io"
	"os"
)

// File wraps exactly one platform resource identifier. Copying a File
// aliases the same resource, it does not duplicate it.
type File struct {
	handle RawHandle
}

// Open opens path with the given flags, creating the file with default
// permissions on the POSIX family when the flags imply creation.
// Flag validation happens before any platform call.
func Open(path string, flags OpenFlags) (*File, error) {
	return OpenWithPerm(path, flags, defaultCreatePerm)
}

// OpenWithPerm is Open with an explicit creation permission word. The
// permission is ignored on platforms without a POSIX mode concept.
func OpenWithPerm(path string, flags OpenFlags, perm os.FileMode) (*File, error) {
	if err := flags.Validate(); err != nil {
		return nil, err
	}
	return openPlatform(path, flags, perm)
}

// FromRawHandle wraps an already open platform resource. It performs no
// validation; the caller is trusted to hand over a live handle, e.g. a
// standard stream.
func FromRawHandle(h RawHandle) *File {
	return &File{handle: h}
}

// RawHandle returns the underlying platform resource identifier.
func (f *File) RawHandle() RawHandle {
	return f.handle
}

// Close releases the resource. Calling it more than once is a contract
// violation and is not guarded.
func (f *File) Close() error {
	return closeHandle(f.handle)
}

// Read fills p from the current cursor position and returns the number
// of bytes read. A short read is not an error; zero bytes into a
// non-empty buffer means end of file.
func (f *File) Read(p []byte) (int, error) {
	n, err := readHandle(f.handle, p)
	if err != nil {
		return 0, &ReadError{Err: err}
	}
	return n, nil
}

// Write transmits all of p to the resource or reports a WriteError.
// Partial-write recovery happens here, not in the caller.
func (f *File) Write(p []byte) error {
	for len(p) > 0 {
		n, err := writeHandle(f.handle, p)
		if err != nil {
			return &WriteError{Err: err}
		}
		if n <= 0 {
			return &WriteError{Err: io.ErrShortWrite}
		}
		p = p[n:]
	}
	return nil
}

// Executor runs a blocking platform call on behalf of the caller.
// Execute must not return before op completes; implementations may move
// op to another goroutine or thread pool.
type Executor interface {
	Execute(op func() error) error
}

// WriteVectored transmits all buffers in order. When exec is non-nil the
// platform call is dispatched through it instead of blocking the calling
// goroutine directly; this is the only cooperative-suspension point in
// the package. There is no cancellation: once issued, the platform call
// runs to completion.
func (f *File) WriteVectored(exec Executor, bufs [][]byte) error {
	op := func() error {
		return writeVectoredHandle(f.handle, bufs)
	}
	var err error
	if exec != nil {
		err = exec.Execute(op)
	} else {
		err = op()
	}
	if err != nil {
		return &WriteError{Err: err}
	}
	return nil
}

// SeekBy moves the cursor relative to its current position.
func (f *File) SeekBy(offset int64) error {
	if _, err := seekHandle(f.handle, offset, io.SeekCurrent); err != nil {
		return &SeekError{Err: err}
	}
	return nil
}

// SeekFromEnd moves the cursor relative to the end of the resource.
func (f *File) SeekFromEnd(offset int64) error {
	if _, err := seekHandle(f.handle, offset, io.SeekEnd); err != nil {
		return &SeekError{Err: err}
	}
	return nil
}

// SeekTo moves the cursor to an absolute position.
func (f *File) SeekTo(pos uint64) error {
	// #nosec G115 -- positions beyond int64 are rejected by the platform
	if _, err := seekHandle(f.handle, int64(pos), io.SeekStart); err != nil {
		return &SeekError{Err: err}
	}
	return nil
}

// Pos returns the current cursor position.
func (f *File) Pos() (uint64, error) {
	n, err := seekHandle(f.handle, 0, io.SeekCurrent)
	if err != nil {
		return 0, &SeekError{Err: err}
	}
	return uint64(n), nil
}

// EndPos returns the total size of the resource without moving the
// cursor. It uses the platform's direct size query where one exists and
// falls back to a metadata query otherwise.
func (f *File) EndPos() (uint64, error) {
	size, err := endPosHandle(f.handle)
	if err != nil {
		return 0, &StatError{Err: err}
	}
	return size, nil
}

// Stat returns normalized metadata for the resource. Timestamps are
// nanoseconds since the Unix epoch on both platform families.
func (f *File) Stat() (Stat, error) {
	st, err := statHandle(f.handle)
	if err != nil {
		return Stat{}, &StatError{Err: err}
	}
	return st, nil
}

// UpdateTimes sets the access and modification timestamps, given as
// nanoseconds since the Unix epoch. Values are truncated, never rounded,
// to the platform's native timestamp resolution.
func (f *File) UpdateTimes(atime, mtime int64) error {
	if err := updateTimesHandle(f.handle, atime, mtime); err != nil {
		return &UpdateTimesError{Err: err}
	}
	return nil
}

// IsTTY reports whether the resource is an interactive terminal.
func (f *File) IsTTY() bool {
	return isTTYHandle(f.handle)
}

// SupportsANSIEscapeCodes reports whether ANSI escape sequences written
// to the resource will be interpreted. On Windows this is the console's
// virtual terminal processing mode, which is distinct from raw TTY
// detection.
func (f *File) SupportsANSIEscapeCodes() bool {
	return supportsANSIHandle(f.handle)
}
