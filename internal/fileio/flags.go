package fileio

import "errors"

// Error definitions for flag validation
var (
	// ErrClobberRequiresWrite indicates that FlagClobber was set without FlagWrite.
	ErrClobberRequiresWrite = errors.New("clobber flag requires write flag")
)

// OpenFlags is a portable set of open-mode bits. The platform layer
// translates it into native access and creation parameters.
type OpenFlags uint8

const (
	// FlagRead requests read access to the resource.
	FlagRead OpenFlags = 1 << iota

	// FlagWrite requests write access and creates the file if it is absent.
	FlagWrite

	// FlagClobber truncates an existing file to zero length. It is only
	// meaningful together with FlagWrite.
	FlagClobber
)

// Has reports whether all bits in mask are set.
func (f OpenFlags) Has(mask OpenFlags) bool {
	return f&mask == mask
}

// Validate checks the flag combination invariant. It is called by Open
// before any platform call is issued.
func (f OpenFlags) Validate() error {
	if f.Has(FlagClobber) && !f.Has(FlagWrite) {
		return ErrClobberRequiresWrite
	}
	return nil
}

// disposition is the portable creation policy implied by a flag set.
// Platform files map it to O_CREAT/O_TRUNC on the POSIX family and to
// OPEN_EXISTING/OPEN_ALWAYS/CREATE_ALWAYS on the Windows family.
type disposition int

const (
	// openExisting opens the file only if it already exists.
	openExisting disposition = iota

	// createIfAbsent opens the file, creating it when missing.
	createIfAbsent

	// alwaysRecreate truncates an existing file to zero length, or
	// creates it when missing.
	alwaysRecreate
)

func (f OpenFlags) disposition() disposition {
	switch {
	case f.Has(FlagClobber):
		return alwaysRecreate
	case f.Has(FlagWrite):
		return createIfAbsent
	default:
		return openExisting
	}
}
