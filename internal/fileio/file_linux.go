//go:build linux

// POSIX-family implementation of the platform capability layer. File
// descriptors come from open(2) and the remaining operations are thin
// wrappers over the corresponding syscalls; futimens has no wrapper in
// x/sys/unix, so it is issued as a raw utimensat with a NULL path.
package fileio

import (
	"io"
	"os"
	"syscall"
	"unsafe"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// RawHandle is the platform resource identifier: a POSIX file descriptor.
type RawHandle = int

const defaultCreatePerm os.FileMode = 0o644

// Standard stream handles. These are non-owning wrappers; closing them
// closes the process streams.
func Stdin() *File  { return FromRawHandle(0) }
func Stdout() *File { return FromRawHandle(1) }
func Stderr() *File { return FromRawHandle(2) }

func openPlatform(path string, flags OpenFlags, perm os.FileMode) (*File, error) {
	mode := accessMode(flags) | unix.O_CLOEXEC
	switch flags.disposition() {
	case createIfAbsent:
		mode |= unix.O_CREAT
	case alwaysRecreate:
		mode |= unix.O_CREAT | unix.O_TRUNC
	case openExisting:
		// no creation bits
	}
	fd, err := unix.Open(path, mode, uint32(perm.Perm()))
	if err != nil {
		return nil, &OpenError{Path: path, Kind: classifyOpenError(err), Err: err}
	}
	return &File{handle: fd}, nil
}

// accessMode maps the portable flag set onto the POSIX access mode.
// O_RDONLY doubles as the degenerate no-access open since POSIX has no
// empty access mode.
func accessMode(flags OpenFlags) int {
	switch {
	case flags.Has(FlagRead | FlagWrite):
		return unix.O_RDWR
	case flags.Has(FlagWrite):
		return unix.O_WRONLY
	default:
		return unix.O_RDONLY
	}
}

func classifyOpenError(err error) ErrorKind {
	errno, ok := err.(syscall.Errno)
	if !ok {
		return KindUnexpected
	}
	switch errno {
	case unix.ENOENT:
		return KindNotFound
	case unix.EACCES, unix.EPERM:
		return KindAccessDenied
	case unix.EMFILE, unix.ENFILE:
		return KindTooManyOpenFiles
	case unix.ENOMEM:
		return KindOutOfMemory
	case unix.ENOSPC, unix.EDQUOT:
		return KindResourceLimit
	default:
		return KindUnexpected
	}
}

func closeHandle(h RawHandle) error {
	return unix.Close(h)
}

func readHandle(h RawHandle, p []byte) (int, error) {
	return unix.Read(h, p)
}

func writeHandle(h RawHandle, p []byte) (int, error) {
	return unix.Write(h, p)
}

func writeVectoredHandle(h RawHandle, bufs [][]byte) error {
	pending := make([][]byte, 0, len(bufs))
	for _, b := range bufs {
		if len(b) > 0 {
			pending = append(pending, b)
		}
	}
	for len(pending) > 0 {
		n, err := unix.Writev(h, pending)
		if err != nil {
			return err
		}
		if n <= 0 {
			return io.ErrShortWrite
		}
		// advance past the transmitted prefix
		for n > 0 {
			if n >= len(pending[0]) {
				n -= len(pending[0])
				pending = pending[1:]
			} else {
				pending[0] = pending[0][n:]
				n = 0
			}
		}
	}
	return nil
}

func seekHandle(h RawHandle, offset int64, whence int) (int64, error) {
	return unix.Seek(h, offset, whence)
}

// endPosHandle queries the size via fstat; POSIX has no dedicated size
// call, so the metadata query is the direct route here.
func endPosHandle(h RawHandle) (uint64, error) {
	var st unix.Stat_t
	if err := unix.Fstat(h, &st); err != nil {
		return 0, err
	}
	return uint64(st.Size), nil
}

func statHandle(h RawHandle) (Stat, error) {
	var st unix.Stat_t
	if err := unix.Fstat(h, &st); err != nil {
		return Stat{}, err
	}
	return Stat{
		Size:    uint64(st.Size),
		Mode:    uint32(st.Mode),
		HasMode: true,
		Atime:   unixPairToNanos(int64(st.Atim.Sec), int64(st.Atim.Nsec)),
		Mtime:   unixPairToNanos(int64(st.Mtim.Sec), int64(st.Mtim.Nsec)),
		Ctime:   unixPairToNanos(int64(st.Ctim.Sec), int64(st.Ctim.Nsec)),
	}, nil
}

// updateTimesHandle issues futimens, which on Linux is utimensat with a
// NULL path pointer. x/sys/unix wraps only the pathful variant, hence
// the raw syscall.
func updateTimesHandle(h RawHandle, atime, mtime int64) error {
	ts := [2]unix.Timespec{
		unix.NsecToTimespec(atime),
		unix.NsecToTimespec(mtime),
	}
	_, _, errno := unix.Syscall6(
		unix.SYS_UTIMENSAT,
		uintptr(h),
		0, // NULL path selects the descriptor itself
		// #nosec G103 - uintptr conversion is required for the syscall interface
		uintptr(unsafe.Pointer(&ts[0])),
		0, 0, 0,
	)
	if errno != 0 {
		return errno
	}
	return nil
}

func isTTYHandle(h RawHandle) bool {
	return term.IsTerminal(h)
}

// supportsANSIHandle assumes any terminal that is not explicitly dumb
// interprets escape sequences; there is no emulation layer to probe on
// this family.
func supportsANSIHandle(h RawHandle) bool {
	return isTTYHandle(h) && os.Getenv("TERM") != "dumb"
}
