//go:build windows

// Windows-family implementation of the platform capability layer.
// Resources are HANDLEs from CreateFileW; paths are converted to
// null-terminated wide strings with the extended-length prefix so that
// long paths resolve.
package fileio

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"golang.org/x/sys/windows"
)

// RawHandle is the platform resource identifier: a Windows HANDLE.
type RawHandle = windows.Handle

// defaultCreatePerm is accepted for interface symmetry; the Windows
// family has no POSIX permission word.
const defaultCreatePerm os.FileMode = 0o644

// Standard stream handles. These are non-owning wrappers; closing them
// closes the process streams.
func Stdin() *File  { return FromRawHandle(stdHandle(windows.STD_INPUT_HANDLE)) }
func Stdout() *File { return FromRawHandle(stdHandle(windows.STD_OUTPUT_HANDLE)) }
func Stderr() *File { return FromRawHandle(stdHandle(windows.STD_ERROR_HANDLE)) }

func stdHandle(which uint32) windows.Handle {
	h, err := windows.GetStdHandle(which)
	if err != nil {
		return windows.InvalidHandle
	}
	return h
}

func openPlatform(path string, flags OpenFlags, _ os.FileMode) (*File, error) {
	var access uint32
	if flags.Has(FlagRead) {
		access |= windows.GENERIC_READ
	}
	if flags.Has(FlagWrite) {
		access |= windows.GENERIC_WRITE
	}

	var disp uint32
	switch flags.disposition() {
	case alwaysRecreate:
		disp = windows.CREATE_ALWAYS
	case createIfAbsent:
		disp = windows.OPEN_ALWAYS
	case openExisting:
		disp = windows.OPEN_EXISTING
	}

	wpath, err := windows.UTF16PtrFromString(widePath(path))
	if err != nil {
		return nil, &OpenError{Path: path, Kind: KindUnexpected, Err: err}
	}
	share := uint32(windows.FILE_SHARE_READ | windows.FILE_SHARE_WRITE | windows.FILE_SHARE_DELETE)
	h, err := windows.CreateFile(wpath, access, share, nil, disp, windows.FILE_ATTRIBUTE_NORMAL, 0)
	if err != nil {
		return nil, &OpenError{Path: path, Kind: classifyOpenError(err), Err: err}
	}
	return &File{handle: h}, nil
}

// widePath applies the extended-length prefix to absolute paths. UNC and
// already-prefixed paths pass through unchanged.
func widePath(p string) string {
	if strings.HasPrefix(p, `\\`) {
		return p
	}
	abs, err := filepath.Abs(p)
	if err != nil {
		return p
	}
	return `\\?\` + abs
}

func classifyOpenError(err error) ErrorKind {
	errno, ok := err.(syscall.Errno)
	if !ok {
		return KindUnexpected
	}
	switch errno {
	case windows.ERROR_FILE_NOT_FOUND, windows.ERROR_PATH_NOT_FOUND:
		return KindNotFound
	case windows.ERROR_ACCESS_DENIED:
		return KindAccessDenied
	case windows.ERROR_TOO_MANY_OPEN_FILES:
		return KindTooManyOpenFiles
	case windows.ERROR_NOT_ENOUGH_MEMORY:
		return KindOutOfMemory
	case windows.ERROR_DISK_FULL, windows.ERROR_HANDLE_DISK_FULL:
		return KindResourceLimit
	default:
		return KindUnexpected
	}
}

func closeHandle(h RawHandle) error {
	return windows.CloseHandle(h)
}

func readHandle(h RawHandle, p []byte) (int, error) {
	var done uint32
	err := windows.ReadFile(h, p, &done, nil)
	if err != nil {
		// Reading a pipe whose write side closed reports broken pipe;
		// the portable contract is a zero-byte read.
		if err == windows.ERROR_BROKEN_PIPE {
			return 0, nil
		}
		return 0, err
	}
	return int(done), nil
}

func writeHandle(h RawHandle, p []byte) (int, error) {
	var done uint32
	if err := windows.WriteFile(h, p, &done, nil); err != nil {
		return 0, err
	}
	return int(done), nil
}

// writeVectoredHandle degrades to a sequential write loop: WriteFileGather
// requires unbuffered aligned I/O and plain handles have no scatter/gather
// call.
func writeVectoredHandle(h RawHandle, bufs [][]byte) error {
	for _, b := range bufs {
		for len(b) > 0 {
			n, err := writeHandle(h, b)
			if err != nil {
				return err
			}
			if n <= 0 {
				return io.ErrShortWrite
			}
			b = b[n:]
		}
	}
	return nil
}

func seekHandle(h RawHandle, offset int64, whence int) (int64, error) {
	return windows.Seek(h, offset, whence)
}

// endPosHandle uses the dedicated size query instead of the full
// metadata call.
func endPosHandle(h RawHandle) (uint64, error) {
	var size int64
	if err := windows.GetFileSizeEx(h, &size); err != nil {
		return 0, err
	}
	return uint64(size), nil
}

func statHandle(h RawHandle) (Stat, error) {
	var info windows.ByHandleFileInformation
	if err := windows.GetFileInformationByHandle(h, &info); err != nil {
		return Stat{}, err
	}
	return Stat{
		Size:  uint64(info.FileSizeHigh)<<32 | uint64(info.FileSizeLow),
		Atime: filetimeToNanos(info.LastAccessTime.HighDateTime, info.LastAccessTime.LowDateTime),
		Mtime: filetimeToNanos(info.LastWriteTime.HighDateTime, info.LastWriteTime.LowDateTime),
		Ctime: filetimeToNanos(info.CreationTime.HighDateTime, info.CreationTime.LowDateTime),
	}, nil
}

func updateTimesHandle(h RawHandle, atime, mtime int64) error {
	aft := makeFiletime(atime)
	mft := makeFiletime(mtime)
	return windows.SetFileTime(h, nil, &aft, &mft)
}

func makeFiletime(ns int64) windows.Filetime {
	high, low := nanosToFiletime(ns)
	return windows.Filetime{HighDateTime: high, LowDateTime: low}
}

func isTTYHandle(h RawHandle) bool {
	var mode uint32
	return windows.GetConsoleMode(h, &mode) == nil
}

// supportsANSIHandle probes the console's virtual terminal emulation
// layer, which is distinct from being attached to a console at all.
func supportsANSIHandle(h RawHandle) bool {
	var mode uint32
	if err := windows.GetConsoleMode(h, &mode); err != nil {
		return false
	}
	return mode&windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING != 0
}
