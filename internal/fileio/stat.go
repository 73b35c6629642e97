package fileio

// Stat is the cross-platform metadata record. Both timestamp encodings
// used by the platform families (seconds+nanoseconds pairs since the
// Unix epoch, and 100-nanosecond ticks since 1601-01-01) are normalized
// to nanoseconds since the Unix epoch before they reach this struct;
// neither native representation leaks past the platform files.
type Stat struct {
	// Size is the resource size in bytes.
	Size uint64

	// Mode is the POSIX permission word. HasMode is false on platforms
	// without the concept, in which case Mode is zero.
	Mode    uint32
	HasMode bool

	// Atime, Mtime and Ctime are nanoseconds since the Unix epoch.
	Atime int64
	Mtime int64
	Ctime int64
}
