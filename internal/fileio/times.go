package fileio

// Timestamp conversion arithmetic shared by both platform families. The
// constants are part of the contract: conversions must be exact to the
// nanosecond so that UpdateTimes followed by Stat round-trips at the
// target platform's native resolution.

const (
	nsPerSec = 1_000_000_000

	// filetimeTickNanos is the FILETIME resolution: one tick is 100 ns.
	filetimeTickNanos = 100

	// filetimeEpochOffsetTicks is the tick count between the Windows
	// epoch (1601-01-01) and the Unix epoch (1970-01-01), i.e.
	// 11644473600 seconds expressed in 100 ns ticks.
	filetimeEpochOffsetTicks = 116_444_736_000_000_000
)

// floorDiv divides rounding toward negative infinity, which is the
// decomposition the seconds+nanoseconds family requires for pre-epoch
// timestamps.
func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// unixPairToNanos combines a native seconds+nanoseconds pair into
// nanoseconds since the Unix epoch.
func unixPairToNanos(sec, nsec int64) int64 {
	return sec*nsPerSec + nsec
}

// nanosToUnixPair decomposes nanoseconds since the Unix epoch into the
// native pair. The nanosecond part is always in [0, 1e9).
func nanosToUnixPair(ns int64) (sec, nsec int64) {
	sec = floorDiv(ns, nsPerSec)
	nsec = ns - sec*nsPerSec
	return sec, nsec
}

// filetimeToNanos converts a FILETIME tick count, split into its high
// and low words, to nanoseconds since the Unix epoch.
func filetimeToNanos(high, low uint32) int64 {
	ticks := int64(high)<<32 | int64(low)
	return (ticks - filetimeEpochOffsetTicks) * filetimeTickNanos
}

// nanosToFiletime is the exact inverse of filetimeToNanos modulo the
// 100 ns truncation of the tick representation.
func nanosToFiletime(ns int64) (high, low uint32) {
	ticks := floorDiv(ns, filetimeTickNanos) + filetimeEpochOffsetTicks
	// #nosec G115 -- deliberate word split of the tick count
	return uint32(ticks >> 32), uint32(ticks)
}
