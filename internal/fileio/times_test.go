package fileio

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFloorDiv(t *testing.T) {
	tests := []struct {
		name string
		a, b int64
		want int64
	}{
		{name: "exact positive", a: 10, b: 5, want: 2},
		{name: "positive remainder", a: 11, b: 5, want: 2},
		{name: "negative dividend rounds down", a: -11, b: 5, want: -3},
		{name: "exact negative", a: -10, b: 5, want: -2},
		{name: "zero dividend", a: 0, b: 5, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, floorDiv(tt.a, tt.b))
		})
	}
}

func TestUnixPairConversion(t *testing.T) {
	tests := []struct {
		name     string
		ns       int64
		wantSec  int64
		wantNsec int64
	}{
		{name: "epoch", ns: 0, wantSec: 0, wantNsec: 0},
		{name: "positive", ns: 1_500_000_000, wantSec: 1, wantNsec: 500_000_000},
		{name: "whole second", ns: 3 * nsPerSec, wantSec: 3, wantNsec: 0},
		{
			// pre-epoch values must decompose with a non-negative
			// nanosecond part, i.e. floor division
			name:     "pre-epoch",
			ns:       -1,
			wantSec:  -1,
			wantNsec: 999_999_999,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sec, nsec := nanosToUnixPair(tt.ns)
			assert.Equal(t, tt.wantSec, sec)
			assert.Equal(t, tt.wantNsec, nsec)
			assert.Equal(t, tt.ns, unixPairToNanos(sec, nsec), "round trip")
		})
	}
}

func TestFiletimeEpochConstant(t *testing.T) {
	// The Unix epoch expressed as a FILETIME tick count must map to zero
	// nanoseconds, and the offset must equal 11644473600 seconds exactly.
	high, low := nanosToFiletime(0)
	require.Equal(t, int64(0), filetimeToNanos(high, low))
	assert.Equal(t, int64(11_644_473_600)*(nsPerSec/filetimeTickNanos), int64(filetimeEpochOffsetTicks))
}

func TestFiletimeRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		ns   int64
		want int64 // after truncation to 100 ns ticks
	}{
		{name: "epoch", ns: 0, want: 0},
		{name: "tick aligned", ns: 123_456_700, want: 123_456_700},
		{name: "truncates not rounds", ns: 199, want: 100},
		{name: "truncates toward negative infinity", ns: -199, want: -200},
		{
			name: "recent timestamp",
			ns:   time.Date(2024, 6, 1, 12, 0, 0, 987_654_300, time.UTC).UnixNano(),
			want: time.Date(2024, 6, 1, 12, 0, 0, 987_654_300, time.UTC).UnixNano(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			high, low := nanosToFiletime(tt.ns)
			assert.Equal(t, tt.want, filetimeToNanos(high, low))
		})
	}
}
