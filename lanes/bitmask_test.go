package lanes

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestToBitMask(t *testing.T) {
	tests := []struct {
		name string
		bits []bool
		want uint64
	}{
		{name: "empty", bits: nil, want: 0},
		{name: "all false", bits: []bool{false, false, false, false}, want: 0},
		{name: "all true", bits: []bool{true, true, true, true}, want: 0b1111},
		{name: "lane 0 only", bits: []bool{true, false, false, false}, want: 0b0001},
		{name: "alternating", bits: []bool{true, false, true, false, true, false, true, false}, want: 0b01010101},
		{name: "high lane", bits: []bool{false, false, false, false, false, false, false, true}, want: 0b10000000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ToBitMask(Mask[int32]{bits: tt.bits})
			if got != tt.want {
				t.Errorf("ToBitMask() = %#b, want %#b", got, tt.want)
			}
		})
	}
}

func TestFromBitMaskRoundTrip(t *testing.T) {
	// int64 lanes never exceed 8 for any register width, so the table
	// path is always legal here.
	n := MaxLanes[int64]()
	require.LessOrEqual(t, n, 8)

	for m := uint64(0); m < 1<<uint(n); m++ {
		mask := FromBitMask[int64](m)
		require.Equal(t, n, mask.NumLanes())
		require.Equal(t, m, ToBitMask(mask), "round trip of %#b", m)
	}
}

func TestFromBitMaskAllSetFastPath(t *testing.T) {
	all := AllSetBitMask[int64]()
	mask := FromBitMask[int64](all)
	require.True(t, mask.AllTrue())
	require.Equal(t, all, ToBitMask(mask))
}

func TestFromBitMaskLaneOrder(t *testing.T) {
	// Bit 0 is lane 0.
	mask := FromBitMask[int64](0b01)
	require.True(t, mask.Lane(0))
	for i := 1; i < mask.NumLanes(); i++ {
		require.False(t, mask.Lane(i))
	}
}

func TestAllSetBitMask(t *testing.T) {
	n := MaxLanes[int32]()
	want := uint64(1)<<uint(n) - 1
	require.Equal(t, want, AllSetBitMask[int32]())
	require.Equal(t, ^uint64(0)>>(64-uint(MaxLanes[int8]())), AllSetBitMask[int8]())
}

func TestLeadingMask(t *testing.T) {
	n := MaxLanes[int32]()
	for count := 0; count <= 2*n; count++ {
		mask := LeadingMask[int32](count)
		require.Equal(t, n, mask.NumLanes(), "count=%d", count)
		require.Equal(t, min(count, n), mask.CountTrue(), "count=%d", count)
		// All true lanes at the lowest indices.
		for i := 0; i < n; i++ {
			require.Equal(t, i < count, mask.Lane(i), "count=%d lane=%d", count, i)
		}
	}
}

func TestLeadingMaskFullIsAllTrue(t *testing.T) {
	n := MaxLanes[int16]()
	require.True(t, LeadingMask[int16](n).AllTrue())
	require.True(t, LeadingMask[int16](n+3).AllTrue())
}

func TestMaskTablesAreMemoized(t *testing.T) {
	a := FromBitMask[int64](1)
	b := FromBitMask[int64](1)
	require.Equal(t, a.bits, b.bits)
	if len(a.bits) > 0 && &a.bits[0] != &b.bits[0] {
		t.Error("FromBitMask rebuilt its table between calls")
	}

	la := LeadingMask[int32](1)
	lb := LeadingMask[int32](1)
	if len(la.bits) > 0 && &la.bits[0] != &lb.bits[0] {
		t.Error("LeadingMask rebuilt its table between calls")
	}
}
