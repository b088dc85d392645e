package lanes

import (
	"math/bits"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFilter(t *testing.T) {
	data := Batch[int32]{data: []int32{10, 20, 30, 40, 50, 60, 70, 80}}
	mask := uint64(0b10110001) // lanes 0, 4, 5, 7

	got := Filter(data, mask)
	count := bits.OnesCount64(mask)
	require.Equal(t, 4, count)
	require.Equal(t, []int32{10, 50, 60, 80}, got.Data()[:count])
}

func TestFilterEdgeMasks(t *testing.T) {
	data := Batch[int64]{data: []int64{1, 2, 3, 4}}

	t.Run("none selected", func(t *testing.T) {
		got := Filter(data, 0)
		require.Equal(t, 4, got.NumLanes())
	})

	t.Run("all selected", func(t *testing.T) {
		got := Filter(data, 0b1111)
		require.Equal(t, []int64{1, 2, 3, 4}, got.Data())
	})

	t.Run("single lane", func(t *testing.T) {
		got := Filter(data, 0b0100)
		require.Equal(t, int64(3), got.Data()[0])
	})
}

// filterReference is the naive compaction every strategy must match in its
// first popcount lanes.
func filterReference[T Lanes](data []T, mask uint64) []T {
	var out []T
	for i, v := range data {
		if mask&(1<<uint(i)) != 0 {
			out = append(out, v)
		}
	}
	return out
}

func testFilterMatchesReference[T Lanes](t *testing.T, numLanes int, fill func(i int) T) {
	t.Helper()
	rng := rand.New(rand.NewSource(int64(numLanes)))

	data := make([]T, numLanes)
	for i := range data {
		data[i] = fill(i)
	}

	masks := []uint64{0, 1, 1<<uint(numLanes) - 1}
	for i := 0; i < 64; i++ {
		masks = append(masks, rng.Uint64()&(1<<uint(numLanes)-1))
	}

	for _, mask := range masks {
		got := Filter(Batch[T]{data: data}, mask)
		want := filterReference(data, mask)
		require.Equal(t, numLanes, got.NumLanes(), "mask %#b", mask)
		for i, v := range want {
			require.Equal(t, v, got.Data()[i], "mask %#b lane %d", mask, i)
		}
	}
}

func TestFilterElementWidths(t *testing.T) {
	t.Run("uint8 walk", func(t *testing.T) {
		testFilterMatchesReference(t, 16, func(i int) uint8 { return uint8(i + 1) })
	})
	t.Run("int16 walk", func(t *testing.T) {
		testFilterMatchesReference(t, 8, func(i int) int16 { return int16(i * 11) })
	})
	t.Run("int32 table", func(t *testing.T) {
		testFilterMatchesReference(t, 8, func(i int) int32 { return int32(i * 100) })
	})
	t.Run("int32 half width", func(t *testing.T) {
		testFilterMatchesReference(t, 4, func(i int) int32 { return int32(i - 2) })
	})
	t.Run("int32 wide walk", func(t *testing.T) {
		// 16 lanes exceeds the byte table; the generic rank walk serves.
		testFilterMatchesReference(t, 16, func(i int) int32 { return int32(i) })
	})
	t.Run("int64 table", func(t *testing.T) {
		testFilterMatchesReference(t, 8, func(i int) int64 { return int64(i) << 32 })
	})
	t.Run("float64 table", func(t *testing.T) {
		testFilterMatchesReference(t, 4, func(i int) float64 { return float64(i) + 0.5 })
	})
}
