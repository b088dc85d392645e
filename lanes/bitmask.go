package lanes

import "sync"

// Conversions between boolean lane masks and their scalar bitmask form,
// plus the leading-mask constructor used by every tail-handling loop.
//
// The mask tables are built at most once per process and never mutated
// afterwards, so unsynchronized concurrent reads are safe.

// AllSetBitMask returns the scalar bitmask with the bit for every lane of
// a full-width Batch[T] set.
func AllSetBitMask[T Lanes]() uint64 {
	n := MaxLanes[T]()
	if n >= 64 {
		return ^uint64(0)
	}
	return 1<<uint(n) - 1
}

// ToBitMask converts a boolean lane mask to its scalar bitmask: bit i is
// set iff lane i is true. Bits at positions >= NumLanes are zero.
func ToBitMask[T Lanes](mask Mask[T]) uint64 {
	var out uint64
	for i, bit := range mask.bits {
		if bit {
			out |= 1 << uint(i)
		}
	}
	return out
}

// FromBitMask converts a scalar bitmask back to a boolean lane mask. The
// all-set mask takes a direct path; anything else is served from a table of
// all 2^N lane patterns, which restricts the table path to N <= 8 lanes.
// ToBitMask(FromBitMask(m)) == m for every m in [0, 2^N).
func FromBitMask[T Lanes](bits uint64) Mask[T] {
	n := MaxLanes[T]()
	if bits == AllSetBitMask[T]() {
		return allTrueMask[T](n)
	}
	return Mask[T]{bits: bitMaskTable(n)[bits]}
}

// LeadingMask returns a mask whose first n lanes are true and the rest
// false. n >= NumLanes returns the all-true mask without a table lookup;
// tail loops hit that case on every full batch.
func LeadingMask[T Lanes](n int) Mask[T] {
	numLanes := MaxLanes[T]()
	if n >= numLanes {
		return allTrueMask[T](numLanes)
	}
	return Mask[T]{bits: leadingMaskTable(numLanes)[n]}
}

func allTrueMask[T Lanes](n int) Mask[T] {
	bits := make([]bool, n)
	for i := range bits {
		bits[i] = true
	}
	return Mask[T]{bits: bits}
}

// bitMaskMemo holds one table per lane count, each with all 2^n lane
// patterns, entry i having lane b true iff bit b of i is set.
var bitMaskMemo [9]struct {
	once sync.Once
	rows [][]bool
}

func bitMaskTable(n int) [][]bool {
	if n > 8 {
		panic("lanes: FromBitMask table path requires at most 8 lanes")
	}
	memo := &bitMaskMemo[n]
	memo.once.Do(func() {
		rows := make([][]bool, 1<<uint(n))
		for v := range rows {
			row := make([]bool, n)
			for bit := 0; bit < n; bit++ {
				row[bit] = v&(1<<uint(bit)) != 0
			}
			rows[v] = row
		}
		memo.rows = rows
	})
	return memo.rows
}

// leadingMaskMemo maps a lane count to its n prefix masks: entry i has the
// first i lanes true. Built once per lane count; entries are never written
// after LoadOrStore publishes them.
var leadingMaskMemo sync.Map // int -> [][]bool

func leadingMaskTable(n int) [][]bool {
	if tbl, ok := leadingMaskMemo.Load(n); ok {
		return tbl.([][]bool)
	}
	rows := make([][]bool, n)
	for i := range rows {
		row := make([]bool, n)
		for lane := 0; lane < i; lane++ {
			row[lane] = true
		}
		rows[i] = row
	}
	actual, _ := leadingMaskMemo.LoadOrStore(n, rows)
	return actual.([][]bool)
}
