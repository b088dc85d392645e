// Package lanes provides the portable vector-batch kernels that sit under a
// columnar data-processing engine: mask/bitmask conversion, bitmap scanning,
// vectorized copy/fill, gathers, lane permutation, stream compaction,
// incremental CRC-32 and bit reinterpretation.
//
// Every kernel here is the generic tier: a dispatch layer above this package
// picks a hardware-specialized implementation when one exists for the
// current (operation, element type, index width, architecture) combination,
// and falls back to these functions otherwise. Both tiers are required to be
// observably identical.
//
// Kernels are pure functions over caller-owned memory. They perform no
// bounds checks on gather/permute indices and no synchronization; the
// calling operators enforce both. The only shared state is a set of lookup
// tables built once per process and read-only afterwards.
package lanes

// Floats is a constraint for floating-point lane types.
type Floats interface {
	~float32 | ~float64
}

// SignedInts is a constraint for signed integer lane types.
type SignedInts interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// UnsignedInts is a constraint for unsigned integer lane types.
type UnsignedInts interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Integers is a constraint for all integer lane types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Lanes is a constraint for all types that can occupy a batch lane.
type Lanes interface {
	Floats | Integers
}

// Batch is a fixed-width vector register value holding one lane per scalar
// slot. The lane count is CurrentWidth()/sizeof(T) unless the batch was
// produced by a half-width operation. Batches are immutable values; kernels
// always return fresh ones. Some batches (Iota, table entries) share
// process-wide backing storage, so the slice returned by Data must never be
// written through.
type Batch[T Lanes] struct {
	data []T
}

// NumLanes returns the number of lanes in this batch.
func (b Batch[T]) NumLanes() int {
	return len(b.data)
}

// Data returns the underlying lane slice. Read-only; intended for tests and
// for handing lanes to scalar code at a batch boundary.
func (b Batch[T]) Data() []T {
	return b.data
}

// Store writes the batch's lanes to dst, stopping at whichever of the two
// is shorter.
func (b Batch[T]) Store(dst []T) {
	copy(dst, b.data)
}

// Mask is a boolean lane mask paired with a Batch of the same lane count.
// Each lane is wholly true or wholly false; there are no partial truth
// values. The scalar bitmask form of a Mask is produced by ToBitMask.
type Mask[T Lanes] struct {
	bits []bool
}

// NumLanes returns the number of lanes in this mask.
func (m Mask[T]) NumLanes() int {
	return len(m.bits)
}

// AllTrue reports whether every lane is true.
func (m Mask[T]) AllTrue() bool {
	for _, bit := range m.bits {
		if !bit {
			return false
		}
	}
	return true
}

// AnyTrue reports whether at least one lane is true.
func (m Mask[T]) AnyTrue() bool {
	for _, bit := range m.bits {
		if bit {
			return true
		}
	}
	return false
}

// CountTrue returns the number of true lanes.
func (m Mask[T]) CountTrue() int {
	count := 0
	for _, bit := range m.bits {
		if bit {
			count++
		}
	}
	return count
}

// Lane reports whether lane i is true. Out-of-range lanes read as false.
func (m Mask[T]) Lane(i int) bool {
	if i < 0 || i >= len(m.bits) {
		return false
	}
	return m.bits[i]
}
