package lanes

import "unsafe"

// Indexed (gather) loads. None of these check bounds: the caller guarantees
// that every index addresses readable memory within base's buffer for the
// element width being loaded. That is a documented precondition of the
// engine's calling convention, not a runtime contract.

// Gather reads one element of T per lane of indices, each located at byte
// offset indices[i]*scale from base, and returns them as a batch. scale is
// the element byte width, or 1 when the indices are already byte offsets.
// indices may be a full-width or half-width batch; the result has the same
// lane count.
func Gather[T Lanes, I ~int32 | ~int64](base *T, indices Batch[I], scale int) Batch[T] {
	out := make([]T, len(indices.data))
	p := unsafe.Pointer(base)
	for i, idx := range indices.data {
		out[i] = *(*T)(unsafe.Add(p, uintptr(idx)*uintptr(scale)))
	}
	return Batch[T]{data: out}
}

// MaskGather is Gather with merge semantics: lane i of the result is the
// gathered value where mask lane i is true, and src lane i otherwise.
// Callers pre-seed src with defaults and update only the selected subset.
// Inactive lanes do not touch memory, so their indices may be garbage.
func MaskGather[T Lanes, I ~int32 | ~int64](src Batch[T], mask Mask[T], base *T, indices Batch[I], scale int) Batch[T] {
	out := make([]T, len(indices.data))
	p := unsafe.Pointer(base)
	for i := range out {
		if mask.bits[i] {
			out[i] = *(*T)(unsafe.Add(p, uintptr(indices.data[i])*uintptr(scale)))
		} else {
			out[i] = src.data[i]
		}
	}
	return Batch[T]{data: out}
}

// Gather16 gathers 16-bit elements through 32-bit indices. Few targets have
// a native 16-bit gather, so the contract is two half-count 32-bit-widened
// gathers packed back down to 16 bits: the first covers indices[0:N32], the
// second indices[N32:numIndices], N32 being the 32-bit lane count. Lanes at
// and beyond numIndices are zero.
func Gather16(base *int16, indices []int32, numIndices int, scale int) Batch[int16] {
	n32 := MaxLanes[int32]()
	first := gatherWiden16(base, indices, numIndices, scale, n32)
	var second Batch[int32]
	if numIndices > n32 {
		second = gatherWiden16(base, indices[n32:], numIndices-n32, scale, n32)
	} else {
		second = zeroLanes[int32](n32)
	}
	return Pack32(first, second)
}

// gatherWiden16 loads up to count 16-bit elements into the low half of
// 32-bit lanes. Remaining lanes are zero, matching a leading-mask gather
// seeded with a zero batch.
func gatherWiden16(base *int16, indices []int32, count, scale, numLanes int) Batch[int32] {
	out := make([]int32, numLanes)
	p := unsafe.Pointer(base)
	if count > numLanes {
		count = numLanes
	}
	for i := 0; i < count; i++ {
		out[i] = int32(*(*uint16)(unsafe.Add(p, uintptr(indices[i])*uintptr(scale))))
	}
	return Batch[int32]{data: out}
}

// Gather8Bits treats base as a flat bitmap rather than an element array:
// for each of the first min(NumLanes, numIndices) index lanes it tests the
// bit at that position and packs the answers into one byte, bit i holding
// lane i. Used to gather boolean columns without widening them first.
func Gather8Bits(base unsafe.Pointer, indices Batch[int32], numIndices int) uint8 {
	n := min(len(indices.data), numIndices)
	var out uint8
	for i := 0; i < n; i++ {
		idx := indices.data[i]
		b := *(*uint8)(unsafe.Add(base, uintptr(idx>>3)))
		if b&(1<<uint(idx&7)) != 0 {
			out |= 1 << uint(i)
		}
	}
	return out
}

// GetHalf extracts half of a 32-bit batch into lanes of To, which may be a
// different width. The upper half is taken when second is set. Unsigned
// targets zero-extend, signed targets sign-extend; this matches the
// widening gathers that feed 64-bit operators from 32-bit columns.
func GetHalf[To Integers](data Batch[int32], second bool) Batch[To] {
	half := len(data.data) / 2
	out := make([]To, half)
	offset := 0
	if second {
		offset = half
	}
	unsignedTarget := ^To(0) > 0
	for i := 0; i < half; i++ {
		v := data.data[offset+i]
		if unsignedTarget {
			out[i] = To(uint32(v))
		} else {
			out[i] = To(v)
		}
	}
	return Batch[To]{data: out}
}
