package lanes

// Lane permutation and narrowing packs. Permute is the engine's lane
// shuffle; Pack32 is the narrowing step behind the 16-bit gather path.

// Permute returns a batch where lane i equals data lane idx[i]. A negative
// index blanks the lane to zero; that is how scan kernels mark lanes with
// no valid source. Positive indices must be within data's lane count —
// out-of-range values are a caller contract violation. idx may have half as
// many lanes as data, in which case the result is a half-width batch.
func Permute[T Lanes](data Batch[T], idx Batch[int32]) Batch[T] {
	out := make([]T, len(idx.data))
	for i, j := range idx.data {
		if j >= 0 {
			out[i] = data.data[j]
		}
	}
	return Batch[T]{data: out}
}

// Pack32 concatenates the low 16 bits of every lane of x and then of y into
// one 16-bit batch with twice the lane count of either input.
func Pack32(x, y Batch[int32]) Batch[int16] {
	out := make([]int16, len(x.data)+len(y.data))
	for i, v := range x.data {
		out[i] = int16(v)
	}
	n := len(x.data)
	for i, v := range y.data {
		out[n+i] = int16(v)
	}
	return Batch[int16]{data: out}
}
