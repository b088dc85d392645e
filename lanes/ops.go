package lanes

// Lane-width primitives. These are the scaffolding every other kernel is
// built on; higher-level operators use them at batch boundaries.

// Load creates a full-width batch from the leading lanes of src. A short
// src leaves the remaining lanes zero.
func Load[T Lanes](src []T) Batch[T] {
	data := make([]T, MaxLanes[T]())
	copy(data, src)
	return Batch[T]{data: data}
}

// LoadLanes creates a batch with exactly n lanes from the leading entries
// of src. Used for half-width batches feeding the narrow gather path.
func LoadLanes[T Lanes](src []T, n int) Batch[T] {
	data := make([]T, n)
	copy(data, src)
	return Batch[T]{data: data}
}

// Store writes the batch's lanes to dst, stopping at whichever is shorter.
func Store[T Lanes](b Batch[T], dst []T) {
	copy(dst, b.data)
}

// Set creates a full-width batch with every lane equal to value.
func Set[T Lanes](value T) Batch[T] {
	data := make([]T, MaxLanes[T]())
	for i := range data {
		data[i] = value
	}
	return Batch[T]{data: data}
}

// Zero creates a full-width batch of zero lanes.
func Zero[T Lanes]() Batch[T] {
	return Batch[T]{data: make([]T, MaxLanes[T]())}
}

// zeroLanes creates a batch of n zero lanes.
func zeroLanes[T Lanes](n int) Batch[T] {
	return Batch[T]{data: make([]T, n)}
}
