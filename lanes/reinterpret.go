package lanes

import (
	"reflect"
	"sync"
	"unsafe"
)

// Bit-level reinterpretation and the memoized iota batch. Reinterpretation
// is deliberately confined to this one function instead of scattering
// unsafe casts through call sites.

// ReinterpretBatch returns data's raw bit pattern viewed as lanes of To.
// The two lane types must describe the same total byte width; anything else
// panics. When To and From are the same type this is the identity and the
// input is returned as-is.
func ReinterpretBatch[To, From Lanes](data Batch[From]) Batch[To] {
	if same, ok := any(data).(Batch[To]); ok {
		return same
	}
	var from From
	var to To
	total := len(data.data) * int(unsafe.Sizeof(from))
	if total%int(unsafe.Sizeof(to)) != 0 {
		panic("lanes: ReinterpretBatch requires equal total bit width")
	}
	out := make([]To, total/int(unsafe.Sizeof(to)))
	if total > 0 {
		copy(
			unsafe.Slice((*byte)(unsafe.Pointer(&out[0])), total),
			unsafe.Slice((*byte)(unsafe.Pointer(&data.data[0])), total),
		)
	}
	return Batch[To]{data: out}
}

// iotaMemo caches one iota batch per lane type. The lane count per type is
// fixed after dispatch init, so a type-keyed cache is sufficient. Entries
// are immutable once published.
var iotaMemo sync.Map // reflect.Type -> Batch[T]

// Iota returns the batch whose lane i holds the value i. The batch is built
// once per lane type and shared; treat it as read-only.
func Iota[T Lanes]() Batch[T] {
	key := reflect.TypeFor[T]()
	if cached, ok := iotaMemo.Load(key); ok {
		return cached.(Batch[T])
	}
	data := make([]T, MaxLanes[T]())
	for i := range data {
		data[i] = T(i)
	}
	actual, _ := iotaMemo.LoadOrStore(key, Batch[T]{data: data})
	return actual.(Batch[T])
}
