// Copyright 2026 go-lanes Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package lanes

import "unsafe"

// Filter is the stream-compaction kernel: it keeps only the lanes of data
// whose bit is set in bitmask, left-packed from lane 0 in ascending
// original-lane order. Lanes past the selected count are unspecified; track
// the count separately as popcount(bitmask). Bits of bitmask at positions
// >= NumLanes must be zero.
//
// This is the selection-vector extraction primitive: evaluate a predicate
// into a bitmask, then Filter packs the matching rows.
func Filter[T Lanes](data Batch[T], bitmask uint64) Batch[T] {
	var zero T
	switch {
	case unsafe.Sizeof(zero) <= 2:
		// Narrow elements have too many lanes for a mask-indexed
		// permutation table; a write-pointer walk is the portable
		// strategy.
		return filterScalar(data, bitmask)
	case len(data.data) <= 8:
		// byteSetBits doubles as the bitmask -> permutation-index
		// table: the first popcount entries are exactly the lanes to
		// keep, in ascending order.
		tbl := byteSetBits[bitmask]
		return Permute(data, Batch[int32]{data: tbl[:len(data.data)]})
	default:
		return filterScalar(data, bitmask)
	}
}

func filterScalar[T Lanes](data Batch[T], bitmask uint64) Batch[T] {
	out := make([]T, len(data.data))
	k := 0
	for i, v := range data.data {
		if bitmask&(1<<uint(i)) != 0 {
			out[k] = v
			k++
		}
	}
	return Batch[T]{data: out}
}
