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

import "math/bits"

// Bitmap scanning: materializing the positions of set bits in a flat
// []uint64 bit vector. This is how selection vectors are produced from
// filter result bitmaps.

// byteSetBits maps every byte value to the offsets of its set bits in
// ascending order, one offset per set bit starting at entry 0. Entries past
// the byte's popcount are zero. Built before main and read-only afterwards.
var byteSetBits = func() (tbl [256][8]int32) {
	for b := 1; b < 256; b++ {
		k := 0
		for bit := 0; bit < 8; bit++ {
			if b&(1<<uint(bit)) != 0 {
				tbl[b][k] = int32(bit)
				k++
			}
		}
	}
	return tbl
}()

// ByteSetBits returns the ascending set-bit offsets of b in the first
// popcount(b) entries.
func ByteSetBits(b uint8) [8]int32 {
	return byteSetBits[b]
}

// IndicesOfSetBits appends to result the absolute position of every set bit
// of bitmap within [begin, end), in strictly increasing order, and returns
// the count written. result must have room for popcount-many entries; the
// caller guarantees that, typically by sizing it to end-begin.
//
// end <= begin returns 0. Bit k of the bitmap lives in word k/64 at bit
// position k%64.
func IndicesOfSetBits(bitmap []uint64, begin, end int, result []int32) int {
	if end <= begin {
		return 0
	}
	row := begin &^ 63
	written := 0
	firstWord := begin / 64
	endWord := (end + 63) / 64
	for wordIndex := firstWord; wordIndex < endWord; wordIndex++ {
		word := bitmap[wordIndex]
		if word == 0 {
			row += 64
			continue
		}
		if wordIndex == firstWord && begin != firstWord*64 {
			word &= ^uint64(0) << uint(begin-firstWord*64)
			if word == 0 {
				row += 64
				continue
			}
		}
		if wordIndex == endWord-1 {
			if lastBits := end - (endWord-1)*64; lastBits < 64 {
				word &= 1<<uint(lastBits) - 1
				if word == 0 {
					break
				}
			}
		}
		// Density heuristic: with few hits so far relative to rows
		// scanned, the word is probably sparse and bit-at-a-time
		// extraction wins; otherwise the byte table issues fewer
		// dependent steps. The threshold is a tunable, not a
		// correctness constant; both paths yield identical output.
		if written < row>>2 {
			written += scanWordSparse(word, int32(row), result[written:])
		} else {
			written += scanWordDense(word, int32(row), result[written:])
		}
		row += 64
	}
	return written
}

// scanWordSparse extracts set-bit positions one trailing-zero count at a
// time. Cheap when the word has few set bits.
func scanWordSparse(word uint64, row int32, out []int32) int {
	written := 0
	for word != 0 {
		out[written] = int32(bits.TrailingZeros64(word)) + row
		written++
		word &= word - 1
	}
	return written
}

// scanWordDense walks the word a byte at a time, expanding each nonzero
// byte through byteSetBits. Cheap when the word has many set bits.
func scanWordDense(word uint64, row int32, out []int32) int {
	written := 0
	for byteCnt := 0; byteCnt < 8; byteCnt++ {
		b := uint8(word)
		word >>= 8
		if b != 0 {
			offsets := &byteSetBits[b]
			pop := bits.OnesCount8(b)
			for i := 0; i < pop; i++ {
				out[written+i] = offsets[i] + row
			}
			written += pop
		}
		row += 8
	}
	return written
}
