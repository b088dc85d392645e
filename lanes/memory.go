package lanes

import "unsafe"

// Vectorized copy and fill. Both consume the largest unit that still fits
// in the remaining byte count, cascading from the full batch width down
// through 8-, 4-, 2- and 1-byte scalar moves. Loads and stores make no
// alignment assumptions.
//
// The pointer forms mirror how the engine calls them: raw base addresses
// with a byte count, validity guaranteed by the caller.

// Memcpy copies n bytes from src to dst. The ranges must not overlap.
// Byte-identical to a naive byte loop for every n >= 0.
func Memcpy(dst, src unsafe.Pointer, n int) {
	batch := currentWidth
	for n >= batch {
		copyBlock(dst, src, batch)
		n -= batch
		if n == 0 {
			return
		}
		dst = unsafe.Add(dst, batch)
		src = unsafe.Add(src, batch)
	}
	for n >= 8 {
		*(*uint64)(dst) = *(*uint64)(src)
		n -= 8
		if n == 0 {
			return
		}
		dst = unsafe.Add(dst, 8)
		src = unsafe.Add(src, 8)
	}
	if n >= 4 {
		*(*uint32)(dst) = *(*uint32)(src)
		n -= 4
		if n == 0 {
			return
		}
		dst = unsafe.Add(dst, 4)
		src = unsafe.Add(src, 4)
	}
	if n >= 2 {
		*(*uint16)(dst) = *(*uint16)(src)
		n -= 2
		if n == 0 {
			return
		}
		dst = unsafe.Add(dst, 2)
		src = unsafe.Add(src, 2)
	}
	if n >= 1 {
		*(*uint8)(dst) = *(*uint8)(src)
	}
}

// copyBlock moves one full batch width in 8-byte units. The batch width is
// always a multiple of 8.
func copyBlock(dst, src unsafe.Pointer, width int) {
	for k := 0; k < width; k += 8 {
		*(*uint64)(unsafe.Add(dst, k)) = *(*uint64)(unsafe.Add(src, k))
	}
}

// Memset writes n copies of b starting at dst.
// Byte-identical to a naive byte loop for every n >= 0.
func Memset(dst unsafe.Pointer, b byte, n int) {
	word := uint64(b) * 0x0101010101010101
	batch := currentWidth
	for n >= batch {
		for k := 0; k < batch; k += 8 {
			*(*uint64)(unsafe.Add(dst, k)) = word
		}
		n -= batch
		if n == 0 {
			return
		}
		dst = unsafe.Add(dst, batch)
	}
	for n >= 8 {
		*(*uint64)(dst) = word
		n -= 8
		if n == 0 {
			return
		}
		dst = unsafe.Add(dst, 8)
	}
	if n >= 4 {
		*(*uint32)(dst) = uint32(word)
		n -= 4
		if n == 0 {
			return
		}
		dst = unsafe.Add(dst, 4)
	}
	if n >= 2 {
		*(*uint16)(dst) = uint16(word)
		n -= 2
		if n == 0 {
			return
		}
		dst = unsafe.Add(dst, 2)
	}
	if n >= 1 {
		*(*uint8)(dst) = b
	}
}

// CopyBytes copies min(len(dst), len(src)) bytes through Memcpy.
func CopyBytes(dst, src []byte) {
	n := min(len(dst), len(src))
	if n == 0 {
		return
	}
	Memcpy(unsafe.Pointer(&dst[0]), unsafe.Pointer(&src[0]), n)
}

// FillBytes sets every byte of dst to b through Memset.
func FillBytes(dst []byte, b byte) {
	if len(dst) == 0 {
		return
	}
	Memset(unsafe.Pointer(&dst[0]), b, len(dst))
}
