package lanes

import (
	"os"
	"strconv"
	"unsafe"
)

// DispatchLevel identifies the hardware capability set the process runs
// under. It decides the register width and therefore the lane count of
// every full-width batch.
type DispatchLevel int

const (
	// DispatchScalar indicates no SIMD capability; 128-bit batch shape.
	DispatchScalar DispatchLevel = iota

	// DispatchSSE2 indicates the x86-64 baseline (128-bit).
	DispatchSSE2

	// DispatchAVX2 indicates AVX2 (256-bit).
	DispatchAVX2

	// DispatchAVX512 indicates AVX-512 F+BW+DQ (512-bit).
	DispatchAVX512

	// DispatchNEON indicates ARM NEON (128-bit).
	DispatchNEON
)

// String returns a human-readable name for the dispatch level.
func (d DispatchLevel) String() string {
	switch d {
	case DispatchScalar:
		return "scalar"
	case DispatchSSE2:
		return "sse2"
	case DispatchAVX2:
		return "avx2"
	case DispatchAVX512:
		return "avx512"
	case DispatchNEON:
		return "neon"
	default:
		return "unknown"
	}
}

// currentLevel, currentWidth and currentName are fixed by init() in the
// dispatch_*.go file for the build's GOARCH and never change afterwards.
var (
	currentLevel DispatchLevel
	currentWidth int
	currentName  string
)

// CurrentLevel returns the capability set selected for this process.
func CurrentLevel() DispatchLevel {
	return currentLevel
}

// CurrentWidth returns the batch register width in bytes
// (16 for SSE2/NEON/scalar, 32 for AVX2, 64 for AVX-512).
func CurrentWidth() int {
	return currentWidth
}

// CurrentName returns a human-readable name for the selected capability
// set, e.g. "avx2" or "scalar".
func CurrentName() string {
	return currentName
}

// NoSimdEnv reports whether the LANES_NO_SIMD environment variable asks for
// the scalar dispatch level regardless of CPU capabilities. Useful for
// comparing the generic tier against specialized tiers in tests.
func NoSimdEnv() bool {
	val := os.Getenv("LANES_NO_SIMD")
	if val == "" {
		return false
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

// setScalarMode forces the scalar dispatch level. Called during init only.
func setScalarMode() {
	currentLevel = DispatchScalar
	currentWidth = 16
	currentName = "scalar"
}

// MaxLanes returns the full-width lane count for element type T:
// CurrentWidth() divided by the element's byte width.
//
// With AVX2 (32 bytes): int32 has 8 lanes, int64 has 4, int8 has 32.
func MaxLanes[T Lanes]() int {
	var zero T
	return currentWidth / int(unsafe.Sizeof(zero))
}
