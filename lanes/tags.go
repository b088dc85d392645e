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

// Tag is the architecture capability descriptor: it fixes the register
// width and therefore the lane count per element type. The dispatch layer
// keys its (operation, element type, index width, architecture) selection
// on a Tag; the kernels in this package serve every Tag as the generic
// fallback.
type Tag interface {
	// Width returns the register width in bytes (16, 32 or 64).
	Width() int

	// Name returns a human-readable name for this tag.
	Name() string
}

// ScalableTag adapts to the widest capability detected at process start.
// This is what query operators use unless they need a fixed shape.
type ScalableTag[T Lanes] struct{}

// Width returns the detected register width in bytes.
func (ScalableTag[T]) Width() int {
	return currentWidth
}

// Name returns the detected capability name.
func (ScalableTag[T]) Name() string {
	return currentName
}

// MaxLanes returns the lane count for T at the detected width.
func (t ScalableTag[T]) MaxLanes() int {
	return MaxLanes[T]()
}

// FixedTag128 pins the 128-bit batch shape (SSE2, NEON) regardless of what
// the hardware offers. Use it when lane counts must match across machines.
type FixedTag128[T Lanes] struct{}

// Width returns 16 bytes.
func (FixedTag128[T]) Width() int {
	return 16
}

// Name returns "128bit".
func (FixedTag128[T]) Name() string {
	return "128bit"
}

// MaxLanes returns the number of T lanes in 128 bits.
func (t FixedTag128[T]) MaxLanes() int {
	var zero T
	return 16 / int(unsafe.Sizeof(zero))
}

// FixedTag256 pins the 256-bit batch shape (AVX2).
type FixedTag256[T Lanes] struct{}

// Width returns 32 bytes.
func (FixedTag256[T]) Width() int {
	return 32
}

// Name returns "256bit".
func (FixedTag256[T]) Name() string {
	return "256bit"
}

// MaxLanes returns the number of T lanes in 256 bits.
func (t FixedTag256[T]) MaxLanes() int {
	var zero T
	return 32 / int(unsafe.Sizeof(zero))
}

// FixedTag512 pins the 512-bit batch shape (AVX-512).
type FixedTag512[T Lanes] struct{}

// Width returns 64 bytes.
func (FixedTag512[T]) Width() int {
	return 64
}

// Name returns "512bit".
func (FixedTag512[T]) Name() string {
	return "512bit"
}

// MaxLanes returns the number of T lanes in 512 bits.
func (t FixedTag512[T]) MaxLanes() int {
	var zero T
	return 64 / int(unsafe.Sizeof(zero))
}
