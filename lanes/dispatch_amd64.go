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

//go:build amd64

package lanes

import "github.com/klauspost/cpuid/v2"

func init() {
	if NoSimdEnv() {
		setScalarMode()
		return
	}

	// AVX-512 needs F+BW+DQ together: the kernel surface assumes byte and
	// word granularity ops are available at the 512-bit width.
	switch {
	case cpuid.CPU.Supports(cpuid.AVX512F, cpuid.AVX512BW, cpuid.AVX512DQ):
		currentLevel = DispatchAVX512
		currentWidth = 64
		currentName = "avx512"
	case cpuid.CPU.Supports(cpuid.AVX2):
		currentLevel = DispatchAVX2
		currentWidth = 32
		currentName = "avx2"
	default:
		// SSE2 is part of the x86-64 baseline.
		currentLevel = DispatchSSE2
		currentWidth = 16
		currentName = "sse2"
	}
}
