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

import (
	"encoding/binary"

	"github.com/klauspost/crc32"
)

// crcTable uses the IEEE polynomial. The choice only has to stay internally
// consistent: checksums are compared against checksums produced by this
// same kernel (or its specialized siblings), never against an external CRC
// standard.
var crcTable = crc32.MakeTable(crc32.IEEE)

// Crc32 folds the 8 bytes of value, in little-endian order, into a running
// CRC-32 accumulator and returns the updated checksum. It chains: folding a
// byte stream 8 bytes at a time equals one whole-buffer CRC-32 over the
// same bytes, with seed 0 for an empty stream.
func Crc32(checksum uint32, value uint64) uint32 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], value)
	return crc32.Update(checksum, crcTable, buf[:])
}
