// Copyright 2025 go-highway Authors
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

package hwy

import "unsafe"

// BlockBytes is the size of the 128-bit blocks that lane-order sensitive
// operations work within.
const BlockBytes = 16

// Width is a register width tag, in bytes. It plays the role of Highway's
// descriptor argument: every constructor takes one so the same kernel code
// can be instantiated for 128-, 256- and 512-bit registers.
type Width int

const (
	// Width128 is a 128-bit register (SSE2, SSSE3, NEON).
	Width128 Width = 16

	// Width256 is a 256-bit register (AVX2).
	Width256 Width = 32

	// Width512 is a 512-bit register (AVX-512).
	Width512 Width = 64
)

// Bytes returns the register width in bytes.
func (w Width) Bytes() int {
	return int(w)
}

// Bits returns the register width in bits.
func (w Width) Bits() int {
	return int(w) * 8
}

// Blocks returns the number of 128-bit blocks in the register.
func (w Width) Blocks() int {
	return int(w) / BlockBytes
}

// String returns "128bit", "256bit" or "512bit".
func (w Width) String() string {
	switch w {
	case Width128:
		return "128bit"
	case Width256:
		return "256bit"
	case Width512:
		return "512bit"
	default:
		return "unknown"
	}
}

// MaxLanes returns the number of T values that fit in a register of width w.
//
// For example, with Width256:
//   - float32: 32/4 = 8 lanes
//   - int16: 32/2 = 16 lanes
//   - int8: 32/1 = 32 lanes
func MaxLanes[T Lanes](w Width) int {
	return int(w) / sizeOf[T]()
}

// blockLanes returns the number of T values in one 128-bit block.
func blockLanes[T Lanes]() int {
	return BlockBytes / sizeOf[T]()
}

func sizeOf[T Lanes]() int {
	var dummy T
	return int(unsafe.Sizeof(dummy))
}
