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

package intgemm

import "github.com/ajroetker/go-intgemm/hwy"

// TileCol is the number of B columns processed together. It is the same for
// every backend.
const TileCol = 8

// Backend describes one kernel variant. Values are immutable.
type Backend struct {
	// Name is a human-readable name such as "8-bit AVX512".
	Name string

	// Bits is the integer width, 8 or 16.
	Bits int

	// Register is the vector width the variant is written for.
	Register hwy.Width

	// TileRow is the number of B rows in a prepared tile. It equals the
	// number of integer lanes in a register.
	TileRow int

	// TileCol is the number of B columns in a prepared tile.
	TileCol int

	// Uses is the instruction set the variant requires.
	Uses hwy.DispatchLevel
}

var (
	Backend16SSE2 = newBackend("16-bit SSE2", 16, hwy.Width128, hwy.DispatchSSE2)
	Backend8SSSE3 = newBackend("8-bit SSSE3", 8, hwy.Width128, hwy.DispatchSSSE3)

	Backend16AVX2 = newBackend("16-bit AVX2", 16, hwy.Width256, hwy.DispatchAVX2)
	Backend8AVX2  = newBackend("8-bit AVX2", 8, hwy.Width256, hwy.DispatchAVX2)

	Backend16AVX512 = newBackend("16-bit AVX512", 16, hwy.Width512, hwy.DispatchAVX512BW)
	Backend8AVX512  = newBackend("8-bit AVX512", 8, hwy.Width512, hwy.DispatchAVX512BW)
)

func newBackend(name string, bits int, reg hwy.Width, uses hwy.DispatchLevel) Backend {
	return Backend{
		Name:     name,
		Bits:     bits,
		Register: reg,
		TileRow:  reg.Bits() / bits,
		TileCol:  TileCol,
		Uses:     uses,
	}
}

// Supported reports whether the host can run the variant.
func (b Backend) Supported() bool {
	return hwy.Supports(b.Uses)
}

// Lanes returns the number of integer lanes per register.
func (b Backend) Lanes() int {
	return b.TileRow
}

// FloatLanes returns the number of float32 lanes per register.
func (b Backend) FloatLanes() int {
	return b.Register.Bytes() / 4
}

// String returns the backend name.
func (b Backend) String() string {
	return b.Name
}
