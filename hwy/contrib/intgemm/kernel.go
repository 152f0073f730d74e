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

import (
	"fmt"

	"github.com/ajroetker/go-intgemm/hwy"
)

// Int is the set of quantized element types.
type Int interface {
	~int8 | ~int16
}

// Kernel runs one backend variant. It holds only immutable configuration,
// so a single Kernel may be used from many goroutines on disjoint outputs.
type Kernel[T Int] struct {
	backend Backend
	impl    widthOps[T]
}

// widthOps is the element-width strategy the generic kernel is written
// against. Everything that differs between int8 and int16 lives here.
type widthOps[T Int] interface {
	// demote narrows quantized int32 lanes to T, applying the width's clamp.
	demote(w hwy.Width, v hwy.Vec[int32]) hwy.Vec[T]

	// newTile returns the codec PrepareB feeds float windows through.
	newTile(w hwy.Width, quantMult float32) TileCodec[T]

	// tileOffsets lists the window row offsets PrepareB passes to the codec
	// for each of the 8 registers of a tile.
	tileOffsets() [TileCol]int

	// reshape turns the 8 codec outputs into 8 registers holding one
	// column each.
	reshape(regs []hwy.Vec[T])

	// newDot returns a fresh accumulator set for one row x 8 column tile.
	newDot(w hwy.Width) dot[T]
}

// dot accumulates the products of one A row with 8 B columns.
type dot[T Int] interface {
	reset()
	step(a hwy.Vec[T], b []hwy.Vec[T])
	finish(sums []int32)
}

// New8 returns an 8-bit kernel for b. It panics if b is not an 8-bit backend.
func New8(b Backend) *Kernel[int8] {
	if b.Bits != 8 {
		panic(fmt.Sprintf("intgemm: %s is not an 8-bit backend", b.Name))
	}
	return &Kernel[int8]{backend: b, impl: ops8{}}
}

// New16 returns a 16-bit kernel for b. It panics if b is not a 16-bit backend.
func New16(b Backend) *Kernel[int16] {
	if b.Bits != 16 {
		panic(fmt.Sprintf("intgemm: %s is not a 16-bit backend", b.Name))
	}
	return &Kernel[int16]{backend: b, impl: ops16{}}
}

// Backend returns the variant the kernel runs.
func (k *Kernel[T]) Backend() Backend {
	return k.backend
}

// Lanes returns the number of integer lanes per register.
func (k *Kernel[T]) Lanes() int {
	return k.backend.TileRow
}

// FloatLanes returns the number of float32 lanes per register.
func (k *Kernel[T]) FloatLanes() int {
	return k.backend.FloatLanes()
}

// preparedIndex returns where logical element (r, c) of a rows x cols
// matrix lives in the prepared layout with tileRow rows per tile.
//
// Column strips of 8 are stored one after another. Inside a strip come the
// row blocks, and inside a row block one register per column holding
// tileRow consecutive rows.
func preparedIndex(r, c, rows, tileRow int) int {
	return (c/TileCol)*rows*TileCol + (r/tileRow)*TileCol*tileRow + (c%TileCol)*tileRow + r%tileRow
}
