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

// PrepareB quantizes the rows x cols row-major matrix B into the tiled
// layout Multiply reads.
//
// Tiles are TileRow x TileCol. They are written column strip by column
// strip, and within a strip from top to bottom, which is the order the
// multiply streams them. Inside a tile each of the 8 registers holds
// TileRow consecutive rows of one column.
//
// rows must be a multiple of TileRow and cols a multiple of TileCol.
// output receives rows*cols elements.
func (k *Kernel[T]) PrepareB(input []float32, output []T, quantMult float32, rows, cols int) {
	k.checkPrepareB(input, output, rows, cols)
	k.prepareStrips(input, output, quantMult, rows, cols, 0, cols)
}

func (k *Kernel[T]) checkPrepareB(input []float32, output []T, rows, cols int) {
	checkMultiple("PrepareB", "rows", rows, k.backend.TileRow)
	checkMultiple("PrepareB", "cols", cols, TileCol)
	checkLen("PrepareB", "input", len(input), rows*cols)
	checkLen("PrepareB", "output", len(output), rows*cols)
	checkAligned("PrepareB", "input", input, k.backend.Register)
	checkAligned("PrepareB", "output", output, k.backend.Register)
}

// prepareStrips repacks the column strips starting at colStart up to colEnd.
func (k *Kernel[T]) prepareStrips(input []float32, output []T, quantMult float32, rows, cols, colStart, colEnd int) {
	tileRow := k.backend.TileRow
	codec := k.impl.newTile(k.backend.Register, quantMult)
	offsets := k.impl.tileOffsets()
	regs := make([]hwy.Vec[T], TileCol)

	out := colStart * rows
	for c := colStart; c < colEnd; c += TileCol {
		for r := 0; r < rows; r += tileRow {
			for i, off := range offsets {
				regs[i] = codec.ForReshape(input[(r+off)*cols+c:], cols)
			}
			k.impl.reshape(regs)
			for _, v := range regs {
				hwy.Store(v, output[out:out+tileRow])
				out += tileRow
			}
		}
	}
}

// UnprepareB restores the row-major order of a prepared rows x cols matrix.
// It is the inverse of the layout permutation applied by PrepareB.
func (k *Kernel[T]) UnprepareB(input []T, output []T, rows, cols int) {
	checkMultiple("UnprepareB", "rows", rows, k.backend.TileRow)
	checkMultiple("UnprepareB", "cols", cols, TileCol)
	checkLen("UnprepareB", "input", len(input), rows*cols)
	checkLen("UnprepareB", "output", len(output), rows*cols)

	tileRow := k.backend.TileRow
	for r := range rows {
		for c := range cols {
			output[r*cols+c] = input[preparedIndex(r, c, rows, tileRow)]
		}
	}
}
