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

// Multiply computes the product of the quantized aRows x width matrix a
// (row-major, from PrepareA) and the prepared width x bCols matrix b (from
// PrepareB or a column selection), passing raw int32 accumulators to cb one
// row x TileCol tile at a time.
//
// width must be a multiple of Lanes and bCols a multiple of TileCol. For
// 8-bit kernels the int16 partial sums saturate; see the package
// documentation.
func (k *Kernel[T]) Multiply(a, b []T, aRows, width, bCols int, cb Callback) {
	k.checkMultiply(a, b, aRows, width, bCols)
	k.multiplyTiles(a, b, aRows, width, bCols, 0, bCols, 0, aRows, cb)
}

func (k *Kernel[T]) checkMultiply(a, b []T, aRows, width, bCols int) {
	checkMultiple("Multiply", "width", width, k.backend.TileRow)
	checkMultiple("Multiply", "bCols", bCols, TileCol)
	checkLen("Multiply", "A", len(a), aRows*width)
	checkLen("Multiply", "B", len(b), width*bCols)
	checkAligned("Multiply", "A", a, k.backend.Register)
	checkAligned("Multiply", "B", b, k.backend.Register)
}

// multiplyTiles runs the column strips [colStart, colEnd) against the rows
// [rowStart, rowEnd) of a. Scratch is local to the call.
func (k *Kernel[T]) multiplyTiles(a, b []T, aRows, width, bCols, colStart, colEnd, rowStart, rowEnd int, cb Callback) {
	w := k.backend.Register
	lanes := k.backend.TileRow
	acc := k.impl.newDot(w)
	bRegs := make([]hwy.Vec[T], TileCol)
	sums := make([]int32, TileCol)

	for col := colStart; col < colEnd; col += TileCol {
		strip := b[col*width : (col+TileCol)*width]
		for row := rowStart; row < rowEnd; row++ {
			aRow := a[row*width : (row+1)*width]
			acc.reset()
			for s := 0; s < width; s += lanes {
				av := hwy.Load(w, aRow[s:s+lanes])
				// Row block s/lanes of the strip: one register per column.
				block := strip[s*TileCol:]
				for j := range bRegs {
					bRegs[j] = hwy.Load(w, block[j*lanes:(j+1)*lanes])
				}
				acc.step(av, bRegs)
			}
			acc.finish(sums)
			cb.Run(sums, TileInfo{
				RowIdx: row,
				ColIdx: col,
				Rows:   aRows,
				Width:  width,
				Cols:   bCols,
			})
		}
	}
}
