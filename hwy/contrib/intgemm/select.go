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

import "fmt"

// SelectColumnsB builds a prepared matrix from a subset of the column tiles
// of a prepared matrix with the given number of rows.
//
// Each entry of cols is the first column of a tile and must be a multiple of
// TileCol. Tiles are copied verbatim in the order given, so output holds
// rows*TileCol*len(cols) elements and can be passed to Multiply with
// bCols = TileCol*len(cols).
func (k *Kernel[T]) SelectColumnsB(input, output []T, rows int, cols []int) {
	checkMultiple("SelectColumnsB", "rows", rows, k.backend.TileRow)
	checkLen("SelectColumnsB", "output", len(output), rows*TileCol*len(cols))

	strip := rows * TileCol
	for i, c := range cols {
		if c < 0 || c%TileCol != 0 {
			panic(fmt.Sprintf("intgemm: SelectColumnsB column %d is not a multiple of %d", c, TileCol))
		}
		checkLen("SelectColumnsB", "input", len(input), (c+TileCol)*rows)
		copy(output[i*strip:(i+1)*strip], input[c*rows:(c+TileCol)*rows])
	}
}

// SelectColumns builds a prepared matrix from individual columns of a
// prepared matrix with the given number of rows. Any column may be chosen,
// in any order and with repeats; len(cols) must be a multiple of TileCol.
//
// Every column occupies one register per row block, so selection copies
// whole registers and never needs to requantize.
func (k *Kernel[T]) SelectColumns(input, output []T, rows int, cols []int) {
	tileRow := k.backend.TileRow
	checkMultiple("SelectColumns", "rows", rows, tileRow)
	checkMultiple("SelectColumns", "column count", len(cols), TileCol)
	checkLen("SelectColumns", "output", len(output), rows*len(cols))

	for i, c := range cols {
		if c < 0 {
			panic(fmt.Sprintf("intgemm: SelectColumns column %d is negative", c))
		}
		checkLen("SelectColumns", "input", len(input), (c/TileCol+1)*rows*TileCol)
		for r := 0; r < rows; r += tileRow {
			src := preparedIndex(r, c, rows, tileRow)
			dst := preparedIndex(r, i, rows, tileRow)
			copy(output[dst:dst+tileRow], input[src:src+tileRow])
		}
	}
}
