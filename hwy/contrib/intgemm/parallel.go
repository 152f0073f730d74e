// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

package intgemm

import "github.com/ajroetker/go-intgemm/hwy/contrib/workerpool"

// RowsPerTask is how many rows of A one parallel multiply task covers
// against a single column strip.
const RowsPerTask = 32

// ParallelMultiply is Multiply with the output spread over pool. Work is
// indexed strip-major as (column strip, row of A) and handed out in
// batches of RowsPerTask rows, so a worker keeps streaming one strip of B.
// cb is called concurrently for disjoint tiles. A nil pool runs Multiply.
func (k *Kernel[T]) ParallelMultiply(pool *workerpool.Pool, a, b []T, aRows, width, bCols int, cb Callback) {
	if pool == nil {
		k.Multiply(a, b, aRows, width, bCols, cb)
		return
	}
	k.checkMultiply(a, b, aRows, width, bCols)
	if aRows == 0 {
		return
	}

	strips := bCols / TileCol
	pool.ParallelForAtomicBatched(strips*aRows, RowsPerTask, func(start, end int) {
		for start < end {
			strip, row := start/aRows, start%aRows
			stop := min(end, (strip+1)*aRows)
			col := strip * TileCol
			k.multiplyTiles(a, b, aRows, width, bCols, col, col+TileCol, row, row+stop-start, cb)
			start = stop
		}
	})
}

// ParallelPrepareA is PrepareA with the registers of A spread over pool.
// A nil pool runs PrepareA.
func (k *Kernel[T]) ParallelPrepareA(pool *workerpool.Pool, input []float32, output []T, quantMult float32, rows, cols int) {
	if pool == nil {
		k.PrepareA(input, output, quantMult, rows, cols)
		return
	}
	size := rows * cols
	fl := k.FloatLanes()
	checkMultiple("PrepareA", "size", size, fl)
	checkLen("PrepareA", "input", len(input), size)
	checkLen("PrepareA", "output", len(output), size)

	pool.ParallelFor(size/fl, func(start, end int) {
		lo, hi := start*fl, end*fl
		k.Quantize(input[lo:hi], output[lo:hi], quantMult, hi-lo)
	})
}

// ParallelPrepareB is PrepareB with one column strip per pool task.
// A nil pool runs PrepareB.
func (k *Kernel[T]) ParallelPrepareB(pool *workerpool.Pool, input []float32, output []T, quantMult float32, rows, cols int) {
	if pool == nil {
		k.PrepareB(input, output, quantMult, rows, cols)
		return
	}
	k.checkPrepareB(input, output, rows, cols)

	pool.ParallelForAtomic(cols/TileCol, func(i int) {
		k.prepareStrips(input, output, quantMult, rows, cols, i*TileCol, (i+1)*TileCol)
	})
}
