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

// Quantize converts size floats to fixed point: each value is multiplied by
// quantMult, rounded to nearest (ties to even) and saturated. 8-bit output
// lies in [-127, 127]; 16-bit output uses the full int16 range.
//
// size must be a multiple of FloatLanes. input should be aligned to the
// register width.
func (k *Kernel[T]) Quantize(input []float32, output []T, quantMult float32, size int) {
	fl := k.FloatLanes()
	checkMultiple("Quantize", "size", size, fl)
	checkLen("Quantize", "input", len(input), size)
	checkLen("Quantize", "output", len(output), size)
	checkAligned("Quantize", "input", input, k.backend.Register)

	w := k.backend.Register
	mult := hwy.Set(w, quantMult)
	for i := 0; i < size; i += fl {
		q := hwy.NearestInt(hwy.Mul(hwy.Load(w, input[i:i+fl]), mult))
		hwy.Store(k.impl.demote(w, q), output[i:i+fl])
	}
}

// PrepareA quantizes the rows x cols matrix A. A keeps its row-major order;
// the multiply reads it row by row.
func (k *Kernel[T]) PrepareA(input []float32, output []T, quantMult float32, rows, cols int) {
	k.Quantize(input, output, quantMult, rows*cols)
}

// MaxAbsolute returns the largest absolute value in input. The usual 8-bit
// multiplier is 127 / MaxAbsolute(x).
func MaxAbsolute(input []float32) float32 {
	w := hwy.CurrentLevel().Width()
	n := hwy.MaxLanes[float32](w)
	acc := hwy.Zero[float32](w)
	hwy.ProcessWithTail(len(input), n,
		func(offset int) {
			acc = hwy.Max(acc, hwy.Abs(hwy.Load(w, input[offset:offset+n])))
		},
		func(offset, count int) {
			// Zero-filled lanes cannot raise the maximum.
			acc = hwy.Max(acc, hwy.Abs(hwy.Load(w, input[offset:offset+count])))
		},
	)
	return hwy.ReduceMax(acc)
}
