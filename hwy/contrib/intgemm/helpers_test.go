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
	"math"
	"math/rand"
	"testing"

	"github.com/ajroetker/go-intgemm/hwy"
)

func testRNG() *rand.Rand {
	return rand.New(rand.NewSource(42))
}

// randomMatrix returns n floats uniform in [-scale, scale), aligned for the
// widest register.
func randomMatrix(rng *rand.Rand, n int, scale float32) []float32 {
	m := hwy.AllocAligned[float32](n, hwy.Width512)
	for i := range m {
		m[i] = (rng.Float32()*2 - 1) * scale
	}
	return m
}

// quantizeRef is the scalar definition of quantization.
func quantizeRef(x, quantMult float32, bits int) int32 {
	p := float64(x * quantMult)
	if math.IsNaN(p) {
		return 0
	}
	lo, hi := -32768.0, 32767.0
	if bits == 8 {
		lo, hi = -127, 127
	}
	return int32(math.Max(lo, math.Min(hi, math.RoundToEven(p))))
}

func quantizeAllRef[T Int](input []float32, quantMult float32, bits int) []T {
	out := make([]T, len(input))
	for i, x := range input {
		out[i] = T(quantizeRef(x, quantMult, bits))
	}
	return out
}

// matmulRef multiplies row-major integer matrices exactly.
func matmulRef[T Int](a, b []T, aRows, width, bCols int) []int32 {
	c := make([]int32, aRows*bCols)
	for i := range aRows {
		for j := range bCols {
			var sum int32
			for k := range width {
				sum += int32(a[i*width+k]) * int32(b[k*bCols+j])
			}
			c[i*bCols+j] = sum
		}
	}
	return c
}

// writeTo returns a callback storing raw sums into a row-major aRows x bCols
// matrix.
func writeTo(c []int32) Callback {
	return CallbackFunc(func(sums []int32, info TileInfo) {
		copy(c[info.RowIdx*info.Cols+info.ColIdx:], sums)
	})
}

// forEachKernel runs test8 against every 8-bit backend and test16 against
// every 16-bit backend.
func forEachKernel(t *testing.T, test8 func(*testing.T, *Kernel[int8]), test16 func(*testing.T, *Kernel[int16])) {
	t.Helper()
	for _, b := range Backends() {
		t.Run(b.Name, func(t *testing.T) {
			if b.Bits == 8 {
				test8(t, New8(b))
			} else {
				test16(t, New16(b))
			}
		})
	}
}

func expectPanic(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s: expected panic", name)
		}
	}()
	fn()
}
