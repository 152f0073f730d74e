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

// dot8 accumulates int8 products in saturating int16 lanes.
//
// The byte multiply-add only exists as unsigned x signed, so each step
// feeds |a| as the unsigned operand and negates the B lanes where a was
// negative: sign(a)*|a|*b == a*b.
type dot8 struct {
	w    hwy.Width
	ones hwy.Vec[int16]
	sums []hwy.Vec[int16]
}

func newDot8(w hwy.Width) *dot8 {
	return &dot8{
		w:    w,
		ones: hwy.Set(w, int16(1)),
		sums: make([]hwy.Vec[int16], TileCol),
	}
}

func (d *dot8) reset() {
	for j := range d.sums {
		d.sums[j] = hwy.Zero[int16](d.w)
	}
}

func (d *dot8) step(a hwy.Vec[int8], b []hwy.Vec[int8]) {
	neg := hwy.IsNegative(a)
	aPos := hwy.BitCastToUint8(hwy.Abs(a))
	for j, bv := range b {
		signed := hwy.IfThenElse(neg, hwy.Neg(bv), bv)
		// Pair sums saturate, and so does the running total.
		d.sums[j] = hwy.SaturatedAdd(d.sums[j], hwy.SatWidenMulPairwiseAdd(aPos, signed))
	}
}

// finish widens pairs of int16 partial sums to int32 by multiply-adding
// with ones, then reduces each column register to its total.
func (d *dot8) finish(out []int32) {
	for j, s := range d.sums {
		out[j] = hwy.ReduceSum(hwy.WidenMulPairwiseAdd(s, d.ones))
	}
}

// dot16 accumulates int16 products in int32 lanes.
type dot16 struct {
	w    hwy.Width
	sums []hwy.Vec[int32]
}

func newDot16(w hwy.Width) *dot16 {
	return &dot16{w: w, sums: make([]hwy.Vec[int32], TileCol)}
}

func (d *dot16) reset() {
	for j := range d.sums {
		d.sums[j] = hwy.Zero[int32](d.w)
	}
}

func (d *dot16) step(a hwy.Vec[int16], b []hwy.Vec[int16]) {
	for j, bv := range b {
		d.sums[j] = hwy.Add(d.sums[j], hwy.WidenMulPairwiseAdd(a, bv))
	}
}

func (d *dot16) finish(out []int32) {
	for j, s := range d.sums {
		out[j] = hwy.ReduceSum(s)
	}
}
