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

// Package callbacks provides output stages for intgemm.Multiply.
//
// Every callback writes into a caller-owned row-major output of
// info.Rows x info.Cols elements and touches only the tile it is given, so
// all of them may be used with ParallelMultiply.
package callbacks

import (
	"github.com/ajroetker/go-intgemm/hwy"
	"github.com/ajroetker/go-intgemm/hwy/contrib/intgemm"
)

// tile is the register width holding one accumulator tile as 8 int32 or
// float32 lanes.
const tile = hwy.Width256

// ActivationType specifies which activation function to apply after
// unquantizing.
type ActivationType int

const (
	// ActNone applies no activation (identity).
	ActNone ActivationType = iota
	// ActReLU applies ReLU: max(0, x).
	ActReLU
	// ActTanh applies tanh(x).
	ActTanh
	// ActSigmoid applies 1 / (1 + exp(-x)).
	ActSigmoid
)

func (a ActivationType) String() string {
	switch a {
	case ActNone:
		return "none"
	case ActReLU:
		return "relu"
	case ActTanh:
		return "tanh"
	case ActSigmoid:
		return "sigmoid"
	default:
		return "unknown"
	}
}

func (a ActivationType) apply(v hwy.Vec[float32]) hwy.Vec[float32] {
	switch a {
	case ActReLU:
		return hwy.Max(v, hwy.Zero[float32](tile))
	case ActTanh:
		return hwy.Tanh(v)
	case ActSigmoid:
		return hwy.Sigmoid(v)
	default:
		return v
	}
}

func offset(info intgemm.TileInfo) int {
	return info.RowIdx*info.Cols + info.ColIdx
}

// Write stores the raw int32 accumulators.
type Write struct {
	output []int32
}

// NewWrite returns a callback storing raw sums into output.
func NewWrite(output []int32) *Write {
	return &Write{output: output}
}

// Run implements intgemm.Callback.
func (w *Write) Run(sums []int32, info intgemm.TileInfo) {
	off := offset(info)
	copy(w.output[off:off+intgemm.TileCol], sums)
}

// Unquantize converts accumulators back to float32 by multiplying with
// unquantMult, usually 1 / (quantMultA * quantMultB), then optionally adds
// a per-column bias and applies an activation.
type Unquantize struct {
	output []float32
	mult   hwy.Vec[float32]
	bias   []float32
	act    ActivationType
}

// NewUnquantize returns a callback storing unquantized results into output.
func NewUnquantize(output []float32, unquantMult float32) *Unquantize {
	return &Unquantize{output: output, mult: hwy.Set(tile, unquantMult)}
}

// WithBias adds bias[col] to every element of column col. bias must have
// one entry per output column.
func (u *Unquantize) WithBias(bias []float32) *Unquantize {
	u.bias = bias
	return u
}

// WithActivation applies act after the bias.
func (u *Unquantize) WithActivation(act ActivationType) *Unquantize {
	u.act = act
	return u
}

// Run implements intgemm.Callback.
func (u *Unquantize) Run(sums []int32, info intgemm.TileInfo) {
	v := hwy.Mul(hwy.ConvertToFloat32(hwy.Load(tile, sums)), u.mult)
	if u.bias != nil {
		v = hwy.Add(v, hwy.Load(tile, u.bias[info.ColIdx:info.ColIdx+intgemm.TileCol]))
	}
	v = u.act.apply(v)
	off := offset(info)
	hwy.Store(v, u.output[off:off+intgemm.TileCol])
}

// Dummy discards its input. It is meant for benchmarks.
type Dummy struct{}

// Run implements intgemm.Callback.
func (Dummy) Run([]int32, intgemm.TileInfo) {}

var (
	_ intgemm.Callback = (*Write)(nil)
	_ intgemm.Callback = (*Unquantize)(nil)
	_ intgemm.Callback = Dummy{}
)
