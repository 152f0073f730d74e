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

// TileCodec quantizes a window of a row-major float matrix into one
// register whose lanes are ordered for PrepareB.
//
// input starts at the top-left element of the window and cols is the row
// stride of the matrix. Codecs keep no state beyond their multiplier.
type TileCodec[T Int] interface {
	ForReshape(input []float32, cols int) hwy.Vec[T]
}

// QuantizeTile16 is the 16-bit codec.
//
// Block b of the result holds row 8b of the window, columns 0..7. Each row
// is read as two four-column quadrants that are quantized to int32 and
// packed to int16 with saturation.
type QuantizeTile16 struct {
	w    hwy.Width
	mult hwy.Vec[float32]
}

// NewQuantizeTile16 returns a 16-bit codec for registers of width w.
func NewQuantizeTile16(w hwy.Width, quantMult float32) QuantizeTile16 {
	return QuantizeTile16{w: w, mult: hwy.Set(w, quantMult)}
}

// ForReshape implements TileCodec.
func (q QuantizeTile16) ForReshape(input []float32, cols int) hwy.Vec[int16] {
	stride := 8 * cols
	left := quantizeBlocks(q.w, input, stride, q.mult)
	right := quantizeBlocks(q.w, input[4:], stride, q.mult)
	return hwy.ReorderDemote2ToI16(left, right)
}

// QuantizeTile8 is the 8-bit codec.
//
// Block b of the result holds row 16b of the window followed by row 16b+2,
// columns 0..7 each. Values are packed 32 -> 16 -> 8 bits with saturation
// and -128 is raised to -127.
type QuantizeTile8 struct {
	w     hwy.Width
	mult  hwy.Vec[float32]
	floor hwy.Vec[int8]
}

// NewQuantizeTile8 returns an 8-bit codec for registers of width w.
func NewQuantizeTile8(w hwy.Width, quantMult float32) QuantizeTile8 {
	return QuantizeTile8{
		w:     w,
		mult:  hwy.Set(w, quantMult),
		floor: hwy.Set(w, int8(-127)),
	}
}

// ForReshape implements TileCodec.
func (q QuantizeTile8) ForReshape(input []float32, cols int) hwy.Vec[int8] {
	stride := 16 * cols
	top := hwy.ReorderDemote2ToI16(
		quantizeBlocks(q.w, input, stride, q.mult),
		quantizeBlocks(q.w, input[4:], stride, q.mult))
	bottom := hwy.ReorderDemote2ToI16(
		quantizeBlocks(q.w, input[2*cols:], stride, q.mult),
		quantizeBlocks(q.w, input[2*cols+4:], stride, q.mult))
	return hwy.Max(hwy.ReorderDemote2ToI8(top, bottom), q.floor)
}

// quantizeBlocks loads four floats per 128-bit block, block b from
// src[b*stride:], and rounds them times mult to int32.
func quantizeBlocks(w hwy.Width, src []float32, stride int, mult hwy.Vec[float32]) hwy.Vec[int32] {
	return hwy.NearestInt(hwy.Mul(hwy.LoadBlocks(w, src, stride), mult))
}

type ops16 struct{}

func (ops16) demote(_ hwy.Width, v hwy.Vec[int32]) hwy.Vec[int16] {
	return hwy.DemoteI32ToI16(v)
}

func (ops16) newTile(w hwy.Width, quantMult float32) TileCodec[int16] {
	return NewQuantizeTile16(w, quantMult)
}

func (ops16) tileOffsets() [TileCol]int {
	return [TileCol]int{0, 1, 2, 3, 4, 5, 6, 7}
}

// reshape: register i holds rows 8b+i in block b, so transposing 16-bit
// units inside each block leaves register j holding column j.
func (ops16) reshape(regs []hwy.Vec[int16]) {
	hwy.Transpose16InBlocks(regs)
}

func (ops16) newDot(w hwy.Width) dot[int16] {
	return newDot16(w)
}

type ops8 struct{}

func (ops8) demote(w hwy.Width, v hwy.Vec[int32]) hwy.Vec[int8] {
	return hwy.Max(hwy.DemoteI32ToI8(v), hwy.Set(w, int8(-127)))
}

func (ops8) newTile(w hwy.Width, quantMult float32) TileCodec[int8] {
	return NewQuantizeTile8(w, quantMult)
}

// Each codec call covers rows o and o+2 of the block, so these offsets
// reach every row of a 16-row block exactly once.
func (ops8) tileOffsets() [TileCol]int {
	return [TileCol]int{0, 1, 4, 5, 8, 9, 12, 13}
}

// reshape interleaves the bytes of row pairs (o, o+1) so that each 16-bit
// unit holds two consecutive rows of one column, then transposes those
// units inside each block.
func (ops8) reshape(regs []hwy.Vec[int8]) {
	for i := 0; i < len(regs); i += 2 {
		a, b := regs[i], regs[i+1]
		regs[i] = hwy.InterleaveLower(a, b)
		regs[i+1] = hwy.InterleaveUpper(a, b)
	}
	hwy.Transpose16InBlocks(regs)
}

func (ops8) newDot(w hwy.Width) dot[int8] {
	return newDot8(w)
}
