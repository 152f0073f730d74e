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

package hwy

// This file provides saturated arithmetic and the widening multiply-adds
// that integer dot products are built from. Saturated operations clamp
// results to the type's valid range instead of wrapping.

// NarrowInts are the signed lane types saturating operations are defined on.
type NarrowInts interface {
	~int8 | ~int16 | ~int32
}

// SaturatedAdd performs element-wise addition with saturation.
// For example, int8: 120 + 10 = 127 (not -126).
func SaturatedAdd[T NarrowInts](a, b Vec[T]) Vec[T] {
	n := min(len(b.data), len(a.data))
	result := make([]T, n)
	for i := range n {
		result[i] = saturate[T](int64(a.data[i]) + int64(b.data[i]))
	}
	return Vec[T]{data: result}
}

// SaturatedSub performs element-wise subtraction with saturation.
// For example, int8: -120 - 10 = -128 (not 126).
func SaturatedSub[T NarrowInts](a, b Vec[T]) Vec[T] {
	n := min(len(b.data), len(a.data))
	result := make([]T, n)
	for i := range n {
		result[i] = saturate[T](int64(a.data[i]) - int64(b.data[i]))
	}
	return Vec[T]{data: result}
}

// SatWidenMulPairwiseAdd multiplies unsigned bytes of a with signed bytes of
// b and adds adjacent products into int16 lanes with saturation:
//
//	result[i] = sat16(a[2i]*b[2i] + a[2i+1]*b[2i+1])
//
// This is the x86 maddubs instruction. Only the sum of the two products
// can leave the int16 range.
func SatWidenMulPairwiseAdd(a Vec[uint8], b Vec[int8]) Vec[int16] {
	n := min(len(a.data), len(b.data)) / 2
	result := make([]int16, n)
	for i := range n {
		lo := int64(a.data[2*i]) * int64(b.data[2*i])
		hi := int64(a.data[2*i+1]) * int64(b.data[2*i+1])
		result[i] = saturate[int16](lo + hi)
	}
	return Vec[int16]{data: result}
}

// WidenMulPairwiseAdd multiplies signed 16-bit lanes and adds adjacent
// products into int32 lanes:
//
//	result[i] = a[2i]*b[2i] + a[2i+1]*b[2i+1]
//
// This is the x86 madd instruction. The sum wraps, which only happens when
// all four inputs are -32768.
func WidenMulPairwiseAdd(a, b Vec[int16]) Vec[int32] {
	n := min(len(a.data), len(b.data)) / 2
	result := make([]int32, n)
	for i := range n {
		lo := int32(a.data[2*i]) * int32(b.data[2*i])
		hi := int32(a.data[2*i+1]) * int32(b.data[2*i+1])
		result[i] = lo + hi
	}
	return Vec[int32]{data: result}
}

// limits returns the range of the signed type T.
func limits[T NarrowInts]() (lo, hi int64) {
	bits := sizeOf[T]() * 8
	hi = int64(1)<<(bits-1) - 1
	return -hi - 1, hi
}

// saturate clamps x into the range of T.
func saturate[T NarrowInts](x int64) T {
	lo, hi := limits[T]()
	return T(min(max(x, lo), hi))
}
