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

// This file provides saturating demotions (narrowing conversions).
//
// The Demote* functions keep lane order and return a vector with as many
// lanes as the input. The ReorderDemote2To* functions combine two vectors
// the way x86 packs does: each 128-bit block of the result holds the
// demoted block of a followed by the demoted block of b, so across blocks
// the lanes of a and b alternate.

// DemoteI32ToI16 narrows int32 to int16 (saturating).
// Values outside int16 range are clamped to [-32768, 32767].
func DemoteI32ToI16(v Vec[int32]) Vec[int16] {
	result := make([]int16, len(v.data))
	for i, x := range v.data {
		result[i] = saturate[int16](int64(x))
	}
	return Vec[int16]{data: result}
}

// DemoteI32ToI8 narrows int32 to int8 (saturating).
// Values outside int8 range are clamped to [-128, 127].
func DemoteI32ToI8(v Vec[int32]) Vec[int8] {
	result := make([]int8, len(v.data))
	for i, x := range v.data {
		result[i] = saturate[int8](int64(x))
	}
	return Vec[int8]{data: result}
}

// ReorderDemote2ToI16 packs two int32 vectors into one int16 vector with
// saturation, block by block:
//
//	block k of result = sat16(block k of a) ++ sat16(block k of b)
func ReorderDemote2ToI16(a, b Vec[int32]) Vec[int16] {
	return reorderDemote2[int32, int16](a, b)
}

// ReorderDemote2ToI8 packs two int16 vectors into one int8 vector with
// saturation, block by block:
//
//	block k of result = sat8(block k of a) ++ sat8(block k of b)
func ReorderDemote2ToI8(a, b Vec[int16]) Vec[int8] {
	return reorderDemote2[int16, int8](a, b)
}

func reorderDemote2[From NarrowInts, To NarrowInts](a, b Vec[From]) Vec[To] {
	per := blockLanes[From]()
	n := min(len(a.data), len(b.data))
	blocks := n / per
	result := make([]To, 2*n)
	for k := range blocks {
		src := k * per
		dst := 2 * k * per
		for i := range per {
			result[dst+i] = saturate[To](int64(a.data[src+i]))
			result[dst+per+i] = saturate[To](int64(b.data[src+i]))
		}
	}
	return Vec[To]{data: result[:2*blocks*per]}
}
