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

import "math"

// This file provides pure Go (scalar) implementations of type conversion operations.

// NearestInt rounds each float32 lane to the nearest int32, ties to even,
// which is the default x86 rounding mode. Values outside the int32 range
// saturate and NaN converts to 0.
func NearestInt(v Vec[float32]) Vec[int32] {
	result := make([]int32, len(v.data))
	for i, x := range v.data {
		result[i] = nearestInt(x)
	}
	return Vec[int32]{data: result}
}

func nearestInt(x float32) int32 {
	f := float64(x)
	switch {
	case math.IsNaN(f):
		return 0
	case f >= math.MaxInt32:
		return math.MaxInt32
	case f <= math.MinInt32:
		return math.MinInt32
	}
	return int32(math.RoundToEven(f))
}

// ConvertToFloat32 converts int32 or int64 to float32.
// Large values may lose precision.
func ConvertToFloat32[T ~int32 | ~int64](v Vec[T]) Vec[float32] {
	result := make([]float32, len(v.data))
	for i, x := range v.data {
		result[i] = float32(x)
	}
	return Vec[float32]{data: result}
}

// Tanh computes the hyperbolic tangent of each lane.
func Tanh(v Vec[float32]) Vec[float32] {
	result := make([]float32, len(v.data))
	for i, x := range v.data {
		result[i] = float32(math.Tanh(float64(x)))
	}
	return Vec[float32]{data: result}
}

// Sigmoid computes 1 / (1 + exp(-x)) for each lane.
func Sigmoid(v Vec[float32]) Vec[float32] {
	result := make([]float32, len(v.data))
	for i, x := range v.data {
		result[i] = float32(1 / (1 + math.Exp(-float64(x))))
	}
	return Vec[float32]{data: result}
}
