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

// Package intgemm provides quantized integer matrix multiplication for
// inference workloads.
//
// Float operands are quantized to int8 or int16 with a scalar multiplier.
// The right-hand matrix B is repacked once into a tiled layout the kernel
// streams with contiguous register loads, and can be reused across many
// multiplies. Results are handed, one 8-column tile at a time, to a
// Callback that unquantizes and stores them.
//
// Example usage:
//
//	// C = A * B where A is M x K, B is K x N, both row-major float32.
//	k := intgemm.Int8()
//	quantA := hwy.AllocAligned[int8](M*K, k.Backend().Register)
//	quantB := hwy.AllocAligned[int8](K*N, k.Backend().Register)
//	multA := 127 / intgemm.MaxAbsolute(a)
//	multB := 127 / intgemm.MaxAbsolute(b)
//	k.PrepareA(a, quantA, multA, M, K)
//	k.PrepareB(b, quantB, multB, K, N)
//	k.Multiply(quantA, quantB, M, K, N, callbacks.NewUnquantize(c, 1/(multA*multB)))
//
// Both kernels are approximate by construction. The 8-bit kernel sums pairs
// of products into int16 lanes with saturation before widening, so large
// multipliers on long rows clamp partial sums instead of wrapping.
//
// Backends describe six interchangeable variants (16- and 8-bit at 128, 256
// and 512 bits). The kernels are written once against the hwy lane layer
// and parameterized by register width; Best picks the widest variant the
// host supports.
package intgemm
