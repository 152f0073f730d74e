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

import "fmt"

// backends is ordered from least to most capable.
var backends = []Backend{
	Backend16SSE2,
	Backend8SSSE3,
	Backend16AVX2,
	Backend8AVX2,
	Backend16AVX512,
	Backend8AVX512,
}

// Backends returns every variant, least capable first.
func Backends() []Backend {
	return append([]Backend(nil), backends...)
}

// Best returns the most capable variant of the given integer width (8 or 16)
// that the host supports. The kernels are portable, so when the host
// supports none of them (for example on arm64, or with HWY_NO_SIMD set) the
// 128-bit variant is returned.
func Best(bits int) Backend {
	if bits != 8 && bits != 16 {
		panic(fmt.Sprintf("intgemm: no %d-bit backends", bits))
	}
	var fallback Backend
	for i := len(backends) - 1; i >= 0; i-- {
		b := backends[i]
		if b.Bits != bits {
			continue
		}
		if b.Supported() {
			return b
		}
		fallback = b
	}
	return fallback
}

// Int8 returns an 8-bit kernel for Best(8).
func Int8() *Kernel[int8] {
	return New8(Best(8))
}

// Int16 returns a 16-bit kernel for Best(16).
func Int16() *Kernel[int16] {
	return New16(Best(16))
}
