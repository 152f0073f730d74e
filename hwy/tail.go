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

// ProcessWithTail walks size elements in registers of the given number of
// lanes. It calls fullFn(offset) for every whole register and, if size is
// not a multiple of lanes, tailFn(offset, count) once for the remainder.
//
// Example:
//
//	n := hwy.MaxLanes[float32](d)
//	hwy.ProcessWithTail(len(data), n,
//	    func(offset int) {
//	        acc = hwy.Max(acc, hwy.Load(d, data[offset:offset+n]))
//	    },
//	    func(offset, count int) {
//	        // Load zero-fills the missing lanes.
//	        acc = hwy.Max(acc, hwy.Load(d, data[offset:offset+count]))
//	    },
//	)
func ProcessWithTail(size, lanes int, fullFn func(offset int), tailFn func(offset, count int)) {
	offset := 0
	for ; offset+lanes <= size; offset += lanes {
		fullFn(offset)
	}
	if offset < size {
		tailFn(offset, size-offset)
	}
}

// AlignedSize rounds size up to the next multiple of lanes.
func AlignedSize(size, lanes int) int {
	return (size + lanes - 1) / lanes * lanes
}
