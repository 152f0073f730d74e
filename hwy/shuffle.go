package hwy

// This file provides shuffle operations. Like their x86 counterparts they
// work independently inside each 128-bit block: lanes never move from one
// block to another.

// InterleaveLower interleaves the lower halves of each 128-bit block of a
// and b. For int8 with one block:
//
//	a0 b0 a1 b1 ... a7 b7
func InterleaveLower[T Lanes](a, b Vec[T]) Vec[T] {
	return interleaveBlocks(a, b, 0)
}

// InterleaveUpper interleaves the upper halves of each 128-bit block of a
// and b. For int8 with one block:
//
//	a8 b8 a9 b9 ... a15 b15
func InterleaveUpper[T Lanes](a, b Vec[T]) Vec[T] {
	return interleaveBlocks(a, b, blockLanes[T]()/2)
}

func interleaveBlocks[T Lanes](a, b Vec[T], from int) Vec[T] {
	per := blockLanes[T]()
	half := per / 2
	n := min(len(a.data), len(b.data))
	n -= n % per
	result := make([]T, n)
	for base := 0; base < n; base += per {
		for i := range half {
			result[base+2*i] = a.data[base+from+i]
			result[base+2*i+1] = b.data[base+from+i]
		}
	}
	return Vec[T]{data: result}
}

// Transpose16InBlocks transposes eight registers viewed as 8x8 matrices of
// 16-bit units, one matrix per 128-bit block. After the call, unit i of
// block k in r[j] holds what unit j of block k in r[i] held before.
//
// For int16 a unit is a lane; for int8 it is a pair of adjacent lanes.
func Transpose16InBlocks[T ~int8 | ~int16](r []Vec[T]) {
	if len(r) != 8 {
		panic("hwy: Transpose16InBlocks needs 8 registers")
	}
	unit := 2 / sizeOf[T]()
	per := blockLanes[T]()
	n := len(r[0].data)
	out := make([][]T, 8)
	for j := range out {
		out[j] = make([]T, n)
	}
	for base := 0; base+per <= n; base += per {
		for i := range 8 {
			for j := range 8 {
				src := r[i].data[base+j*unit : base+(j+1)*unit]
				copy(out[j][base+i*unit:], src)
			}
		}
	}
	for j := range r {
		r[j] = Vec[T]{data: out[j]}
	}
}
