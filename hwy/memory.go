package hwy

import "unsafe"

// This file provides memory operations beyond plain Load and Store.

// LoadBlocks builds a vector of width d whose 128-bit block k is loaded
// from src[k*stride:]. Kernels use it to pick one short row segment per
// block out of a row-major matrix; on x86 this is a load followed by block
// inserts.
func LoadBlocks[T Lanes](d Width, src []T, stride int) Vec[T] {
	per := blockLanes[T]()
	data := make([]T, MaxLanes[T](d))
	for k := range d.Blocks() {
		off := k * stride
		if off >= len(src) {
			break
		}
		copy(data[k*per:(k+1)*per], src[off:])
	}
	return Vec[T]{data: data}
}

// AllocAligned returns a zeroed slice of n elements whose first element is
// aligned to align bytes. Kernels expect their matrix arguments to be
// aligned to the register width.
func AllocAligned[T Lanes](n int, align Width) []T {
	size := sizeOf[T]()
	pad := int(align) / size
	buf := make([]T, n+pad)
	if n+pad == 0 {
		return buf
	}
	addr := uintptr(unsafe.Pointer(unsafe.SliceData(buf)))
	off := 0
	if rem := int(addr % uintptr(align)); rem != 0 {
		off = (int(align) - rem) / size
	}
	return buf[off : off+n : off+n]
}

// IsAligned reports whether the first element of s is aligned to align bytes.
// Empty slices are considered aligned.
func IsAligned[T Lanes](s []T, align Width) bool {
	if len(s) == 0 {
		return true
	}
	return uintptr(unsafe.Pointer(unsafe.SliceData(s)))%uintptr(align) == 0
}
