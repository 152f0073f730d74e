package hwy

import (
	"reflect"
	"testing"
)

func TestLoadBlocks(t *testing.T) {
	src := make([]float32, 64)
	for i := range src {
		src[i] = float32(i)
	}
	v := LoadBlocks(Width512, src, 10)
	want := []float32{0, 1, 2, 3, 10, 11, 12, 13, 20, 21, 22, 23, 30, 31, 32, 33}
	if !reflect.DeepEqual(v.Data(), want) {
		t.Errorf("LoadBlocks() = %v, want %v", v.Data(), want)
	}
}

func TestLoadBlocksShortSource(t *testing.T) {
	src := []int32{1, 2, 3, 4, 5, 6}
	v := LoadBlocks(Width256, src, 4)
	want := []int32{1, 2, 3, 4, 5, 6, 0, 0}
	if !reflect.DeepEqual(v.Data(), want) {
		t.Errorf("LoadBlocks() = %v, want %v", v.Data(), want)
	}
}

func TestAllocAligned(t *testing.T) {
	for _, align := range []Width{Width128, Width256, Width512} {
		for _, n := range []int{0, 1, 7, 64, 1000} {
			f := AllocAligned[float32](n, align)
			if len(f) != n {
				t.Errorf("AllocAligned[float32](%d, %v): len = %d", n, align, len(f))
			}
			if !IsAligned(f, align) {
				t.Errorf("AllocAligned[float32](%d, %v) is not aligned", n, align)
			}
			b := AllocAligned[int8](n, align)
			if len(b) != n || !IsAligned(b, align) {
				t.Errorf("AllocAligned[int8](%d, %v): len = %d, aligned = %v", n, align, len(b), IsAligned(b, align))
			}
		}
	}
}

func TestIsAlignedOffset(t *testing.T) {
	buf := AllocAligned[int16](64, Width512)
	if IsAligned(buf[1:], Width128) {
		t.Error("IsAligned(buf[1:]) = true, want false")
	}
	if !IsAligned(buf[8:], Width128) {
		t.Error("IsAligned(buf[8:], 128bit) = false, want true")
	}
}
