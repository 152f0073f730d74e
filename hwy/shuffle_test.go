package hwy

import (
	"reflect"
	"testing"
)

func TestInterleaveLowerUpper(t *testing.T) {
	tests := []struct {
		name  string
		a, b  []int8
		lower []int8
		upper []int8
	}{
		{
			name:  "one block",
			a:     []int8{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15},
			b:     []int8{-0, -1, -2, -3, -4, -5, -6, -7, -8, -9, -10, -11, -12, -13, -14, -15},
			lower: []int8{0, 0, 1, -1, 2, -2, 3, -3, 4, -4, 5, -5, 6, -6, 7, -7},
			upper: []int8{8, -8, 9, -9, 10, -10, 11, -11, 12, -12, 13, -13, 14, -14, 15, -15},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := Vec[int8]{data: tt.a}
			b := Vec[int8]{data: tt.b}
			if got := InterleaveLower(a, b).Data(); !reflect.DeepEqual(got, tt.lower) {
				t.Errorf("InterleaveLower() = %v, want %v", got, tt.lower)
			}
			if got := InterleaveUpper(a, b).Data(); !reflect.DeepEqual(got, tt.upper) {
				t.Errorf("InterleaveUpper() = %v, want %v", got, tt.upper)
			}
		})
	}
}

func TestInterleaveStaysInBlocks(t *testing.T) {
	a := Zero[int16](Width256)
	b := Zero[int16](Width256)
	for i := range a.data {
		a.data[i] = int16(i)
		b.data[i] = int16(100 + i)
	}
	want := []int16{0, 100, 1, 101, 2, 102, 3, 103, 8, 108, 9, 109, 10, 110, 11, 111}
	if got := InterleaveLower(a, b).Data(); !reflect.DeepEqual(got, want) {
		t.Errorf("InterleaveLower() = %v, want %v", got, want)
	}
}

func TestTranspose16InBlocks(t *testing.T) {
	t.Run("int16", func(t *testing.T) {
		regs := make([]Vec[int16], 8)
		for i := range regs {
			regs[i] = Zero[int16](Width256)
			for k := range 2 {
				for j := range 8 {
					regs[i].data[k*8+j] = int16(k*100 + i*10 + j)
				}
			}
		}
		Transpose16InBlocks(regs)
		for j := range regs {
			for k := range 2 {
				for i := range 8 {
					got := regs[j].data[k*8+i]
					want := int16(k*100 + i*10 + j)
					if got != want {
						t.Errorf("reg %d block %d unit %d: got %d, want %d", j, k, i, got, want)
					}
				}
			}
		}
	})

	t.Run("int8 pairs", func(t *testing.T) {
		regs := make([]Vec[int8], 8)
		for i := range regs {
			regs[i] = Zero[int8](Width128)
			for j := range 8 {
				regs[i].data[2*j] = int8(i*8 + j)
				regs[i].data[2*j+1] = int8(-(i*8 + j))
			}
		}
		Transpose16InBlocks(regs)
		for j := range regs {
			for i := range 8 {
				lo, hi := regs[j].data[2*i], regs[j].data[2*i+1]
				if lo != int8(i*8+j) || hi != int8(-(i*8+j)) {
					t.Errorf("reg %d unit %d: got (%d, %d), want (%d, %d)", j, i, lo, hi, i*8+j, -(i*8 + j))
				}
			}
		}
	})

	t.Run("wrong count panics", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Error("expected panic")
			}
		}()
		Transpose16InBlocks(make([]Vec[int16], 4))
	})
}
