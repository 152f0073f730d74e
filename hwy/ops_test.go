package hwy

import (
	"math"
	"reflect"
	"testing"
)

func TestLoadStore(t *testing.T) {
	for _, w := range []Width{Width128, Width256, Width512} {
		t.Run(w.String(), func(t *testing.T) {
			src := make([]int16, MaxLanes[int16](w))
			for i := range src {
				src[i] = int16(i - 5)
			}
			v := Load(w, src)
			if v.NumLanes() != w.Bytes()/2 {
				t.Fatalf("NumLanes() = %d, want %d", v.NumLanes(), w.Bytes()/2)
			}
			dst := make([]int16, len(src))
			v.Store(dst)
			if !reflect.DeepEqual(dst, src) {
				t.Errorf("Store() = %v, want %v", dst, src)
			}
		})
	}
}

func TestLoadShortSourceZeroFills(t *testing.T) {
	v := Load(Width128, []float32{1, 2})
	want := []float32{1, 2, 0, 0}
	if !reflect.DeepEqual(v.Data(), want) {
		t.Errorf("Load() = %v, want %v", v.Data(), want)
	}
}

func TestSetZero(t *testing.T) {
	s := Set(Width256, int8(-3))
	if s.NumLanes() != 32 {
		t.Fatalf("Set NumLanes() = %d, want 32", s.NumLanes())
	}
	for i, x := range s.Data() {
		if x != -3 {
			t.Errorf("lane %d: got %d, want -3", i, x)
		}
	}
	if got := ReduceSum(Zero[int32](Width512)); got != 0 {
		t.Errorf("ReduceSum(Zero) = %d, want 0", got)
	}
}

func TestAbsNegWrap(t *testing.T) {
	v := Vec[int8]{data: []int8{-128, -127, -1, 0, 5}}
	if got, want := Abs(v).Data(), []int8{-128, 127, 1, 0, 5}; !reflect.DeepEqual(got, want) {
		t.Errorf("Abs() = %v, want %v", got, want)
	}
	if got, want := Neg(v).Data(), []int8{-128, 127, 1, 0, -5}; !reflect.DeepEqual(got, want) {
		t.Errorf("Neg() = %v, want %v", got, want)
	}
	// Reinterpreted as unsigned, |-128| is the correct magnitude.
	if got := BitCastToUint8(Abs(v)).Data()[0]; got != 128 {
		t.Errorf("BitCastToUint8(Abs(-128)) = %d, want 128", got)
	}
}

func TestMinMaxReduce(t *testing.T) {
	a := Vec[float32]{data: []float32{1, -4, 3, 8}}
	b := Vec[float32]{data: []float32{2, -5, 3, 7}}
	if got, want := Max(a, b).Data(), []float32{2, -4, 3, 8}; !reflect.DeepEqual(got, want) {
		t.Errorf("Max() = %v, want %v", got, want)
	}
	if got, want := Min(a, b).Data(), []float32{1, -5, 3, 7}; !reflect.DeepEqual(got, want) {
		t.Errorf("Min() = %v, want %v", got, want)
	}
	if got := ReduceMax(a); got != 8 {
		t.Errorf("ReduceMax() = %v, want 8", got)
	}
	if got := ReduceSum(Add(a, b)); got != 15 {
		t.Errorf("ReduceSum(Add) = %v, want 15", got)
	}
}

func TestReduceSumWraps(t *testing.T) {
	v := Vec[int32]{data: []int32{math.MaxInt32, 1}}
	if got := ReduceSum(v); got != math.MinInt32 {
		t.Errorf("ReduceSum() = %d, want %d", got, int32(math.MinInt32))
	}
}

func TestIsNegativeIfThenElse(t *testing.T) {
	a := Vec[int8]{data: []int8{-1, 2, -3, 4}}
	mask := IsNegative(a)
	if mask.CountTrue() != 2 || !mask.GetBit(0) || mask.GetBit(1) {
		t.Fatalf("IsNegative() bits wrong: count=%d", mask.CountTrue())
	}
	b := Vec[int8]{data: []int8{10, 20, 30, 40}}
	got := IfThenElse(mask, Neg(b), b).Data()
	want := []int8{-10, 20, -30, 40}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("IfThenElse() = %v, want %v", got, want)
	}
}
