package intgemm

import (
	"math"
	"slices"
	"testing"

	"github.com/ajroetker/go-intgemm/hwy"
	"github.com/ajroetker/go-intgemm/hwy/contrib/workerpool"
)

func TestQuantizeMatchesDefinition(t *testing.T) {
	rng := testRNG()
	input := randomMatrix(rng, 256, 3)
	input[0] = float32(math.NaN())
	input[1] = 1e9
	input[2] = -1e9
	input[3] = 2.5 / 127
	const mult = 127

	forEachKernel(t,
		func(t *testing.T, k *Kernel[int8]) {
			out := make([]int8, len(input))
			k.Quantize(input, out, mult, len(input))
			want := quantizeAllRef[int8](input, mult, 8)
			for i := range out {
				if out[i] != want[i] {
					t.Errorf("element %d (%v): got %d, want %d", i, input[i], out[i], want[i])
				}
			}
		},
		func(t *testing.T, k *Kernel[int16]) {
			out := make([]int16, len(input))
			k.Quantize(input, out, mult, len(input))
			want := quantizeAllRef[int16](input, mult, 16)
			for i := range out {
				if out[i] != want[i] {
					t.Errorf("element %d (%v): got %d, want %d", i, input[i], out[i], want[i])
				}
			}
		})
}

func TestQuantizeRoundTrip(t *testing.T) {
	rng := testRNG()
	const mult = 64
	// |x*mult| <= 126
	input := randomMatrix(rng, 1024, 126.0/mult)

	forEachKernel(t,
		func(t *testing.T, k *Kernel[int8]) {
			out := make([]int8, len(input))
			k.PrepareA(input, out, mult, 16, 64)
			for i, q := range out {
				if diff := math.Abs(float64(q)/mult - float64(input[i])); diff > 1.0/mult {
					t.Errorf("element %d: |%d/%d - %v| = %v", i, q, mult, input[i], diff)
				}
			}
		},
		func(t *testing.T, k *Kernel[int16]) {
			out := make([]int16, len(input))
			k.PrepareA(input, out, mult, 16, 64)
			for i, q := range out {
				if diff := math.Abs(float64(q)/mult - float64(input[i])); diff > 1.0/mult {
					t.Errorf("element %d: |%d/%d - %v| = %v", i, q, mult, input[i], diff)
				}
			}
		})
}

func TestQuantizeSaturation(t *testing.T) {
	rng := testRNG()
	input := randomMatrix(rng, 512, 1e6)

	k8 := New8(Backend8AVX512)
	out8 := make([]int8, len(input))
	k8.Quantize(input, out8, 1, len(input))
	for i, q := range out8 {
		if q < -127 {
			t.Errorf("8-bit element %d = %d, below -127", i, q)
		}
	}

	k16 := New16(Backend16AVX512)
	out16 := make([]int16, len(input))
	k16.Quantize(input, out16, 1, len(input))
	sawMin := false
	for i, q := range out16 {
		want := int16(quantizeRef(input[i], 1, 16))
		if q != want {
			t.Errorf("16-bit element %d = %d, want %d", i, q, want)
		}
		sawMin = sawMin || q == math.MinInt16
	}
	if !sawMin {
		t.Error("16-bit quantization never reached the bottom of its range")
	}
}

func TestQuantizeShapePanics(t *testing.T) {
	k := New8(Backend8AVX2) // 8 float lanes
	in := make([]float32, 64)
	out := make([]int8, 64)
	expectPanic(t, "size not a multiple of float lanes", func() { k.Quantize(in, out, 1, 12) })
	expectPanic(t, "input too short", func() { k.Quantize(in[:8], out, 1, 16) })
	expectPanic(t, "output too short", func() { k.Quantize(in, out[:8], 1, 16) })
}

func TestMaxAbsolute(t *testing.T) {
	tests := []struct {
		name  string
		input []float32
		want  float32
	}{
		{"empty", nil, 0},
		{"tail only", []float32{1, -3, 2}, 3},
		{"negative wins", []float32{0.5, 1, 2, 3, 4, 5, 6, 7, 8, 9, -10, 1, 2, 3, 4, 5, 6}, 10},
	}
	for _, tt := range tests {
		if got := MaxAbsolute(tt.input); got != tt.want {
			t.Errorf("%s: MaxAbsolute() = %v, want %v", tt.name, got, tt.want)
		}
	}

	rng := testRNG()
	input := randomMatrix(rng, 1000, 2)
	input[617] = -2.5
	for _, level := range []hwy.DispatchLevel{hwy.DispatchScalar, hwy.DispatchAVX2, hwy.DispatchAVX512BW} {
		restore := hwy.ForceLevel(level)
		if got := MaxAbsolute(input); got != 2.5 {
			t.Errorf("%v: MaxAbsolute() = %v, want 2.5", level, got)
		}
		restore()
	}
}

func checkParallelPrepareA[T Int](t *testing.T, k *Kernel[T]) {
	pool := workerpool.New(4)
	defer pool.Close()

	const rows, cols = 48, 64
	input := randomMatrix(testRNG(), rows*cols, 1)
	want := make([]T, rows*cols)
	k.PrepareA(input, want, 100, rows, cols)

	got := make([]T, rows*cols)
	k.ParallelPrepareA(pool, input, got, 100, rows, cols)
	if !slices.Equal(got, want) {
		t.Error("ParallelPrepareA differs from PrepareA")
	}
	clear(got)
	k.ParallelPrepareA(nil, input, got, 100, rows, cols)
	if !slices.Equal(got, want) {
		t.Error("ParallelPrepareA(nil) differs from PrepareA")
	}
}

func TestParallelPrepareA(t *testing.T) {
	forEachKernel(t, checkParallelPrepareA[int8], checkParallelPrepareA[int16])
}
