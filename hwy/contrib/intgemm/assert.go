package intgemm

import (
	"fmt"

	"github.com/ajroetker/go-intgemm/hwy"
)

// Shape checks are O(1) per call and always on. Alignment checks only run
// in builds tagged hwydebug.

func checkMultiple(op, what string, n, of int) {
	if n < 0 || n%of != 0 {
		panic(fmt.Sprintf("intgemm: %s %s %d is not a multiple of %d", op, what, n, of))
	}
}

func checkLen(op, what string, have, need int) {
	if have < need {
		panic(fmt.Sprintf("intgemm: %s %s slice too short (%d < %d)", op, what, have, need))
	}
}

func checkAligned[T hwy.Lanes](op, what string, s []T, w hwy.Width) {
	if debugChecks && !hwy.IsAligned(s, w) {
		panic(fmt.Sprintf("intgemm: %s %s is not aligned to %d bytes", op, what, w.Bytes()))
	}
}
