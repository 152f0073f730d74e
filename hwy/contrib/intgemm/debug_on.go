//go:build hwydebug

package intgemm

const debugChecks = true
