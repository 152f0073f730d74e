//go:build !hwydebug

package intgemm

const debugChecks = false
