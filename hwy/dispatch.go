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

import (
	"os"
	"strconv"
	"strings"
)

// DispatchLevel represents an instruction set capability. Kernels declare
// the level they need; the host's detected level decides which of them
// may be selected.
type DispatchLevel int

const (
	// DispatchScalar indicates no SIMD, pure Go implementation.
	DispatchScalar DispatchLevel = iota

	// DispatchSSE2 indicates SSE2 instructions (x86-64 baseline, 128-bit).
	DispatchSSE2

	// DispatchSSSE3 indicates SSSE3, which adds the unsigned x signed byte
	// multiply-add used by 8-bit kernels (128-bit).
	DispatchSSSE3

	// DispatchAVX2 indicates AVX2 instructions (256-bit SIMD).
	DispatchAVX2

	// DispatchAVX512BW indicates AVX-512 with byte/word instructions (512-bit SIMD).
	DispatchAVX512BW

	// DispatchAVX512VNNI indicates AVX-512 VNNI dot-product instructions.
	DispatchAVX512VNNI

	// DispatchNEON indicates ARM NEON instructions (128-bit SIMD).
	DispatchNEON
)

var levelNames = map[DispatchLevel]string{
	DispatchScalar:     "scalar",
	DispatchSSE2:       "sse2",
	DispatchSSSE3:      "ssse3",
	DispatchAVX2:       "avx2",
	DispatchAVX512BW:   "avx512bw",
	DispatchAVX512VNNI: "avx512vnni",
	DispatchNEON:       "neon",
}

// String returns a human-readable name for the dispatch level.
func (d DispatchLevel) String() string {
	if name, ok := levelNames[d]; ok {
		return name
	}
	return "unknown"
}

// Width returns the register width the level operates on.
func (d DispatchLevel) Width() Width {
	switch d {
	case DispatchAVX2:
		return Width256
	case DispatchAVX512BW, DispatchAVX512VNNI:
		return Width512
	default:
		return Width128
	}
}

// IsX86 reports whether d belongs to the x86 family of levels.
func (d DispatchLevel) IsX86() bool {
	return d >= DispatchSSE2 && d <= DispatchAVX512VNNI
}

// ParseDispatchLevel maps a level name (as returned by String, case
// insensitive) back to its DispatchLevel.
func ParseDispatchLevel(name string) (DispatchLevel, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for level, levelName := range levelNames {
		if levelName == name {
			return level, true
		}
	}
	return DispatchScalar, false
}

// currentLevel is the detected SIMD level for this runtime.
// Set by init() in dispatch_*.go files.
var currentLevel DispatchLevel

// CurrentLevel returns the instruction set detected for this host.
func CurrentLevel() DispatchLevel {
	return currentLevel
}

// CurrentWidth returns the SIMD register width in bytes for the current level.
func CurrentWidth() int {
	return currentLevel.Width().Bytes()
}

// CurrentName returns a human-readable name for the current SIMD target.
// For example: "avx2", "neon", "scalar".
func CurrentName() string {
	return currentLevel.String()
}

// Supports reports whether the host can run code that requires level.
// x86 levels are cumulative: an AVX2 host supports SSE2 and SSSE3 kernels.
// Scalar code runs everywhere.
func Supports(level DispatchLevel) bool {
	switch {
	case level == DispatchScalar:
		return true
	case level.IsX86():
		return currentLevel.IsX86() && level <= currentLevel
	default:
		return level == currentLevel
	}
}

// ForceLevel overrides the detected level and returns a function restoring
// the previous one. It exists so dispatch decisions can be tested on any host.
func ForceLevel(level DispatchLevel) (restore func()) {
	prev := currentLevel
	currentLevel = level
	return func() {
		currentLevel = prev
	}
}

// NoSimdEnv checks if the HWY_NO_SIMD environment variable is set.
// When set, dispatch reports DispatchScalar regardless of CPU capabilities.
// This is useful for testing and debugging.
func NoSimdEnv() bool {
	val := os.Getenv("HWY_NO_SIMD")
	if val == "" {
		return false
	}
	// Any non-empty value is considered true, but also parse as bool
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

// maxLevelEnv returns the cap requested with HWY_MAX_LEVEL, if any.
func maxLevelEnv() (DispatchLevel, bool) {
	val := os.Getenv("HWY_MAX_LEVEL")
	if val == "" {
		return DispatchScalar, false
	}
	return ParseDispatchLevel(val)
}

// applyMaxLevel lowers the detected x86 level to the HWY_MAX_LEVEL cap.
// Caps naming another architecture are ignored.
func applyMaxLevel() {
	limit, ok := maxLevelEnv()
	if !ok {
		return
	}
	if limit == DispatchScalar || (limit.IsX86() && currentLevel.IsX86() && limit < currentLevel) {
		currentLevel = limit
	}
}
