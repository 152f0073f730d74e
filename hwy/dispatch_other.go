//go:build !amd64 && !arm64

package hwy

func init() {
	// Non-amd64/arm64 architectures run the portable kernels in scalar mode.
	currentLevel = DispatchScalar
}
