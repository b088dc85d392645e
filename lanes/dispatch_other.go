//go:build !amd64 && !arm64

package lanes

func init() {
	// Other architectures run the generic tier with the 128-bit batch
	// shape. Lane counts stay consistent with the narrowest SIMD targets.
	setScalarMode()
}
