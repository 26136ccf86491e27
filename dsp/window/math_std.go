//go:build !fastmath

package window

import "math"

// mathSqrt computes sqrt(x) using standard library math.
func mathSqrt(x float64) float64 {
	return math.Sqrt(x)
}
