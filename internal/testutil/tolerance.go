package testutil

import (
	"fmt"
	"math"
	"testing"
)

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair differs by more than eps.
func RequireSliceNearlyEqual(t *testing.T, got, want []float64, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		diff := math.Abs(got[i] - want[i])
		if diff > eps {
			t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], diff, eps)
		}
	}
}

// RequireFinite fails t if any element is NaN or Inf.
func RequireFinite(t *testing.T, data []float64) {
	t.Helper()
	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}

// RequireBounded fails t if any |element| exceeds limit+eps.
func RequireBounded(t *testing.T, data []float64, limit, eps float64) {
	t.Helper()
	for i, v := range data {
		if math.Abs(v) > limit+eps {
			t.Fatalf("index %d: |%v| exceeds %v", i, v, limit)
		}
	}
}

// RequireMonotonic fails t if data ever moves against dir (+1 rising, -1
// falling) by more than eps.
func RequireMonotonic(t *testing.T, data []float64, dir int, eps float64) {
	t.Helper()
	for i := 1; i < len(data); i++ {
		d := (data[i] - data[i-1]) * float64(dir)
		if d < -eps {
			t.Fatalf("index %d: %v -> %v reverses direction", i, data[i-1], data[i])
		}
	}
}

// MaxAbsDiff returns the maximum absolute difference between two slices.
func MaxAbsDiff(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("length mismatch: %d vs %d", len(a), len(b))
	}
	maxDiff := 0.0
	for i := range a {
		maxDiff = math.Max(maxDiff, math.Abs(a[i]-b[i]))
	}
	return maxDiff, nil
}
