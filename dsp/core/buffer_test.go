package core

import "testing"

func TestZero(t *testing.T) {
	buf := []int{1, -2, 3}
	Zero(buf)

	for i, v := range buf {
		if v != 0 {
			t.Fatalf("buf[%d] = %d, want 0", i, v)
		}
	}
}

func TestSum(t *testing.T) {
	if got := Sum([]float64{0.25, 0.5, 0.25}); got != 1 {
		t.Fatalf("Sum = %v, want 1", got)
	}

	if got := Sum([]int16{3, -1, 1}); got != 3 {
		t.Fatalf("Sum = %v, want 3", got)
	}

	if got := Sum[float64](nil); got != 0 {
		t.Fatalf("Sum(nil) = %v, want 0", got)
	}
}

func TestNextPowerOfTwo(t *testing.T) {
	tests := []struct {
		n, want int
	}{
		{-3, 1}, {0, 1}, {1, 1}, {2, 2}, {3, 4}, {255, 256}, {256, 256}, {257, 512},
	}

	for _, tt := range tests {
		if got := NextPowerOfTwo(tt.n); got != tt.want {
			t.Errorf("NextPowerOfTwo(%d) = %d, want %d", tt.n, got, tt.want)
		}
	}
}
