package core

// Zero sets all values in buf to 0.
func Zero[T Number](buf []T) {
	for i := range buf {
		buf[i] = 0
	}
}

// Sum returns the sum of all values in buf.
func Sum[T Number](buf []T) T {
	var s T
	for _, v := range buf {
		s += v
	}
	return s
}

// NextPowerOfTwo returns the smallest power of two >= n (1 for n <= 1).
func NextPowerOfTwo(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
