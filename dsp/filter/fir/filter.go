package fir

import (
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-motion/dsp/core"
)

// Filter implements a direct-form FIR filter using a circular-buffer delay line.
// A Filter is not safe for concurrent use.
type Filter[T core.Number] struct {
	gains  []T
	delay  []T
	cursor int
	output T
}

// New creates a FIR filter from the given coefficient slice.
// The coefficients are copied. An empty slice yields an unconfigured filter.
func New[T core.Number](gains []T) *Filter[T] {
	f := &Filter[T]{}
	f.SetGains(gains)
	return f
}

// SetGains replaces the filter coefficients with a copy of gains.
//
// The delay line is reallocated and zero-filled only when the length changes;
// with an unchanged length the input history is kept. An empty slice is
// accepted and leaves the current configuration in place.
func (f *Filter[T]) SetGains(gains []T) {
	n := len(gains)
	if n == 0 {
		return
	}

	if n != len(f.delay) {
		f.delay = make([]T, n)
		f.gains = make([]T, n)
		f.cursor = 0
	}
	copy(f.gains, gains)
}

// ProcessSample filters one input sample.
//
//	y[n] = sum_{k=0}^{N-1} h[k] * x[n-k]
//
// An unconfigured filter returns x.
func (f *Filter[T]) ProcessSample(x T) T {
	n := len(f.gains)
	if n == 0 {
		f.output = x
		return x
	}

	f.delay[f.cursor] = x

	var y T
	p := f.cursor
	for _, g := range f.gains {
		y += g * f.delay[p]
		p++
		if p == n {
			p = 0
		}
	}

	if f.cursor == 0 {
		f.cursor = n
	}
	f.cursor--

	f.output = y
	return y
}

// Output returns the last value returned by ProcessSample.
func (f *Filter[T]) Output() T {
	return f.output
}

// ProcessBlock filters a block of samples in-place.
func (f *Filter[T]) ProcessBlock(buf []T) {
	for i, x := range buf {
		buf[i] = f.ProcessSample(x)
	}
}

// ProcessBlockTo filters src into dst. Both slices must have the same length.
func (f *Filter[T]) ProcessBlockTo(dst, src []T) {
	if len(src) == 0 {
		return
	}
	_ = dst[len(src)-1] // bounds check hint
	for i, x := range src {
		dst[i] = f.ProcessSample(x)
	}
}

// Reset clears the delay line and the last output.
func (f *Filter[T]) Reset() {
	core.Zero(f.delay)
	f.cursor = 0
	f.output = 0
}

// Configured reports whether the filter has coefficients.
func (f *Filter[T]) Configured() bool {
	return len(f.gains) > 0
}

// Len returns the number of taps (0 when unconfigured).
func (f *Filter[T]) Len() int {
	return len(f.gains)
}

// Order returns the filter order (Len() - 1).
func (f *Filter[T]) Order() int {
	return len(f.gains) - 1
}

// Coefficients returns a copy of the filter coefficients.
func (f *Filter[T]) Coefficients() []T {
	c := make([]T, len(f.gains))
	copy(c, f.gains)
	return c
}

// Response computes the complex frequency response H(e^{jw}) at the given
// frequency (Hz) and sample rate (Hz).
func (f *Filter[T]) Response(freqHz, sampleRate float64) complex128 {
	w := 2 * math.Pi * freqHz / sampleRate
	var h complex128
	for k, c := range f.gains {
		h += complex(float64(c), 0) * cmplx.Exp(complex(0, -w*float64(k)))
	}
	return h
}

// MagnitudeDB returns the magnitude response in dB at the given frequency.
func (f *Filter[T]) MagnitudeDB(freqHz, sampleRate float64) float64 {
	return core.LinearToDB(cmplx.Abs(f.Response(freqHz, sampleRate)))
}
