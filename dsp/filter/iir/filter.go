package iir

import "github.com/cwbudde/algo-motion/dsp/core"

// Filter is a canonical-form IIR filter. It is not safe for concurrent use.
type Filter[T core.Number] struct {
	ff     []T
	fb     []T
	state  []T
	cursor int
	output T
}

// New creates an IIR filter with feedforward gains ff (b0..) and feedback
// gains fb (a1..). The slices are not copied; see [Filter.FeedForward].
func New[T core.Number](ff, fb []T) *Filter[T] {
	f := &Filter[T]{}
	f.SetGains(ff, fb)
	return f
}

// SetGains replaces both coefficient sets. The state buffer is reallocated
// and zero-filled only when its required length max(len(ff), len(fb)+1)
// changes. Passing two empty slices defers configuration and leaves the
// filter as it was.
func (f *Filter[T]) SetGains(ff, fb []T) {
	if len(ff) == 0 && len(fb) == 0 {
		return
	}

	if n := max(len(ff), len(fb)+1); n != len(f.state) {
		f.state = make([]T, n)
		f.cursor = 0
	}

	f.ff = ff
	f.fb = fb
}

// ProcessSample filters one input sample. An unconfigured filter returns x.
func (f *Filter[T]) ProcessSample(x T) T {
	n := len(f.state)
	if n == 0 {
		f.output = x
		return x
	}

	var w T
	p := f.cursor + 1
	for _, a := range f.fb {
		if p >= n {
			p -= n
		}
		w -= f.state[p] * a
		p++
	}
	f.state[f.cursor] = w + x

	var y T
	p = f.cursor
	for _, b := range f.ff {
		if p >= n {
			p -= n
		}
		y += f.state[p] * b
		p++
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

// Reset clears the state buffer and the last output.
func (f *Filter[T]) Reset() {
	core.Zero(f.state)
	f.cursor = 0
	f.output = 0
}

// Len returns the state buffer length max(F, B+1), or 0 when unconfigured.
func (f *Filter[T]) Len() int {
	return len(f.state)
}

// FeedForward returns the live feedforward slice. Writes to it take effect
// on the next sample; the caller must not change its length.
func (f *Filter[T]) FeedForward() []T {
	return f.ff
}

// Feedback returns the live feedback slice (a1..). Writes to it take effect
// on the next sample; the caller must not change its length.
func (f *Filter[T]) Feedback() []T {
	return f.fb
}
