// Package testutil holds deterministic input signals and tolerance helpers
// shared by the filter and motion tests.
package testutil

import (
	"math"
	"math/rand"
)

// DeterministicSine generates a sine wave of the given frequency.
func DeterministicSine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}

// DeterministicNoise generates white noise in [-amplitude, amplitude) with a
// fixed seed.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// Impulse generates a unit impulse at pos.
func Impulse(length, pos int) []float64 {
	out := make([]float64, length)
	if pos >= 0 && pos < length {
		out[pos] = 1
	}
	return out
}

// DC generates a constant signal.
func DC(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}

// Alternating generates +1, -1, +1, ... (a tone at the Nyquist frequency).
func Alternating(length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		if i%2 == 0 {
			out[i] = 1
		} else {
			out[i] = -1
		}
	}
	return out
}

// Diff returns the first difference x[i]-x[i-1] scaled by rate, with x[-1]
// taken as zero.
func Diff(x []float64, rate float64) []float64 {
	out := make([]float64, len(x))
	prev := 0.0
	for i, v := range x {
		out[i] = (v - prev) * rate
		prev = v
	}
	return out
}
