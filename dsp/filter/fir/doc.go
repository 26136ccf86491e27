// Package fir provides a direct-form FIR filter runtime.
//
// A [Filter] applies a set of pre-computed coefficients to an input stream
// using a circular-buffer delay line whose write cursor moves backward, so
// that gains[0] always weights the newest sample. The runtime is generic over
// [core.Number]; integer filters are evaluated exactly.
//
// Coefficients are replaced with [Filter.SetGains]. A change of length
// reallocates and zero-fills the delay line; an empty coefficient slice
// defers configuration and leaves the filter untouched. Until a filter has
// coefficients it passes its input through unchanged.
//
// This package provides the processing runtime only. Coefficient design lives
// in dsp/filter/design and dsp/window; motion profiles in motion/profile.
package fir
