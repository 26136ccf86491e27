// Package design provides FIR coefficient designers for the dsp/filter/fir
// runtime.
//
// The ideal designers ([Lowpass], [Highpass], [Differentiator]) return the
// truncated impulse response of the ideal filter, centred in an odd-length
// slice; this is equivalent to a rectangular window. Taper the result with
// dsp/window (ApplyHamming, ApplyKaiser) to trade transition width for
// stopband attenuation, or use [KaiserLowpass] / [KaiserHighpass] to size
// and window in one step.
//
// Cutoff frequencies are normalized angular frequencies in radians per
// sample, in [0, pi]. For a cutoff fc in Hz at sample rate fs, pass
// 2*pi*fc/fs.
package design
