// Package iir provides an IIR filter runtime in canonical form.
//
// The filter realizes
//
//	y[n] = b0*x[n] + ... + bF-1*x[n-F+1] - a1*y[n-1] - ... - aB*y[n-B]
//
// with a single circular buffer of combined state w, of length
// L = max(F, B+1), instead of separate input and output histories:
//
//	w[n] = x[n] - a1*w[n-1] - ... - aB*w[n-B]
//	y[n] = b0*w[n] + ... + bF-1*w[n-F+1]
//
// The feedback slice starts at a1; the leading a0 = 1 is implicit and must
// not be passed. The runtime is generic over [core.Number].
package iir
