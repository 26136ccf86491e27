package design

import (
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-motion/dsp/core"
	"github.com/cwbudde/algo-vecmath"
)

// MagnitudeResponse returns |H| of the coefficient set at fftSize/2+1
// equally spaced frequencies from 0 to pi, where fftSize is minSize rounded
// up to a power of two no shorter than the coefficient set. Use
// [BinFrequency] to map a bin index to rad/sample.
func MagnitudeResponse(coeffs []float64, minSize int) ([]float64, error) {
	if len(coeffs) == 0 {
		return nil, ErrEmptyCoeffs
	}
	if minSize <= 0 {
		return nil, ErrInvalidFFTSize
	}

	fftSize := core.NextPowerOfTwo(max(minSize, len(coeffs)))

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("design: failed to create FFT plan: %w", err)
	}

	in := make([]complex128, fftSize)
	for i, c := range coeffs {
		in[i] = complex(c, 0)
	}

	out := make([]complex128, fftSize)
	if err := plan.Forward(out, in); err != nil {
		return nil, fmt.Errorf("design: failed to compute FFT: %w", err)
	}

	bins := fftSize/2 + 1
	re := make([]float64, bins)
	im := make([]float64, bins)
	for k := range bins {
		re[k] = real(out[k])
		im[k] = imag(out[k])
	}

	mag := make([]float64, bins)
	vecmath.Magnitude(mag, re, im)

	return mag, nil
}

// BinFrequency returns the angular frequency (rad/sample) of bin k in a
// response of the given bin count.
func BinFrequency(k, bins int) float64 {
	if bins <= 1 {
		return 0
	}
	return math.Pi * float64(k) / float64(bins-1)
}
