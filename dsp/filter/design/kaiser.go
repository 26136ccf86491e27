package design

import (
	"math"

	"github.com/cwbudde/algo-motion/dsp/window"
)

// KaiserLength estimates the odd number of taps a Kaiser-windowed filter
// needs to reach attenuationDB in the stopband with a transition band of
// width (rad/sample).
//
//	D = (A - 7.95) / 14.36  for A > 21, else 0.922
//	N = ceil(D/width + 1), rounded up to the next odd number
//
// It returns ErrTooManyTaps when N would exceed MaxTaps.
func KaiserLength(attenuationDB, width float64) (int, error) {
	if !(width > 0 && width <= math.Pi) {
		return 0, ErrInvalidWidth
	}

	d := 0.922
	if attenuationDB > 21 {
		d = (attenuationDB - 7.95) / 14.36
	}

	nf := math.Ceil(d/width + 1)
	if !(nf <= MaxTaps) {
		return 0, ErrTooManyTaps
	}

	n := int(nf)
	if n%2 == 0 {
		n++
	}

	return n, nil
}

// KaiserLowpass designs a Kaiser-windowed low-pass filter with cutoff omega
// and transition width (rad/sample) reaching attenuationDB in the stopband.
func KaiserLowpass(omega, attenuationDB, width float64) ([]float64, error) {
	return kaiserIdeal(omega, attenuationDB, width, false)
}

// KaiserHighpass is the high-pass counterpart of [KaiserLowpass].
func KaiserHighpass(omega, attenuationDB, width float64) ([]float64, error) {
	return kaiserIdeal(omega, attenuationDB, width, true)
}

func kaiserIdeal(omega, attenuationDB, width float64, highpass bool) ([]float64, error) {
	n, err := KaiserLength(attenuationDB, width)
	if err != nil {
		return nil, err
	}

	gains, err := Ideal(omega, n, highpass)
	if err != nil {
		return nil, err
	}

	if err := window.ApplyKaiser(gains, attenuationDB); err != nil {
		return nil, err
	}

	return gains, nil
}
