package window

import "math"

// besselTolerance is the relative size of the last series term at which
// BesselI0 stops summing.
const besselTolerance = 1e-9

// KaiserBeta returns the Kaiser shape parameter that achieves the given
// stopband attenuation (dB), using Kaiser's empirical formula:
//
//	A >= 50:      0.1102 * (A - 8.7)
//	21 < A < 50:  0.5842 * (A - 21)^0.4 + 0.07886 * (A - 21)
//	A <= 21:      0 (rectangular)
func KaiserBeta(attenuationDB float64) float64 {
	switch {
	case attenuationDB >= 50:
		return 0.1102 * (attenuationDB - 8.7)
	case attenuationDB > 21:
		d := attenuationDB - 21
		return 0.5842*math.Pow(d, 0.4) + 0.07886*d
	default:
		return 0
	}
}

// BesselI0 evaluates the zeroth-order modified Bessel function of the first
// kind by summing its power series until the next term is negligible.
func BesselI0(x float64) float64 {
	sum := 1.0
	term := 1.0
	for n := 1; term > besselTolerance*sum; n++ {
		t := x / float64(2*n)
		term *= t * t
		sum += term
	}
	return sum
}

func kaiserAt(x, beta float64) float64 {
	if beta <= 0 {
		return 1
	}

	r := 2*x - 1
	term := mathSqrt(math.Max(0, 1-r*r))

	return BesselI0(beta*term) / BesselI0(beta)
}
