package design

import "math"

// Lowpass returns the n-tap ideal low-pass impulse response with cutoff
// omega (rad/sample). n must be odd.
//
//	h[M] = omega/pi,  h[k] = sin(omega*(k-M)) / (pi*(k-M)),  M = n/2
func Lowpass(omega float64, n int) ([]float64, error) {
	return Ideal(omega, n, false)
}

// Highpass returns the n-tap ideal high-pass impulse response with cutoff
// omega (rad/sample). n must be odd.
//
//	h[M] = 1 - omega/pi,  h[k] = -sin(omega*(k-M)) / (pi*(k-M))
func Highpass(omega float64, n int) ([]float64, error) {
	return Ideal(omega, n, true)
}

// Ideal returns the n-tap ideal low-pass or high-pass impulse response.
// The result is symmetric about its midpoint.
func Ideal(omega float64, n int, highpass bool) ([]float64, error) {
	if err := validateOddLength(n); err != nil {
		return nil, err
	}
	if !(omega >= 0 && omega <= math.Pi) {
		return nil, ErrInvalidCutoff
	}

	m := n / 2
	gains := make([]float64, n)
	for k := range gains {
		d := float64(k - m)

		var h float64
		if k == m {
			h = omega / math.Pi
		} else {
			h = math.Sin(omega*d) / (math.Pi * d)
		}

		if highpass {
			h = -h
			if k == m {
				h++
			}
		}

		gains[k] = h
	}

	return gains, nil
}

// Differentiator returns the n-tap ideal full-band differentiator. n must be
// odd. The response is antisymmetric about its zero-valued midpoint.
//
//	h[k] = cos(pi*(k-M))/(k-M) - sin(pi*(k-M))/(pi*(k-M)^2)
func Differentiator(n int) ([]float64, error) {
	if err := validateOddLength(n); err != nil {
		return nil, err
	}

	m := n / 2
	gains := make([]float64, n)
	for k := range gains {
		if k == m {
			continue
		}

		d := float64(k - m)
		gains[k] = math.Cos(math.Pi*d)/d - math.Sin(math.Pi*d)/(math.Pi*d*d)
	}

	return gains, nil
}
