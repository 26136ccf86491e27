package design

import "errors"

// MaxTaps bounds the filter length KaiserLength will estimate.
const MaxTaps = 1 << 20

var (
	ErrEvenLength     = errors.New("design: filter length must be odd")
	ErrInvalidLength  = errors.New("design: filter length must be > 0")
	ErrInvalidCutoff  = errors.New("design: cutoff must be in [0, pi] rad/sample")
	ErrInvalidWidth   = errors.New("design: transition width must be in (0, pi] rad/sample")
	ErrInvalidFFTSize = errors.New("design: fft size must be > 0")
	ErrEmptyCoeffs    = errors.New("design: coefficients must not be empty")
	ErrTooManyTaps    = errors.New("design: estimated filter length exceeds MaxTaps")
)

func validateOddLength(n int) error {
	if n <= 0 {
		return ErrInvalidLength
	}
	if n%2 == 0 {
		return ErrEvenLength
	}
	return nil
}
