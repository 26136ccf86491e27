// Package window generates tapering windows and applies them to FIR
// coefficient sets in place.
package window

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// Type identifies a window function.
type Type int

const (
	TypeRectangular Type = iota
	TypeHann
	TypeHamming
	TypeBlackman
	TypeKaiser
)

var typeNames = map[Type]string{
	TypeRectangular: "Rectangular",
	TypeHann:        "Hann",
	TypeHamming:     "Hamming",
	TypeBlackman:    "Blackman",
	TypeKaiser:      "Kaiser",
}

// String returns the window name.
func (t Type) String() string {
	if s, ok := typeNames[t]; ok {
		return s
	}
	return "Unknown"
}

var (
	hannCoeffs     = []float64{0.5, -0.5}
	hammingCoeffs  = []float64{0.54, -0.46}
	blackmanCoeffs = []float64{0.42, -0.5, 0.08}
)

// Option configures window generation.
type Option func(*config)

type config struct {
	beta     float64
	periodic bool
}

func defaultConfig() config {
	return config{beta: 0}
}

// WithBeta sets the Kaiser shape parameter. Negative values are ignored.
func WithBeta(beta float64) Option {
	return func(c *config) {
		if beta >= 0 {
			c.beta = beta
		}
	}
}

// WithAttenuation sets the Kaiser shape parameter from a stopband
// attenuation in dB (see [KaiserBeta]).
func WithAttenuation(attenuationDB float64) Option {
	return func(c *config) {
		if attenuationDB >= 0 {
			c.beta = KaiserBeta(attenuationDB)
		}
	}
}

// WithPeriodic configures periodic form (FFT framing) instead of the
// symmetric form used for FIR design.
func WithPeriodic() Option {
	return func(c *config) {
		c.periodic = true
	}
}

// Generate returns window coefficients of the given length.
// A single-sample window is 1 for every type.
func Generate(t Type, length int, opts ...Option) []float64 {
	if length <= 0 {
		return nil
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	out := make([]float64, length)
	for i := range out {
		out[i] = evalWindow(t, samplePosition(i, length, cfg.periodic), cfg)
	}

	return out
}

// Apply multiplies buf in-place by the selected window.
func Apply(t Type, buf []float64, opts ...Option) {
	if len(buf) == 0 {
		return
	}

	vecmath.MulBlockInPlace(buf, Generate(t, len(buf), opts...))
}

// ApplyHamming tapers buf in place with a symmetric Hamming window
//
//	w[n] = 0.54 - 0.46*cos(2*pi*n/(N-1))
func ApplyHamming(buf []float64) error {
	if err := validateLength(len(buf)); err != nil {
		return err
	}

	Apply(TypeHamming, buf)

	return nil
}

// ApplyKaiser tapers buf in place with a symmetric Kaiser window whose shape
// is chosen for the given stopband attenuation in dB.
func ApplyKaiser(buf []float64, attenuationDB float64) error {
	if err := validateLength(len(buf)); err != nil {
		return err
	}

	if err := validateAttenuation(attenuationDB); err != nil {
		return err
	}

	Apply(TypeKaiser, buf, WithAttenuation(attenuationDB))

	return nil
}

// ApplyKaiserBeta tapers buf in place with a symmetric Kaiser window of
// shape parameter beta.
func ApplyKaiserBeta(buf []float64, beta float64) error {
	if err := validateKaiser(len(buf), beta); err != nil {
		return err
	}

	Apply(TypeKaiser, buf, WithBeta(beta))

	return nil
}

func evalWindow(t Type, x float64, cfg config) float64 {
	switch t {
	case TypeRectangular:
		return 1
	case TypeHann:
		return cosineFromCoeffs(x, hannCoeffs)
	case TypeHamming:
		return cosineFromCoeffs(x, hammingCoeffs)
	case TypeBlackman:
		return cosineFromCoeffs(x, blackmanCoeffs)
	case TypeKaiser:
		return kaiserAt(x, cfg.beta)
	default:
		return 1
	}
}

func cosineFromCoeffs(x float64, coeffs []float64) float64 {
	phase := 2 * math.Pi * x

	sum := 0.0
	for k, c := range coeffs {
		sum += c * math.Cos(float64(k)*phase)
	}

	return sum
}

// samplePosition maps sample n of a size-point window onto [0, 1].
// A single sample sits at the window centre.
func samplePosition(n, size int, periodic bool) float64 {
	if size <= 1 {
		return 0.5
	}

	den := float64(size - 1)
	if periodic {
		den = float64(size)
	}

	return float64(n) / den
}
