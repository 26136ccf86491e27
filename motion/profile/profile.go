package profile

import (
	"math"

	"github.com/cwbudde/algo-motion/dsp/core"
	"github.com/cwbudde/algo-vecmath"
)

// MaxTaps bounds the length of any generated profile. Limit combinations
// that would need more taps are rejected before allocation.
const MaxTaps = 1 << 20

// Trapezoid returns a box of L = ceil(maxVel/maxAccel*rate) equal gains
// maxVel/L. A held unit step through these gains ramps velocity from 0 to
// maxVel over L ticks. It returns ErrInvalidLimits when L would exceed
// MaxTaps.
func Trapezoid(maxVel, maxAccel, rate float64) ([]float64, error) {
	if err := validate(maxVel, maxAccel, rate); err != nil {
		return nil, err
	}

	nf := math.Ceil(maxVel / maxAccel * rate)
	if !(nf <= MaxTaps) {
		return nil, ErrInvalidLimits
	}

	n := max(int(nf), 1)
	gains := make([]float64, n)
	height := maxVel / float64(n)
	for i := range gains {
		gains[i] = height
	}

	return gains, nil
}

// JerkLimited returns S-curve gains: a linear ramp of jerkLen taps, a flat
// run of accelLen taps at height h and a mirrored ramp down, where
//
//	jerkLen  = ceil(maxAccel/maxJerk*rate)
//	accelLen = floor((maxVel - jerkVel)*rate/maxAccel)
//	jerkVel  = 0.5*jerkLen*maxAccel/rate
//	h        = maxVel/(accelLen+jerkLen)
//
// It returns ErrJerkInfeasible when jerkVel exceeds maxVel or jerkLen
// exceeds MaxTaps, and ErrInvalidLimits when the whole profile would be
// longer than MaxTaps.
func JerkLimited(maxVel, maxAccel, maxJerk, rate float64) (gains []float64, jerkLen int, err error) {
	if err := validate(maxVel, maxAccel, maxJerk, rate); err != nil {
		return nil, 0, err
	}

	jf := math.Ceil(maxAccel / maxJerk * rate)
	if !(jf <= MaxTaps) {
		return nil, 0, ErrJerkInfeasible
	}

	jerkLen = max(int(jf), 1)
	jerkVel := 0.5 * float64(jerkLen) * maxAccel / rate
	if jerkVel > maxVel {
		return nil, 0, ErrJerkInfeasible
	}

	af := math.Floor((maxVel - jerkVel) * rate / maxAccel)
	if !(af+2*float64(jerkLen) <= MaxTaps) {
		return nil, 0, ErrInvalidLimits
	}

	accelLen := int(af)
	height := maxVel / float64(accelLen+jerkLen)

	gains = make([]float64, 2*jerkLen+accelLen)
	j := float64(jerkLen)
	for i := range jerkLen {
		gains[i] = float64(i) / j
		gains[jerkLen+accelLen+i] = float64(jerkLen-i-1) / j
	}
	for i := jerkLen; i < jerkLen+accelLen; i++ {
		gains[i] = 1
	}
	vecmath.ScaleBlock(gains, gains, height)

	return gains, jerkLen, nil
}

// Sum returns the DC gain of a profile: the steady velocity produced by a
// held unit step.
func Sum(gains []float64) float64 {
	return core.Sum(gains)
}
