package profile

import (
	"errors"

	"github.com/cwbudde/algo-motion/dsp/core"
)

var (
	// ErrInvalidLimits is returned for non-positive or non-finite limits and
	// for limits whose profile would be longer than MaxTaps.
	ErrInvalidLimits = errors.New("profile: limits and rate must be finite and > 0")
	// ErrJerkInfeasible is returned when the jerk limit is too low to reach
	// maxAccel before the velocity would exceed maxVel.
	ErrJerkInfeasible = errors.New("profile: jerk limit too low for an s-curve")
)

func validate(limits ...float64) error {
	for _, v := range limits {
		if !(v > 0) || !core.IsFinite(v) {
			return ErrInvalidLimits
		}
	}
	return nil
}
