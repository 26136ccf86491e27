package window

import (
	"fmt"

	"github.com/cwbudde/algo-motion/dsp/core"
)

func validateLength(size int) error {
	if size <= 0 {
		return fmt.Errorf("window: size must be > 0: %d", size)
	}
	return nil
}

func validateKaiser(size int, beta float64) error {
	if size <= 0 {
		return validateLength(size)
	}
	if beta < 0 || !core.IsFinite(beta) {
		return fmt.Errorf("window: kaiser beta must be finite and >= 0: %f", beta)
	}
	return nil
}

func validateAttenuation(attenuationDB float64) error {
	if attenuationDB < 0 || !core.IsFinite(attenuationDB) {
		return fmt.Errorf("window: stopband attenuation must be finite and >= 0 dB: %f", attenuationDB)
	}
	return nil
}
