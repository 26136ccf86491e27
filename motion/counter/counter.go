// Package counter implements the step counter that feeds a trajectory
// shaping filter.
//
// Each call to [Counter.Update] moves the counter's location toward its
// setpoint by at most one unit and returns the step taken: +1, -1, 0, or the
// fractional remainder on the final approach. Feeding those steps through an
// FIR filter whose gains form a velocity profile yields a velocity signal
// with bounded acceleration.
//
// The counter applies hysteresis near the setpoint. When the sign of the
// error flips (the target moved behind the counter) it halts for one tick
// and then refuses to move against its last direction until it has dwelled
// for more than Gap ticks. The gap is sized so a shaping filter's previous
// transient has cleared before the motion reverses.
package counter

import "github.com/cwbudde/algo-motion/dsp/core"

// Counter is a hysteresis-aware unit step counter. The zero value is a
// counter at 0 with setpoint 0 and no gap. A Counter is not safe for
// concurrent use.
type Counter struct {
	location float64
	setpoint float64

	prev    int8 // error sign seen on the previous tick
	prevDir int8 // direction of the last nonzero step
	dwell   int
	gap     int
}

// New returns a counter at location 0.
func New() *Counter {
	return &Counter{}
}

// SetGap sets the minimum number of ticks the counter must dwell before it
// may step against its last direction. The dwell counter is primed to n so
// the first move is not delayed.
func (c *Counter) SetGap(n int) {
	if n < 0 {
		n = 0
	}
	c.gap = n
	c.dwell = n
}

// SetSetpoint sets the location the counter steps toward.
func (c *Counter) SetSetpoint(s float64) {
	c.setpoint = s
}

// Setpoint returns the current setpoint.
func (c *Counter) Setpoint() float64 {
	return c.setpoint
}

// Location returns the integrated location, i.e. the sum of every step
// returned so far plus the reset location.
func (c *Counter) Location() float64 {
	return c.location
}

// Gap returns the configured dwell gap.
func (c *Counter) Gap() int {
	return c.gap
}

// Reset places the counter at location with the setpoint equal to it and
// forgets direction history. The gap is kept and the dwell counter primed.
func (c *Counter) Reset(location float64) {
	c.location = location
	c.setpoint = location
	c.prev = 0
	c.prevDir = 0
	c.dwell = c.gap
}

// Update advances the counter one tick and returns the step taken.
func (c *Counter) Update() float64 {
	diff := c.setpoint - c.location

	var step float64
	switch {
	case diff == 0:
		step = 0
	case diff >= 1:
		step = 1
	case diff <= -1:
		step = -1
	default:
		step = diff
	}

	sign := core.Sign(diff)

	if c.prev != 0 && c.prev != sign {
		c.dwell = 0
		step = 0
	} else if c.dwell <= c.gap {
		// Saturates at gap+1; the gate below only compares against gap.
		c.dwell++
	}

	if !(c.dwell > c.gap || c.prevDir == sign) {
		step = 0
	}

	if step != 0 {
		c.prevDir = core.Sign(step)
		if step == diff {
			c.location = c.setpoint
		} else {
			c.location += step
		}
	}

	c.prev = sign

	return step
}
