// Package trajectory generates real-time position and velocity setpoints
// with bounded velocity, acceleration and (optionally) jerk.
//
// A [Generator] chains a hysteresis step counter, an FIR filter whose gains
// are a velocity profile, and a position integrator. Call [Generator.Update]
// once per tick at exactly the rate the generator was built for; the bounds
// only hold at that rate.
package trajectory

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-motion/dsp/filter/fir"
	"github.com/cwbudde/algo-motion/motion/counter"
	"github.com/cwbudde/algo-motion/motion/profile"
)

// Mode selects the velocity profile shape.
type Mode int

const (
	// ModeTrapezoid bounds velocity and acceleration.
	ModeTrapezoid Mode = iota
	// ModeSCurve bounds velocity, acceleration and jerk.
	ModeSCurve
)

func (m Mode) String() string {
	switch m {
	case ModeTrapezoid:
		return "trapezoid"
	case ModeSCurve:
		return "s-curve"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ErrInvalidMode is returned by New for an unknown Mode.
var ErrInvalidMode = errors.New("trajectory: unknown profile mode")

// Config describes a generator for New. MaxJerk is ignored in
// ModeTrapezoid.
type Config struct {
	Mode            Mode
	MaxVelocity     float64
	MaxAcceleration float64
	MaxJerk         float64
	UpdateRate      float64
	StartPosition   float64
}

// Option configures a Generator built with NewTrapezoid or NewSCurve.
type Option func(*Config)

// WithStartPosition sets the initial position and setpoint.
func WithStartPosition(p float64) Option {
	return func(c *Config) {
		c.StartPosition = p
	}
}

// Generator produces one position/velocity sample per Update call. It is
// not safe for concurrent use.
type Generator struct {
	counter *counter.Counter
	filter  *fir.Filter[float64]

	mode    Mode
	jerkLen int
	maxVel  float64
	rate    float64
	dcGain  float64

	origin   float64
	target   float64
	position float64
	velocity float64
	idle     int
}

// NewTrapezoid returns a generator with a trapezoidal velocity profile.
func NewTrapezoid(maxVel, maxAccel, rate float64, opts ...Option) (*Generator, error) {
	cfg := Config{
		Mode:            ModeTrapezoid,
		MaxVelocity:     maxVel,
		MaxAcceleration: maxAccel,
		UpdateRate:      rate,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return New(cfg)
}

// NewSCurve returns a generator with a jerk-limited velocity profile.
func NewSCurve(maxVel, maxAccel, maxJerk, rate float64, opts ...Option) (*Generator, error) {
	cfg := Config{
		Mode:            ModeSCurve,
		MaxVelocity:     maxVel,
		MaxAcceleration: maxAccel,
		MaxJerk:         maxJerk,
		UpdateRate:      rate,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return New(cfg)
}

// New builds a generator from cfg. Profile errors are wrapped and can be
// tested with errors.Is against the profile package sentinels.
func New(cfg Config) (*Generator, error) {
	var (
		gains   []float64
		jerkLen int
		gap     int
		err     error
	)

	switch cfg.Mode {
	case ModeTrapezoid:
		gains, err = profile.Trapezoid(cfg.MaxVelocity, cfg.MaxAcceleration, cfg.UpdateRate)
		if err != nil {
			return nil, fmt.Errorf("trajectory: trapezoid profile: %w", err)
		}
		gap = len(gains)
	case ModeSCurve:
		gains, jerkLen, err = profile.JerkLimited(cfg.MaxVelocity, cfg.MaxAcceleration, cfg.MaxJerk, cfg.UpdateRate)
		if err != nil {
			return nil, fmt.Errorf("trajectory: s-curve profile: %w", err)
		}
		gap = len(gains) - jerkLen
	default:
		return nil, fmt.Errorf("%w: %v", ErrInvalidMode, cfg.Mode)
	}

	g := &Generator{
		counter: counter.New(),
		filter:  fir.New(gains),
		mode:    cfg.Mode,
		jerkLen: jerkLen,
		maxVel:  cfg.MaxVelocity,
		rate:    cfg.UpdateRate,
		dcGain:  profile.Sum(gains),
	}
	g.counter.SetGap(gap)
	g.Reset(cfg.StartPosition)

	return g, nil
}

// SetSetpoint sets the position the generator moves toward. It may be
// called between any two ticks; the motion re-plans from the current state.
//
// The step count is scaled by the profile's DC gain (the sum of its gains)
// rather than by maxVel. The two agree for a trapezoid, but an S-curve's DC
// gain is slightly below maxVel, and scaling by maxVel would settle short of
// target. Cruise velocity for an S-curve is therefore the DC gain, not maxVel.
func (g *Generator) SetSetpoint(target float64) {
	g.target = target
	// Each unit step moves the integrated position by dcGain/rate.
	g.counter.SetSetpoint((target - g.origin) * g.rate / g.dcGain)
}

// Update advances one tick and returns the new position and velocity.
func (g *Generator) Update() (position, velocity float64) {
	step := g.counter.Update()
	if step != 0 {
		g.idle = 0
	} else if g.idle < g.filter.Len() {
		g.idle++
	}

	g.velocity = g.filter.ProcessSample(step)
	g.position += g.velocity / g.rate

	return g.position, g.velocity
}

// Reset stops the generator at position: velocity, filter history and
// counter state are cleared and the setpoint becomes position.
func (g *Generator) Reset(position float64) {
	g.origin = position
	g.target = position
	g.position = position
	g.velocity = 0
	g.idle = g.filter.Len()
	g.filter.Reset()
	g.counter.Reset(0)
}

// Settled reports whether the counter has reached its setpoint and the
// profile filter has drained.
func (g *Generator) Settled() bool {
	return g.counter.Location() == g.counter.Setpoint() && g.idle >= g.filter.Len()
}

// Position returns the last integrated position.
func (g *Generator) Position() float64 { return g.position }

// Velocity returns the last velocity.
func (g *Generator) Velocity() float64 { return g.velocity }

// Target returns the last setpoint in position units.
func (g *Generator) Target() float64 { return g.target }

// Mode returns the profile mode.
func (g *Generator) Mode() Mode { return g.mode }

// Len returns the number of profile taps.
func (g *Generator) Len() int { return g.filter.Len() }

// JerkLen returns the length of each jerk ramp, 0 in ModeTrapezoid.
func (g *Generator) JerkLen() int { return g.jerkLen }

// Gap returns the counter's reversal dwell in ticks.
func (g *Generator) Gap() int { return g.counter.Gap() }

// Gains returns a copy of the profile gains.
func (g *Generator) Gains() []float64 { return g.filter.Coefficients() }

// UpdateRate returns the tick rate in Hz.
func (g *Generator) UpdateRate() float64 { return g.rate }

// MaxVelocity returns the configured velocity limit.
func (g *Generator) MaxVelocity() float64 { return g.maxVel }
