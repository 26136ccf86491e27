// Package driver runs a trajectory generator at its fixed tick rate and
// forwards every sample to a set of sinks.
package driver

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/cwbudde/algo-motion/motion/trajectory"
)

var (
	ErrNilGenerator = errors.New("driver: generator is nil")
	ErrInvalidRate  = errors.New("driver: update rate does not give a usable tick period")
)

// Sample is one tick of generator output.
type Sample struct {
	Tick     uint64
	Time     time.Time
	Position float64
	Velocity float64
	Setpoint float64
}

// Sink receives samples. Publish is called from the driver's goroutine once
// per tick and should not block for long.
type Sink interface {
	Publish(Sample) error
}

// SinkFunc adapts a function to a Sink.
type SinkFunc func(Sample) error

// Publish calls f(s).
func (f SinkFunc) Publish(s Sample) error {
	return f(s)
}

type config struct {
	onError func(error)
	now     func() time.Time
}

// Option configures a Driver.
type Option func(*config)

// WithErrorHandler sets the function Run reports sink errors to. The
// default logs them.
func WithErrorHandler(fn func(error)) Option {
	return func(c *config) {
		if fn != nil {
			c.onError = fn
		}
	}
}

// WithClock sets the time source used to stamp samples.
func WithClock(now func() time.Time) Option {
	return func(c *config) {
		if now != nil {
			c.now = now
		}
	}
}

// Driver owns a Generator and is its only caller of Update. SetSetpoint
// may be called from any goroutine.
type Driver struct {
	gen    *trajectory.Generator
	sinks  []Sink
	period time.Duration
	cfg    config

	mu         sync.Mutex
	pending    float64
	hasPending bool

	tick uint64
}

// New returns a driver ticking gen at gen.UpdateRate().
func New(gen *trajectory.Generator, sinks []Sink, opts ...Option) (*Driver, error) {
	if gen == nil {
		return nil, ErrNilGenerator
	}

	period := time.Duration(float64(time.Second) / gen.UpdateRate())
	if period <= 0 {
		return nil, fmt.Errorf("%w: %v Hz", ErrInvalidRate, gen.UpdateRate())
	}

	cfg := config{
		onError: func(err error) { log.Printf("driver: %v", err) },
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Driver{
		gen:    gen,
		sinks:  sinks,
		period: period,
		cfg:    cfg,
	}, nil
}

// Period returns the tick period.
func (d *Driver) Period() time.Duration {
	return d.period
}

// SetSetpoint queues a new target. It takes effect at the start of the next
// tick; of several calls between two ticks only the last one counts.
func (d *Driver) SetSetpoint(target float64) {
	d.mu.Lock()
	d.pending = target
	d.hasPending = true
	d.mu.Unlock()
}

// Step runs one tick: it applies any queued setpoint, updates the generator
// and publishes the sample to every sink. Sink errors are joined.
func (d *Driver) Step() (Sample, error) {
	d.mu.Lock()
	if d.hasPending {
		d.gen.SetSetpoint(d.pending)
		d.hasPending = false
	}
	d.mu.Unlock()

	pos, vel := d.gen.Update()
	s := Sample{
		Tick:     d.tick,
		Time:     d.cfg.now(),
		Position: pos,
		Velocity: vel,
		Setpoint: d.gen.Target(),
	}
	d.tick++

	var errs []error
	for _, sink := range d.sinks {
		if err := sink.Publish(s); err != nil {
			errs = append(errs, err)
		}
	}

	return s, errors.Join(errs...)
}

// Run ticks until ctx is done and returns ctx.Err(). Sink errors do not stop
// the loop.
func (d *Driver) Run(ctx context.Context) error {
	ticker := time.NewTicker(d.period)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if _, err := d.Step(); err != nil {
				d.cfg.onError(err)
			}
		}
	}
}
