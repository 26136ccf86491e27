// Package profile synthesizes the FIR gains that turn a stream of unit steps
// into a bounded velocity profile.
//
// Filtering a run of +1 steps through [Trapezoid] gains ramps velocity
// linearly up to the maximum (a trapezoidal profile, bounded acceleration).
// [JerkLimited] gains additionally round the corners of that ramp (an
// S-curve profile, bounded jerk).
//
// All rates are in ticks per second and all limits in position units per
// second, per second squared and per second cubed.
package profile
