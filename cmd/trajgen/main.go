// Command trajgen prints an offline trajectory table for a sequence of
// setpoints.
//
// Usage:
//
//	trajgen [flags] [tick:target ...]
//
// Each argument schedules a setpoint at a tick. Without arguments the
// generator moves to 1.
//
// Examples:
//
//	trajgen -vel 1 -accel 2 -rate 100
//	trajgen -mode scurve -jerk 20 0:2 60:-0.5
//	trajgen -every 10 0:5
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-motion/motion/trajectory"
)

type event struct {
	tick   int
	target float64
}

func main() {
	mode := flag.String("mode", "trapezoid", "profile: trapezoid, scurve")
	vel := flag.Float64("vel", 1, "maximum velocity (units/s)")
	accel := flag.Float64("accel", 2, "maximum acceleration (units/s^2)")
	jerk := flag.Float64("jerk", 20, "maximum jerk (units/s^3), scurve only")
	rate := flag.Float64("rate", 100, "update rate (Hz)")
	start := flag.Float64("start", 0, "start position")
	maxTicks := flag.Int("max", 100000, "stop after this many ticks")
	every := flag.Int("every", 1, "print every n-th tick")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: trajgen [flags] [tick:target ...]\n\n")
		fmt.Fprintf(os.Stderr, "Prints a trajectory table until the generator settles.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  trajgen -vel 1 -accel 2 -rate 100\n")
		fmt.Fprintf(os.Stderr, "  trajgen -mode scurve -jerk 20 0:2 60:-0.5\n")
	}
	flag.Parse()

	events, err := parseEvents(flag.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}

	cfg := trajectory.Config{
		MaxVelocity:     *vel,
		MaxAcceleration: *accel,
		MaxJerk:         *jerk,
		UpdateRate:      *rate,
		StartPosition:   *start,
	}
	switch strings.ToLower(*mode) {
	case "trapezoid", "trap":
		cfg.Mode = trajectory.ModeTrapezoid
	case "scurve", "s-curve":
		cfg.Mode = trajectory.ModeSCurve
	default:
		fmt.Fprintf(os.Stderr, "error: unknown mode %q\n", *mode)
		os.Exit(2)
	}

	gen, err := trajectory.New(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("%s profile: %d taps, jerk ramp %d, reversal gap %d ticks\n\n",
		gen.Mode(), gen.Len(), gen.JerkLen(), gen.Gap())

	if err := writeTable(os.Stdout, gen, events, *maxTicks, max(*every, 1)); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func parseEvents(args []string) ([]event, error) {
	if len(args) == 0 {
		return []event{{0, 1}}, nil
	}

	events := make([]event, 0, len(args))
	for _, arg := range args {
		tickStr, targetStr, ok := strings.Cut(arg, ":")
		if !ok {
			return nil, fmt.Errorf("invalid setpoint %q, want tick:target", arg)
		}
		tick, err := strconv.Atoi(tickStr)
		if err != nil || tick < 0 {
			return nil, fmt.Errorf("invalid tick in %q", arg)
		}
		target, err := strconv.ParseFloat(targetStr, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid target in %q: %w", arg, err)
		}
		events = append(events, event{tick, target})
	}

	sort.SliceStable(events, func(i, j int) bool { return events[i].tick < events[j].tick })
	return events, nil
}

// writeTable runs gen until the last event has been applied and the
// generator has settled, or maxTicks is reached.
func writeTable(out io.Writer, gen *trajectory.Generator, events []event, maxTicks, every int) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(w, "tick\ttime (s)\tsetpoint\tposition\tvelocity\taccel\t\n")

	rate := gen.UpdateRate()
	prevVel := gen.Velocity()
	next := 0
	for tick := 0; tick < maxTicks; tick++ {
		for next < len(events) && events[next].tick == tick {
			gen.SetSetpoint(events[next].target)
			next++
		}

		pos, vel := gen.Update()
		acc := (vel - prevVel) * rate
		prevVel = vel

		done := next == len(events) && gen.Settled()
		if tick%every == 0 || done {
			fmt.Fprintf(w, "%d\t%.3f\t%.4f\t%.6f\t%.6f\t%.4f\t\n",
				tick, float64(tick)/rate, gen.Target(), pos, vel, acc)
		}
		if done {
			break
		}
	}

	return w.Flush()
}
