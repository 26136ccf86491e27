// Command trajserve runs a live trajectory generator at its update rate.
// Samples are streamed to websocket clients on /ws and, optionally, written
// as "P<pos> V<vel>" lines to a serial port or stdout. Clients send
// {"setpoint": x} to move the target.
//
// Usage:
//
//	trajserve [flags]
//
// Examples:
//
//	trajserve -addr :8080
//	trajserve -mode scurve -vel 0.5 -accel 1 -jerk 10 -rate 50
//	trajserve -serial /dev/ttyUSB0 -baud 115200 -target 2
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/cwbudde/algo-motion/motion/driver"
	"github.com/cwbudde/algo-motion/motion/telemetry"
	"github.com/cwbudde/algo-motion/motion/trajectory"
)

func main() {
	mode := flag.String("mode", "trapezoid", "profile: trapezoid, scurve")
	vel := flag.Float64("vel", 1, "maximum velocity (units/s)")
	accel := flag.Float64("accel", 2, "maximum acceleration (units/s^2)")
	jerk := flag.Float64("jerk", 20, "maximum jerk (units/s^3), scurve only")
	rate := flag.Float64("rate", 50, "update rate (Hz)")
	target := flag.Float64("target", 0, "initial setpoint")
	addr := flag.String("addr", ":8080", "websocket listen address, empty to disable")
	serialDev := flag.String("serial", "", "serial device for position/velocity lines")
	baud := flag.Int("baud", 115200, "serial baud rate")
	stdout := flag.Bool("stdout", false, "also write position/velocity lines to stdout")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: trajserve [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Runs a live trajectory generator.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if err := run(*mode, *vel, *accel, *jerk, *rate, *target, *addr, *serialDev, *baud, *stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(mode string, vel, accel, jerk, rate, target float64, addr, serialDev string, baud int, stdout bool) error {
	var (
		gen *trajectory.Generator
		err error
	)
	switch strings.ToLower(mode) {
	case "trapezoid", "trap":
		gen, err = trajectory.NewTrapezoid(vel, accel, rate)
	case "scurve", "s-curve":
		gen, err = trajectory.NewSCurve(vel, accel, jerk, rate)
	default:
		err = fmt.Errorf("unknown mode %q", mode)
	}
	if err != nil {
		return err
	}

	var (
		sinks []driver.Sink
		drv   *driver.Driver
	)

	hub := telemetry.NewHub(func(s float64) {
		log.Printf("trajserve: setpoint %g", s)
		drv.SetSetpoint(s)
	})
	defer hub.Close()
	sinks = append(sinks, hub)

	if serialDev != "" {
		port, err := driver.OpenSerial(serialDev, baud)
		if err != nil {
			return err
		}
		defer port.Close()
		sinks = append(sinks, port)
	}
	if stdout {
		sinks = append(sinks, driver.NewLineSink(os.Stdout))
	}

	drv, err = driver.New(gen, sinks)
	if err != nil {
		return err
	}
	drv.SetSetpoint(target)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if addr != "" {
		mux := http.NewServeMux()
		mux.Handle("/ws", hub)
		srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

		go func() {
			log.Printf("trajserve: listening on %s", addr)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Printf("trajserve: http server: %v", err)
				stop()
			}
		}()
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			srv.Shutdown(shutdownCtx)
		}()
	}

	log.Printf("trajserve: %s profile at %g Hz, %d taps", gen.Mode(), gen.UpdateRate(), gen.Len())

	if err := drv.Run(ctx); !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
