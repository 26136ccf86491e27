// Command firdesign designs a windowed FIR filter and prints its
// coefficients and magnitude response.
//
// Usage:
//
//	firdesign [flags]
//
// Examples:
//
//	firdesign -type lowpass -cutoff 1000 -rate 48000 -taps 63 -window hamming
//	firdesign -type highpass -cutoff 200 -rate 8000 -atten 60 -width 100
//	firdesign -type differentiator -taps 31 -window kaiser -atten 40
//	firdesign -type lowpass -taps 63 -window kaiser -beta 8
//	firdesign -type lowpass -taps 63 -window blackman
//	firdesign -cutoff 1000 -rate 48000 -response -fft 1024
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-motion/dsp/core"
	"github.com/cwbudde/algo-motion/dsp/filter/design"
	"github.com/cwbudde/algo-motion/dsp/filter/fir"
	"github.com/cwbudde/algo-motion/dsp/window"
)

type params struct {
	kind     string
	cutoff   float64
	rate     float64
	taps     int
	win      string
	atten    float64
	beta     float64
	width    float64
	response bool
	fftSize  int
}

func main() {
	var p params
	flag.StringVar(&p.kind, "type", "lowpass", "filter type: lowpass, highpass, differentiator")
	flag.Float64Var(&p.cutoff, "cutoff", 1000, "cutoff frequency in Hz")
	flag.Float64Var(&p.rate, "rate", 48000, "sample rate in Hz")
	flag.IntVar(&p.taps, "taps", 31, "number of taps (odd); ignored when -width is set")
	flag.StringVar(&p.win, "window", "hamming", "taper: rectangular, hann, hamming, blackman, kaiser")
	flag.Float64Var(&p.atten, "atten", 60, "stopband attenuation in dB for the kaiser window")
	flag.Float64Var(&p.beta, "beta", 0, "kaiser shape parameter; overrides -atten when non-zero")
	flag.Float64Var(&p.width, "width", 0, "transition width in Hz; sizes a kaiser design automatically")
	flag.BoolVar(&p.response, "response", false, "print the magnitude response instead of the coefficients")
	flag.IntVar(&p.fftSize, "fft", 512, "minimum FFT size for -response")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: firdesign [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Designs a windowed FIR filter and prints its coefficients.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  firdesign -type lowpass -cutoff 1000 -rate 48000 -taps 63\n")
		fmt.Fprintf(os.Stderr, "  firdesign -type highpass -cutoff 200 -rate 8000 -atten 60 -width 100\n")
		fmt.Fprintf(os.Stderr, "  firdesign -cutoff 1000 -response\n")
	}
	flag.Parse()

	gains, err := designFilter(p)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if p.response {
		if err := printResponse(gains, p); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	printCoefficients(gains, p)
}

func designFilter(p params) ([]float64, error) {
	if p.rate <= 0 {
		return nil, fmt.Errorf("sample rate must be > 0, got %g", p.rate)
	}
	omega := 2 * math.Pi * p.cutoff / p.rate
	kind := strings.ToLower(p.kind)

	if p.width > 0 && kind != "differentiator" {
		width := 2 * math.Pi * p.width / p.rate
		if kind == "highpass" {
			return design.KaiserHighpass(omega, p.atten, width)
		}
		return design.KaiserLowpass(omega, p.atten, width)
	}

	var (
		gains []float64
		err   error
	)
	switch kind {
	case "lowpass":
		gains, err = design.Lowpass(omega, p.taps)
	case "highpass":
		gains, err = design.Highpass(omega, p.taps)
	case "differentiator":
		gains, err = design.Differentiator(p.taps)
	default:
		return nil, fmt.Errorf("unknown filter type %q", p.kind)
	}
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(p.win) {
	case "rectangular", "rect", "none":
	case "hann":
		window.Apply(window.TypeHann, gains)
	case "hamming":
		err = window.ApplyHamming(gains)
	case "blackman":
		window.Apply(window.TypeBlackman, gains)
	case "kaiser":
		if p.beta != 0 {
			err = window.ApplyKaiserBeta(gains, p.beta)
		} else {
			err = window.ApplyKaiser(gains, p.atten)
		}
	default:
		return nil, fmt.Errorf("unknown window %q", p.win)
	}

	return gains, err
}

func printCoefficients(gains []float64, p params) {
	fmt.Printf("%s, %d taps, cutoff %g Hz at %g Hz\n\n", p.kind, len(gains), p.cutoff, p.rate)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(w, "n\tcoefficient\t\n")
	for i, g := range gains {
		fmt.Fprintf(w, "%d\t%+.12f\t\n", i, g)
	}
	w.Flush()

	fmt.Printf("\nDC gain %.6f\n", core.Sum(gains))
	fmt.Printf("gain at cutoff %.2f dB\n", fir.New(gains).MagnitudeDB(p.cutoff, p.rate))
}

func printResponse(gains []float64, p params) error {
	mag, err := design.MagnitudeResponse(gains, p.fftSize)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(w, "bin\tfreq (Hz)\tmagnitude\tdB\t\n")
	for k, m := range mag {
		hz := design.BinFrequency(k, len(mag)) * p.rate / (2 * math.Pi)
		fmt.Fprintf(w, "%d\t%.2f\t%.6f\t%.2f\t\n", k, hz, m, core.LinearToDB(m))
	}
	return w.Flush()
}
