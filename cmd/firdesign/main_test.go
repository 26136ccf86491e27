package main

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-motion/dsp/filter/design"
)

func baseParams() params {
	return params{kind: "lowpass", cutoff: 1000, rate: 48000, taps: 31, win: "hamming", atten: 60}
}

func TestDesignFilter(t *testing.T) {
	kaiserLen, err := design.KaiserLength(60, 2*math.Pi*100/48000)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		edit    func(*params)
		wantLen int
		wantErr error
		anyErr  bool
	}{
		{name: "hamming lowpass", edit: func(*params) {}, wantLen: 31},
		{name: "hann", edit: func(p *params) { p.win = "hann" }, wantLen: 31},
		{name: "blackman highpass", edit: func(p *params) { p.kind = "highpass"; p.win = "Blackman" }, wantLen: 31},
		{name: "rectangular", edit: func(p *params) { p.win = "none" }, wantLen: 31},
		{name: "kaiser beta", edit: func(p *params) { p.win = "kaiser"; p.beta = 8 }, wantLen: 31},
		{name: "width sizes kaiser", edit: func(p *params) { p.width = 100 }, wantLen: kaiserLen},
		{name: "width ignored for differentiator", edit: func(p *params) { p.kind = "differentiator"; p.width = 100 }, wantLen: 31},
		{name: "even taps", edit: func(p *params) { p.taps = 30 }, wantErr: design.ErrEvenLength},
		{name: "oversized width design", edit: func(p *params) { p.width = 1e-300 }, wantErr: design.ErrTooManyTaps},
		{name: "unknown type", edit: func(p *params) { p.kind = "bandpass" }, anyErr: true},
		{name: "unknown window", edit: func(p *params) { p.win = "tukey" }, anyErr: true},
		{name: "negative beta", edit: func(p *params) { p.win = "kaiser"; p.beta = -1 }, anyErr: true},
		{name: "zero rate", edit: func(p *params) { p.rate = 0 }, anyErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := baseParams()
			tt.edit(&p)

			gains, err := designFilter(p)
			switch {
			case tt.wantErr != nil:
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("err = %v, want %v", err, tt.wantErr)
				}
				return
			case tt.anyErr:
				if err == nil {
					t.Fatal("expected error")
				}
				return
			case err != nil:
				t.Fatal(err)
			}

			if len(gains) != tt.wantLen {
				t.Fatalf("len = %d, want %d", len(gains), tt.wantLen)
			}
			if len(gains)%2 == 0 {
				t.Fatalf("even length %d", len(gains))
			}
		})
	}
}

func TestDesignFilterWindowsTaperEnds(t *testing.T) {
	for _, win := range []string{"hann", "blackman"} {
		p := baseParams()
		p.win = win
		gains, err := designFilter(p)
		if err != nil {
			t.Fatal(err)
		}
		if math.Abs(gains[0]) > 1e-15 || math.Abs(gains[len(gains)-1]) > 1e-15 {
			t.Fatalf("%s: end taps %v, %v; want 0", win, gains[0], gains[len(gains)-1])
		}
	}
}

func TestDesignFilterKaiserBetaOverridesAttenuation(t *testing.T) {
	p := baseParams()
	p.win = "kaiser"
	byAtten, err := designFilter(p)
	if err != nil {
		t.Fatal(err)
	}

	p.beta = 2
	byBeta, err := designFilter(p)
	if err != nil {
		t.Fatal(err)
	}

	if byAtten[0] == byBeta[0] {
		t.Fatalf("beta had no effect: %v", byBeta[0])
	}
}
