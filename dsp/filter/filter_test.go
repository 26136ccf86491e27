package filter_test

import (
	"testing"

	"github.com/cwbudde/algo-motion/dsp/filter"
	"github.com/cwbudde/algo-motion/dsp/filter/fir"
	"github.com/cwbudde/algo-motion/dsp/filter/iir"
)

var (
	_ filter.Processor[float64] = (*fir.Filter[float64])(nil)
	_ filter.Processor[int32]   = (*iir.Filter[int32])(nil)
)

func TestRunChainsAgree(t *testing.T) {
	// A 3-tap moving sum written as FIR and as an IIR with no feedback.
	in := []float64{1, 2, 3, 4, 5, 0, 0}
	want := []float64{1, 3, 6, 9, 12, 9, 5}

	for name, p := range map[string]filter.Processor[float64]{
		"fir": fir.New([]float64{1, 1, 1}),
		"iir": iir.New([]float64{1, 1, 1}, nil),
	} {
		out := make([]float64, len(in))
		filter.Run(p, out, in)
		for i := range want {
			if out[i] != want[i] {
				t.Fatalf("%s: out[%d] = %v, want %v", name, i, out[i], want[i])
			}
		}
		if p.Output() != want[len(want)-1] {
			t.Fatalf("%s: Output = %v", name, p.Output())
		}
	}
}

func TestRunEmpty(t *testing.T) {
	filter.Run[float64](fir.New([]float64{1}), nil, nil)
}
