// Package filter defines the capability shared by the sample-by-sample filter
// runtimes in the fir and iir subpackages.
//
// Both runtimes are generic over [core.Number] so the same code serves
// fixed-point style integer pipelines and floating-point ones.
package filter

import "github.com/cwbudde/algo-motion/dsp/core"

// Processor consumes one sample per call and remembers its last output.
type Processor[T core.Number] interface {
	// ProcessSample feeds x into the filter and returns the new output.
	ProcessSample(x T) T
	// Output returns the last computed output without advancing state.
	Output() T
}

// Run feeds every sample of in through p and writes the outputs to out.
// out must be at least as long as in.
func Run[T core.Number](p Processor[T], out, in []T) {
	if len(in) == 0 {
		return
	}
	_ = out[len(in)-1]
	for i, x := range in {
		out[i] = p.ProcessSample(x)
	}
}
