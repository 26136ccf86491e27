package iir_test

import (
	"fmt"

	"github.com/cwbudde/algo-motion/dsp/filter/iir"
)

func ExampleFilter_ProcessSample() {
	// y[n] = x[n-2] + 0.5*y[n-2]
	f := iir.New([]float64{0, 0, 1}, []float64{0, -0.5})

	for range 8 {
		fmt.Print(f.ProcessSample(1), " ")
	}
	fmt.Println()
	// Output:
	// 0 0 1 1 1.5 1.5 1.75 1.75
}

func ExampleFilter_Len() {
	f := iir.New([]int{1, 1, 2}, []int{0, 0, -1})
	fmt.Println(f.Len())
	// Output:
	// 4
}
