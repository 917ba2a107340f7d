package core_test

import (
	"fmt"

	"github.com/cwbudde/algo-tube/dsp/core"
)

func ExampleDBToLinear() {
	fmt.Printf("%.4f\n", core.DBToLinear(-6))
	fmt.Printf("%.4f\n", core.DBToLinear(12))

	// Output:
	// 0.5012
	// 3.9811
}

func ExampleTimeConstant() {
	// One-pole release coefficient for a 1 ms time constant at 1 kHz:
	// one sample, so 1 - exp(-1).
	fmt.Printf("%.6f\n", core.TimeConstant(1, 1000))

	// Output:
	// 0.632121
}
