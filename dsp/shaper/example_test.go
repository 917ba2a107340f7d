package shaper_test

import (
	"fmt"

	"github.com/cwbudde/algo-tube/dsp/shaper"
)

func ExampleTube() {
	for _, x := range []float64{-0.5, 0, 0.5} {
		fmt.Printf("%.4f\n", shaper.Tube(x))
	}
	// Output:
	// -0.4621
	// 0.0000
	// 0.4943
}
