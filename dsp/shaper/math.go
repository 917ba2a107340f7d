//go:build !fastmath

package shaper

import "math"

func mathTanh(x float64) float64 {
	return math.Tanh(x)
}
