// Package shaper provides stateless waveshaping transfer curves.
//
// Every curve is a pure function of one sample. The default build uses
// math.Tanh for the soft clipper; building with the fastmath tag swaps in an
// exponential approximation from algo-approx.
package shaper

import "math"

// Bias and BiasDepth set the waveshaper operating point: the input to Tube is
// offset by Bias and pulled down by BiasDepth times the detected envelope.
const (
	Bias      = 0.25
	BiasDepth = 0.36
)

const (
	tubeCubic   = 0.13
	tubeQuartic = 0.407
)

// Curve is a memoryless transfer function.
type Curve func(x float64) float64

// Tube is the asymmetric tube transfer curve. Negative input is soft clipped
// as is; positive input is first expanded by a cubic and quartic term, which
// adds even and odd harmonics.
//
//	w = max(x, 0)
//	y = SoftClip(x + 0.13*w^3 + 0.407*w^4)
func Tube(x float64) float64 {
	w := math.Max(x, 0)
	w2 := w * w

	return SoftClip(x + tubeCubic*w2*w + tubeQuartic*w2*w2)
}

// BiasedTube applies Tube at the operating point shifted by envelope.
func BiasedTube(x, envelope float64) float64 {
	return Tube(x + Bias - BiasDepth*envelope)
}

// SoftClip is a smooth saturator bounded to (-1, 1) with unit slope at the
// origin.
func SoftClip(x float64) float64 {
	if math.IsNaN(x) {
		return 0
	}

	return clampUnit(mathTanh(x))
}

// ProcessBlock applies c to buf in place.
func (c Curve) ProcessBlock(buf []float64) {
	for i, x := range buf {
		buf[i] = c(x)
	}
}

func clampUnit(x float64) float64 {
	if x > 1 {
		return 1
	}

	if x < -1 {
		return -1
	}

	return x
}
