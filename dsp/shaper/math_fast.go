//go:build fastmath

package shaper

import (
	"math"

	"github.com/meko-christian/algo-approx"
)

// tanhSaturation is where 2/(e^2x+1) drops below half an ulp of 1.
const tanhSaturation = 19

const halfLn2 = math.Ln2 / 2

// seamSlope tilts every reduced segment of segmentExp so that 2^k*e^r meets
// the next segment without a step.
var seamSlope = func() float64 {
	lo, hi := reducedExp(-halfLn2), reducedExp(halfLn2)

	return (2*lo - hi) / (halfLn2 * (hi + 2*lo))
}()

// reducedExp approximates e^r for |r| <= ln2/2. The half argument keeps
// FastExp inside its own first reduction interval.
func reducedExp(r float64) float64 {
	e := approx.FastExpPrec(r/2, approx.PrecisionHigh)

	return e * e
}

// segmentExp is a non-decreasing approximation of e^x.
func segmentExp(x float64) float64 {
	k := math.Floor(x/math.Ln2 + 0.5)
	r := x - float64(k*math.Ln2)

	return math.Ldexp(reducedExp(r)*(1+seamSlope*r), int(k))
}

// mathTanh computes tanh(|x|) as 1 - 2/(e^2|x| + 1), which stays
// non-decreasing under rounding, and restores the sign.
func mathTanh(x float64) float64 {
	a := math.Abs(x)
	if a > tanhSaturation {
		return math.Copysign(1, x)
	}

	return math.Copysign(1-2/(segmentExp(2*a)+1), x)
}
