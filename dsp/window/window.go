// Package window provides the Kaiser window used for windowed-sinc FIR design.
package window

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// Kaiser returns symmetric Kaiser window coefficients of the given size.
func Kaiser(size int, beta float64) ([]float64, error) {
	err := validateKaiser(size, beta)
	if err != nil {
		return nil, err
	}

	out := make([]float64, size)
	if size == 1 {
		out[0] = 1
		return out, nil
	}

	for n := range out {
		out[n] = kaiserAt(float64(n)/float64(size-1), beta)
	}

	return out, nil
}

// KaiserBeta returns the Kaiser beta that reaches the given stopband
// attenuation in dB (Kaiser's empirical formula).
func KaiserBeta(attenuationDB float64) float64 {
	switch {
	case attenuationDB > 50:
		return 0.1102 * (attenuationDB - 8.7)
	case attenuationDB >= 21:
		return 0.5842*math.Pow(attenuationDB-21, 0.4) + 0.07886*(attenuationDB-21)
	default:
		return 0
	}
}

// ApplyInPlace multiplies samples by coeffs element-wise.
func ApplyInPlace(samples, coeffs []float64) error {
	if len(samples) != len(coeffs) {
		return errMismatchedLength
	}

	vecmath.MulBlockInPlace(samples, coeffs)

	return nil
}

// kaiserAt evaluates the window at normalized position x in [0, 1].
func kaiserAt(x, beta float64) float64 {
	if beta <= 0 {
		return 1
	}

	r := 2*x - 1
	term := math.Sqrt(math.Max(0, 1-r*r))

	return besselI0(beta*term) / besselI0(beta)
}

// besselI0 evaluates the modified Bessel function of the first kind, order
// zero, by its power series.
func besselI0(x float64) float64 {
	sum := 1.0
	term := 1.0

	x2 := (x * x) / 4
	for k := 1; k < 64; k++ {
		term *= x2 / float64(k*k)

		sum += term
		if term < 1e-16*sum {
			break
		}
	}

	return sum
}
