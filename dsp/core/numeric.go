package core

import "math"

// denormalThreshold is the magnitude below which recursive filter state is
// flushed to zero.
const denormalThreshold = 1e-30

// Clamp limits value to the inclusive range [lo, hi].
func Clamp(value, lo, hi float64) float64 {
	if lo > hi {
		lo, hi = hi, lo
	}

	if value < lo {
		return lo
	}

	if value > hi {
		return hi
	}

	return value
}

// Lerp blends a toward b by t: a + (b-a)*t.
// t = 0 returns a, t = 1 returns b exactly.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// FlushDenormals converts tiny denormal-like values to exact zero.
// Recursive filters call this on their state to keep the hot loop fast once a
// signal has decayed.
func FlushDenormals(x float64) float64 {
	if x > -denormalThreshold && x < denormalThreshold {
		return 0
	}

	return x
}

// DBToLinear converts dB to linear amplitude (20*log10 convention).
func DBToLinear(db float64) float64 {
	return math.Pow(10, db/20)
}

// LinearToDB converts linear amplitude to dB (20*log10 convention).
// Returns -Inf for zero and NaN for negative values.
func LinearToDB(linear float64) float64 {
	if linear < 0 {
		return math.NaN()
	}

	if linear == 0 {
		return math.Inf(-1)
	}

	return 20 * math.Log10(linear)
}

// TimeConstant returns the one-pole smoothing coefficient for a time constant
// of ms milliseconds at sampleRate:
//
//	1 - exp(-1 / (ms * sampleRate / 1000))
//
// A non-positive time or sample rate yields 1 (no smoothing).
func TimeConstant(ms, sampleRate float64) float64 {
	samples := ms * sampleRate / 1000
	if samples <= 0 || math.IsNaN(samples) {
		return 1
	}

	return 1 - math.Exp(-1/samples)
}

// IsFinite reports whether x is neither NaN nor ±Inf.
func IsFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
