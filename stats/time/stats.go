// Package time provides time-domain level statistics for rendered audio.
//
// [Calculate] measures a whole buffer; [Meter] accumulates the same values
// block by block while an engine renders, and gives bit-identical results.
package time

import "math"

// Stats holds time-domain level statistics.
//
//nolint:revive
type Stats struct {
	Length         int
	DC             float64 // mean
	DC_dB          float64
	RMS            float64
	RMS_dB         float64
	Peak           float64 // max |x|
	PeakPos        int
	Peak_dB        float64
	CrestFactor    float64 // peak / RMS (linear)
	CrestFactor_dB float64
	ZeroCrossings  int
}

// Calculate computes the level statistics of signal in a single pass.
func Calculate(signal []float64) Stats {
	var m Meter
	m.Update(signal)

	return m.Result()
}

// RMS returns the root-mean-square of the signal.
func RMS(signal []float64) float64 {
	if len(signal) == 0 {
		return 0
	}

	var sumSq float64
	for _, x := range signal {
		sumSq += x * x
	}

	return math.Sqrt(sumSq / float64(len(signal)))
}

// Peak returns the largest absolute sample value.
func Peak(signal []float64) float64 {
	var peak float64
	for _, x := range signal {
		peak = math.Max(peak, math.Abs(x))
	}

	return peak
}

// Meter accumulates level statistics across consecutive blocks. The zero
// value is ready to use.
type Meter struct {
	n             int
	mean          float64
	sumSq         float64
	peak          float64
	peakPos       int
	zeroCrossings int
	last          float64
}

// Update adds a block of samples. Allocation free.
func (m *Meter) Update(samples []float64) {
	for _, x := range samples {
		m.n++
		m.mean += (x - m.mean) / float64(m.n)
		m.sumSq += x * x

		if a := math.Abs(x); a > m.peak {
			m.peak = a
			m.peakPos = m.n - 1
		}

		if m.n > 1 && m.last*x < 0 {
			m.zeroCrossings++
		}

		m.last = x
	}
}

// Result returns the statistics of everything seen since the last Reset.
func (m *Meter) Result() Stats {
	if m.n == 0 {
		return Stats{
			DC_dB:          math.Inf(-1),
			RMS_dB:         math.Inf(-1),
			Peak_dB:        math.Inf(-1),
			CrestFactor_dB: math.Inf(-1),
		}
	}

	rms := math.Sqrt(m.sumSq / float64(m.n))

	var crest, crestDB float64
	if rms > 0 {
		crest = m.peak / rms
		crestDB = ampTodB(crest)
	}

	return Stats{
		Length:         m.n,
		DC:             m.mean,
		DC_dB:          ampTodB(m.mean),
		RMS:            rms,
		RMS_dB:         ampTodB(rms),
		Peak:           m.peak,
		PeakPos:        m.peakPos,
		Peak_dB:        ampTodB(m.peak),
		CrestFactor:    crest,
		CrestFactor_dB: crestDB,
		ZeroCrossings:  m.zeroCrossings,
	}
}

// Reset clears the accumulated data.
func (m *Meter) Reset() {
	*m = Meter{}
}

// ampTodB converts an amplitude to decibels. Zero maps to -Inf.
func ampTodB(value float64) float64 {
	a := math.Abs(value)
	if a == 0 {
		return math.Inf(-1)
	}

	return 20 * math.Log10(a)
}
