// Package tilt provides a first-order tilt (shelving) filter.
//
// The analog prototype is
//
//	H(s) = (√g·s/w0 + 1) / (s/w0 + √g)
//
// which has gain 1/√g at DC, √g at high frequencies and exactly unity at the
// pivot w0. Positive gain in dB tilts toward the treble, negative toward the
// bass. The filter for -gainDB is the exact inverse of the one for +gainDB,
// also after the bilinear transform, so a pre/post pair leaves linear content
// unchanged.
package tilt

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-tube/dsp/core"
)

// maxPivotRatio keeps the prewarped pivot strictly below Nyquist.
const maxPivotRatio = 0.49

// Filter is a single-pole tilt filter. A filter returned by New is flat
// until SetTilt is called.
type Filter struct {
	sampleRate float64
	freq       float64
	gainDB     float64

	b0, b1, a1 float64

	x1, y1 float64
}

// New returns a flat tilt filter for sampleRate.
func New(sampleRate float64) (*Filter, error) {
	if sampleRate <= 0 || !core.IsFinite(sampleRate) {
		return nil, fmt.Errorf("tilt sample rate must be > 0 and finite: %f", sampleRate)
	}

	f := &Filter{sampleRate: sampleRate}
	f.setIdentity()

	return f, nil
}

// SetTilt configures the pivot frequency in Hz and the total tilt in dB
// between the low and high ends of the spectrum. Coefficients are computed
// here, not per sample. State is kept.
func (f *Filter) SetTilt(freqHz, gainDB float64) {
	f.freq = freqHz
	f.gainDB = gainDB

	if f.sampleRate <= 0 || freqHz <= 0 || !core.IsFinite(freqHz) || !core.IsFinite(gainDB) {
		f.setIdentity()
		return
	}

	ratio := core.Clamp(freqHz/f.sampleRate, 1e-6, maxPivotRatio)
	c := math.Tan(math.Pi * ratio)
	sg := math.Sqrt(core.DBToLinear(gainDB))

	norm := 1 / (1 + sg*c)
	f.b0 = (sg + c) * norm
	f.b1 = (c - sg) * norm
	f.a1 = (sg*c - 1) * norm
}

// ProcessSample filters one sample.
//
//	y[n] = b0*x[n] + b1*x[n-1] - a1*y[n-1]
func (f *Filter) ProcessSample(x float64) float64 {
	y := f.b0*x + f.b1*f.x1 - f.a1*f.y1
	f.x1 = x
	f.y1 = core.FlushDenormals(y)

	return y
}

// ProcessBlock filters buf in place.
func (f *Filter) ProcessBlock(buf []float64) {
	for i, x := range buf {
		buf[i] = f.ProcessSample(x)
	}
}

// Reset clears the filter state.
func (f *Filter) Reset() {
	f.x1 = 0
	f.y1 = 0
}

// Frequency returns the pivot frequency in Hz.
func (f *Filter) Frequency() float64 { return f.freq }

// GainDB returns the configured tilt in dB.
func (f *Filter) GainDB() float64 { return f.gainDB }

// SampleRate returns the sample rate in Hz.
func (f *Filter) SampleRate() float64 { return f.sampleRate }

// Coefficients returns the normalized coefficients b0, b1 and a1.
func (f *Filter) Coefficients() (b0, b1, a1 float64) {
	return f.b0, f.b1, f.a1
}

// MagnitudeDB returns the magnitude response in dB at freqHz.
func (f *Filter) MagnitudeDB(freqHz float64) float64 {
	w := 2 * math.Pi * freqHz / f.sampleRate
	z1 := complex(math.Cos(w), -math.Sin(w))
	h := (complex(f.b0, 0) + complex(f.b1, 0)*z1) / (1 + complex(f.a1, 0)*z1)

	return core.LinearToDB(math.Hypot(real(h), imag(h)))
}

func (f *Filter) setIdentity() {
	f.b0 = 1
	f.b1 = 0
	f.a1 = 0
}
