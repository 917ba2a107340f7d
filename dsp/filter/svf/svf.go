// Package svf provides a two-pole topology-preserving state variable filter.
//
// The structure is the trapezoidal-integrated (zero-delay feedback) SVF:
// frequency is prewarped with tan(pi*f/fs), damping is k = 1/Q, and the
// lowpass/highpass outputs come from the same two integrator states. The
// lowpass has an exact zero at Nyquist and the highpass an exact zero at DC.
//
// Coefficients are computed in SetLowpass/SetHighpass only; ProcessSample is
// a handful of multiply-adds.
package svf

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-tube/dsp/core"
)

// Mode selects the filter output.
type Mode int

const (
	// ModeBypass passes the input through. It is the mode of a new filter.
	ModeBypass Mode = iota
	// ModeLowpass selects the two-pole lowpass output.
	ModeLowpass
	// ModeHighpass selects the two-pole highpass output.
	ModeHighpass
)

const (
	minQ          = 0.025
	maxCutoffNorm = 0.49
	minCutoffNorm = 1e-7
)

// Filter is a mono state variable filter.
type Filter struct {
	sampleRate float64
	mode       Mode
	freq       float64
	q          float64

	g, k       float64
	a1, a2, a3 float64

	ic1eq, ic2eq float64
}

// New returns a filter for sampleRate in ModeBypass.
func New(sampleRate float64) (*Filter, error) {
	if sampleRate <= 0 || !core.IsFinite(sampleRate) {
		return nil, fmt.Errorf("svf sample rate must be > 0 and finite: %f", sampleRate)
	}

	return &Filter{sampleRate: sampleRate, mode: ModeBypass}, nil
}

// SetLowpass configures a lowpass at freqHz with resonance q.
func (f *Filter) SetLowpass(freqHz, q float64) {
	f.configure(ModeLowpass, freqHz, q)
}

// SetHighpass configures a highpass at freqHz with resonance q.
func (f *Filter) SetHighpass(freqHz, q float64) {
	f.configure(ModeHighpass, freqHz, q)
}

// ProcessSample filters one sample.
func (f *Filter) ProcessSample(x float64) float64 {
	if f.mode == ModeBypass {
		return x
	}

	v3 := x - f.ic2eq
	v1 := f.a1*f.ic1eq + f.a2*v3
	v2 := f.ic2eq + f.a2*f.ic1eq + f.a3*v3

	f.ic1eq = core.FlushDenormals(2*v1 - f.ic1eq)
	f.ic2eq = core.FlushDenormals(2*v2 - f.ic2eq)

	if f.mode == ModeHighpass {
		return x - f.k*v1 - v2
	}

	return v2
}

// ProcessBlock filters buf in place.
func (f *Filter) ProcessBlock(buf []float64) {
	for i, x := range buf {
		buf[i] = f.ProcessSample(x)
	}
}

// Reset clears the integrator state; coefficients are kept.
func (f *Filter) Reset() {
	f.ic1eq = 0
	f.ic2eq = 0
}

// Mode returns the active output mode.
func (f *Filter) Mode() Mode { return f.mode }

// Frequency returns the cutoff in Hz.
func (f *Filter) Frequency() float64 { return f.freq }

// Q returns the resonance.
func (f *Filter) Q() float64 { return f.q }

// SampleRate returns the sample rate in Hz.
func (f *Filter) SampleRate() float64 { return f.sampleRate }

func (f *Filter) configure(mode Mode, freqHz, q float64) {
	if !core.IsFinite(freqHz) || !core.IsFinite(q) {
		return
	}

	f.mode = mode
	f.freq = freqHz
	f.q = math.Max(q, minQ)

	norm := core.Clamp(freqHz/f.sampleRate, minCutoffNorm, maxCutoffNorm)

	f.g = math.Tan(math.Pi * norm)
	f.k = 1 / f.q
	f.a1 = 1 / (1 + f.g*(f.g+f.k))
	f.a2 = f.g * f.a1
	f.a3 = f.g * f.a2
}
