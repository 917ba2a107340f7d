package oversample

import (
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

const (
	// PassbandEdge and StopbandEdge are in cycles per oversampled sample,
	// i.e. 0.4 and 0.6 times the base sample rate.
	PassbandEdge = 0.2
	StopbandEdge = 0.3

	// DefaultAnalysisSize is the FFT length used by Report.
	DefaultAnalysisSize = 4096
)

// Report summarises the frequency response of a kernel.
type Report struct {
	Taps    int
	Latency int
	FFTSize int

	// DCGain is the linear gain at 0 Hz.
	DCGain float64
	// PassbandRippleDB is the largest deviation from 0 dB below PassbandEdge.
	PassbandRippleDB float64
	// StopbandAttenuationDB is the smallest rejection above StopbandEdge,
	// as a positive number.
	StopbandAttenuationDB float64
}

// String formats r on one line.
func (r Report) String() string {
	return fmt.Sprintf("taps=%d latency=%d ripple=%.4f dB stopband=%.1f dB",
		r.Taps, r.Latency, r.PassbandRippleDB, r.StopbandAttenuationDB)
}

// MagnitudeResponse returns |H| of taps at fftSize/2+1 evenly spaced
// frequencies from 0 to Nyquist. fftSize must be a power of two no smaller
// than len(taps).
func MagnitudeResponse(taps []float64, fftSize int) ([]float64, error) {
	if len(taps) == 0 {
		return nil, fmt.Errorf("%w: empty kernel", ErrInvalidKernel)
	}

	if fftSize < len(taps) || fftSize&(fftSize-1) != 0 {
		return nil, fmt.Errorf("%w: fft size %d must be a power of two >= %d",
			ErrInvalidKernel, fftSize, len(taps))
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, err
	}

	in := make([]complex128, fftSize)
	for i, v := range taps {
		in[i] = complex(v, 0)
	}

	out := make([]complex128, fftSize)

	err = plan.Forward(out, in)
	if err != nil {
		return nil, err
	}

	bins := fftSize/2 + 1
	re := make([]float64, bins)
	im := make([]float64, bins)

	for k := range bins {
		re[k] = real(out[k])
		im[k] = imag(out[k])
	}

	mag := make([]float64, bins)
	vecmath.Magnitude(mag, re, im)

	return mag, nil
}

// Analyze measures taps with an fftSize-point transform.
func Analyze(taps []float64, fftSize int) (Report, error) {
	mag, err := MagnitudeResponse(taps, fftSize)
	if err != nil {
		return Report{}, err
	}

	r := Report{
		Taps:    len(taps),
		Latency: (len(taps) - 2) / 2,
		FFTSize: fftSize,
		DCGain:  mag[0],
	}

	stopPeak := 0.0

	for k, m := range mag {
		f := float64(k) / float64(fftSize)
		switch {
		case f <= PassbandEdge:
			dev := math.Abs(20 * math.Log10(math.Max(m, 1e-300)))
			r.PassbandRippleDB = math.Max(r.PassbandRippleDB, dev)
		case f >= StopbandEdge:
			stopPeak = math.Max(stopPeak, m)
		}
	}

	r.StopbandAttenuationDB = -20 * math.Log10(math.Max(stopPeak, 1e-300))

	return r, nil
}

// KernelReport analyses the shared prototype.
func KernelReport() (Report, error) {
	return Analyze(Kernel(), DefaultAnalysisSize)
}
