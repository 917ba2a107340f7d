package oversample

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-tube/dsp/window"
)

const (
	// Factor is the oversampling ratio.
	Factor = 2
	// KernelLength is the prototype length in taps at the oversampled rate.
	// It must be even for the round-trip delay to be a whole base-rate sample.
	KernelLength = 48
	// TapsPerPhase is the upsampler branch length.
	TapsPerPhase = KernelLength / Factor
	// Latency is the round-trip delay in base-rate samples.
	Latency = (KernelLength - 2) / 2

	// cutoffScale pulls the cutoff slightly below the base-rate Nyquist.
	cutoffScale = 0.95
	// kaiserBeta trades transition width for ~75 dB stopband rejection.
	kaiserBeta = 7.0
)

// ErrInvalidKernel indicates an unusable kernel design request.
var ErrInvalidKernel = errors.New("oversample: invalid kernel")

// DesignKernel returns a unity-DC-gain lowpass prototype of length taps with
// normalized cutoff (0.25 * cutoff) cycles per oversampled sample, windowed by
// a Kaiser window with the given beta.
func DesignKernel(length int, cutoff, beta float64) ([]float64, error) {
	if length <= 0 {
		return nil, fmt.Errorf("%w: length must be > 0: %d", ErrInvalidKernel, length)
	}

	if cutoff <= 0 || cutoff > 1 || math.IsNaN(cutoff) {
		return nil, fmt.Errorf("%w: cutoff must be in (0,1]: %f", ErrInvalidKernel, cutoff)
	}

	fc := 0.5 / Factor * cutoff
	center := 0.5 * float64(length-1)

	taps := make([]float64, length)
	for n := range taps {
		t := float64(n) - center
		taps[n] = 2 * fc * sinc(2*fc*t)
	}

	win, err := window.Kaiser(length, beta)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidKernel, err)
	}

	err = window.ApplyInPlace(taps, win)
	if err != nil {
		return nil, err
	}

	var sum float64
	for _, v := range taps {
		sum += v
	}

	if sum == 0 {
		return nil, fmt.Errorf("%w: designed zero-sum filter", ErrInvalidKernel)
	}

	vecmath.ScaleBlock(taps, taps, 1/sum)

	return taps, nil
}

// Kernel returns the prototype shared by Upsampler and Downsampler.
func Kernel() []float64 {
	taps, err := DesignKernel(KernelLength, cutoffScale, kaiserBeta)
	if err != nil {
		// The constants above are valid by construction.
		panic(err)
	}

	return taps
}

func sinc(x float64) float64 {
	if math.Abs(x) < 1e-12 {
		return 1
	}

	pix := math.Pi * x

	return math.Sin(pix) / pix
}
