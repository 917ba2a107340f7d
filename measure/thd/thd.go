// Package thd measures harmonic distortion and aliasing of a steady sine
// response.
//
// The signal is Kaiser-windowed and transformed with algo-fft. Harmonics at
// or below Nyquist count toward THD; harmonics above Nyquist are looked up at
// the bin they fold back to and reported separately as aliasing. Both are
// root-sum-square amplitudes relative to the fundamental.
package thd

import (
	"errors"
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-tube/dsp/window"
)

const (
	defaultMaxHarmonics = 11
	defaultKaiserBeta   = 12.0
	// defaultCaptureBins covers the main lobe of the default window.
	defaultCaptureBins = 5
)

// ErrInvalidConfig indicates an unusable analysis configuration.
var ErrInvalidConfig = errors.New("thd: invalid config")

// Config holds analysis parameters. SampleRate, FFTSize and FundamentalFreq
// are required; FFTSize must be a power of two.
type Config struct {
	SampleRate      float64
	FFTSize         int
	FundamentalFreq float64
	MaxHarmonics    int
	CaptureBins     int
	KaiserBeta      float64
}

// Result holds distortion metrics. Ratios are relative to the fundamental.
//
//nolint:revive
type Result struct {
	FundamentalFreq  float64
	FundamentalLevel float64
	THD              float64
	THD_dB           float64
	OddHD            float64
	EvenHD           float64
	Aliasing         float64
	Aliasing_dB      float64
	// Harmonics holds the level of harmonic k+2 below Nyquist at index k.
	Harmonics []float64
}

// Calculator analyzes signals of one fixed length. It reuses its FFT plan and
// buffers across calls.
type Calculator struct {
	cfg  Config
	plan *algofft.Plan[complex128]
	win  []float64

	in, out        []complex128
	re, im         []float64
	magSq          []float64
	fundamentalBin int
}

// NewCalculator validates cfg and prepares the transform.
func NewCalculator(cfg Config) (*Calculator, error) {
	cfg = normalizeConfig(cfg)

	if cfg.SampleRate <= 0 || math.IsNaN(cfg.SampleRate) {
		return nil, fmt.Errorf("%w: sample rate %f", ErrInvalidConfig, cfg.SampleRate)
	}

	if cfg.FFTSize < 16 || cfg.FFTSize&(cfg.FFTSize-1) != 0 {
		return nil, fmt.Errorf("%w: fft size %d must be a power of two >= 16", ErrInvalidConfig, cfg.FFTSize)
	}

	binHz := cfg.SampleRate / float64(cfg.FFTSize)

	fundamental := int(math.Round(cfg.FundamentalFreq / binHz))
	if fundamental <= cfg.CaptureBins || fundamental >= cfg.FFTSize/2-cfg.CaptureBins {
		return nil, fmt.Errorf("%w: fundamental %f Hz outside analysable range", ErrInvalidConfig, cfg.FundamentalFreq)
	}

	win, err := window.Kaiser(cfg.FFTSize, cfg.KaiserBeta)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	plan, err := algofft.NewPlan64(cfg.FFTSize)
	if err != nil {
		return nil, err
	}

	bins := cfg.FFTSize/2 + 1

	return &Calculator{
		cfg:            cfg,
		plan:           plan,
		win:            win,
		in:             make([]complex128, cfg.FFTSize),
		out:            make([]complex128, cfg.FFTSize),
		re:             make([]float64, bins),
		im:             make([]float64, bins),
		magSq:          make([]float64, bins),
		fundamentalBin: fundamental,
	}, nil
}

// AnalyzeSignal is a one-shot analysis of the first cfg.FFTSize samples of
// signal.
func AnalyzeSignal(signal []float64, cfg Config) (Result, error) {
	c, err := NewCalculator(cfg)
	if err != nil {
		return Result{}, err
	}

	return c.AnalyzeSignal(signal)
}

// AnalyzeSignal windows and transforms the first FFTSize samples of signal.
// Shorter signals are zero padded.
func (c *Calculator) AnalyzeSignal(signal []float64) (Result, error) {
	n := min(len(signal), c.cfg.FFTSize)

	clear(c.in)

	for i := range n {
		c.in[i] = complex(signal[i]*c.win[i], 0)
	}

	if err := c.plan.Forward(c.out, c.in); err != nil {
		return Result{}, err
	}

	for k := range c.re {
		c.re[k] = real(c.out[k])
		c.im[k] = imag(c.out[k])
	}

	vecmath.Power(c.magSq, c.re, c.im)

	return c.CalculateFromMagnitude(c.magSq), nil
}

// CalculateFromMagnitude computes metrics from a squared-magnitude spectrum
// holding the bins 0..FFTSize/2.
func (c *Calculator) CalculateFromMagnitude(magSquared []float64) Result {
	cfg := c.cfg
	size := 2 * (len(magSquared) - 1)
	binHz := cfg.SampleRate / float64(size)

	fundamental := c.fundamentalBin
	if size != cfg.FFTSize {
		fundamental = int(math.Round(cfg.FundamentalFreq / binHz))
	}

	res := Result{FundamentalFreq: float64(fundamental) * binHz}

	level := binLevel(magSquared, fundamental, cfg.CaptureBins)
	if level <= 0 {
		return res
	}

	res.FundamentalLevel = level

	var thdSq, oddSq, evenSq, aliasSq float64

	for k := 2; k <= cfg.MaxHarmonics; k++ {
		bin := k * fundamental
		v := binLevel(magSquared, foldBin(bin, size), cfg.CaptureBins) / level

		if bin > size/2 {
			aliasSq += v * v
			continue
		}

		res.Harmonics = append(res.Harmonics, v)

		thdSq += v * v
		if k%2 == 0 {
			evenSq += v * v
		} else {
			oddSq += v * v
		}
	}

	res.THD = math.Sqrt(thdSq)
	res.OddHD = math.Sqrt(oddSq)
	res.EvenHD = math.Sqrt(evenSq)
	res.Aliasing = math.Sqrt(aliasSq)
	res.THD_dB = ratioToDB(res.THD)
	res.Aliasing_dB = ratioToDB(res.Aliasing)

	return res
}

func normalizeConfig(cfg Config) Config {
	if cfg.MaxHarmonics <= 0 {
		cfg.MaxHarmonics = defaultMaxHarmonics
	}

	if cfg.KaiserBeta <= 0 {
		cfg.KaiserBeta = defaultKaiserBeta
	}

	if cfg.CaptureBins <= 0 {
		cfg.CaptureBins = defaultCaptureBins
	}

	return cfg
}

// foldBin maps a bin of an unbounded spectrum to 0..size/2 the way sampling
// aliases it.
func foldBin(bin, size int) int {
	bin %= size
	if bin > size/2 {
		return size - bin
	}

	return bin
}

// binLevel sums the magnitudes of bin and its captureBins neighbours.
func binLevel(magSquared []float64, bin, captureBins int) float64 {
	lo := max(bin-captureBins, 0)
	hi := min(bin+captureBins, len(magSquared)-1)

	sum := 0.0
	for i := lo; i <= hi; i++ {
		sum += sqrtPositive(magSquared[i])
	}

	return sum
}

func sqrtPositive(v float64) float64 {
	if v <= 0 {
		return 0
	}

	return math.Sqrt(v)
}

func ratioToDB(v float64) float64 {
	if v <= 0 {
		return math.Inf(-1)
	}

	return 20 * math.Log10(v)
}
