// Command tubeinfo prints the parameter table and the oversampling filter
// properties of the tube engine.
//
// Usage:
//
//	tubeinfo [flags]
//
// Examples:
//
//	tubeinfo
//	tubeinfo -rate 44100 -response 16
//	tubeinfo -params
//	tubeinfo -v -channels 1
//	tubeinfo -distortion -gain 12 -tone 7000
package main

import (
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"text/tabwriter"

	"github.com/sirupsen/logrus"

	"github.com/cwbudde/algo-tube/dsp/oversample"
	"github.com/cwbudde/algo-tube/internal/cpu"
	"github.com/cwbudde/algo-tube/measure/thd"
	timestats "github.com/cwbudde/algo-tube/stats/time"
	"github.com/cwbudde/algo-tube/tube"
)

type options struct {
	rate         float64
	channels     int
	fftSize      int
	points       int
	paramsOnly   bool
	oversampling bool
	verbose      bool
	distortion   bool
	gainDB       float64
	toneHz       float64
}

func main() {
	var opts options

	flag.Float64Var(&opts.rate, "rate", 48000, "base sample rate in Hz")
	flag.IntVar(&opts.channels, "channels", 2, "channel count (1 or 2)")
	flag.IntVar(&opts.fftSize, "fft", oversample.DefaultAnalysisSize, "FFT size for the kernel analysis (power of two)")
	flag.IntVar(&opts.points, "response", 0, "print the kernel magnitude at this many frequencies")
	flag.BoolVar(&opts.paramsOnly, "params", false, "print only the parameter table")
	flag.BoolVar(&opts.oversampling, "oversampling", true, "build the engine with 2x oversampling")
	flag.BoolVar(&opts.verbose, "v", false, "log engine construction to stderr")
	flag.BoolVar(&opts.distortion, "distortion", false, "measure harmonics and aliasing with and without oversampling")
	flag.Float64Var(&opts.gainDB, "gain", 12, "drive in dB for -distortion")
	flag.Float64Var(&opts.toneHz, "tone", 1000, "test tone in Hz for -distortion")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: tubeinfo [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Prints the tube parameter table and oversampling filter report.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if err := run(os.Stdout, opts); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(w io.Writer, opts options) error {
	if err := printParams(w); err != nil {
		return err
	}

	if opts.paramsOnly {
		return nil
	}

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	if opts.verbose {
		logger.SetOutput(os.Stderr)
		logger.SetLevel(logrus.DebugLevel)
	}

	format := tube.FormatStereo
	if opts.channels == 1 {
		format = tube.FormatMono
	} else if opts.channels != 2 {
		return fmt.Errorf("unsupported channel count %d", opts.channels)
	}

	engine, err := tube.New(tube.Layout{Formats: []tube.Format{format}}, opts.rate,
		tube.WithOversampling(opts.oversampling),
		tube.WithLogger(logger),
	)
	if err != nil {
		return err
	}

	if err := printEngine(w, engine); err != nil {
		return err
	}

	if opts.distortion {
		if err := printDistortion(w, opts.rate, opts.gainDB, opts.toneHz); err != nil {
			return err
		}
	}

	if !engine.Oversampling() {
		return nil
	}

	if err := printKernel(w, opts.rate, opts.fftSize); err != nil {
		return err
	}

	if opts.points > 0 {
		return printResponse(w, opts.rate, opts.fftSize, opts.points)
	}

	return nil
}

func printParams(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "ID\tName\tMin\tMax\tDefault\n")
	fmt.Fprintf(tw, "--\t----\t---\t---\t-------\n")

	for _, p := range tube.ParamInfos() {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", p.ID, p.Name, p.Format(p.Min), p.Format(p.Max), p.Format(p.Default))
	}

	fmt.Fprintln(tw)

	return tw.Flush()
}

func printEngine(w io.Writer, e *tube.Engine) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Channels\t%d\n", e.Channels())
	fmt.Fprintf(tw, "Sample rate\t%.0f Hz\n", e.SampleRate())
	fmt.Fprintf(tw, "Oversampling\t%v\n", e.Oversampling())
	fmt.Fprintf(tw, "Latency\t%d samples (%.3f ms)\n", e.Latency(), float64(e.Latency())*1000/e.SampleRate())
	fmt.Fprintf(tw, "Max block\t%d\n", e.MaxBlockSize())
	fmt.Fprintf(tw, "SIMD\t%s\n", cpu.DetectFeatures())
	fmt.Fprintln(tw)

	return tw.Flush()
}

func printKernel(w io.Writer, rate float64, fftSize int) error {
	r, err := oversample.Analyze(oversample.Kernel(), fftSize)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Kernel taps\t%d\n", r.Taps)
	fmt.Fprintf(tw, "Passband\t0 - %.0f Hz\n", oversample.PassbandEdge*oversample.Factor*rate)
	fmt.Fprintf(tw, "Stopband\t%.0f Hz -\n", oversample.StopbandEdge*oversample.Factor*rate)
	fmt.Fprintf(tw, "Passband ripple\t%.4f dB\n", r.PassbandRippleDB)
	fmt.Fprintf(tw, "Stopband attenuation\t%.1f dB\n", r.StopbandAttenuationDB)
	fmt.Fprintln(tw)

	return tw.Flush()
}

func printResponse(w io.Writer, rate float64, fftSize, points int) error {
	mag, err := oversample.MagnitudeResponse(oversample.Kernel(), fftSize)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Frequency [Hz]\tMagnitude [dB]\n")

	last := len(mag) - 1
	for i := range points {
		k := last
		if points > 1 {
			k = i * last / (points - 1)
		}

		freq := float64(k) / float64(fftSize) * oversample.Factor * rate
		fmt.Fprintf(tw, "%.0f\t%.2f\n", freq, 20*math.Log10(math.Max(mag[k], 1e-12)))
	}

	return tw.Flush()
}

const (
	analysisSize = 8192
	settleFrames = 8192
	meterBlock   = 1024
)

func printDistortion(w io.Writer, rate, gainDB, toneHz float64) error {
	// Snap the tone to a bin centre so harmonics land on bins too.
	bin := math.Round(toneHz * analysisSize / rate)
	f0 := bin * rate / analysisSize

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Path\tTone [Hz]\tTHD [%%]\tEven [%%]\tOdd [%%]\tAliasing [dB]\tRMS [dB]\tCrest [dB]\n")

	for _, oversampling := range []bool{false, true} {
		res, level, err := measureTone(rate, f0, gainDB, oversampling)
		if err != nil {
			return err
		}

		path := "1x"
		if oversampling {
			path = "2x"
		}

		fmt.Fprintf(tw, "%s\t%.1f\t%.3f\t%.3f\t%.3f\t%.1f\t%.2f\t%.2f\n",
			path, res.FundamentalFreq, res.THD*100, res.EvenHD*100, res.OddHD*100, res.Aliasing_dB,
			level.RMS_dB, level.CrestFactor_dB)
	}

	fmt.Fprintln(tw)

	return tw.Flush()
}

// measureTone renders a 0.5 amplitude tone through a mono engine in
// meterBlock chunks and analyses the settled part.
func measureTone(rate, f0, gainDB float64, oversampling bool) (thd.Result, timestats.Stats, error) {
	engine, err := tube.New(tube.Layout{Formats: []tube.Format{tube.FormatMono}}, rate,
		tube.WithOversampling(oversampling),
		tube.WithParams(tube.Params{Balance: 1, Gain: gainDB}),
	)
	if err != nil {
		return thd.Result{}, timestats.Stats{}, err
	}

	signal := make([]float64, settleFrames+analysisSize)
	for i := range signal {
		signal[i] = 0.5 * math.Sin(2*math.Pi*f0*float64(i)/rate)
	}

	var meter timestats.Meter

	for start := 0; start < len(signal); start += meterBlock {
		block := signal[start:min(start+meterBlock, len(signal))]
		if err := engine.Process([][]float64{block}, nil); err != nil {
			return thd.Result{}, timestats.Stats{}, err
		}

		if start >= settleFrames {
			meter.Update(block)
		}
	}

	res, err := thd.AnalyzeSignal(signal[settleFrames:], thd.Config{
		SampleRate:      rate,
		FFTSize:         analysisSize,
		FundamentalFreq: f0,
	})

	return res, meter.Result(), err
}
