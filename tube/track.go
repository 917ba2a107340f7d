package tube

import (
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-tube/dsp/core"
	"github.com/cwbudde/algo-tube/dsp/delay"
	"github.com/cwbudde/algo-tube/dsp/filter/svf"
	"github.com/cwbudde/algo-tube/dsp/filter/tilt"
	"github.com/cwbudde/algo-tube/dsp/oversample"
	"github.com/cwbudde/algo-tube/dsp/shaper"
	"github.com/cwbudde/algo-tube/dsp/smooth"
)

const (
	// Tilt around the nonlinearity: pre boosts treble, post undoes it.
	tiltFreq   = 700.0
	tiltGainDB = 6.0

	// Detector input conditioning.
	conditionFreq = 80.0
	conditionQ    = 0.707

	// Envelope smoothing before it moves the bias.
	envelopeFreq = 15.0
	envelopeQ    = 0.5

	// Output DC blocker.
	dcBlockFreq = 20.0
	dcBlockQ    = 0.707

	releaseMs = 40.0

	// Positive drive is compensated by this fraction of its dB value.
	driveCompensation = 0.75
)

// Track is the processing chain of one channel. It owns all of its filter,
// envelope, resampler and delay state; tracks never share mutable state.
type Track struct {
	oversampling bool
	rate         float64

	up   *oversample.Upsampler
	down *oversample.Downsampler
	dry  *delay.Line

	gainIn  *smooth.Buffer
	gainOut *smooth.Buffer
	balance *smooth.Buffer

	condition *svf.Filter
	envelope  *svf.Filter
	dcBlock   *svf.Filter
	tiltPre   *tilt.Filter
	tiltPost  *tilt.Filter

	release float64
	peak    float64

	// Work buffers, preallocated for maxBlock base-rate samples.
	work    []float64
	gains   []float64
	wet     []float64
	dryBuf  []float64
	mixBuf  []float64
	maxSize int
}

// NewTrack returns a track for sampleRate that accepts blocks of up to
// maxBlock samples, starting at params without a ramp.
func NewTrack(sampleRate float64, maxBlock int, oversampling bool, params Params) (*Track, error) {
	cfg := core.ApplyProcessorOptions(core.WithSampleRate(sampleRate), core.WithMaxBlockSize(maxBlock))
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	t := &Track{
		oversampling: oversampling,
		rate:         sampleRate,
		maxSize:      maxBlock,
	}

	workLen := maxBlock
	if oversampling {
		t.rate = sampleRate * oversample.Factor
		workLen = maxBlock * oversample.Factor

		t.up = oversample.NewUpsampler()
		t.down = oversample.NewDownsampler()

		dry, err := delay.New(sampleRate, dryDelayMs(sampleRate))
		if err != nil {
			return nil, err
		}

		t.dry = dry
	}

	var err error
	if t.condition, err = svf.New(t.rate); err != nil {
		return nil, err
	}

	if t.envelope, err = svf.New(t.rate); err != nil {
		return nil, err
	}

	if t.dcBlock, err = svf.New(t.rate); err != nil {
		return nil, err
	}

	if t.tiltPre, err = tilt.New(t.rate); err != nil {
		return nil, err
	}

	if t.tiltPost, err = tilt.New(t.rate); err != nil {
		return nil, err
	}

	t.condition.SetHighpass(conditionFreq, conditionQ)
	t.envelope.SetLowpass(envelopeFreq, envelopeQ)
	t.dcBlock.SetHighpass(dcBlockFreq, dcBlockQ)
	t.tiltPre.SetTilt(tiltFreq, tiltGainDB)
	t.tiltPost.SetTilt(tiltFreq, -tiltGainDB)
	t.release = core.TimeConstant(releaseMs, t.rate)

	in, out := driveGains(params)
	t.gainIn = smooth.New(in)
	t.gainOut = smooth.New(out)
	t.balance = smooth.New(params.Balance)

	t.work = make([]float64, workLen)
	t.gains = make([]float64, workLen)
	t.wet = make([]float64, maxBlock)
	t.dryBuf = make([]float64, maxBlock)
	t.mixBuf = make([]float64, maxBlock)

	return t, nil
}

// SetParams retargets the smoothers. The new values are reached at the end
// of the next Process call.
func (t *Track) SetParams(p Params) {
	in, out := driveGains(p)
	t.gainIn.Set(in)
	t.gainOut.Set(out)
	t.balance.Set(p.Balance)
}

// Process runs the chain over buf in place. len(buf) must not exceed the
// block size given to NewTrack.
func (t *Track) Process(buf []float64) {
	n := len(buf)
	if n == 0 {
		return
	}

	m := n
	if t.oversampling {
		m = n * oversample.Factor
	}

	work := t.work[:m]
	if t.oversampling {
		t.up.ProcessBlock(work, buf)
	} else {
		core.CopyInto(work, buf)
	}

	gains := t.gains[:m]

	t.gainIn.ProcessBuffer(m)
	t.gainIn.Fill(gains)
	vecmath.MulBlockInPlace(work, gains)

	for i, s := range work {
		work[i] = t.shape(s)
	}

	t.gainOut.ProcessBuffer(m)
	t.gainOut.Fill(gains)
	vecmath.MulBlockInPlace(work, gains)

	wet := t.wet[:n]
	dry := t.dryBuf[:n]

	if t.oversampling {
		t.down.ProcessBlock(wet, work)

		for i, x := range buf {
			t.dry.Push(x)
			dry[i] = t.dry.ReadBack(oversample.Latency)
		}
	} else {
		core.CopyInto(wet, work)
		core.CopyInto(dry, buf)
	}

	mix := t.mixBuf[:n]
	t.balance.ProcessBuffer(n)
	t.balance.Fill(mix)

	// buf = dry + (wet - dry) * mix
	vecmath.ScaleBlock(buf, dry, -1)
	vecmath.AddBlockInPlace(buf, wet)
	vecmath.MulBlockInPlace(buf, mix)
	vecmath.AddBlockInPlace(buf, dry)
}

// shape runs one sample at the processing rate through detector, tilt and
// waveshaper.
func (t *Track) shape(s float64) float64 {
	detected := math.Abs(t.condition.ProcessSample(s))
	if detected > t.peak {
		t.peak = detected
	} else {
		t.peak = core.FlushDenormals(t.peak - (t.peak-detected)*t.release)
	}

	w := t.envelope.ProcessSample(t.peak)

	out := shaper.BiasedTube(t.tiltPre.ProcessSample(s), w)
	out = t.tiltPost.ProcessSample(out)

	return t.dcBlock.ProcessSample(out)
}

// Latency returns the dry/wet alignment delay in base-rate samples.
func (t *Track) Latency() int {
	if t.oversampling {
		return oversample.Latency
	}

	return 0
}

// Envelope returns the current detector peak.
func (t *Track) Envelope() float64 { return t.peak }

// MaxBlockSize returns the largest block Process accepts.
func (t *Track) MaxBlockSize() int { return t.maxSize }

// ProcessingRate returns the rate the nonlinear chain runs at.
func (t *Track) ProcessingRate() float64 { return t.rate }

// driveGains maps drive and output trim to linear input and output gains.
// Positive drive is compensated by 75% of its dB value, negative drive by
// all of it.
func driveGains(p Params) (in, out float64) {
	comp := -p.Gain
	if p.Gain > 0 {
		comp = -p.Gain * driveCompensation
	}

	return core.DBToLinear(p.Gain), core.DBToLinear(comp + p.GainOut)
}

// dryDelayMs is the dry delay capacity that holds oversample.Latency.
func dryDelayMs(sampleRate float64) float64 {
	return float64(oversample.Latency+1) * 1000 / sampleRate
}
