package tube

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/cwbudde/algo-tube/dsp/core"
	"github.com/cwbudde/algo-tube/dsp/oversample"
	"github.com/cwbudde/algo-tube/internal/cpu"
)

// Engine runs one Track per channel and applies parameter events at their
// sample offsets.
//
// Process, Flush and Reset do not allocate, block or log. An Engine is not
// safe for concurrent use; parameter changes from other goroutines must be
// delivered as events on the audio goroutine.
type Engine struct {
	sampleRate   float64
	maxBlock     int
	oversampling bool

	params Params
	tracks []Track

	ignored uint64
}

// New builds an engine for layout at sampleRate. The layout must contain
// exactly one mono or stereo format.
func New(layout Layout, sampleRate float64, opts ...Option) (*Engine, error) {
	cfg := defaultConfig(sampleRate)
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	log := cfg.logger
	if log == nil {
		log = discardLogger()
	}

	fields := logrus.Fields{
		"function":    "tube.New",
		"sample_rate": sampleRate,
		"formats":     len(layout.Formats),
	}

	channels, err := layout.ChannelCount()
	if err != nil {
		log.WithFields(fields).WithError(err).Error("Engine construction failed")
		return nil, err
	}

	if err = cfg.Validate(); err != nil {
		log.WithFields(fields).WithError(err).Error("Engine construction failed")
		return nil, err
	}

	e := &Engine{
		sampleRate:   cfg.SampleRate,
		maxBlock:     cfg.MaxBlockSize,
		oversampling: cfg.oversampling,
		params:       cfg.params,
		tracks:       make([]Track, channels),
	}

	for ch := range e.tracks {
		tr, err := NewTrack(cfg.SampleRate, cfg.MaxBlockSize, cfg.oversampling, cfg.params)
		if err != nil {
			log.WithFields(fields).WithError(err).Error("Track construction failed")
			return nil, fmt.Errorf("tube: channel %d: %w", ch, err)
		}

		e.tracks[ch] = *tr
	}

	fields["channels"] = channels
	fields["oversampling"] = cfg.oversampling
	fields["latency"] = e.Latency()
	fields["max_block"] = cfg.MaxBlockSize
	fields["simd"] = cpu.DetectFeatures().Best().String()

	if cfg.oversampling {
		report, err := oversample.KernelReport()
		if err != nil {
			log.WithFields(fields).WithError(err).Warn("Oversampling kernel analysis failed")
		} else {
			fields["stopband_db"] = report.StopbandAttenuationDB
			fields["ripple_db"] = report.PassbandRippleDB
		}
	}

	log.WithFields(fields).Info("Tube engine created")

	return e, nil
}

// Process renders buffers in place. buffers must hold one slice per channel,
// all of the same length. events may be in any order; Process sorts them in
// place by offset, keeping the order of events that share an offset.
//
// Each event is applied before the first sample at or after its offset.
// Negative offsets are treated as 0. Offsets at or past the end of the block
// are applied after the last sample and take effect on the next call.
// Events for unknown parameters are ignored and counted.
func (e *Engine) Process(buffers [][]float64, events []Event) error {
	if len(buffers) != len(e.tracks) {
		return ErrChannelMismatch
	}

	n, ok := core.FrameCount(buffers)
	if !ok {
		return ErrBufferLength
	}

	sortEvents(events)

	next := 0
	start := 0

	for {
		for next < len(events) && clampOffset(events[next].Offset, n) <= start {
			e.apply(events[next])
			next++
		}

		if start >= n {
			return nil
		}

		end := n
		if next < len(events) {
			end = clampOffset(events[next].Offset, n)
		}

		for ch := range e.tracks {
			e.tracks[ch].SetParams(e.params)
		}

		e.render(buffers, start, end)
		start = end
	}
}

// Flush applies events without processing audio. Offsets are ignored;
// events apply in slice order.
func (e *Engine) Flush(events []Event) {
	for _, ev := range events {
		e.apply(ev)
	}
}

// Reset does nothing: filter, envelope and delay state is kept and decays
// with the next processed audio.
func (e *Engine) Reset() {}

// Channels returns the number of tracks.
func (e *Engine) Channels() int { return len(e.tracks) }

// SampleRate returns the base sample rate in Hz.
func (e *Engine) SampleRate() float64 { return e.sampleRate }

// Params returns the current parameter snapshot.
func (e *Engine) Params() Params { return e.params }

// Oversampling reports whether the wet path runs at 2x.
func (e *Engine) Oversampling() bool { return e.oversampling }

// MaxBlockSize returns the processing chunk length.
func (e *Engine) MaxBlockSize() int { return e.maxBlock }

// Latency returns the processing delay in base-rate samples.
func (e *Engine) Latency() int {
	if e.oversampling {
		return oversample.Latency
	}

	return 0
}

// IgnoredEvents returns how many events have been dropped for an unknown
// parameter id or a NaN value.
func (e *Engine) IgnoredEvents() uint64 { return e.ignored }

func (e *Engine) apply(ev Event) {
	if !e.params.Set(ev.ID, ev.Value) {
		e.ignored++
	}
}

// render processes frames [start, end) in chunks of at most maxBlock.
func (e *Engine) render(buffers [][]float64, start, end int) {
	for pos := start; pos < end; pos += e.maxBlock {
		stop := min(pos+e.maxBlock, end)

		for ch := range e.tracks {
			e.tracks[ch].Process(buffers[ch][pos:stop])
		}
	}
}
