package tube

import (
	"io"

	"github.com/sirupsen/logrus"

	"github.com/cwbudde/algo-tube/dsp/core"
)

// Option configures an Engine at construction.
type Option func(*config)

type config struct {
	core.ProcessorConfig

	oversampling bool
	params       Params
	logger       logrus.FieldLogger
}

func defaultConfig(sampleRate float64) config {
	return config{
		ProcessorConfig: core.ApplyProcessorOptions(core.WithSampleRate(sampleRate)),
		oversampling:    true,
		params:          DefaultParams(),
	}
}

// WithOversampling enables or disables the 2x oversampled wet path. When
// disabled, the chain runs at the base rate without resampling or dry delay
// and Latency is 0. Enabled by default.
func WithOversampling(enabled bool) Option {
	return func(c *config) {
		c.oversampling = enabled
	}
}

// WithParams sets the initial parameter snapshot. Values are clamped.
func WithParams(p Params) Option {
	return func(c *config) {
		c.params = p.Clamped()
	}
}

// WithLogger sets the diagnostic sink for construction-time messages.
// Processing never logs.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// WithMaxBlockSize sets the largest chunk passed to per-channel processing.
// Defaults to core.DefaultMaxBlockSize.
func WithMaxBlockSize(n int) Option {
	return func(c *config) {
		core.WithMaxBlockSize(n)(&c.ProcessorConfig)
	}
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)

	return l
}
