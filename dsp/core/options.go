package core

import (
	"errors"
	"fmt"
)

// DefaultMaxBlockSize is the largest block handed to per-channel processing
// in one call. Work buffers are sized from it.
const DefaultMaxBlockSize = 64

var (
	// ErrInvalidSampleRate reports a non-positive or non-finite sample rate.
	ErrInvalidSampleRate = errors.New("core: invalid sample rate")
	// ErrInvalidBlockSize reports a non-positive block size.
	ErrInvalidBlockSize = errors.New("core: invalid block size")
)

// ProcessorConfig defines common realtime processing settings.
type ProcessorConfig struct {
	SampleRate   float64
	MaxBlockSize int
}

// ProcessorOption mutates a ProcessorConfig.
type ProcessorOption func(*ProcessorConfig)

// DefaultProcessorConfig returns 48 kHz with DefaultMaxBlockSize.
func DefaultProcessorConfig() ProcessorConfig {
	return ProcessorConfig{
		SampleRate:   48000,
		MaxBlockSize: DefaultMaxBlockSize,
	}
}

// WithSampleRate sets the processing sample rate.
func WithSampleRate(sampleRate float64) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		cfg.SampleRate = sampleRate
	}
}

// WithMaxBlockSize sets the processing chunk length.
func WithMaxBlockSize(blockSize int) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		cfg.MaxBlockSize = blockSize
	}
}

// ApplyProcessorOptions applies zero or more options to the default config.
func ApplyProcessorOptions(opts ...ProcessorOption) ProcessorConfig {
	cfg := DefaultProcessorConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// Validate reports the first invalid setting.
func (cfg ProcessorConfig) Validate() error {
	if cfg.SampleRate <= 0 || !IsFinite(cfg.SampleRate) {
		return fmt.Errorf("%w: %f", ErrInvalidSampleRate, cfg.SampleRate)
	}

	if cfg.MaxBlockSize <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidBlockSize, cfg.MaxBlockSize)
	}

	return nil
}
