package delay

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-tube/dsp/core"
)

// ErrInvalidSize indicates a delay line that cannot hold a single sample.
var ErrInvalidSize = errors.New("delay: invalid size")

// Line is a fixed-capacity circular delay line.
//
// Push advances the write position by exactly one; ReadBack(d) addresses
// (write - 1 - d) mod Len(). Capacity is fixed at construction, so Push and
// ReadBack never allocate.
type Line struct {
	buffer   []float64
	writePos int
}

// New returns a delay line holding at least maxDelayMs milliseconds at
// sampleRate, rounded up to whole samples.
func New(sampleRate, maxDelayMs float64) (*Line, error) {
	if sampleRate <= 0 || !core.IsFinite(sampleRate) {
		return nil, fmt.Errorf("%w: sample rate must be > 0 and finite: %f", ErrInvalidSize, sampleRate)
	}

	if maxDelayMs <= 0 || !core.IsFinite(maxDelayMs) {
		return nil, fmt.Errorf("%w: max delay must be > 0 ms: %f", ErrInvalidSize, maxDelayMs)
	}

	return NewSize(int(math.Ceil(maxDelayMs * sampleRate / 1000)))
}

// NewSize returns a delay line of exactly size samples.
func NewSize(size int) (*Line, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}

	return &Line{buffer: make([]float64, size)}, nil
}

// Len returns the capacity in samples. The largest valid delay is Len()-1.
func (d *Line) Len() int {
	return len(d.buffer)
}

// Push writes one sample and advances the write position.
func (d *Line) Push(sample float64) {
	d.buffer[d.writePos] = sample

	d.writePos++
	if d.writePos >= len(d.buffer) {
		d.writePos = 0
	}
}

// ReadBack returns the sample pushed samplesAgo pushes before the most recent
// one; ReadBack(0) is the last pushed sample. samplesAgo must lie in
// [0, Len()). Builds tagged dspdebug panic on a violation, other builds clamp.
func (d *Line) ReadBack(samplesAgo int) float64 {
	size := len(d.buffer)
	samplesAgo = checkDelay(samplesAgo, size)

	readPos := d.writePos - 1 - samplesAgo
	if readPos < 0 {
		readPos += size
	}

	return d.buffer[readPos]
}

// ReadBackFractional reads a fractional delay with linear interpolation
// between the two neighbouring integer delays. The delay is clamped to
// [0, Len()-1].
func (d *Line) ReadBackFractional(samplesAgo float64) float64 {
	maxDelay := float64(len(d.buffer) - 1)
	samplesAgo = core.Clamp(samplesAgo, 0, maxDelay)

	p := int(samplesAgo)
	frac := samplesAgo - float64(p)

	if frac == 0 {
		return d.ReadBack(p)
	}

	return core.Lerp(d.ReadBack(p), d.ReadBack(p+1), frac)
}

// Reset clears the line.
func (d *Line) Reset() {
	for i := range d.buffer {
		d.buffer[i] = 0
	}

	d.writePos = 0
}
