// Package smooth provides block-rate parameter smoothing.
//
// A [Buffer] turns a control-rate target into a linear per-sample ramp that
// spans exactly one processing block. The ramp length is the block length, not
// a wall-clock time: short blocks ramp quickly, long blocks slowly.
//
//	var s smooth.Buffer
//	s.Reset(1)
//	s.Set(0.5)
//	s.ProcessBuffer(n)
//	for i := range n {
//		y[i] = x[i] * s.Get(i)
//	}
package smooth

// Buffer ramps linearly from the value at the start of a block to the target.
//
// The zero value starts at 0. Buffer tracks its own position: ProcessBuffer
// latches the ramp start and advances Current to the target, so consecutive
// blocks join without a step.
type Buffer struct {
	current float64
	target  float64

	start float64
	delta float64
	n     int
}

// New returns a smoother resting at value.
func New(value float64) *Buffer {
	b := &Buffer{}
	b.Reset(value)

	return b
}

// Reset jumps to value without ramping.
func (b *Buffer) Reset(value float64) {
	b.current = value
	b.target = value
	b.start = value
	b.delta = 0
	b.n = 0
}

// Set stores a new target. The output does not change until the next
// ProcessBuffer call.
func (b *Buffer) Set(target float64) {
	b.target = target
}

// ProcessBuffer prepares a ramp of n samples from the current value toward
// the target. After this call Current reports the target.
func (b *Buffer) ProcessBuffer(n int) {
	b.start = b.current
	b.delta = b.target - b.start
	b.n = n
	b.current = b.target
}

// Get returns the ramp value for sample i of the prepared block, i in [0, n).
// The last sample of the block returns the target exactly.
func (b *Buffer) Get(i int) float64 {
	if b.n <= 1 || i >= b.n-1 {
		return b.current
	}

	if i <= 0 {
		return b.start
	}

	return b.start + b.delta*float64(i)/float64(b.n-1)
}

// Fill writes the prepared ramp into dst; len(dst) should match the length
// passed to ProcessBuffer.
func (b *Buffer) Fill(dst []float64) {
	for i := range dst {
		dst[i] = b.Get(i)
	}
}

// Current returns the value the next block starts from.
func (b *Buffer) Current() float64 { return b.current }

// Target returns the most recent target.
func (b *Buffer) Target() float64 { return b.target }

// Smoothing reports whether the prepared block is a non-constant ramp.
func (b *Buffer) Smoothing() bool { return b.n > 1 && b.delta != 0 }
