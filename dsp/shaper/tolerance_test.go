//go:build !fastmath

package shaper

// tanhTolerance bounds the difference between SoftClip and math.Tanh.
const tanhTolerance = 1e-15
