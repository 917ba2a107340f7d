//go:build fastmath

package shaper

const tanhTolerance = 1e-10
