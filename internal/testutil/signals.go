// Package testutil holds deterministic signal generators and assertion
// helpers shared by the package tests.
package testutil

import (
	"math"
	"math/rand"
)

// DeterministicSine returns length samples of amplitude*sin(2*pi*f*n/fs).
func DeterministicSine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)

	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}

	return out
}

// DeterministicNoise returns uniform noise in [-amplitude, amplitude) drawn
// from a fixed seed.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)

	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}

	return out
}

// Impulse returns a unit impulse at pos. Out-of-range positions give silence.
func Impulse(length, pos int) []float64 {
	out := make([]float64, length)
	if pos >= 0 && pos < length {
		out[pos] = 1
	}

	return out
}

// DC returns a constant signal.
func DC(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}

	return out
}

// Channels returns a zeroed channels x frames buffer.
func Channels(channels, frames int) [][]float64 {
	out := make([][]float64, channels)
	for c := range out {
		out[c] = make([]float64, frames)
	}

	return out
}

// NoiseChannels returns a multi-channel buffer with independent noise per
// channel, seeded from seed+channel.
func NoiseChannels(seed int64, amplitude float64, channels, frames int) [][]float64 {
	out := make([][]float64, channels)
	for c := range out {
		out[c] = DeterministicNoise(seed+int64(c), amplitude, frames)
	}

	return out
}

// Clone deep-copies a multi-channel buffer.
func Clone(buf [][]float64) [][]float64 {
	out := make([][]float64, len(buf))
	for c, ch := range buf {
		out[c] = append([]float64(nil), ch...)
	}

	return out
}

// Slice returns the frames [from, to) of every channel without copying.
func Slice(buf [][]float64, from, to int) [][]float64 {
	out := make([][]float64, len(buf))
	for c, ch := range buf {
		out[c] = ch[from:to]
	}

	return out
}
