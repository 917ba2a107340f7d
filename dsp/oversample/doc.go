// Package oversample provides a fixed 2x polyphase FIR upsampler and
// downsampler pair for running nonlinear processing above the base rate.
//
// Both directions share one Kaiser-windowed sinc prototype of KernelLength
// taps at the oversampled rate. The upsampler splits it into two phases of
// KernelLength/2 taps; the downsampler evaluates the full prototype once per
// output sample. A round trip Upsampler -> Downsampler delays the signal by
// exactly Latency base-rate samples:
//
//	Latency = (KernelLength - 2) / 2
//
// Latency is derived from KernelLength and must be used by any dry-path
// compensation rather than a separate literal.
//
// Analyze reports passband ripple and stopband attenuation of a kernel from a
// zero-padded FFT.
package oversample
