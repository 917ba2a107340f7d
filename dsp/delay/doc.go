// Package delay provides a fixed-capacity circular delay line used to
// time-align a dry signal with a latency-inducing wet path.
//
// Out-of-range reads are a programming error. Build with -tags dspdebug to
// turn them into panics; default builds clamp to the valid range so a bad
// constant can never index outside the buffer.
package delay
