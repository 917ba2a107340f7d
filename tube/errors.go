package tube

import (
	"errors"

	"github.com/cwbudde/algo-tube/dsp/core"
)

var (
	// ErrUnsupportedLayout is returned by New for any layout other than a
	// single mono or stereo format.
	ErrUnsupportedLayout = errors.New("tube: unsupported layout")
	// ErrInvalidSampleRate is returned by New for a non-positive or
	// non-finite sample rate.
	ErrInvalidSampleRate = core.ErrInvalidSampleRate
	// ErrInvalidBlockSize is returned by New for a non-positive block size.
	ErrInvalidBlockSize = core.ErrInvalidBlockSize
	// ErrChannelMismatch is returned by Process when the number of buffers
	// differs from the engine channel count.
	ErrChannelMismatch = errors.New("tube: channel count mismatch")
	// ErrBufferLength is returned by Process when channel buffers differ in
	// length.
	ErrBufferLength = errors.New("tube: channel buffers differ in length")
	// ErrParamState is returned by LoadParams for unreadable state.
	ErrParamState = errors.New("tube: invalid parameter state")
)
