// Package cpu reports the SIMD extensions available to the vector block
// kernels. Detection runs once and is cached.
package cpu

import (
	"fmt"
	"strings"
	"sync"
)

// SIMDLevel is a SIMD instruction set extension.
type SIMDLevel int

const (
	SIMDNone SIMDLevel = iota
	SIMDSSE2
	SIMDAVX
	SIMDAVX2
	SIMDAVX512
	SIMDNEON
)

func (s SIMDLevel) String() string {
	switch s {
	case SIMDNone:
		return "none"
	case SIMDSSE2:
		return "SSE2"
	case SIMDAVX:
		return "AVX"
	case SIMDAVX2:
		return "AVX2"
	case SIMDAVX512:
		return "AVX-512"
	case SIMDNEON:
		return "NEON"
	default:
		return fmt.Sprintf("SIMDLevel(%d)", int(s))
	}
}

// Features describes the host CPU.
type Features struct {
	HasSSE2   bool
	HasAVX    bool
	HasAVX2   bool
	HasAVX512 bool
	HasNEON   bool

	Architecture string
}

// Best returns the widest supported extension.
func (f Features) Best() SIMDLevel {
	switch {
	case f.HasAVX512:
		return SIMDAVX512
	case f.HasAVX2:
		return SIMDAVX2
	case f.HasAVX:
		return SIMDAVX
	case f.HasSSE2:
		return SIMDSSE2
	case f.HasNEON:
		return SIMDNEON
	default:
		return SIMDNone
	}
}

// Levels lists every supported extension, narrowest first.
func (f Features) Levels() []SIMDLevel {
	var out []SIMDLevel

	for _, l := range []struct {
		ok    bool
		level SIMDLevel
	}{
		{f.HasSSE2, SIMDSSE2},
		{f.HasAVX, SIMDAVX},
		{f.HasAVX2, SIMDAVX2},
		{f.HasAVX512, SIMDAVX512},
		{f.HasNEON, SIMDNEON},
	} {
		if l.ok {
			out = append(out, l.level)
		}
	}

	return out
}

// String formats f as "amd64: SSE2 AVX AVX2".
func (f Features) String() string {
	levels := f.Levels()
	if len(levels) == 0 {
		return f.Architecture + ": none"
	}

	names := make([]string, len(levels))
	for i, l := range levels {
		names[i] = l.String()
	}

	return f.Architecture + ": " + strings.Join(names, " ")
}

var detect = sync.OnceValue(detectFeaturesImpl)

// DetectFeatures returns the cached host features.
func DetectFeatures() Features {
	return detect()
}
