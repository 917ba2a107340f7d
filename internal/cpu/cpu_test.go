package cpu

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectFeaturesCached(t *testing.T) {
	f := DetectFeatures()
	assert.Equal(t, runtime.GOARCH, f.Architecture)
	assert.Equal(t, f, DetectFeatures())

	if runtime.GOARCH == "amd64" {
		assert.True(t, f.HasSSE2, "SSE2 is part of the amd64 baseline")
	}
}

func TestBest(t *testing.T) {
	assert.Equal(t, SIMDNone, Features{}.Best())
	assert.Equal(t, SIMDAVX2, Features{HasSSE2: true, HasAVX: true, HasAVX2: true}.Best())
	assert.Equal(t, SIMDNEON, Features{HasNEON: true}.Best())
}

func TestString(t *testing.T) {
	assert.Equal(t, "amd64: SSE2 AVX2", Features{HasSSE2: true, HasAVX2: true, Architecture: "amd64"}.String())
	assert.Equal(t, "riscv64: none", Features{Architecture: "riscv64"}.String())
	assert.Equal(t, "AVX-512", SIMDAVX512.String())
	assert.Equal(t, "SIMDLevel(42)", SIMDLevel(42).String())
}
