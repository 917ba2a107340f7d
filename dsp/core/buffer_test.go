package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrameCount(t *testing.T) {
	n, ok := FrameCount(nil)
	assert.True(t, ok)
	assert.Zero(t, n)

	n, ok = FrameCount([][]float64{make([]float64, 5), make([]float64, 5)})
	assert.True(t, ok)
	assert.Equal(t, 5, n)

	_, ok = FrameCount([][]float64{make([]float64, 5), make([]float64, 4)})
	assert.False(t, ok)
}

func TestCopyInto(t *testing.T) {
	dst := make([]float64, 2)
	assert.Equal(t, 2, CopyInto(dst, []float64{1, 2, 3}))
	assert.Equal(t, []float64{1, 2}, dst)

	Zero(dst)
	assert.Equal(t, []float64{0, 0}, dst)
}
