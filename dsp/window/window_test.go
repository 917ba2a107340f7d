package window

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKaiserShape(t *testing.T) {
	w, err := Kaiser(33, 8)
	require.NoError(t, err)
	require.Len(t, w, 33)

	assert.InDelta(t, 1.0, w[16], 1e-15, "center must be 1")

	for i := range 16 {
		assert.InDelta(t, w[i], w[32-i], 1e-15, "symmetry at %d", i)
		assert.Less(t, w[i], w[i+1], "rising edge at %d", i)
	}

	assert.InDelta(t, 1/besselI0(8), w[0], 1e-15)
}

func TestKaiserBetaZeroIsRectangular(t *testing.T) {
	w, err := Kaiser(8, 0)
	require.NoError(t, err)

	for i, v := range w {
		assert.Equal(t, 1.0, v, "index %d", i)
	}
}

func TestKaiserSingleTap(t *testing.T) {
	w, err := Kaiser(1, 5)
	require.NoError(t, err)
	assert.Equal(t, []float64{1}, w)
}

func TestKaiserValidation(t *testing.T) {
	_, err := Kaiser(0, 8)
	assert.Error(t, err)

	_, err = Kaiser(16, -1)
	assert.Error(t, err)

	_, err = Kaiser(16, math.NaN())
	assert.Error(t, err)
}

func TestBesselI0(t *testing.T) {
	// Reference values of I0.
	cases := map[float64]float64{
		0:  1,
		1:  1.2660658777520082,
		5:  27.239871823604442,
		10: 2815.716628466254,
	}

	for x, want := range cases {
		assert.InDelta(t, want, besselI0(x), want*1e-12, "I0(%v)", x)
	}
}

func TestKaiserBeta(t *testing.T) {
	assert.InDelta(t, 0.1102*(80-8.7), KaiserBeta(80), 1e-12)
	assert.Zero(t, KaiserBeta(10))
	assert.Greater(t, KaiserBeta(40), 0.0)
	assert.Less(t, KaiserBeta(40), KaiserBeta(60))
}

func TestApplyInPlace(t *testing.T) {
	samples := []float64{1, 2, 3, 4}
	require.NoError(t, ApplyInPlace(samples, []float64{0.5, 0.5, 2, 0}))
	assert.Equal(t, []float64{0.5, 1, 6, 0}, samples)

	assert.Error(t, ApplyInPlace(samples, []float64{1}))
}
