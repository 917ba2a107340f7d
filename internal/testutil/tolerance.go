package testutil

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair differs by more than eps.
func RequireSliceNearlyEqual(t *testing.T, got, want []float64, eps float64) {
	t.Helper()
	require.Len(t, got, len(want), "length mismatch")

	for i := range got {
		if diff := math.Abs(got[i] - want[i]); diff > eps {
			require.Failf(t, "slices differ",
				"index %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], diff, eps)
		}
	}
}

// RequireBitwiseEqual fails t unless every channel of got matches want
// exactly, bit for bit.
func RequireBitwiseEqual(t *testing.T, got, want [][]float64) {
	t.Helper()
	require.Len(t, got, len(want), "channel count mismatch")

	for c := range got {
		require.Len(t, got[c], len(want[c]), "channel %d length mismatch", c)

		for i := range got[c] {
			if math.Float64bits(got[c][i]) != math.Float64bits(want[c][i]) {
				require.Failf(t, "buffers differ",
					"channel %d frame %d: got %v, want %v", c, i, got[c][i], want[c][i])
			}
		}
	}
}

// RequireFinite fails t if any element is NaN or Inf.
func RequireFinite(t *testing.T, data []float64) {
	t.Helper()

	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			require.Failf(t, "non-finite sample", "index %d: %v", i, v)
		}
	}
}

// RequireFiniteChannels applies RequireFinite to every channel.
func RequireFiniteChannels(t *testing.T, buf [][]float64) {
	t.Helper()

	for _, ch := range buf {
		RequireFinite(t, ch)
	}
}

// MaxAbsDiff returns the largest absolute element difference of a and b.
func MaxAbsDiff(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("length mismatch: %d vs %d", len(a), len(b))
	}

	maxDiff := 0.0
	for i := range a {
		maxDiff = math.Max(maxDiff, math.Abs(a[i]-b[i]))
	}

	return maxDiff, nil
}
