package smooth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRampReachesTarget(t *testing.T) {
	for _, n := range []int{1, 2, 3, 7, 64, 513} {
		s := New(0.25)
		s.Set(-3)
		s.ProcessBuffer(n)

		assert.Equal(t, -3.0, s.Get(n-1), "n=%d: last sample must equal target", n)
		assert.Equal(t, -3.0, s.Current(), "n=%d", n)
	}
}

func TestRampIsLinear(t *testing.T) {
	s := New(0)
	s.Set(1)

	const n = 5
	s.ProcessBuffer(n)

	want := []float64{0, 0.25, 0.5, 0.75, 1}
	for i := range n {
		assert.InDelta(t, want[i], s.Get(i), 1e-15, "sample %d", i)
	}
	assert.True(t, s.Smoothing())
}

func TestRampIsMonotonic(t *testing.T) {
	s := New(2)
	s.Set(-1)
	s.ProcessBuffer(64)

	prev := s.Get(0)
	for i := 1; i < 64; i++ {
		v := s.Get(i)
		require.LessOrEqual(t, v, prev, "sample %d", i)
		prev = v
	}
}

func TestNextBlockStartsAtPreviousTarget(t *testing.T) {
	s := New(0)
	s.Set(1)
	s.ProcessBuffer(8)

	s.Set(3)
	s.ProcessBuffer(3)
	assert.Equal(t, 1.0, s.Get(0))
	assert.Equal(t, 2.0, s.Get(1))
	assert.Equal(t, 3.0, s.Get(2))
}

func TestConstantWhenTargetUnchanged(t *testing.T) {
	s := New(0.7)
	s.ProcessBuffer(16)

	for i := range 16 {
		assert.Equal(t, 0.7, s.Get(i))
	}
	assert.False(t, s.Smoothing())
}

func TestSetDoesNotMoveOutputBeforeProcessBuffer(t *testing.T) {
	s := New(1)
	s.ProcessBuffer(4)
	s.Set(5)

	assert.Equal(t, 1.0, s.Get(3))
	assert.Equal(t, 5.0, s.Target())
}

func TestSingleSampleBlockJumps(t *testing.T) {
	s := New(0)
	s.Set(0.5)
	s.ProcessBuffer(1)
	assert.Equal(t, 0.5, s.Get(0))
}

func TestFill(t *testing.T) {
	s := New(0)
	s.Set(3)
	s.ProcessBuffer(4)

	dst := make([]float64, 4)
	s.Fill(dst)
	assert.Equal(t, []float64{0, 1, 2, 3}, dst)
}

func TestReset(t *testing.T) {
	s := New(0)
	s.Set(1)
	s.ProcessBuffer(10)
	s.Reset(-2)

	assert.Equal(t, -2.0, s.Current())
	assert.Equal(t, -2.0, s.Target())
	assert.Equal(t, -2.0, s.Get(0))
}
