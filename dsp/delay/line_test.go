package delay

import (
	"errors"
	"math"
	"testing"
)

func newLine(t *testing.T, size int) *Line {
	t.Helper()

	d, err := NewSize(size)
	if err != nil {
		t.Fatal(err)
	}

	return d
}

// --- construction and validation ---

func TestNewSizeValidation(t *testing.T) {
	for _, size := range []int{0, -1} {
		_, err := NewSize(size)
		if !errors.Is(err, ErrInvalidSize) {
			t.Fatalf("size=%d: got %v, want ErrInvalidSize", size, err)
		}
	}
}

func TestNewValidation(t *testing.T) {
	cases := []struct {
		sr, ms float64
	}{
		{0, 5},
		{-48000, 5},
		{math.NaN(), 5},
		{48000, 0},
		{48000, -1},
		{48000, math.Inf(1)},
	}

	for _, c := range cases {
		if _, err := New(c.sr, c.ms); !errors.Is(err, ErrInvalidSize) {
			t.Fatalf("New(%v, %v): got %v, want ErrInvalidSize", c.sr, c.ms, err)
		}
	}
}

func TestNewRoundsCapacityUp(t *testing.T) {
	tests := []struct {
		sr, ms float64
		want   int
	}{
		{48000, 1, 48},
		{44100, 1, 45},
		{48000, 0.5, 24},
		{96000, 2.01, 193},
	}

	for _, tt := range tests {
		d, err := New(tt.sr, tt.ms)
		if err != nil {
			t.Fatal(err)
		}

		if d.Len() != tt.want {
			t.Errorf("New(%v, %v).Len() = %d, want %d", tt.sr, tt.ms, d.Len(), tt.want)
		}
	}
}

// --- integer Push/ReadBack ---

func TestReadBackZeroIsLastPush(t *testing.T) {
	d := newLine(t, 8)

	for _, x := range []float64{0.5, -1, 3.25} {
		d.Push(x)
		if got := d.ReadBack(0); got != x {
			t.Fatalf("ReadBack(0) = %v, want %v", got, x)
		}
	}
}

func TestReadBackRoundTrip(t *testing.T) {
	const size = 16

	d := newLine(t, size)

	// Push more than the capacity so the write position wraps several times.
	pushed := make([]float64, 0, 5*size)
	for i := range 5 * size {
		x := float64(i*i%97) - 40
		d.Push(x)
		pushed = append(pushed, x)

		for delay := 0; delay < size && delay <= i; delay++ {
			want := pushed[i-delay]
			if got := d.ReadBack(delay); got != want {
				t.Fatalf("after %d pushes: ReadBack(%d) = %v, want %v", i+1, delay, got, want)
			}
		}
	}
}

func TestReadBackBeforeFillIsZero(t *testing.T) {
	d := newLine(t, 4)
	d.Push(1)

	for delay := 1; delay < 4; delay++ {
		if got := d.ReadBack(delay); got != 0 {
			t.Fatalf("ReadBack(%d) = %v, want 0", delay, got)
		}
	}
}

// --- fractional reads ---

func TestReadBackFractionalLinear(t *testing.T) {
	d := newLine(t, 8)
	for i := range 8 {
		d.Push(float64(i))
	}

	// Newest sample is 7, delay 1 is 6.
	if got := d.ReadBackFractional(0.25); math.Abs(got-6.75) > 1e-12 {
		t.Fatalf("ReadBackFractional(0.25) = %v, want 6.75", got)
	}

	if got := d.ReadBackFractional(2); got != 5 {
		t.Fatalf("ReadBackFractional(2) = %v, want 5", got)
	}

	if got := d.ReadBackFractional(100); got != 0 {
		t.Fatalf("ReadBackFractional(100) = %v, want oldest sample 0", got)
	}
}

func TestReset(t *testing.T) {
	d := newLine(t, 4)
	for i := range 6 {
		d.Push(float64(i + 1))
	}

	d.Reset()

	for delay := range 4 {
		if got := d.ReadBack(delay); got != 0 {
			t.Fatalf("ReadBack(%d) after reset = %v, want 0", delay, got)
		}
	}

	d.Push(9)
	if got := d.ReadBack(0); got != 9 {
		t.Fatalf("ReadBack(0) = %v, want 9", got)
	}
}
