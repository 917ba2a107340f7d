package tilt

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-tube/internal/testutil"
)

const sampleRate = 96000.0

func newTilt(t *testing.T, freq, gainDB float64) *Filter {
	t.Helper()

	f, err := New(sampleRate)
	if err != nil {
		t.Fatal(err)
	}

	f.SetTilt(freq, gainDB)

	return f
}

func TestNewValidation(t *testing.T) {
	for _, sr := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		if _, err := New(sr); err == nil {
			t.Fatalf("expected error for sample rate %v", sr)
		}
	}
}

func TestFlatBeforeSetTilt(t *testing.T) {
	f, err := New(sampleRate)
	if err != nil {
		t.Fatal(err)
	}

	in := testutil.DeterministicNoise(1, 1, 64)
	for i, x := range in {
		if y := f.ProcessSample(x); y != x {
			t.Fatalf("sample %d: got %v, want %v", i, y, x)
		}
	}
}

func TestShelfGains(t *testing.T) {
	const gainDB = 6.0

	f := newTilt(t, 1000, gainDB)
	b0, b1, a1 := f.Coefficients()

	dc := (b0 + b1) / (1 + a1)
	nyq := (b0 - b1) / (1 - a1)

	if got := 20 * math.Log10(dc); math.Abs(got+gainDB/2) > 1e-9 {
		t.Fatalf("DC gain: got %.6f dB, want %.6f dB", got, -gainDB/2)
	}

	if got := 20 * math.Log10(nyq); math.Abs(got-gainDB/2) > 1e-9 {
		t.Fatalf("Nyquist gain: got %.6f dB, want %.6f dB", got, gainDB/2)
	}

	if got := f.MagnitudeDB(1000); math.Abs(got) > 1e-9 {
		t.Fatalf("pivot gain: got %.6f dB, want 0", got)
	}
}

func TestPositiveTiltBoostsTreble(t *testing.T) {
	f := newTilt(t, 800, 9)
	if f.MagnitudeDB(100) >= 0 {
		t.Fatal("expected bass cut for positive tilt")
	}

	if f.MagnitudeDB(10000) <= 0 {
		t.Fatal("expected treble boost for positive tilt")
	}

	g := newTilt(t, 800, -9)
	if g.MagnitudeDB(100) <= 0 || g.MagnitudeDB(10000) >= 0 {
		t.Fatal("expected inverse shape for negative tilt")
	}
}

func TestPrePostPairIsTransparent(t *testing.T) {
	pre := newTilt(t, 700, 8)
	post := newTilt(t, 700, -8)

	in := testutil.DeterministicNoise(7, 0.8, 4096)
	out := make([]float64, len(in))

	for i, x := range in {
		out[i] = post.ProcessSample(pre.ProcessSample(x))
	}

	testutil.RequireSliceNearlyEqual(t, out, in, 1e-10)
}

func TestResetClearsState(t *testing.T) {
	f := newTilt(t, 1000, 6)
	first := make([]float64, 16)

	impulse := testutil.Impulse(16, 0)
	for i, x := range impulse {
		first[i] = f.ProcessSample(x)
	}

	f.Reset()

	for i, x := range impulse {
		if y := f.ProcessSample(x); y != first[i] {
			t.Fatalf("sample %d after reset: got %v, want %v", i, y, first[i])
		}
	}
}

func TestExtremePivotStaysStable(t *testing.T) {
	f := newTilt(t, sampleRate, 12)
	block := testutil.DeterministicNoise(3, 1, 2048)
	f.ProcessBlock(block)
	testutil.RequireFinite(t, block)
}
