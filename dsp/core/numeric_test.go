package core

import (
	"math"
	"testing"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		lo       float64
		hi       float64
		expected float64
	}{
		{name: "inside", value: 0.5, lo: 0, hi: 1, expected: 0.5},
		{name: "below", value: -1, lo: 0, hi: 1, expected: 0},
		{name: "above", value: 2, lo: 0, hi: 1, expected: 1},
		{name: "swapped", value: 2, lo: 1, hi: 0, expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Clamp(tt.value, tt.lo, tt.hi)
			if got != tt.expected {
				t.Fatalf("Clamp() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestLerpEndpoints(t *testing.T) {
	if got := Lerp(0.3, 0.9, 0); got != 0.3 {
		t.Fatalf("Lerp(t=0) = %v, want 0.3", got)
	}
	if got := Lerp(-2, 5, 1); got != 5 {
		t.Fatalf("Lerp(t=1) = %v, want 5", got)
	}
	if got := Lerp(0, 4, 0.25); got != 1 {
		t.Fatalf("Lerp(t=0.25) = %v, want 1", got)
	}
}

func TestDBConversions(t *testing.T) {
	linear := DBToLinear(-6)
	db := LinearToDB(linear)
	if math.Abs(db+6) > 1e-10 {
		t.Fatalf("LinearToDB(DBToLinear(-6)) = %v, want -6", db)
	}
	if DBToLinear(0) != 1 {
		t.Fatalf("DBToLinear(0) = %v, want 1", DBToLinear(0))
	}
	if !math.IsInf(LinearToDB(0), -1) {
		t.Fatal("expected -Inf for zero")
	}
	if !math.IsNaN(LinearToDB(-1)) {
		t.Fatal("expected NaN for negative amplitude")
	}
}

func TestTimeConstant(t *testing.T) {
	sr := 48000.0
	ms := 10.0
	got := TimeConstant(ms, sr)
	want := 1 - math.Exp(-1/(ms*sr/1000))
	if got != want {
		t.Fatalf("TimeConstant = %v, want %v", got, want)
	}
	if got <= 0 || got >= 1 {
		t.Fatalf("coefficient out of (0,1): %v", got)
	}

	// Longer time constants release more slowly.
	if TimeConstant(100, sr) >= got {
		t.Fatal("expected smaller coefficient for longer time constant")
	}

	if TimeConstant(0, sr) != 1 || TimeConstant(10, 0) != 1 {
		t.Fatal("degenerate inputs should disable smoothing")
	}
}

func TestFlushDenormals(t *testing.T) {
	if FlushDenormals(1e-35) != 0 {
		t.Fatal("expected tiny value to flush to zero")
	}
	if FlushDenormals(-1e-35) != 0 {
		t.Fatal("expected tiny negative value to flush to zero")
	}
	if FlushDenormals(1e-6) != 1e-6 {
		t.Fatal("expected normal value to be preserved")
	}
}

func TestIsFinite(t *testing.T) {
	if !IsFinite(1) || IsFinite(math.NaN()) || IsFinite(math.Inf(1)) {
		t.Fatal("IsFinite misclassified input")
	}
}
