package frequency

import (
	"math"
	"testing"
)

const tolerance = 1e-9

func uniformAxis(n int, lo, hi float64) []float64 {
	out := make([]float64, n)
	step := (hi - lo) / float64(n-1)
	for i := range out {
		out[i] = lo + float64(i)*step
	}

	return out
}

func TestCalculateEmptyAndMismatched(t *testing.T) {
	if s := Calculate(nil, nil); s.BinCount != 0 {
		t.Fatalf("expected zero stats, got %+v", s)
	}

	if s := Calculate([]float64{1, 2}, []float64{1}); s.BinCount != 0 {
		t.Fatalf("expected zero stats for mismatched axes, got %+v", s)
	}
}

func TestCalculateSinglePeak(t *testing.T) {
	freqs := uniformAxis(5, 0, 4)
	powers := []float64{0, 0, 2, 0, 0}

	s := Calculate(freqs, powers)

	if s.MaxBin != 2 {
		t.Errorf("MaxBin: expected 2, got %d", s.MaxBin)
	}

	if math.Abs(s.PeakFrequency-2) > tolerance {
		t.Errorf("PeakFrequency: expected 2, got %v", s.PeakFrequency)
	}

	// All power at 2 Hz: centroid = 2, spread = 0.
	if math.Abs(s.Centroid-2) > tolerance {
		t.Errorf("Centroid: expected 2, got %v", s.Centroid)
	}

	if math.Abs(s.Spread) > tolerance {
		t.Errorf("Spread: expected 0, got %v", s.Spread)
	}

	// Trapezoid over the triangle 0,2,0 with unit spacing: 2.
	if math.Abs(s.TotalPower-2) > tolerance {
		t.Errorf("TotalPower: expected 2, got %v", s.TotalPower)
	}
}

func TestCalculateSymmetricTwoSided(t *testing.T) {
	freqs := uniformAxis(5, -2, 2)
	powers := []float64{1, 3, 0.5, 3, 1}

	s := Calculate(freqs, powers)

	if math.Abs(s.Centroid) > tolerance {
		t.Errorf("Centroid: expected ~0 for symmetric spectrum, got %v", s.Centroid)
	}
}

func TestCalculateFlatSpectrum(t *testing.T) {
	freqs := uniformAxis(11, 0, 10)
	powers := make([]float64, 11)
	for i := range powers {
		powers[i] = 0.5
	}

	s := Calculate(freqs, powers)

	if math.Abs(s.TotalPower-5) > tolerance {
		t.Errorf("TotalPower: expected 5, got %v", s.TotalPower)
	}

	if math.Abs(s.Centroid-5) > tolerance {
		t.Errorf("Centroid: expected 5, got %v", s.Centroid)
	}
}

func TestBandPowerFlat(t *testing.T) {
	freqs := uniformAxis(11, 0, 10)
	powers := make([]float64, 11)
	for i := range powers {
		powers[i] = 1
	}

	// Band edges fall between bins: exact clipping matters.
	got := BandPower(freqs, powers, 2.5, 7.25)
	if math.Abs(got-4.75) > tolerance {
		t.Errorf("BandPower: expected 4.75, got %v", got)
	}
}

func TestBandPowerWholeAxisEqualsTotal(t *testing.T) {
	freqs := uniformAxis(16, 0, 3)
	powers := make([]float64, 16)
	for i := range powers {
		powers[i] = float64(i%4) + 0.5
	}

	s := Calculate(freqs, powers)

	got := BandPower(freqs, powers, freqs[0], freqs[len(freqs)-1])
	if math.Abs(got-s.TotalPower) > tolerance {
		t.Errorf("BandPower over whole axis: expected %v, got %v", s.TotalPower, got)
	}
}

func TestBandPowerDegenerate(t *testing.T) {
	freqs := uniformAxis(4, 0, 3)
	powers := []float64{1, 1, 1, 1}

	if got := BandPower(freqs, powers, 2, 2); got != 0 {
		t.Errorf("expected 0 for empty band, got %v", got)
	}

	if got := BandPower(freqs, powers[:2], 0, 3); got != 0 {
		t.Errorf("expected 0 for mismatched inputs, got %v", got)
	}
}
