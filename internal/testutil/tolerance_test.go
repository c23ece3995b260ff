package testutil

import "testing"

func TestMaxAbsDiff(t *testing.T) {
	a := []float64{1, 2, 3}
	b := []float64{1, 2.5, 2}

	d, err := MaxAbsDiff(a, b)
	if err != nil {
		t.Fatal(err)
	}

	if d != 1 {
		t.Fatalf("expected max diff 1, got %v", d)
	}
}

func TestMaxAbsDiffLengthMismatch(t *testing.T) {
	if _, err := MaxAbsDiff([]float64{1}, []float64{1, 2}); err == nil {
		t.Fatal("expected error for length mismatch")
	}
}

func TestRequireSliceNearlyEqual(t *testing.T) {
	got := []float64{1.0, 2.0}
	want := []float64{1.0 + 1e-12, 2.0 - 1e-12}

	RequireSliceNearlyEqual(t, got, want, 1e-9)
}

func TestRequireComplexSliceNearlyEqual(t *testing.T) {
	got := []complex128{complex(1, 1)}
	want := []complex128{complex(1+1e-12, 1-1e-12)}

	RequireComplexSliceNearlyEqual(t, got, want, 1e-9)
}
