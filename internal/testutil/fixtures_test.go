package testutil

import "testing"

func TestConstantIntervals(t *testing.T) {
	wn := ConstantIntervals(0.8, 16)
	if len(wn) != 16 {
		t.Fatalf("expected 16 intervals, got %d", len(wn))
	}

	for i, v := range wn {
		if v != 0.8 {
			t.Fatalf("index %d: expected 0.8, got %v", i, v)
		}
	}
}

func TestModulatedIntervalsStayPositive(t *testing.T) {
	wn := ModulatedIntervals(0.8, 0.1, 0.25, 256)
	for i, v := range wn {
		if v <= 0 {
			t.Fatalf("index %d: non-positive interval %v", i, v)
		}
	}
}

func TestJitteredIntervalsDeterministic(t *testing.T) {
	a := JitteredIntervals(42, 0.8, 0.05, 64)
	b := JitteredIntervals(42, 0.8, 0.05, 64)

	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("index %d: sequences diverge (%v vs %v)", i, a[i], b[i])
		}
	}
}
