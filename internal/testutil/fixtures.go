package testutil

import (
	"math"
	"math/rand"
)

// ConstantIntervals generates a series of identical inter-event intervals.
func ConstantIntervals(interval float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = interval
	}
	return out
}

// ModulatedIntervals generates inter-event intervals with a sinusoidal
// modulation around a base interval, a simple stand-in for respiratory
// sinus arrhythmia. modFreqHz is the modulation frequency in cycles per
// second of event time.
func ModulatedIntervals(base, depth, modFreqHz float64, length int) []float64 {
	out := make([]float64, length)
	tm := 0.0
	for i := range out {
		out[i] = base + depth*math.Sin(2*math.Pi*modFreqHz*tm)
		tm += out[i]
	}
	return out
}

// JitteredIntervals generates intervals with deterministic uniform jitter
// around a base interval. The seed fixes the sequence for reproducibility.
func JitteredIntervals(seed int64, base, jitter float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = base + (rng.Float64()*2-1)*jitter
	}
	return out
}
