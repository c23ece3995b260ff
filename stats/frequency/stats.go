// Package frequency computes descriptive statistics over a power spectral
// density with an explicit frequency axis.
//
// The functions accept any (frequencies, powers) pair with matching lengths
// and a non-decreasing axis, so they work on the two-sided grid of the AR
// engine and the one-sided grid of the Welch periodogram alike. On a
// symmetric two-sided spectrum the centroid is near zero; pass the
// non-negative half when a one-sided summary is wanted.
package frequency

import "math"

// Stats holds descriptive statistics of a PSD.
type Stats struct {
	BinCount int

	// TotalPower is the trapezoidal integral of the PSD over the axis.
	TotalPower float64

	Max           float64
	MaxBin        int
	PeakFrequency float64
	Min           float64
	MinBin        int
	Mean          float64

	// Centroid is the power-weighted mean frequency.
	Centroid float64

	// Spread is the power-weighted standard deviation around the centroid.
	Spread float64
}

// Calculate computes all statistics in one pass over the PSD. Mismatched or
// empty inputs return a zero Stats.
func Calculate(frequencies, powers []float64) Stats {
	n := len(powers)
	if n == 0 || len(frequencies) != n {
		return Stats{}
	}

	var s Stats
	s.BinCount = n
	s.Min = powers[0]
	s.Max = powers[0]

	sum := 0.0
	weightedSum := 0.0
	for i, v := range powers {
		sum += v
		weightedSum += frequencies[i] * v

		if v > s.Max {
			s.Max = v
			s.MaxBin = i
		}

		if v < s.Min {
			s.Min = v
			s.MinBin = i
		}
	}

	s.Mean = sum / float64(n)
	s.PeakFrequency = frequencies[s.MaxBin]
	s.TotalPower = integrate(frequencies, powers)

	if sum != 0 {
		s.Centroid = weightedSum / sum

		weightedSqSum := 0.0
		for i, v := range powers {
			diff := frequencies[i] - s.Centroid
			weightedSqSum += diff * diff * v
		}

		s.Spread = math.Sqrt(weightedSqSum / sum)
	}

	return s
}

// BandPower integrates the PSD over [lo, hi] by the trapezoidal rule,
// splitting boundary bins linearly. Returns 0 for an empty band or
// mismatched inputs.
func BandPower(frequencies, powers []float64, lo, hi float64) float64 {
	n := len(powers)
	if n < 2 || len(frequencies) != n || hi <= lo {
		return 0
	}

	total := 0.0
	for i := 1; i < n; i++ {
		segF0, segF1 := frequencies[i-1], frequencies[i]
		if segF1 <= lo || segF0 >= hi || segF1 == segF0 {
			continue
		}

		segP0, segP1 := powers[i-1], powers[i]
		interp := func(f float64) float64 {
			t := (f - segF0) / (segF1 - segF0)
			return segP0 + t*(segP1-segP0)
		}

		// Clip the segment to the band, interpolating the edge values.
		f0, f1 := segF0, segF1
		p0, p1 := segP0, segP1

		if f0 < lo {
			f0 = lo
			p0 = interp(lo)
		}

		if f1 > hi {
			f1 = hi
			p1 = interp(hi)
		}

		total += 0.5 * (p0 + p1) * (f1 - f0)
	}

	return total
}

// integrate computes the trapezoidal integral of powers over frequencies.
func integrate(frequencies, powers []float64) float64 {
	total := 0.0
	for i := 1; i < len(powers); i++ {
		total += 0.5 * (powers[i-1] + powers[i]) * (frequencies[i] - frequencies[i-1])
	}

	return total
}
