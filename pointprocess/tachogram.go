package pointprocess

import (
	"fmt"
	"sort"
)

// Tachogram resamples an inter-event interval sequence onto an evenly
// spaced time grid by piecewise-linear interpolation.
//
// Each interval wn[k] is anchored at its event time (the cumulative sum of
// intervals up to and including k). The grid spans the first to the last
// event time at the given sample rate. Values outside the observed range are
// clamped to the boundary intervals.
//
// The result is the standard evenly sampled series used by FFT-based
// spectral estimators; the AR engine itself never needs it.
func Tachogram(wn []float64, sampleRate float64) ([]float64, error) {
	if len(wn) == 0 {
		return nil, ErrEmptyIntervals
	}

	if sampleRate <= 0 {
		return nil, fmt.Errorf("pointprocess: tachogram sample rate must be > 0: %f", sampleRate)
	}

	times := make([]float64, len(wn))
	acc := 0.0
	for i, v := range wn {
		if v <= 0 {
			return nil, fmt.Errorf("pointprocess: non-positive interval at index %d: %f", i, v)
		}

		acc += v
		times[i] = acc
	}

	span := times[len(times)-1] - times[0]
	n := int(span*sampleRate) + 1

	out := make([]float64, n)
	step := 1 / sampleRate

	for i := range out {
		q := times[0] + float64(i)*step

		if q <= times[0] {
			out[i] = wn[0]
			continue
		}

		if q >= times[len(times)-1] {
			out[i] = wn[len(wn)-1]
			continue
		}

		j := sort.SearchFloat64s(times, q)
		t0, t1 := times[j-1], times[j]
		t := (q - t0) / (t1 - t0)
		out[i] = wn[j-1] + t*(wn[j]-wn[j-1])
	}

	return out, nil
}
