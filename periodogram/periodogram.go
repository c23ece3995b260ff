// Package periodogram estimates power spectral density from evenly sampled
// series using Welch's method of averaged, windowed, overlapping segments.
//
// It complements the parametric AR engine in the spectral package: running
// both on the same recording gives a model-free cross-check of the AR
// spectrum.
package periodogram

import (
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

const (
	defaultSegmentSize = 256
	defaultOverlap     = 0.5
)

// Config holds Welch estimation parameters.
type Config struct {
	// SampleRate of the input series in Hz. Required.
	SampleRate float64

	// SegmentSize is the per-segment FFT length. Defaults to 256; values
	// that are not powers of two are rounded up.
	SegmentSize int

	// Overlap is the fractional segment overlap in [0, 1). Defaults to 0.5
	// when negative or >= 1.
	Overlap float64
}

// Result holds the one-sided PSD estimate.
type Result struct {
	// Frequencies in Hz from 0 (DC) to Nyquist.
	Frequencies []float64

	// Powers in (signal unit)^2 per Hz, parallel to Frequencies.
	Powers []float64
}

// Welch estimates the one-sided PSD of an evenly sampled series. The series
// mean is removed before segmentation, each segment is Hann-windowed, and
// segment periodograms are averaged. Signals shorter than one segment are
// zero-padded into a single segment.
func Welch(signal []float64, cfg Config) (Result, error) {
	if len(signal) == 0 {
		return Result{}, fmt.Errorf("periodogram: empty signal")
	}

	if cfg.SampleRate <= 0 {
		return Result{}, fmt.Errorf("periodogram: sample rate must be > 0: %f", cfg.SampleRate)
	}

	cfg = normalizeConfig(cfg)
	seg := cfg.SegmentSize

	plan, err := algofft.NewPlan64(seg)
	if err != nil {
		return Result{}, fmt.Errorf("periodogram: failed to create FFT plan: %w", err)
	}

	mean := 0.0
	for _, v := range signal {
		mean += v
	}
	mean /= float64(len(signal))

	win := hann(seg)
	winPower := 0.0
	for _, w := range win {
		winPower += w * w
	}

	hop := int(float64(seg) * (1 - cfg.Overlap))
	if hop < 1 {
		hop = 1
	}

	binCount := seg/2 + 1
	acc := make([]float64, seg)

	in := make([]complex128, seg)
	out := make([]complex128, seg)
	re := make([]float64, seg)
	im := make([]float64, seg)
	power := make([]float64, seg)

	segments := 0
	for start := 0; start == 0 || start+seg <= len(signal); start += hop {
		for i := range in {
			v := 0.0
			if start+i < len(signal) {
				v = signal[start+i] - mean
			}

			in[i] = complex(v*win[i], 0)
		}

		if err := plan.Forward(out, in); err != nil {
			return Result{}, fmt.Errorf("periodogram: forward FFT: %w", err)
		}

		for i, c := range out {
			re[i] = real(c)
			im[i] = imag(c)
		}

		vecmath.Power(power, re, im)

		for i := range acc {
			acc[i] += power[i]
		}

		segments++
	}

	scale := 1 / (cfg.SampleRate * winPower * float64(segments))

	frequencies := make([]float64, binCount)
	powers := make([]float64, binCount)

	for i := range binCount {
		frequencies[i] = float64(i) * cfg.SampleRate / float64(seg)

		p := acc[i] * scale
		if i > 0 && i < seg/2 {
			p *= 2
		}

		powers[i] = p
	}

	return Result{Frequencies: frequencies, Powers: powers}, nil
}

func normalizeConfig(cfg Config) Config {
	if cfg.SegmentSize <= 0 {
		cfg.SegmentSize = defaultSegmentSize
	}

	cfg.SegmentSize = nextPowerOf2(cfg.SegmentSize)

	if cfg.Overlap < 0 || cfg.Overlap >= 1 {
		cfg.Overlap = defaultOverlap
	}

	return cfg
}

func hann(n int) []float64 {
	out := make([]float64, n)
	if n == 1 {
		out[0] = 1
		return out
	}

	for i := range out {
		out[i] = 0.5 * (1 - math.Cos(2*math.Pi*float64(i)/float64(n-1)))
	}

	return out
}

func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}

	p := 1
	for p < n {
		p <<= 1
	}

	return p
}
