// Package pointprocess defines the read-only input contract for fitted
// autoregressive point-process models and the scalar quantities derived
// from them (mean interval, sampling rate, sample variance).
//
// The package never fits a model. It consumes coefficients estimated
// elsewhere and exposes them in the form the spectral packages expect.
package pointprocess

import (
	"errors"
)

// Sample variance is estimated in seconds^2 and consumed in ms^2.
const secondsSqToMillisecondsSq = 1e6

// ErrDegenerateModel is returned when no AR coefficients remain after
// intercept removal (degree-0 characteristic polynomial).
var ErrDegenerateModel = errors.New("pointprocess: no AR coefficients after intercept removal")

// ErrInvalidSampleCount is returned when the effective sample count K is
// not strictly positive.
var ErrInvalidSampleCount = errors.New("pointprocess: effective sample count must be > 0")

// ErrEmptyIntervals is returned when the inter-event interval sequence is
// empty.
var ErrEmptyIntervals = errors.New("pointprocess: empty inter-event interval sequence")

// Model holds the fitted quantities of an AR point-process model. All fields
// are treated as read-only; derived slices are always independent copies.
type Model struct {
	// Theta holds the estimated coefficients in order. When HasTheta0 is
	// set, Theta[0] is an intercept term and not part of the AR polynomial.
	Theta []float64

	// HasTheta0 indicates whether Theta[0] is an intercept to discard.
	HasTheta0 bool

	// Wn holds the observed inter-event intervals in seconds.
	Wn []float64

	// K is the effective sample count used in the variance estimate.
	K float64
}

// Validate checks the input contract: non-empty intervals, positive sample
// count, and at least one AR coefficient after intercept removal.
func (m Model) Validate() error {
	if len(m.Wn) == 0 {
		return ErrEmptyIntervals
	}

	if m.K <= 0 {
		return ErrInvalidSampleCount
	}

	if _, err := m.ARCoefficients(); err != nil {
		return err
	}

	return nil
}

// ARCoefficients returns a fresh copy of the pure AR coefficients with the
// intercept removed when present.
func (m Model) ARCoefficients() ([]float64, error) {
	theta := m.Theta
	if m.HasTheta0 && len(theta) > 0 {
		theta = theta[1:]
	}

	if len(theta) == 0 {
		return nil, ErrDegenerateModel
	}

	out := make([]float64, len(theta))
	copy(out, theta)

	return out, nil
}

// MeanInterval returns the mean inter-event interval in seconds, or 0 for an
// empty sequence.
func (m Model) MeanInterval() float64 {
	if len(m.Wn) == 0 {
		return 0
	}

	sum := 0.0
	for _, v := range m.Wn {
		sum += v
	}

	return sum / float64(len(m.Wn))
}

// SampleRate returns the sampling rate in Hz, the reciprocal of the mean
// inter-event interval. Returns 0 when the mean interval is 0.
func (m Model) SampleRate() float64 {
	mean := m.MeanInterval()
	if mean == 0 {
		return 0
	}

	return 1 / mean
}

// SampleVariance returns the sample variance estimate in ms^2:
//
//	var = meanInterval^3 / K
//
// converted from seconds^2 with a fixed 1e6 factor.
func (m Model) SampleVariance() (float64, error) {
	if m.K <= 0 {
		return 0, ErrInvalidSampleCount
	}

	mean := m.MeanInterval()

	return secondsSqToMillisecondsSq * mean * mean * mean / m.K, nil
}
