package spectral

import "github.com/cwbudde/algo-hrv/internal/polyroot"

// DefaultGridSize is the default number of frequency grid points.
const DefaultGridSize = 2048

type config struct {
	aggregate bool
	gridSize  int
	conjTol   float64
}

// Option mutates the analyzer configuration.
type Option func(*config)

func defaultOptions() config {
	return config{
		aggregate: true,
		gridSize:  DefaultGridSize,
		conjTol:   polyroot.ConjugateTol,
	}
}

// WithAggregate controls whether the contributions of adjacent conjugate
// pole pairs are merged into a single component (default true).
func WithAggregate(enabled bool) Option {
	return func(cfg *config) {
		cfg.aggregate = enabled
	}
}

// WithGridSize sets the number of frequency grid points. Values below 2 are
// ignored.
func WithGridSize(n int) Option {
	return func(cfg *config) {
		if n >= 2 {
			cfg.gridSize = n
		}
	}
}

// WithConjugateTolerance sets the tolerance used to decide whether two
// adjacent poles form a conjugate pair during aggregation. Non-positive
// values are ignored.
func WithConjugateTolerance(tol float64) Option {
	return func(cfg *config) {
		if tol > 0 {
			cfg.conjTol = tol
		}
	}
}

func applyOptions(opts []Option) config {
	cfg := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}
