package spectral

import (
	"errors"
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-hrv/internal/polyroot"
	"github.com/cwbudde/algo-hrv/pointprocess"
)

// ErrSingularPole is returned when two poles are numerically coincident (or
// a pole sits at the origin), which makes a factor of the partial-fraction
// residue product vanish.
var ErrSingularPole = errors.New("spectral: singular pole in residue computation")

// singularPoleTol is the absolute distance below which two poles are treated
// as coincident.
const singularPoleTol = 1e-12

// stabilityBound is the magnitude all poles are pulled inside when the
// estimated model is unstable.
const stabilityBound = 0.99

// Pole describes one root of the AR characteristic polynomial together with
// its derived spectral quantities.
type Pole struct {
	// Pos is the pole position on the complex plane.
	Pos complex128

	// Frequency is the pole's center frequency in Hz.
	Frequency float64

	// Power is the power attributed to the pole in ms^2.
	Power float64

	// Residual is the pole's partial-fraction residue.
	Residual complex128
}

// Analysis is the immutable result of a spectral decomposition. All slices
// are owned by the result and never alias analyzer or caller data.
type Analysis struct {
	// Frequencies holds the evaluation grid in Hz, spanning the full band
	// [-sampleRate/2, sampleRate/2].
	Frequencies []float64

	// Powers holds the PSD in ms^2/Hz, parallel to Frequencies. Entries are
	// real and non-negative by construction.
	Powers []float64

	// Poles lists the (stabilized) poles sorted by ascending absolute angle,
	// so conjugate pairs are adjacent.
	Poles []Pole

	// Components holds one complex spectral-contribution array per pole, or
	// per conjugate group when aggregation is enabled.
	Components [][]complex128
}

// Analyzer computes spectral decompositions for one model snapshot.
type Analyzer struct {
	model pointprocess.Model
	cfg   config
}

// New creates an analyzer for the given fitted model.
func New(model pointprocess.Model, opts ...Option) *Analyzer {
	return &Analyzer{
		model: model,
		cfg:   applyOptions(opts),
	}
}

// Analyze is a one-shot decomposition of the given fitted model.
func Analyze(model pointprocess.Model, opts ...Option) (Analysis, error) {
	return New(model, opts...).PSD()
}

// PSD computes the power spectral density and pole decomposition.
//
// The pipeline: intercept removal, variance/sampling-rate estimation, root
// finding with stability correction, spectrum evaluation over the grid,
// per-pole residue and contribution synthesis, and (optionally) conjugate
// aggregation.
func (a *Analyzer) PSD() (Analysis, error) {
	if err := a.model.Validate(); err != nil {
		return Analysis{}, err
	}

	thetap, err := a.model.ARCoefficients()
	if err != nil {
		return Analysis{}, err
	}

	variance, err := a.model.SampleVariance()
	if err != nil {
		return Analysis{}, err
	}

	sampleRate := a.model.SampleRate()

	positions, thetap, err := stabilizedPoles(thetap)
	if err != nil {
		return Analysis{}, err
	}

	frequencies, z := frequencyGrid(a.cfg.gridSize, sampleRate)

	scale := variance / sampleRate
	powers := evalSpectrum(characteristic(thetap), z, scale)

	residuals, err := residues(positions)
	if err != nil {
		return Analysis{}, err
	}

	poles := make([]Pole, len(positions))
	for i, p := range positions {
		poles[i] = Pole{
			Pos:       p,
			Frequency: cmplx.Phase(p) / (2 * math.Pi) * sampleRate,
			Power:     variance * real(residuals[i]),
			Residual:  residuals[i],
		}
	}

	comps := components(positions, residuals, z, scale)
	if a.cfg.aggregate {
		comps = aggregateConjugates(positions, comps, a.cfg.conjTol)
	}

	return Analysis{
		Frequencies: frequencies,
		Powers:      powers,
		Poles:       poles,
		Components:  comps,
	}, nil
}

// characteristic returns the AR characteristic polynomial coefficients in
// descending power order: [1, -theta1, ..., -thetap].
func characteristic(thetap []float64) []float64 {
	coeff := make([]float64, len(thetap)+1)
	coeff[0] = 1
	for i, v := range thetap {
		coeff[i+1] = -v
	}

	return coeff
}

// stabilizedPoles finds the poles of the characteristic polynomial, sorts
// them by ascending absolute angle, and applies a uniform exponential decay
// when any pole lies on or outside the unit circle (Stoica and Moses, Signal
// Processing 26(1) 1992). The decay scales every pole by s and coefficient i
// by s^(i+1), keeping both representations consistent.
func stabilizedPoles(thetap []float64) ([]complex128, []float64, error) {
	positions, err := polyroot.RootsReal(characteristic(thetap))
	if err != nil {
		return nil, nil, err
	}

	polyroot.SortByAngle(positions)

	maxAbs := 0.0
	for _, p := range positions {
		if m := cmplx.Abs(p); m > maxAbs {
			maxAbs = m
		}
	}

	scale := 1.0
	if maxAbs > 0 {
		scale = math.Min(stabilityBound/maxAbs, 1)
	}

	if scale < 1 {
		decay := 1.0
		for i := range thetap {
			decay *= scale
			thetap[i] *= decay
		}

		s := complex(scale, 0)
		for i := range positions {
			positions[i] *= s
		}
	}

	return positions, thetap, nil
}

// frequencyGrid returns the evaluation grid in Hz and the corresponding unit
// delay operators z = e^{i*2*pi*f} for the normalized band [-0.5, 0.5], both
// endpoints included.
func frequencyGrid(n int, sampleRate float64) ([]float64, []complex128) {
	frequencies := make([]float64, n)
	z := make([]complex128, n)

	step := 1 / float64(n-1)
	for i := range n {
		f := -0.5 + float64(i)*step
		frequencies[i] = f * sampleRate
		z[i] = cmplx.Exp(complex(0, 2*math.Pi*f))
	}

	return frequencies, z
}

// evalSpectrum evaluates P(f) = scale / |A(conj(z))|^2 at every grid point,
// where A is the characteristic polynomial of the corrected coefficients
// (descending power order). The magnitude-squared denominator runs through
// the vectorized power kernel.
func evalSpectrum(charCoeff []float64, z []complex128, scale float64) []float64 {
	coeff := make([]complex128, len(charCoeff))
	for i, v := range charCoeff {
		coeff[i] = complex(v, 0)
	}

	re := make([]float64, len(z))
	im := make([]float64, len(z))
	for i, zi := range z {
		v := polyroot.PolyEval(coeff, cmplx.Conj(zi))
		re[i] = real(v)
		im[i] = imag(v)
	}

	den := make([]float64, len(z))
	vecmath.Power(den, re, im)

	powers := make([]float64, len(z))
	for i := range powers {
		powers[i] = scale / den[i]
	}

	return powers
}

// residues computes the partial-fraction residue of every pole via the
// product formula
//
//	residue_i = 1 / (p_i * Π_{j≠i}(p_i - p_j) * Π_j(1/p_i - conj(p_j)))
//
// Coincident or zero-magnitude poles make a factor vanish and are rejected
// with ErrSingularPole instead of propagating Inf/NaN downstream.
func residues(positions []complex128) ([]complex128, error) {
	out := make([]complex128, len(positions))

	for i, p := range positions {
		if cmplx.Abs(p) < singularPoleTol {
			return nil, ErrSingularPole
		}

		den := p
		for j, q := range positions {
			if j == i {
				continue
			}

			diff := p - q
			if cmplx.Abs(diff) < singularPoleTol {
				return nil, ErrSingularPole
			}

			den *= diff
		}

		inv := 1 / p
		for _, q := range positions {
			den *= inv - cmplx.Conj(q)
		}

		out[i] = 1 / den
	}

	return out, nil
}

// components synthesizes every pole's complex spectral signature over the
// grid as the sum of its own term and its conjugate-image term:
//
//	scale * (res*p/(z-p) - conj(res)*(1/conj(p))/(z - 1/conj(p)))
func components(positions, residuals []complex128, z []complex128, scale float64) [][]complex128 {
	out := make([][]complex128, len(positions))
	s := complex(scale, 0)

	for i, p := range positions {
		res := residuals[i]
		ref := 1 / cmplx.Conj(p)
		refRes := -cmplx.Conj(res) * ref

		comp := make([]complex128, len(z))
		for j, zj := range z {
			comp[j] = s * (res*p/(zj-p) + refRes/(zj-ref))
		}

		out[i] = comp
	}

	return out
}

// aggregateConjugates merges the contribution arrays of adjacent conjugate
// pole pairs. Poles arrive sorted by absolute angle, so a pole's conjugate
// partner is always its immediate neighbor; the scan is a greedy adjacent
// merge, not a full pairwise match.
func aggregateConjugates(positions []complex128, comps [][]complex128, tol float64) [][]complex128 {
	if len(comps) == 0 {
		return nil
	}

	out := make([][]complex128, 0, len(comps))

	first := make([]complex128, len(comps[0]))
	copy(first, comps[0])
	out = append(out, first)

	for i := 1; i < len(positions); i++ {
		if polyroot.IsConjugate(positions[i], positions[i-1], tol) {
			last := out[len(out)-1]
			for j, v := range comps[i] {
				last[j] += v
			}

			continue
		}

		group := make([]complex128, len(comps[i]))
		copy(group, comps[i])
		out = append(out, group)
	}

	return out
}
