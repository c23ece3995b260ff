// Package spectral decomposes a fitted AR point-process model into its
// power spectral density and the underlying pole structure.
//
// The decomposition locates the roots of the AR characteristic polynomial
// (the poles), corrects for estimation instability by a uniform exponential
// decay, evaluates the continuous spectrum on a frequency grid, attributes a
// partial-fraction residue and power to each pole, and optionally merges the
// contributions of complex-conjugate pole pairs into single real-valued
// components.
//
// The computation is a pure function of the model snapshot: results own all
// their slices and never alias caller data, so independent calls are safe
// from concurrent goroutines.
package spectral
