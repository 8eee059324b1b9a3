package radial

import "math"

// Wavefunction is the reduced radial function u(r) = r*R(r) sampled on a
// grid. Solvers return it unnormalized; see the analysis package for norms
// and node counts.
type Wavefunction []float64

// Clone returns a deep copy of the wavefunction.
func (u Wavefunction) Clone() Wavefunction {
	c := make(Wavefunction, len(u))
	copy(c, u)
	return c
}

// IsFinite reports whether every sample is a finite number.
func (u Wavefunction) IsFinite() bool {
	for _, v := range u {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// MaxAbs returns the largest absolute sample, 0 for an empty wavefunction.
func (u Wavefunction) MaxAbs() float64 {
	m := 0.0
	for _, v := range u {
		if a := math.Abs(v); a > m {
			m = a
		}
	}
	return m
}

// Potential evaluates the scaled potential W(r) = 2mV(r)/hbar². It must
// return a finite value for every radius the grid visits; NaN or Inf aborts
// the solve.
type Potential interface {
	// Name returns a short identifier used in run metadata and the CLI.
	Name() string
	// Evaluate returns W(r) at a single radius.
	Evaluate(r float64) float64
}

// PotentialFunc adapts a plain function to the Potential interface.
type PotentialFunc func(r float64) float64

// Name implements Potential.
func (f PotentialFunc) Name() string { return "func" }

// Evaluate implements Potential.
func (f PotentialFunc) Evaluate(r float64) float64 { return f(r) }

// GridEvaluator is implemented by potentials that can fill a whole grid in
// one call. BuildDriver prefers it over point-wise Evaluate when available;
// the two must agree at every radius.
type GridEvaluator interface {
	// EvaluateAll writes W(r[i]) into w[i]. len(w) == len(r) is the
	// caller's responsibility.
	EvaluateAll(r, w []float64)
}

// Tunable is implemented by potentials whose parameters can be inspected and
// adjusted at runtime, for interactive exploration and parameter sweeps.
type Tunable interface {
	// GetParams returns the current parameters keyed by name.
	GetParams() map[string]float64
	// SetParam updates a single parameter by name.
	SetParam(name string, value float64) error
}

// Solver produces the radial wavefunction for one (potential, grid, k2, l)
// problem. k2 is the scaled energy 2mE/hbar² and l the orbital angular
// momentum quantum number.
type Solver interface {
	// Name returns the method identifier, e.g. "numerov".
	Name() string
	// Solve integrates outward across the grid and returns u at every
	// grid point.
	Solve(pot Potential, g Grid, k2 float64, l int) (Wavefunction, error)
}
