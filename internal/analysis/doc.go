// Package analysis provides post-processing for solved radial wavefunctions.
//
// The package includes the standard diagnostics applied after a solve:
//
//   - [CountNodes]: interior sign changes, the bound-state ordering number
//   - [Norm] / [Normalize]: trapezoidal L2 norm on a uniform grid
//   - [EnergyExpectation]: discrete <u|H|u>/<u|u> sanity check
//   - [PhaseShift]: s-wave scattering phase from two exterior samples
//   - [SelfConvergence]: observed convergence order from grid refinement
//
// # Phase Shifts
//
// Outside a finite-range potential the scattering solution is a shifted
// sine, and two samples pin the shift:
//
//	delta, err := analysis.PhaseShift(u, g, k2, i1, i2)
//	if errors.Is(err, analysis.ErrIllConditioned) {
//	    // pick samples separated by a fraction of a wavelength
//	}
package analysis
