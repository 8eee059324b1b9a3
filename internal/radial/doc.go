// Package radial provides the core vocabulary for radial Schrödinger problems.
//
// The package defines the types shared by solvers, potentials and analysis
// passes:
//
//   - [Grid]: uniform radial mesh
//   - [Potential]: scaled potential term W(r) = 2mV(r)/hbar², same units as k2
//   - [Wavefunction]: the reduced radial function u(r) = r*R(r)
//   - [Solver]: whole-grid boundary-value integrators
//   - [BuildDriver]: the recurrence driver f(r) = k2 - W(r) - l(l+1)/r²
//
// All quantities are in scaled units with hbar²/2m = 1, so the integrated
// equation reads u'' + f(r)u = 0 and energies carry inverse length-squared
// units.
//
// # Example
//
//	g, _ := radial.NewGrid(0, 10, 1001)
//	u, _ := integrators.NewNumerov().Solve(potentials.NewSquareWell(), g, 1.0, 0)
//
// # Thread Safety
//
// Grids and wavefunctions are plain values with no hidden state. Solvers keep
// internal scratch buffers and are NOT safe for concurrent use; give each
// goroutine its own instance (see the shoot package).
package radial
