// Package potentials collects the scaled radial potentials W(r) = 2mV(r)/hbar²
// that ship with the solver. Every potential implements [radial.Potential]
// and [radial.GridEvaluator], and the parametrized ones also implement
// [radial.Tunable] for live adjustment from the explorer UI.
//
// Use [New] to construct one by name, or the typed constructors when the
// concrete parameters matter.
package potentials
