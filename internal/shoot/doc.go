// Package shoot finds bound states by the shooting method: integrate outward
// across a window of trial energies, watch the sign of the wavefunction tail,
// and bisect every sign change down to an eigenvalue.
//
// The three stages compose but are usable separately:
//
//   - [Scanner.Scan]: parallel sweep of trial energies into [Sample] rows
//   - [Brackets]: adjacent samples whose tails straddle zero
//   - [Scanner.Bisect]: refine one bracket to a [BoundState]
//
// [Scanner.FindBound] chains all three. Workers each own a solver instance
// and a reusable wavefunction buffer; samples at different energies are
// independent, which is where the parallelism in this package lives. The
// recurrence itself is sequential.
package shoot
