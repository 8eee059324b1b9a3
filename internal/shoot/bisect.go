package shoot

import (
	"context"
	"fmt"
	"math"

	"github.com/san-kum/qradial/internal/analysis"
	"github.com/san-kum/qradial/internal/radial"
)

// BoundState is a refined eigenvalue with its wavefunction.
type BoundState struct {
	K2    float64             // eigenvalue estimate
	Nodes int                 // radial quantum number
	Iters int                 // bisection iterations spent
	U     radial.Wavefunction // unnormalized wavefunction at K2
}

// Bisect shrinks a bracket until its width drops below Tol (relative to the
// energy scale) or MaxIter is reached, then solves once more at the center.
//
// Algorithm:
//  1. Solve at the midpoint energy
//  2. Keep the half whose endpoints still straddle zero
//  3. Stop on width < Tol*max(1, |k2|) and return the final solve
//
// A solver failure mid-bisection is returned as an error; brackets produced
// by Scan from clean samples normally stay clean throughout.
func (s *Scanner) Bisect(ctx context.Context, pot radial.Potential, g radial.Grid, l int, b Bracket) (BoundState, error) {
	if b.Lo.Err != nil || b.Hi.Err != nil {
		return BoundState{}, fmt.Errorf("shoot: bracket endpoints carry errors")
	}

	solver := s.newSolver()
	dst := make(radial.Wavefunction, g.Len())
	lo, hi := b.Lo.K2, b.Hi.K2
	tlo := b.Lo.Tail

	iters := 0
	if lo != hi && tlo != 0 && b.Hi.Tail != 0 {
		tol := s.tol()
		for ; iters < s.maxIter(); iters++ {
			if hi-lo <= tol*math.Max(1, math.Abs(lo)) {
				break
			}
			select {
			case <-ctx.Done():
				return BoundState{}, ctx.Err()
			default:
			}

			mid := lo + (hi-lo)/2
			if err := solveInto(solver, dst, pot, g, mid, l); err != nil {
				return BoundState{}, fmt.Errorf("shoot: bisection solve at k2=%g: %w", mid, err)
			}
			tmid := analysis.Tail(dst)
			if tmid == 0 {
				lo, hi = mid, mid
				break
			}
			if (tmid < 0) == (tlo < 0) {
				lo, tlo = mid, tmid
			} else {
				hi = mid
			}
		}
	}

	k2 := lo + (hi-lo)/2
	u, err := solver.Solve(pot, g, k2, l)
	if err != nil {
		return BoundState{}, fmt.Errorf("shoot: final solve at k2=%g: %w", k2, err)
	}
	return BoundState{
		K2:    k2,
		Nodes: analysis.CountNodes(u),
		Iters: iters,
		U:     u,
	}, nil
}

// FindBound chains Scan, Brackets and Bisect: every sign change in the
// window comes back as a refined BoundState, in ascending energy order.
// Tails also flip across continuum thresholds, so keep the window below
// zero unless the potential confines (harmonic-style wells have genuine
// positive eigenvalues).
func (s *Scanner) FindBound(ctx context.Context, pot radial.Potential, g radial.Grid, l int, k2min, k2max float64, n int) ([]BoundState, error) {
	samples, err := s.Scan(ctx, pot, g, l, k2min, k2max, n)
	if err != nil {
		return nil, err
	}

	var states []BoundState
	for _, b := range Brackets(samples) {
		st, err := s.Bisect(ctx, pot, g, l, b)
		if err != nil {
			return states, err
		}
		states = append(states, st)
	}
	return states, nil
}
