package radial

import (
	"fmt"
	"math"
)

// ValidateProblem checks the (grid, l) pair that every solver shares: the
// grid must have at least 3 points with positive spacing, l must be
// non-negative, and grids that include the origin are only allowed for l = 0
// where the centrifugal term vanishes.
func ValidateProblem(g Grid, l int) error {
	if g.Len() < 3 {
		return fmt.Errorf("%w: got %d", ErrGridTooSmall, g.Len())
	}
	if g.Step <= 0 {
		return fmt.Errorf("%w: step %g", ErrGridNotIncreasing, g.Step)
	}
	if l < 0 {
		return fmt.Errorf("%w: l = %d", ErrAngularMomentum, l)
	}
	if l > 0 && g.Points[0] <= 0 {
		return fmt.Errorf("%w: grid starts at r = %g with l = %d", ErrOriginSingularity, g.Points[0], l)
	}
	return nil
}

// BuildDriver fills dst with the recurrence driver
//
//	f(r) = k2 - W(r) - l(l+1)/r²
//
// at every grid point and returns the driver slice, reusing dst's backing
// array when it has enough capacity. Potentials implementing GridEvaluator
// are evaluated in one call, everything else point by point. A NaN or Inf
// from the potential aborts with ErrPotentialNotFinite wrapped in a
// StepError naming the offending radius.
func BuildDriver(pot Potential, g Grid, k2 float64, l int, dst []float64) ([]float64, error) {
	if err := ValidateProblem(g, l); err != nil {
		return nil, err
	}
	n := g.Len()
	if cap(dst) < n {
		dst = make([]float64, n)
	} else {
		dst = dst[:n]
	}
	if ge, ok := pot.(GridEvaluator); ok {
		ge.EvaluateAll(g.Points, dst)
	} else {
		for i, r := range g.Points {
			dst[i] = pot.Evaluate(r)
		}
	}
	cl := float64(l * (l + 1))
	for i, r := range g.Points {
		w := dst[i]
		if math.IsNaN(w) || math.IsInf(w, 0) {
			return nil, &StepError{Index: i, R: r, Wrapped: ErrPotentialNotFinite}
		}
		if l > 0 {
			w += cl / (r * r)
		}
		dst[i] = k2 - w
	}
	return dst, nil
}
