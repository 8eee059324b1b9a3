package integrators

import (
	"fmt"
	"math"

	"github.com/san-kum/qradial/internal/radial"
)

// CentralDiff integrates u'' + f(r)u = 0 with the plain second-order
// discretization
//
//	u[i+1] = (2 - h²f[i])u[i] - u[i-1]
//
// It shares seeds and error handling with Numerov and exists as the
// cross-check for convergence studies: halving h should shrink its error by
// 4 and Numerov's by 16.
type CentralDiff struct {
	driver []float64
}

func NewCentralDiff() *CentralDiff {
	return &CentralDiff{}
}

func (cd *CentralDiff) Name() string { return "central" }

// Solve allocates a fresh wavefunction for the result.
func (cd *CentralDiff) Solve(pot radial.Potential, g radial.Grid, k2 float64, l int) (radial.Wavefunction, error) {
	u := make(radial.Wavefunction, g.Len())
	if err := cd.SolveInto(u, pot, g, k2, l); err != nil {
		return nil, err
	}
	return u, nil
}

// SolveInto integrates into dst with the same boundary seeds as Numerov.
func (cd *CentralDiff) SolveInto(dst radial.Wavefunction, pot radial.Potential, g radial.Grid, k2 float64, l int) error {
	n := g.Len()
	if len(dst) != n {
		return fmt.Errorf("%w: len(dst) = %d, grid has %d points", radial.ErrBufferSize, len(dst), n)
	}

	f, err := radial.BuildDriver(pot, g, k2, l, cd.driver)
	if err != nil {
		return err
	}
	cd.driver = f

	h2 := g.Step * g.Step
	dst[0] = 0
	dst[1] = seed(g.Points[1], l)
	for i := 1; i < n-1; i++ {
		next := (2-h2*f[i])*dst[i] - dst[i-1]
		if math.IsNaN(next) || math.IsInf(next, 0) {
			return &radial.StepError{Index: i + 1, R: g.Points[i+1], Wrapped: radial.ErrUnstable}
		}
		dst[i+1] = next
	}
	return nil
}
