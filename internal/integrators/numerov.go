package integrators

import (
	"fmt"
	"math"

	"github.com/san-kum/qradial/internal/radial"
)

// denomFloor guards the division in the Numerov recurrence. A coefficient
// this close to zero means h²f(r) is near -12, far outside the step sizes
// the method is stable for.
const denomFloor = 1e-10

// Numerov integrates u'' + f(r)u = 0 outward with the three-term recurrence
//
//	u[i+1] = ((12 - 10c[i])u[i] - c[i-1]u[i-1]) / c[i+1]
//	c[i]   = 1 + h²f[i]/12
//
// which is fourth order in the step h. The recurrence is sequential; run
// separate solver instances to parallelize across energies.
type Numerov struct {
	driver []float64
	coef   []float64
}

func NewNumerov() *Numerov {
	return &Numerov{}
}

func (nv *Numerov) Name() string { return "numerov" }

func (nv *Numerov) ensureScratch(n int) {
	if cap(nv.coef) < n {
		nv.coef = make([]float64, n)
	}
	nv.coef = nv.coef[:n]
}

// Solve allocates a fresh wavefunction for the result. See SolveInto for the
// allocation-free variant used by energy scans.
func (nv *Numerov) Solve(pot radial.Potential, g radial.Grid, k2 float64, l int) (radial.Wavefunction, error) {
	u := make(radial.Wavefunction, g.Len())
	if err := nv.SolveInto(u, pot, g, k2, l); err != nil {
		return nil, err
	}
	return u, nil
}

// SolveInto integrates into dst, which must have exactly one sample per grid
// point. The boundary seeds are u[0] = 0 and u[1] = r[1]^(l+1), the small-r
// behavior of the regular solution.
func (nv *Numerov) SolveInto(dst radial.Wavefunction, pot radial.Potential, g radial.Grid, k2 float64, l int) error {
	n := g.Len()
	if len(dst) != n {
		return fmt.Errorf("%w: len(dst) = %d, grid has %d points", radial.ErrBufferSize, len(dst), n)
	}

	f, err := radial.BuildDriver(pot, g, k2, l, nv.driver)
	if err != nil {
		return err
	}
	nv.driver = f

	nv.ensureScratch(n)
	c := nv.coef
	h12 := g.Step * g.Step / 12
	for i, fi := range f {
		c[i] = 1 + h12*fi
	}

	dst[0] = 0
	dst[1] = seed(g.Points[1], l)
	for i := 1; i < n-1; i++ {
		den := c[i+1]
		if math.Abs(den) < denomFloor {
			return &radial.StepError{Index: i + 1, R: g.Points[i+1], Wrapped: radial.ErrUnstable}
		}
		next := ((12-10*c[i])*dst[i] - c[i-1]*dst[i-1]) / den
		if math.IsNaN(next) || math.IsInf(next, 0) {
			return &radial.StepError{Index: i + 1, R: g.Points[i+1], Wrapped: radial.ErrUnstable}
		}
		dst[i+1] = next
	}
	return nil
}

// seed returns u(r1) = r1^(l+1), the leading term of the regular solution
// near the origin.
func seed(r1 float64, l int) float64 {
	return math.Pow(r1, float64(l+1))
}
