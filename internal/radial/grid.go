package radial

import (
	"fmt"
	"math"
)

// uniformTol is the allowed relative deviation between consecutive spacings
// before a grid is rejected as non-uniform.
const uniformTol = 1e-9

// Grid is a uniformly spaced radial mesh. Points are strictly increasing and
// Step holds the common spacing h. Construct grids through NewGrid or
// FromPoints; a zero Grid is not usable.
type Grid struct {
	Points []float64
	Step   float64
}

// NewGrid builds a uniform grid of n points spanning [rMin, rMax] inclusive.
// Point i sits at rMin + i*h with h = (rMax-rMin)/(n-1), so halving h through
// Refine reproduces the original points bit for bit.
func NewGrid(rMin, rMax float64, n int) (Grid, error) {
	if n < 3 {
		return Grid{}, fmt.Errorf("%w: got %d", ErrGridTooSmall, n)
	}
	if rMin < 0 {
		return Grid{}, fmt.Errorf("radial: rmin must be >= 0, got %g", rMin)
	}
	if rMax <= rMin {
		return Grid{}, fmt.Errorf("%w: rmax %g <= rmin %g", ErrGridNotIncreasing, rMax, rMin)
	}
	h := (rMax - rMin) / float64(n-1)
	pts := make([]float64, n)
	for i := range pts {
		pts[i] = rMin + float64(i)*h
	}
	return Grid{Points: pts, Step: h}, nil
}

// FromPoints validates an existing mesh and wraps it in a Grid. The points
// must be strictly increasing with uniform spacing; the slice is copied so
// the caller keeps ownership of its argument.
func FromPoints(points []float64) (Grid, error) {
	if len(points) < 3 {
		return Grid{}, fmt.Errorf("%w: got %d", ErrGridTooSmall, len(points))
	}
	if points[0] < 0 {
		return Grid{}, fmt.Errorf("radial: grid starts at negative radius %g", points[0])
	}
	h := points[1] - points[0]
	if h <= 0 {
		return Grid{}, fmt.Errorf("%w: points[1]-points[0] = %g", ErrGridNotIncreasing, h)
	}
	for i := 2; i < len(points); i++ {
		d := points[i] - points[i-1]
		if d <= 0 {
			return Grid{}, fmt.Errorf("%w: at index %d", ErrGridNotIncreasing, i)
		}
		if math.Abs(d-h) > uniformTol*h {
			return Grid{}, fmt.Errorf("%w: spacing %g at index %d, expected %g", ErrGridNotUniform, d, i, h)
		}
	}
	pts := make([]float64, len(points))
	copy(pts, points)
	return Grid{Points: pts, Step: h}, nil
}

// Len returns the number of grid points.
func (g Grid) Len() int { return len(g.Points) }

// Rmin returns the first radius, 0 for an empty grid.
func (g Grid) Rmin() float64 {
	if len(g.Points) == 0 {
		return 0
	}
	return g.Points[0]
}

// Rmax returns the last radius, 0 for an empty grid.
func (g Grid) Rmax() float64 {
	if len(g.Points) == 0 {
		return 0
	}
	return g.Points[len(g.Points)-1]
}

// Refine returns a grid over the same interval with the step halved. Every
// coarse point reappears exactly in the refined grid, which makes
// convergence studies compare like with like.
func (g Grid) Refine() Grid {
	if len(g.Points) < 2 {
		return g
	}
	h := g.Step / 2
	pts := make([]float64, 2*len(g.Points)-1)
	for i := range pts {
		pts[i] = g.Points[0] + float64(i)*h
	}
	return Grid{Points: pts, Step: h}
}
