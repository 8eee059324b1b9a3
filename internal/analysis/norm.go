package analysis

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/san-kum/qradial/internal/radial"
)

// Norm returns the trapezoidal L2 norm sqrt(integral of u² dr) of a
// wavefunction sampled with step h.
func Norm(u radial.Wavefunction, h float64) float64 {
	if len(u) < 2 {
		return 0
	}
	sum := floats.Dot(u, u)
	sum -= 0.5 * (u[0]*u[0] + u[len(u)-1]*u[len(u)-1])
	return math.Sqrt(h * sum)
}

// Normalize scales u in place to unit L2 norm and returns the norm it had.
// A zero wavefunction is left untouched and reported as 0.
func Normalize(u radial.Wavefunction, h float64) float64 {
	n := Norm(u, h)
	if n == 0 {
		return 0
	}
	floats.Scale(1/n, u)
	return n
}

// EnergyExpectation evaluates the discrete Rayleigh quotient
//
//	<u|H|u> / <u|u>,  H = -d²/dr² + W(r) + l(l+1)/r²
//
// with a central second difference over the interior points. For an
// eigenstate it reproduces k2 to O(h²), which makes it a cheap consistency
// check on solver output.
func EnergyExpectation(u radial.Wavefunction, g radial.Grid, pot radial.Potential, l int) (float64, error) {
	n := g.Len()
	if len(u) != n {
		return 0, fmt.Errorf("%w: len(u) = %d, grid has %d points", radial.ErrBufferSize, len(u), n)
	}
	if err := radial.ValidateProblem(g, l); err != nil {
		return 0, err
	}

	h2 := g.Step * g.Step
	cl := float64(l * (l + 1))
	num, den := 0.0, 0.0
	for i := 1; i < n-1; i++ {
		r := g.Points[i]
		w := pot.Evaluate(r)
		if l > 0 {
			w += cl / (r * r)
		}
		d2 := (u[i+1] - 2*u[i] + u[i-1]) / h2
		num += u[i] * (w*u[i] - d2)
		den += u[i] * u[i]
	}
	if den == 0 {
		return 0, fmt.Errorf("analysis: zero wavefunction has no energy expectation")
	}
	return num / den, nil
}
