package analysis

import (
	"errors"
	"fmt"
	"math"

	"github.com/san-kum/qradial/internal/radial"
)

// ErrIllConditioned reports that the two sample radii are separated by a
// near-multiple of half the de Broglie wavelength, where the phase
// extraction loses all precision.
var ErrIllConditioned = errors.New("analysis: sample points ill-conditioned for phase extraction")

// condFloor rejects extractions where the sin/cos system determinant has
// lost six or more digits.
const condFloor = 1e-6

// PhaseShift extracts the s-wave scattering phase from two samples taken
// outside the potential's range, where u is a free wave
//
//	u(r) = A sin(kr + delta),  k = sqrt(k2)
//
// Algorithm:
//  1. Write u = P sin(kr) + Q cos(kr)
//  2. Solve the 2x2 system from the samples at i1 and i2
//  3. delta = atan2(Q, P), defined modulo pi
//
// Both indices must lie in the region where W(r) is negligible; that is the
// caller's call. The returned shift is in (-pi, pi].
func PhaseShift(u radial.Wavefunction, g radial.Grid, k2 float64, i1, i2 int) (float64, error) {
	if k2 <= 0 {
		return 0, fmt.Errorf("analysis: phase shift needs a scattering energy, k2 = %g", k2)
	}
	if len(u) != g.Len() {
		return 0, fmt.Errorf("%w: len(u) = %d, grid has %d points", radial.ErrBufferSize, len(u), g.Len())
	}
	if i1 < 0 || i2 >= len(u) || i1 >= i2 {
		return 0, fmt.Errorf("analysis: sample indices %d, %d out of order or range", i1, i2)
	}

	k := math.Sqrt(k2)
	s1, c1 := math.Sincos(k * g.Points[i1])
	s2, c2 := math.Sincos(k * g.Points[i2])
	det := s1*c2 - c1*s2
	if math.Abs(det) < condFloor {
		return 0, fmt.Errorf("%w: k*(r2-r1) = %g", ErrIllConditioned, k*(g.Points[i2]-g.Points[i1]))
	}

	p := (u[i1]*c2 - u[i2]*c1) / det
	q := (u[i2]*s1 - u[i1]*s2) / det
	if p == 0 && q == 0 {
		return 0, fmt.Errorf("analysis: both samples vanish, phase undefined")
	}
	return math.Atan2(q, p), nil
}

// WrapPhase reduces an angle difference into (-pi/2, pi/2] so phases defined
// modulo pi can be compared directly.
func WrapPhase(d float64) float64 {
	d = math.Mod(d, math.Pi)
	if d > math.Pi/2 {
		d -= math.Pi
	} else if d <= -math.Pi/2 {
		d += math.Pi
	}
	return d
}
