package analysis

import (
	"math"

	"github.com/san-kum/qradial/internal/radial"
)

// CountNodes returns the number of interior sign changes of u, skipping the
// zero seed at the origin and treating exact zeros as part of the crossing
// they sit on. For a bound state this is the radial quantum number n.
func CountNodes(u radial.Wavefunction) int {
	if len(u) == 0 {
		return 0
	}
	nodes := 0
	prev := 0.0
	for _, v := range u[1:] {
		if v == 0 {
			continue
		}
		if prev != 0 && math.Signbit(v) != math.Signbit(prev) {
			nodes++
		}
		prev = v
	}
	return nodes
}

// Tail returns the signed last sample. Its sign flips exactly when a trial
// energy passes a bound state, which is what the shooting scan brackets.
func Tail(u radial.Wavefunction) float64 {
	if len(u) == 0 {
		return 0
	}
	return u[len(u)-1]
}

// Peak returns the index and signed value of the sample with the largest
// magnitude.
func Peak(u radial.Wavefunction) (int, float64) {
	if len(u) == 0 {
		return -1, 0
	}
	idx := 0
	for i, v := range u {
		if math.Abs(v) > math.Abs(u[idx]) {
			idx = i
		}
	}
	return idx, u[idx]
}
