package potentials

import "fmt"

// Coulomb is the attractive point-charge potential W(r) = -2Z/r in Rydberg
// scaled units, where the hydrogen spectrum sits at k2 = -Z²/n². It diverges
// at the origin, so grids must start at r > 0.
type Coulomb struct {
	Z float64
}

func NewCoulomb() *Coulomb {
	return &Coulomb{Z: 1.0}
}

func (p *Coulomb) Name() string { return "coulomb" }

func (p *Coulomb) Evaluate(r float64) float64 {
	return -2 * p.Z / r
}

func (p *Coulomb) EvaluateAll(r, w []float64) {
	for i := range r {
		w[i] = -2 * p.Z / r[i]
	}
}

// Level returns the analytic bound energy k2 = -Z²/n² for principal quantum
// number n.
func (p *Coulomb) Level(n int) float64 {
	return -p.Z * p.Z / float64(n*n)
}

func (p *Coulomb) GetParams() map[string]float64 {
	return map[string]float64{"Z": p.Z}
}

func (p *Coulomb) SetParam(n string, v float64) error {
	if n != "Z" {
		return fmt.Errorf("potentials: coulomb has no parameter %q", n)
	}
	p.Z = v
	return nil
}
