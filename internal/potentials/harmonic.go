package potentials

import "fmt"

// Harmonic is the isotropic oscillator W(r) = Beta²r², whose spectrum is
// k2 = Beta(4n + 2l + 3) for radial quantum number n.
type Harmonic struct {
	Beta float64
}

func NewHarmonic() *Harmonic {
	return &Harmonic{Beta: 1.0}
}

func (p *Harmonic) Name() string { return "harmonic" }

func (p *Harmonic) Evaluate(r float64) float64 {
	return p.Beta * p.Beta * r * r
}

func (p *Harmonic) EvaluateAll(r, w []float64) {
	b2 := p.Beta * p.Beta
	for i := range r {
		w[i] = b2 * r[i] * r[i]
	}
}

// Level returns the analytic level k2 = Beta(4n + 2l + 3).
func (p *Harmonic) Level(n, l int) float64 {
	return p.Beta * float64(4*n+2*l+3)
}

func (p *Harmonic) GetParams() map[string]float64 {
	return map[string]float64{"beta": p.Beta}
}

func (p *Harmonic) SetParam(n string, v float64) error {
	if n != "beta" {
		return fmt.Errorf("potentials: harmonic has no parameter %q", n)
	}
	p.Beta = v
	return nil
}
