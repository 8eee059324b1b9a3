package potentials

import "fmt"

// SquareWell is the finite spherical well: W(r) = -Depth for r < Range and 0
// beyond. With the default Depth 4 and Range 1 it binds exactly one s-wave
// state near k2 = -0.407.
type SquareWell struct {
	Depth float64
	Range float64
}

func NewSquareWell() *SquareWell {
	return &SquareWell{Depth: 4.0, Range: 1.0}
}

func (p *SquareWell) Name() string { return "square-well" }

func (p *SquareWell) Evaluate(r float64) float64 {
	if r < p.Range {
		return -p.Depth
	}
	return 0
}

func (p *SquareWell) EvaluateAll(r, w []float64) {
	for i := range r {
		if r[i] < p.Range {
			w[i] = -p.Depth
		} else {
			w[i] = 0
		}
	}
}

func (p *SquareWell) GetParams() map[string]float64 {
	return map[string]float64{"depth": p.Depth, "range": p.Range}
}

func (p *SquareWell) SetParam(n string, v float64) error {
	switch n {
	case "depth":
		p.Depth = v
	case "range":
		p.Range = v
	default:
		return fmt.Errorf("potentials: square-well has no parameter %q", n)
	}
	return nil
}
