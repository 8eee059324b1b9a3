package potentials

import (
	"fmt"
	"math"
)

// WoodsSaxon is the smoothed nuclear well
//
//	W(r) = -Depth / (1 + exp((r-Radius)/Surface))
//
// which flattens to -Depth inside Radius and decays over a skin of thickness
// Surface. Defaults are a light-nucleus caricature in scaled units.
type WoodsSaxon struct {
	Depth   float64
	Radius  float64
	Surface float64
}

func NewWoodsSaxon() *WoodsSaxon {
	return &WoodsSaxon{Depth: 50.0, Radius: 3.1, Surface: 0.65}
}

func (p *WoodsSaxon) Name() string { return "woods-saxon" }

func (p *WoodsSaxon) Evaluate(r float64) float64 {
	return -p.Depth / (1 + math.Exp((r-p.Radius)/p.Surface))
}

func (p *WoodsSaxon) EvaluateAll(r, w []float64) {
	for i := range r {
		w[i] = -p.Depth / (1 + math.Exp((r[i]-p.Radius)/p.Surface))
	}
}

func (p *WoodsSaxon) GetParams() map[string]float64 {
	return map[string]float64{"depth": p.Depth, "radius": p.Radius, "surface": p.Surface}
}

func (p *WoodsSaxon) SetParam(n string, v float64) error {
	switch n {
	case "depth":
		p.Depth = v
	case "radius":
		p.Radius = v
	case "surface":
		p.Surface = v
	default:
		return fmt.Errorf("potentials: woods-saxon has no parameter %q", n)
	}
	return nil
}
