package potentials

import (
	"math"
	"testing"
)

func TestCoulombEvaluate(t *testing.T) {
	p := NewCoulomb()
	if got := p.Evaluate(1); got != -2 {
		t.Errorf("got %v, expected -2", got)
	}
	if got := p.Evaluate(4); got != -0.5 {
		t.Errorf("got %v, expected -0.5", got)
	}
	p.Z = 2
	if got := p.Evaluate(1); got != -4 {
		t.Errorf("Z=2: got %v, expected -4", got)
	}
}

func TestCoulombLevels(t *testing.T) {
	p := NewCoulomb()
	if got := p.Level(1); got != -1 {
		t.Errorf("ground state: got %v, expected -1", got)
	}
	if got := p.Level(2); got != -0.25 {
		t.Errorf("n=2: got %v, expected -0.25", got)
	}
	p.Z = 3
	if got := p.Level(3); math.Abs(got+1) > 1e-15 {
		t.Errorf("Z=3 n=3: got %v, expected -1", got)
	}
}

func TestCoulombDivergesAtOrigin(t *testing.T) {
	p := NewCoulomb()
	if !math.IsInf(p.Evaluate(0), -1) {
		t.Errorf("got %v at r=0, expected -Inf", p.Evaluate(0))
	}
}
