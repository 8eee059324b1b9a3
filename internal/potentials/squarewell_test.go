package potentials

import (
	"math"
	"testing"
)

func TestSquareWellEvaluate(t *testing.T) {
	p := NewSquareWell()
	if got := p.Evaluate(0.5); got != -4 {
		t.Errorf("inside: got %v, expected -4", got)
	}
	if got := p.Evaluate(1.0); got != 0 {
		t.Errorf("at edge: got %v, expected 0", got)
	}
	if got := p.Evaluate(3.0); got != 0 {
		t.Errorf("outside: got %v, expected 0", got)
	}
}

func TestSquareWellSetParam(t *testing.T) {
	p := NewSquareWell()
	if err := p.SetParam("depth", 10); err != nil {
		t.Fatalf("SetParam failed: %v", err)
	}
	if err := p.SetParam("range", 2); err != nil {
		t.Fatalf("SetParam failed: %v", err)
	}
	if got := p.Evaluate(1.5); got != -10 {
		t.Errorf("got %v, expected -10 after widening", got)
	}
	if err := p.SetParam("mass", 1); err == nil {
		t.Error("unknown parameter accepted")
	}
	params := p.GetParams()
	if params["depth"] != 10 || params["range"] != 2 {
		t.Errorf("GetParams returned %v", params)
	}
}

func TestSquareWellDefaultBindsOneState(t *testing.T) {
	// the default well satisfies the one-bound-state window
	// pi²/4 < Depth*Range² < 9pi²/4
	p := NewSquareWell()
	x := p.Depth * p.Range * p.Range
	lo, hi := math.Pi*math.Pi/4, 9*math.Pi*math.Pi/4
	if x <= lo || x >= hi {
		t.Errorf("Depth*Range² = %v outside (%v, %v)", x, lo, hi)
	}
}
