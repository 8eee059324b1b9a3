package potentials

import (
	"math"
	"testing"
)

func TestWoodsSaxonShape(t *testing.T) {
	p := NewWoodsSaxon()

	// half depth exactly at the radius
	if got := p.Evaluate(p.Radius); got != -p.Depth/2 {
		t.Errorf("at radius: got %v, expected %v", got, -p.Depth/2)
	}
	// flat bottom well inside, near zero far outside
	if got := p.Evaluate(0); math.Abs(got+p.Depth) > 0.01*p.Depth {
		t.Errorf("at origin: got %v, expected about %v", got, -p.Depth)
	}
	if got := p.Evaluate(p.Radius + 10*p.Surface); math.Abs(got) > 0.01*p.Depth {
		t.Errorf("far field: got %v, expected about 0", got)
	}
	// monotonically rising through the surface
	prev := p.Evaluate(0)
	for r := 0.5; r < 8; r += 0.5 {
		w := p.Evaluate(r)
		if w < prev {
			t.Fatalf("not monotonic at r=%v: %v < %v", r, w, prev)
		}
		prev = w
	}
}

func TestWoodsSaxonSetParam(t *testing.T) {
	p := NewWoodsSaxon()
	for name, v := range map[string]float64{"depth": 60, "radius": 4, "surface": 0.5} {
		if err := p.SetParam(name, v); err != nil {
			t.Fatalf("SetParam(%q) failed: %v", name, err)
		}
	}
	if p.Depth != 60 || p.Radius != 4 || p.Surface != 0.5 {
		t.Errorf("params not applied: %+v", p)
	}
	if err := p.SetParam("charge", 1); err == nil {
		t.Error("unknown parameter accepted")
	}
}
