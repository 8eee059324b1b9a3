package shoot

import (
	"context"
	"math"
	"testing"

	"github.com/san-kum/qradial/internal/potentials"
	"github.com/san-kum/qradial/internal/radial"
)

func TestFindBoundSquareWell(t *testing.T) {
	g, _ := radial.NewGrid(0, 10, 1001)
	var sc Scanner
	states, err := sc.FindBound(context.Background(), potentials.NewSquareWell(), g, 0, -3.9, -0.01, 40)
	if err != nil {
		t.Fatalf("FindBound failed: %v", err)
	}
	if len(states) != 1 {
		t.Fatalf("got %d states, expected 1", len(states))
	}
	st := states[0]
	if st.Nodes != 0 {
		t.Errorf("ground state has %d nodes, expected 0", st.Nodes)
	}
	if !st.U.IsFinite() {
		t.Error("wavefunction contains non-finite samples")
	}

	// the eigenvalue satisfies the s-wave matching condition
	// kappa_in*cot(kappa_in*R) = -kappa_out
	ki := math.Sqrt(4 + st.K2)
	ko := math.Sqrt(-st.K2)
	if res := ki/math.Tan(ki) + ko; math.Abs(res) > 0.01 {
		t.Errorf("matching residual %v at k2=%v, expected about 0", res, st.K2)
	}
	if math.Abs(st.K2+0.407) > 0.01 {
		t.Errorf("got k2=%v, expected about -0.407", st.K2)
	}
}

func TestFindBoundHydrogen(t *testing.T) {
	g, _ := radial.NewGrid(0.001, 30.001, 3001)
	var sc Scanner
	states, err := sc.FindBound(context.Background(), potentials.NewCoulomb(), g, 0, -1.2, -0.2, 60)
	if err != nil {
		t.Fatalf("FindBound failed: %v", err)
	}
	if len(states) != 2 {
		t.Fatalf("got %d states, expected 1s and 2s", len(states))
	}
	if math.Abs(states[0].K2+1) > 0.01 || states[0].Nodes != 0 {
		t.Errorf("1s: got k2=%v with %d nodes, expected -1 with 0", states[0].K2, states[0].Nodes)
	}
	if math.Abs(states[1].K2+0.25) > 0.01 || states[1].Nodes != 1 {
		t.Errorf("2s: got k2=%v with %d nodes, expected -0.25 with 1", states[1].K2, states[1].Nodes)
	}
}

func TestFindBoundHarmonic(t *testing.T) {
	g, _ := radial.NewGrid(0, 6, 1201)
	osc := potentials.NewHarmonic()
	var sc Scanner
	states, err := sc.FindBound(context.Background(), osc, g, 0, 2, 12, 101)
	if err != nil {
		t.Fatalf("FindBound failed: %v", err)
	}
	if len(states) != 3 {
		t.Fatalf("got %d states, expected 3", len(states))
	}
	for i, st := range states {
		want := osc.Level(i, 0)
		if math.Abs(st.K2-want) > 0.01 {
			t.Errorf("state %d: got k2=%v, expected %v", i, st.K2, want)
		}
		if st.Nodes != i {
			t.Errorf("state %d: got %d nodes, expected %d", i, st.Nodes, i)
		}
	}
}

func TestBisectRespectsMaxIter(t *testing.T) {
	g, _ := radial.NewGrid(0, 10, 1001)
	sc := Scanner{MaxIter: 3, Tol: 1e-300}
	samples, err := sc.Scan(context.Background(), potentials.NewSquareWell(), g, 0, -3.9, -0.01, 40)
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	brackets := Brackets(samples)
	if len(brackets) != 1 {
		t.Fatalf("got %d brackets, expected 1", len(brackets))
	}

	st, err := sc.Bisect(context.Background(), potentials.NewSquareWell(), g, 0, brackets[0])
	if err != nil {
		t.Fatalf("Bisect failed: %v", err)
	}
	if st.Iters != 3 {
		t.Errorf("got %d iterations, expected the cap of 3", st.Iters)
	}
	if st.K2 < brackets[0].Lo.K2 || st.K2 > brackets[0].Hi.K2 {
		t.Errorf("k2=%v escaped the bracket [%v, %v]", st.K2, brackets[0].Lo.K2, brackets[0].Hi.K2)
	}
}

func TestBisectDegenerateBracket(t *testing.T) {
	g, _ := radial.NewGrid(0, 10, 501)
	var sc Scanner
	b := Bracket{Lo: Sample{K2: -0.5}, Hi: Sample{K2: -0.5}}
	st, err := sc.Bisect(context.Background(), potentials.NewSquareWell(), g, 0, b)
	if err != nil {
		t.Fatalf("Bisect failed: %v", err)
	}
	if st.K2 != -0.5 {
		t.Errorf("got k2=%v, expected the degenerate -0.5", st.K2)
	}
	if st.Iters != 0 {
		t.Errorf("got %d iterations, expected 0", st.Iters)
	}
}

func TestFindBoundEmptyWindow(t *testing.T) {
	g, _ := radial.NewGrid(0, 10, 501)
	var sc Scanner
	states, err := sc.FindBound(context.Background(), potentials.NewZero(), g, 0, -2, -0.1, 30)
	if err != nil {
		t.Fatalf("FindBound failed: %v", err)
	}
	if len(states) != 0 {
		t.Errorf("free particle produced %d bound states", len(states))
	}
}
