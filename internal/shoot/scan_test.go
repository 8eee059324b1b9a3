package shoot

import (
	"context"
	"errors"
	"testing"

	"github.com/san-kum/qradial/internal/potentials"
	"github.com/san-kum/qradial/internal/radial"
)

func TestScanSquareWell(t *testing.T) {
	g, _ := radial.NewGrid(0, 10, 1001)
	var sc Scanner
	samples, err := sc.Scan(context.Background(), potentials.NewSquareWell(), g, 0, -3.9, -0.01, 40)
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	if len(samples) != 40 {
		t.Fatalf("got %d samples, expected 40", len(samples))
	}
	for i, s := range samples {
		if s.Err != nil {
			t.Fatalf("sample %d at k2=%g failed: %v", i, s.K2, s.Err)
		}
		if i > 0 && s.K2 <= samples[i-1].K2 {
			t.Fatalf("energies not ascending at %d", i)
		}
	}

	brackets := Brackets(samples)
	if len(brackets) != 1 {
		t.Fatalf("got %d brackets, expected 1 for the single bound well", len(brackets))
	}
	b := brackets[0]
	if b.Lo.Nodes != 0 || b.Hi.Nodes != 1 {
		t.Errorf("node counts across the eigenvalue: got (%d, %d), expected (0, 1)", b.Lo.Nodes, b.Hi.Nodes)
	}
}

func TestScanDeterministic(t *testing.T) {
	g, _ := radial.NewGrid(0, 10, 501)
	sc := Scanner{Workers: 3}
	a, err := sc.Scan(context.Background(), potentials.NewSquareWell(), g, 0, -3, -0.1, 25)
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	b, err := sc.Scan(context.Background(), potentials.NewSquareWell(), g, 0, -3, -0.1, 25)
	if err != nil {
		t.Fatalf("second Scan failed: %v", err)
	}
	for i := range a {
		if a[i].K2 != b[i].K2 || a[i].Tail != b[i].Tail || a[i].Nodes != b[i].Nodes {
			t.Fatalf("parallel scans disagree at sample %d: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestScanCollectsPerEnergyFailures(t *testing.T) {
	// h = 1 and W = 10 puts the Numerov coefficient at zero only for the
	// trial energy k2 = -2; the rest of the window must survive
	g, _ := radial.NewGrid(0, 10, 11)
	pot := radial.PotentialFunc(func(r float64) float64 { return 10 })

	var sc Scanner
	samples, err := sc.Scan(context.Background(), pot, g, 0, -3, -1, 5)
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	if !errors.Is(samples[2].Err, radial.ErrUnstable) {
		t.Errorf("k2=-2: got %v, expected ErrUnstable", samples[2].Err)
	}
	for i, s := range samples {
		if i != 2 && s.Err != nil {
			t.Errorf("sample %d at k2=%g unexpectedly failed: %v", i, s.K2, s.Err)
		}
	}
}

func TestScanCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	g, _ := radial.NewGrid(0, 10, 1001)
	var sc Scanner
	if _, err := sc.Scan(ctx, potentials.NewSquareWell(), g, 0, -3, -0.1, 100); !errors.Is(err, context.Canceled) {
		t.Errorf("got %v, expected context.Canceled", err)
	}
}

func TestScanValidation(t *testing.T) {
	g, _ := radial.NewGrid(0, 10, 101)
	var sc Scanner
	if _, err := sc.Scan(context.Background(), potentials.NewZero(), g, 0, -1, -0.5, 1); err == nil {
		t.Error("single-sample window accepted")
	}
	if _, err := sc.Scan(context.Background(), potentials.NewZero(), g, 0, -0.5, -1, 10); err == nil {
		t.Error("inverted window accepted")
	}
	if _, err := sc.Scan(context.Background(), potentials.NewZero(), g, -1, -1, -0.5, 10); err == nil {
		t.Error("negative l accepted")
	}
}

func TestBracketsSkipErrored(t *testing.T) {
	samples := []Sample{
		{K2: -2, Tail: 1},
		{K2: -1.5, Err: errors.New("boom")},
		{K2: -1, Tail: -1},
	}
	brackets := Brackets(samples)
	if len(brackets) != 1 {
		t.Fatalf("got %d brackets, expected 1 across the failed sample", len(brackets))
	}
	if brackets[0].Lo.K2 != -2 || brackets[0].Hi.K2 != -1 {
		t.Errorf("bracket spans [%g, %g], expected [-2, -1]", brackets[0].Lo.K2, brackets[0].Hi.K2)
	}
}

func TestBracketsZeroTail(t *testing.T) {
	samples := []Sample{
		{K2: -2, Tail: 1},
		{K2: -1, Tail: 0},
		{K2: -0.5, Tail: -1},
	}
	brackets := Brackets(samples)
	if len(brackets) != 1 {
		t.Fatalf("got %d brackets, expected the degenerate one", len(brackets))
	}
	if brackets[0].Lo.K2 != -1 || brackets[0].Hi.K2 != -1 {
		t.Errorf("degenerate bracket at %g..%g, expected -1..-1", brackets[0].Lo.K2, brackets[0].Hi.K2)
	}
}
