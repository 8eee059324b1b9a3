package export

import (
	"math"
	"strings"
	"testing"

	"github.com/san-kum/qradial/internal/radial"
)

func TestCurveSVG(t *testing.T) {
	xs := []float64{0, 1, 2, 3}
	ys := []float64{0, 1, -1, 0}

	svg := CurveSVG(xs, ys, 400, 200, "#00ff88")

	if !strings.HasPrefix(svg, `<?xml version="1.0"`) {
		t.Error("expected XML header")
	}
	if !strings.Contains(svg, `<path fill="none" stroke="#00ff88"`) {
		t.Error("expected stroked path")
	}
	if !strings.Contains(svg, "<line") {
		t.Error("expected zero axis for a sign-changing curve")
	}
	if !strings.HasSuffix(svg, "</svg>") {
		t.Error("expected closing tag")
	}
}

func TestCurveSVGSplitsAtNonFinite(t *testing.T) {
	xs := []float64{0, 1, 2, 3, 4}
	ys := []float64{0, 1, math.Inf(1), 1, 0}

	svg := CurveSVG(xs, ys, 400, 200, "#fff")

	if count := strings.Count(svg, "M"); count != 2 {
		t.Errorf("expected 2 path segments, got %d", count)
	}
}

func TestCurveSVGDegenerate(t *testing.T) {
	if svg := CurveSVG([]float64{0}, []float64{0}, 100, 100, "#fff"); svg != "" {
		t.Error("expected empty output for a single point")
	}
	if svg := CurveSVG([]float64{0, 1}, []float64{0}, 100, 100, "#fff"); svg != "" {
		t.Error("expected empty output for mismatched lengths")
	}
	if svg := CurveSVG([]float64{math.NaN(), math.NaN()}, []float64{0, 1}, 100, 100, "#fff"); svg != "" {
		t.Error("expected empty output when nothing is finite")
	}
}

func TestWavefunctionSVG(t *testing.T) {
	g, err := radial.NewGrid(0, 1, 11)
	if err != nil {
		t.Fatal(err)
	}
	u := make(radial.Wavefunction, 11)
	for i := range u {
		u[i] = math.Sin(3 * g.Points[i])
	}

	svg := WavefunctionSVG(g, u, 640, 320)
	if !strings.Contains(svg, `width="640"`) {
		t.Error("expected requested width")
	}
}
