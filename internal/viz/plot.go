package viz

import (
	"fmt"
	"math"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/qradial/internal/radial"
)

// WavefunctionChart renders u against its grid index as a compact line chart.
func WavefunctionChart(u radial.Wavefunction, height, width int, caption string) string {
	return asciigraph.Plot(u,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(caption),
	)
}

// TailChart renders scan tails against the energy window. The tail of an
// off-eigenvalue solution grows exponentially, so the values are passed
// through asinh to compress the range while keeping the sign. Zero
// crossings of the chart bracket eigenvalues.
func TailChart(k2s, tails []float64, height, width int) string {
	compressed := make([]float64, len(tails))
	for i, t := range tails {
		compressed[i] = math.Asinh(t)
	}

	caption := "asinh(tail)"
	if len(k2s) > 1 {
		caption = fmt.Sprintf("asinh(tail), k2 in [%.4g, %.4g]", k2s[0], k2s[len(k2s)-1])
	}

	return asciigraph.Plot(compressed,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(caption),
	)
}

// WavefunctionCanvas renders u(r) on a braille canvas with a zero axis.
// Non-finite samples are left out of the range fit.
func WavefunctionCanvas(g radial.Grid, u radial.Wavefunction, width, height int) string {
	c := NewCanvas(width, height)

	ymin, ymax := bounds(u)
	if ymin == ymax {
		ymin, ymax = ymin-1, ymax+1
	}
	pad := 0.05 * (ymax - ymin)
	ymin -= pad
	ymax += pad

	c.HLine(0, ymin, ymax)
	c.DrawCurve(g.Points, u, g.Rmin(), g.Rmax(), ymin, ymax)
	return c.String()
}

func bounds(v []float64) (float64, float64) {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, x := range v {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			continue
		}
		if x < lo {
			lo = x
		}
		if x > hi {
			hi = x
		}
	}
	if lo > hi {
		return 0, 1
	}
	return lo, hi
}
