package analysis

import (
	"math"
	"testing"

	"github.com/san-kum/qradial/internal/radial"
)

func TestCountNodes(t *testing.T) {
	cases := []struct {
		name string
		u    radial.Wavefunction
		want int
	}{
		{"nodeless", radial.Wavefunction{0, 1, 2, 1, 0.5}, 0},
		{"one crossing", radial.Wavefunction{0, 1, -1, -2}, 1},
		{"two crossings", radial.Wavefunction{0, 1, -1, 1}, 2},
		{"exact zero on crossing", radial.Wavefunction{0, 1, 0, -1, 0, 1}, 2},
		{"all zero", radial.Wavefunction{0, 0, 0, 0}, 0},
	}
	for _, tc := range cases {
		if got := CountNodes(tc.u); got != tc.want {
			t.Errorf("%s: got %d nodes, expected %d", tc.name, got, tc.want)
		}
	}
}

func TestCountNodesSine(t *testing.T) {
	// sin(r) over [0, 10] crosses zero at pi, 2pi and 3pi
	u := make(radial.Wavefunction, 1001)
	for i := range u {
		u[i] = math.Sin(float64(i) * 0.01)
	}
	if got := CountNodes(u); got != 3 {
		t.Errorf("got %d nodes, expected 3", got)
	}
}

func TestTail(t *testing.T) {
	if got := Tail(radial.Wavefunction{0, 1, -2.5}); got != -2.5 {
		t.Errorf("got %v, expected -2.5", got)
	}
	if got := Tail(nil); got != 0 {
		t.Errorf("empty: got %v, expected 0", got)
	}
}

func TestPeak(t *testing.T) {
	idx, v := Peak(radial.Wavefunction{0, 1, -3, 2})
	if idx != 2 || v != -3 {
		t.Errorf("got (%d, %v), expected (2, -3)", idx, v)
	}
	idx, _ = Peak(nil)
	if idx != -1 {
		t.Errorf("empty: got index %d, expected -1", idx)
	}
}
