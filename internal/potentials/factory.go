package potentials

import (
	"fmt"
	"sort"

	"github.com/san-kum/qradial/internal/radial"
)

var builders = map[string]func() radial.Potential{
	"square-well": func() radial.Potential { return NewSquareWell() },
	"coulomb":     func() radial.Potential { return NewCoulomb() },
	"harmonic":    func() radial.Potential { return NewHarmonic() },
	"woods-saxon": func() radial.Potential { return NewWoodsSaxon() },
	"zero":        func() radial.Potential { return NewZero() },
}

// New builds the named potential with its default parameters. Adjust fields
// afterwards through the concrete type or the Tunable interface.
func New(name string) (radial.Potential, error) {
	fn, ok := builders[name]
	if !ok {
		return nil, fmt.Errorf("potentials: unknown potential %q (have %v)", name, Names())
	}
	return fn(), nil
}

// Names lists the registered potentials in sorted order.
func Names() []string {
	names := make([]string, 0, len(builders))
	for name := range builders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
