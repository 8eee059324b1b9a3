package integrators

import (
	"fmt"

	"github.com/san-kum/qradial/internal/radial"
)

// New returns a fresh solver for the given method name. Each call returns an
// independent instance, so callers can hand one to every worker goroutine.
func New(name string) (radial.Solver, error) {
	switch name {
	case "numerov":
		return NewNumerov(), nil
	case "central":
		return NewCentralDiff(), nil
	default:
		return nil, fmt.Errorf("integrators: unknown method %q (have %v)", name, Names())
	}
}

// Names lists the available method names in display order.
func Names() []string {
	return []string{"numerov", "central"}
}
