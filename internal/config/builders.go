package config

import (
	"fmt"

	"github.com/san-kum/qradial/internal/integrators"
	"github.com/san-kum/qradial/internal/potentials"
	"github.com/san-kum/qradial/internal/radial"
	"github.com/san-kum/qradial/internal/shoot"
)

// BuildGrid materializes the grid section.
func (c *Config) BuildGrid() (radial.Grid, error) {
	return radial.NewGrid(c.Grid.RMin, c.Grid.RMax, c.Grid.Points)
}

// BuildPotential constructs the named potential and applies the params map
// over its defaults.
func (c *Config) BuildPotential() (radial.Potential, error) {
	pot, err := potentials.New(c.Potential)
	if err != nil {
		return nil, err
	}
	if len(c.Params) == 0 {
		return pot, nil
	}
	tun, ok := pot.(radial.Tunable)
	if !ok {
		return nil, fmt.Errorf("config: potential %q takes no params", c.Potential)
	}
	for name, v := range c.Params {
		if err := tun.SetParam(name, v); err != nil {
			return nil, err
		}
	}
	return pot, nil
}

// BuildSolver constructs the configured integration method.
func (c *Config) BuildSolver() (radial.Solver, error) {
	return integrators.New(c.Method)
}

// BuildScanner wires the scan section to a Scanner whose workers use the
// configured method.
func (c *Config) BuildScanner() (shoot.Scanner, error) {
	// fail fast on a bad method name before workers start
	if _, err := integrators.New(c.Method); err != nil {
		return shoot.Scanner{}, err
	}
	method := c.Method
	return shoot.Scanner{
		NewSolver: func() radial.Solver {
			s, _ := integrators.New(method)
			return s
		},
		Workers: c.Scan.Workers,
		MaxIter: c.Scan.MaxIter,
		Tol:     c.Scan.Tol,
	}, nil
}
