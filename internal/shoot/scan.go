package shoot

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"github.com/san-kum/qradial/internal/analysis"
	"github.com/san-kum/qradial/internal/integrators"
	"github.com/san-kum/qradial/internal/radial"
)

// Sample is one trial energy from a scan. A non-nil Err marks the trial as
// rejected (unstable or otherwise unsolvable); rejected samples never form
// brackets.
type Sample struct {
	K2    float64
	Tail  float64
	Nodes int
	Err   error
}

// Bracket is a pair of adjacent scan samples whose tails straddle zero, so
// an eigenvalue lies between them.
type Bracket struct {
	Lo, Hi Sample
}

// Scanner sweeps trial energies and refines the sign changes it finds.
// The zero value scans with Numerov on all CPUs; adjust fields before use,
// not during.
type Scanner struct {
	// NewSolver builds one solver per worker. Defaults to Numerov.
	NewSolver func() radial.Solver
	// Workers caps the scan goroutines. Defaults to the CPU count.
	Workers int
	// MaxIter bounds the bisection loop. Defaults to 100.
	MaxIter int
	// Tol is the relative k2 width where bisection stops. Defaults to 1e-10.
	Tol float64
}

func (s *Scanner) newSolver() radial.Solver {
	if s.NewSolver != nil {
		return s.NewSolver()
	}
	return integrators.NewNumerov()
}

func (s *Scanner) workers() int {
	if s.Workers > 0 {
		return s.Workers
	}
	return runtime.NumCPU()
}

func (s *Scanner) maxIter() int {
	if s.MaxIter > 0 {
		return s.MaxIter
	}
	return 100
}

func (s *Scanner) tol() float64 {
	if s.Tol > 0 {
		return s.Tol
	}
	return 1e-10
}

// Scan solves the same problem at n evenly spaced trial energies across
// [k2min, k2max] and reports one Sample per energy, in ascending order.
// Individual solve failures land in Sample.Err; Scan itself fails only on
// bad arguments or a cancelled context.
func (s *Scanner) Scan(ctx context.Context, pot radial.Potential, g radial.Grid, l int, k2min, k2max float64, n int) ([]Sample, error) {
	if n < 2 {
		return nil, fmt.Errorf("shoot: need at least 2 trial energies, got %d", n)
	}
	if k2max <= k2min {
		return nil, fmt.Errorf("shoot: empty energy window [%g, %g]", k2min, k2max)
	}
	if err := radial.ValidateProblem(g, l); err != nil {
		return nil, err
	}

	samples := make([]Sample, n)
	step := (k2max - k2min) / float64(n-1)
	jobs := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < s.workers(); w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			solver := s.newSolver()
			dst := make(radial.Wavefunction, g.Len())
			for idx := range jobs {
				k2 := k2min + float64(idx)*step
				samples[idx].K2 = k2

				if err := solveInto(solver, dst, pot, g, k2, l); err != nil {
					samples[idx].Err = err
					continue
				}
				samples[idx].Tail = analysis.Tail(dst)
				samples[idx].Nodes = analysis.CountNodes(dst)
			}
		}()
	}

	var ctxErr error
feed:
	for i := 0; i < n; i++ {
		select {
		case <-ctx.Done():
			ctxErr = ctx.Err()
			break feed
		default:
		}
		select {
		case <-ctx.Done():
			ctxErr = ctx.Err()
			break feed
		case jobs <- i:
		}
	}
	close(jobs)
	wg.Wait()

	if ctxErr != nil {
		return nil, ctxErr
	}
	return samples, nil
}

// solveInto prefers the buffer-reusing path when the solver offers one.
func solveInto(solver radial.Solver, dst radial.Wavefunction, pot radial.Potential, g radial.Grid, k2 float64, l int) error {
	type intoSolver interface {
		SolveInto(radial.Wavefunction, radial.Potential, radial.Grid, float64, int) error
	}
	if is, ok := solver.(intoSolver); ok {
		return is.SolveInto(dst, pot, g, k2, l)
	}
	u, err := solver.Solve(pot, g, k2, l)
	if err != nil {
		return err
	}
	copy(dst, u)
	return nil
}

// Brackets extracts the sign changes from a scan. A sample with an exactly
// zero tail is its own degenerate bracket.
func Brackets(samples []Sample) []Bracket {
	var out []Bracket
	for i := 0; i < len(samples); i++ {
		if samples[i].Err != nil {
			continue
		}
		if samples[i].Tail == 0 {
			out = append(out, Bracket{Lo: samples[i], Hi: samples[i]})
			continue
		}
		// find the next usable sample to pair with
		j := i + 1
		for j < len(samples) && samples[j].Err != nil {
			j++
		}
		if j >= len(samples) {
			break
		}
		if samples[j].Tail != 0 && (samples[i].Tail < 0) != (samples[j].Tail < 0) {
			out = append(out, Bracket{Lo: samples[i], Hi: samples[j]})
		}
	}
	return out
}
