package radial

import (
	"errors"
	"fmt"
)

// Domain and numeric failure classes shared across the solver packages.
// Callers should test with errors.Is; solve errors additionally carry the
// failing grid index via StepError.
var (
	ErrGridTooSmall       = errors.New("radial: grid needs at least 3 points")
	ErrGridNotIncreasing  = errors.New("radial: grid points must be strictly increasing")
	ErrGridNotUniform     = errors.New("radial: grid spacing is not uniform")
	ErrAngularMomentum    = errors.New("radial: angular momentum must be >= 0")
	ErrOriginSingularity  = errors.New("radial: centrifugal term diverges at r = 0")
	ErrPotentialNotFinite = errors.New("radial: potential evaluated to a non-finite value")
	ErrUnstable           = errors.New("radial: recurrence numerically unstable")
	ErrBufferSize         = errors.New("radial: destination buffer does not match grid")
)

// StepError pins a solve failure to the grid point where it occurred.
type StepError struct {
	Index   int     // grid index of the failing point
	R       float64 // radius at that index
	Wrapped error   // underlying failure class
}

// Error implements the error interface.
func (e *StepError) Error() string {
	return fmt.Sprintf("r[%d]=%.6g: %s", e.Index, e.R, e.Wrapped.Error())
}

// Unwrap exposes the underlying failure class to errors.Is.
func (e *StepError) Unwrap() error {
	return e.Wrapped
}
