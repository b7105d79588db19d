package advect

import (
	"errors"
	"fmt"
)

// Domain errors for analysis configuration and marching.
var (
	// ErrInvalidParameter indicates a non-positive dt, a negative tmax,
	// or a non-finite time parameter.
	ErrInvalidParameter = errors.New("advect: invalid time parameter")

	// ErrMismatchedInitialConditions indicates x0 and y0 of unequal length.
	ErrMismatchedInitialConditions = errors.New("advect: mismatched initial condition vectors")

	// ErrNotInitialized indicates marching or reporting was requested before
	// the time grid, initial conditions and field were all set.
	ErrNotInitialized = errors.New("advect: analysis not initialized")

	// ErrIndexOutOfRange indicates a particle index outside the set.
	ErrIndexOutOfRange = errors.New("advect: particle index out of range")

	// ErrNumericalFailure indicates a velocity evaluation produced NaN or Inf.
	ErrNumericalFailure = errors.New("advect: non-finite velocity evaluation")
)

// MarchError wraps an error raised during time marching with the step,
// time and particle it occurred at.
type MarchError struct {
	Step     int
	Time     float64
	Particle int
	Wrapped  error
}

func (e *MarchError) Error() string {
	return fmt.Sprintf("step %d (t=%.4f) particle %d: %v", e.Step, e.Time, e.Particle, e.Wrapped)
}

func (e *MarchError) Unwrap() error {
	return e.Wrapped
}
