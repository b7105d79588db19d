package advect

import (
	"fmt"
	"math"
)

// TimeGrid is the uniform discrete time sequence of a run. The step count
// sizes every trajectory buffer in the particle set.
type TimeGrid struct {
	dt    float64
	tmax  float64
	times []float64
}

// Configure derives the grid from a step size and horizon. The number of
// sampled instants is floor(tmax/dt)+1, so a horizon that is not an integer
// multiple of dt ends the grid short of tmax rather than beyond it.
func (g *TimeGrid) Configure(dt, tmax float64) error {
	if math.IsNaN(dt) || math.IsInf(dt, 0) || dt <= 0 {
		return fmt.Errorf("%w: dt must be positive and finite, got %v", ErrInvalidParameter, dt)
	}
	if math.IsNaN(tmax) || math.IsInf(tmax, 0) || tmax < 0 {
		return fmt.Errorf("%w: tmax must be non-negative and finite, got %v", ErrInvalidParameter, tmax)
	}

	stepCount := int(tmax/dt) + 1
	times := make([]float64, stepCount)
	for i := range times {
		times[i] = float64(i) * dt
	}

	g.dt = dt
	g.tmax = tmax
	g.times = times
	return nil
}

func (g *TimeGrid) Dt() float64   { return g.dt }
func (g *TimeGrid) Tmax() float64 { return g.tmax }

// StepCount is the number of sampled instants.
func (g *TimeGrid) StepCount() int { return len(g.times) }

// Times returns the sampled instants, times[i] = i*dt. The slice is the
// grid's backing storage; callers must not modify it.
func (g *TimeGrid) Times() []float64 { return g.times }

// Configured reports whether Configure has succeeded at least once.
func (g *TimeGrid) Configured() bool { return len(g.times) > 0 }
