// Package schemes implements the explicit time-marching schemes that fill
// an analysis' trajectory buffers.
package schemes

import (
	"math"

	"github.com/san-kum/advect/internal/advect"
)

// Euler marches with the first-order explicit Euler update
// x(i+1) = x(i) + dt*u(t(i), x(i), y(i)).
type Euler struct{}

func NewEuler() *Euler {
	return &Euler{}
}

func (e *Euler) Name() string { return "euler" }

func (e *Euler) March(grid *advect.TimeGrid, parts *advect.ParticleSet, field advect.Field) error {
	dt := grid.Dt()

	for i, t := range grid.Times() {
		for n := 0; n < parts.Len(); n++ {
			p := parts.At(n)

			u := field.U(t, p.X[i], p.Y[i])
			v := field.V(t, p.X[i], p.Y[i])
			if err := checkFinite(u, v, i, t, n); err != nil {
				return err
			}

			p.X[i+1] = p.X[i] + dt*u
			p.Y[i+1] = p.Y[i] + dt*v
		}
	}
	return nil
}

// checkFinite rejects NaN/Inf velocity evaluations before they reach the
// history buffers.
func checkFinite(u, v float64, step int, t float64, particle int) error {
	if math.IsNaN(u) || math.IsInf(u, 0) || math.IsNaN(v) || math.IsInf(v, 0) {
		return &advect.MarchError{
			Step:     step,
			Time:     t,
			Particle: particle,
			Wrapped:  advect.ErrNumericalFailure,
		}
	}
	return nil
}
