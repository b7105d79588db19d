package advect

import "fmt"

// Particle holds one trajectory: position samples indexed by time step.
// Once sizing is finalized both slices are stepCount+1 long; the trailing
// slot receives the state written by the final marching step, one step
// beyond the nominal horizon.
type Particle struct {
	X []float64
	Y []float64
}

// ParticleSet is an ordered collection of particles. A particle's index is
// its identity for the lifetime of the run.
type ParticleSet struct {
	parts []Particle
}

// Init creates one particle per initial condition, each with a length-1
// history seeded from (x0[n], y0[n]). On a length mismatch the set is left
// exactly as it was.
func (ps *ParticleSet) Init(x0, y0 []float64) error {
	if len(x0) != len(y0) {
		return fmt.Errorf("%w: %d x0 entries vs %d y0 entries",
			ErrMismatchedInitialConditions, len(x0), len(y0))
	}

	parts := make([]Particle, len(x0))
	for n := range parts {
		parts[n] = Particle{
			X: []float64{x0[n]},
			Y: []float64{y0[n]},
		}
	}

	ps.parts = parts
	return nil
}

// Len is the number of particles.
func (ps *ParticleSet) Len() int { return len(ps.parts) }

// At returns the particle at index n. The pointer stays valid until the
// next Init.
func (ps *ParticleSet) At(n int) *Particle { return &ps.parts[n] }

// Initialized reports whether Init has succeeded at least once.
func (ps *ParticleSet) Initialized() bool { return ps.parts != nil }

// resize grows every history to stepCount+1 entries without disturbing
// already-written samples. Buffers never shrink.
func (ps *ParticleSet) resize(stepCount int) {
	for n := range ps.parts {
		ps.parts[n].X = grow(ps.parts[n].X, stepCount+1)
		ps.parts[n].Y = grow(ps.parts[n].Y, stepCount+1)
	}
}

func grow(s []float64, size int) []float64 {
	if len(s) >= size {
		return s
	}
	out := make([]float64, size)
	copy(out, s)
	return out
}
