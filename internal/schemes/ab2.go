package schemes

import "github.com/san-kum/advect/internal/advect"

// AdamsBashforth2 marches with the two-step explicit Adams-Bashforth
// formula x(i+1) = x(i) + dt*(3/2*u(i) - 1/2*u(i-1)), bootstrapped by one
// Euler step at i==0 where no previous evaluation exists.
type AdamsBashforth2 struct {
	uPrev []float64
	vPrev []float64
}

func NewAdamsBashforth2() *AdamsBashforth2 {
	return &AdamsBashforth2{}
}

func (s *AdamsBashforth2) Name() string { return "ab2" }

func (s *AdamsBashforth2) ensureScratch(n int) {
	if len(s.uPrev) != n {
		s.uPrev = make([]float64, n)
		s.vPrev = make([]float64, n)
	}
}

func (s *AdamsBashforth2) March(grid *advect.TimeGrid, parts *advect.ParticleSet, field advect.Field) error {
	dt := grid.Dt()
	s.ensureScratch(parts.Len())

	for i, t := range grid.Times() {
		for n := 0; n < parts.Len(); n++ {
			p := parts.At(n)

			u := field.U(t, p.X[i], p.Y[i])
			v := field.V(t, p.X[i], p.Y[i])
			if err := checkFinite(u, v, i, t, n); err != nil {
				return err
			}

			if i == 0 {
				p.X[i+1] = p.X[i] + dt*u
				p.Y[i+1] = p.Y[i] + dt*v
			} else {
				p.X[i+1] = p.X[i] + dt*(1.5*u-0.5*s.uPrev[n])
				p.Y[i+1] = p.Y[i] + dt*(1.5*v-0.5*s.vPrev[n])
			}

			// Slot n holds particle n's previous evaluation only; state must
			// never leak between particles.
			s.uPrev[n] = u
			s.vPrev[n] = v
		}
	}
	return nil
}
