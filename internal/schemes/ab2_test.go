package schemes

import (
	"math"
	"testing"

	"github.com/san-kum/advect/internal/advect"
)

func TestAB2MatchesEulerForConstantField(t *testing.T) {
	// With constant velocity 1.5*u - 0.5*u == u, so AB2 degenerates to
	// Euler step for step.
	field := constantField(1.0, 0.5)

	euler := mustAnalysis(t, 0.25, 2.0, []float64{0, 1}, []float64{0, -1}, field)
	ab2 := mustAnalysis(t, 0.25, 2.0, []float64{0, 1}, []float64{0, -1}, field)

	if err := euler.March(NewEuler()); err != nil {
		t.Fatalf("euler march failed: %v", err)
	}
	if err := ab2.March(NewAdamsBashforth2()); err != nil {
		t.Fatalf("ab2 march failed: %v", err)
	}

	for n := 0; n < euler.Particles().Len(); n++ {
		pe, pa := euler.Particles().At(n), ab2.Particles().At(n)
		for i := range pe.X {
			if math.Abs(pe.X[i]-pa.X[i]) > 1e-12 || math.Abs(pe.Y[i]-pa.Y[i]) > 1e-12 {
				t.Fatalf("particle %d step %d: euler (%g, %g) vs ab2 (%g, %g)",
					n, i, pe.X[i], pe.Y[i], pa.X[i], pa.Y[i])
			}
		}
	}
}

func TestAB2BootstrapStepIsEuler(t *testing.T) {
	field := advect.Field{
		U: func(t, x, y float64) float64 { return t + x - 0.5*y },
		V: func(t, x, y float64) float64 { return math.Sin(x) + t*t },
	}
	x0, y0 := 0.3, -0.7
	dt := 0.1

	a := mustAnalysis(t, dt, 1.0, []float64{x0}, []float64{y0}, field)
	if err := a.March(NewAdamsBashforth2()); err != nil {
		t.Fatalf("march failed: %v", err)
	}

	p := a.Particles().At(0)
	wantX := x0 + dt*field.U(0, x0, y0)
	wantY := y0 + dt*field.V(0, x0, y0)
	if p.X[1] != wantX || p.Y[1] != wantY {
		t.Errorf("first step is not a plain Euler step: got (%g, %g), want (%g, %g)",
			p.X[1], p.Y[1], wantX, wantY)
	}
}

func TestAB2SecondOrderBeatsEulerOnRotation(t *testing.T) {
	// Solid-body rotation has the exact solution (cos t, sin t) for a
	// particle started at (1, 0); AB2's error should be well below Euler's
	// at the same step size.
	field := advect.Field{
		U: func(t, x, y float64) float64 { return -y },
		V: func(t, x, y float64) float64 { return x },
	}
	dt, tm := 0.01, 3.0

	euler := mustAnalysis(t, dt, tm, []float64{1}, []float64{0}, field)
	ab2 := mustAnalysis(t, dt, tm, []float64{1}, []float64{0}, field)
	if err := euler.March(NewEuler()); err != nil {
		t.Fatal(err)
	}
	if err := ab2.March(NewAdamsBashforth2()); err != nil {
		t.Fatal(err)
	}

	last := euler.Grid().StepCount() - 1
	tLast := euler.Grid().Times()[last]
	exactX, exactY := math.Cos(tLast), math.Sin(tLast)

	errAt := func(a *advect.Analysis) float64 {
		p := a.Particles().At(0)
		return math.Hypot(p.X[last]-exactX, p.Y[last]-exactY)
	}

	eErr, aErr := errAt(euler), errAt(ab2)
	if aErr > eErr/10 {
		t.Errorf("ab2 error %g not clearly below euler error %g", aErr, eErr)
	}
}

func TestAB2ParticleStateIsolation(t *testing.T) {
	// Position-dependent field: any leakage of one particle's previous
	// velocity into another's slot shifts the result.
	field := advect.Field{
		U: func(t, x, y float64) float64 { return x },
		V: func(t, x, y float64) float64 { return -y },
	}
	x0 := []float64{0.5, -1.0, 2.0}
	y0 := []float64{1.0, 0.25, -0.5}

	together := mustAnalysis(t, 0.1, 2.0, x0, y0, field)
	if err := together.March(NewAdamsBashforth2()); err != nil {
		t.Fatalf("march failed: %v", err)
	}

	for n := range x0 {
		alone := mustAnalysis(t, 0.1, 2.0, []float64{x0[n]}, []float64{y0[n]}, field)
		if err := alone.March(NewAdamsBashforth2()); err != nil {
			t.Fatalf("solo march failed: %v", err)
		}

		pt, pa := together.Particles().At(n), alone.Particles().At(0)
		for i := range pa.X {
			if pt.X[i] != pa.X[i] || pt.Y[i] != pa.Y[i] {
				t.Fatalf("particle %d diverges from solo run at step %d", n, i)
			}
		}
	}
}

func TestAB2RemarchIsIdempotent(t *testing.T) {
	field := advect.Field{
		U: func(t, x, y float64) float64 { return y + t },
		V: func(t, x, y float64) float64 { return -x },
	}
	a := mustAnalysis(t, 0.05, 1.0, []float64{1}, []float64{0}, field)

	s := NewAdamsBashforth2()
	if err := a.March(s); err != nil {
		t.Fatal(err)
	}
	first := snapshot(a)
	if err := a.March(s); err != nil {
		t.Fatal(err)
	}

	p := a.Particles().At(0)
	for i := range p.X {
		if p.X[i] != first[0][0][i] || p.Y[i] != first[0][1][i] {
			t.Fatalf("re-march changed step %d", i)
		}
	}
}
