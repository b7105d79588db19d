package schemes

import (
	"math"
	"testing"

	"github.com/san-kum/advect/internal/advect"
)

func benchAnalysis(b *testing.B) *advect.Analysis {
	b.Helper()
	field := advect.Field{
		U: func(t, x, y float64) float64 { return -y + 0.1*math.Sin(t) },
		V: func(t, x, y float64) float64 { return x },
	}
	x0 := make([]float64, 100)
	y0 := make([]float64, 100)
	for i := range x0 {
		x0[i] = float64(i) * 0.01
		y0[i] = 1 - float64(i)*0.01
	}
	a, err := advect.New(0.01, 10.0, x0, y0, field)
	if err != nil {
		b.Fatal(err)
	}
	return a
}

func BenchmarkEulerMarch(b *testing.B) {
	a := benchAnalysis(b)
	s := NewEuler()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := a.March(s); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkAB2March(b *testing.B) {
	a := benchAnalysis(b)
	s := NewAdamsBashforth2()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := a.March(s); err != nil {
			b.Fatal(err)
		}
	}
}
