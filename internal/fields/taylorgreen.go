package fields

import (
	"math"

	"github.com/san-kum/advect/internal/advect"
)

// TaylorGreen is the decaying Taylor-Green cell array with viscosity nu.
// The spatial pattern is a lattice of counter-rotating cells whose amplitude
// decays as exp(-2*nu*t).
func TaylorGreen(amp, nu float64) advect.Field {
	decay := func(t float64) float64 { return amp * math.Exp(-2*nu*t) }
	return advect.Field{
		U: func(t, x, y float64) float64 { return decay(t) * math.Cos(x) * math.Sin(y) },
		V: func(t, x, y float64) float64 { return -decay(t) * math.Sin(x) * math.Cos(y) },
	}
}
