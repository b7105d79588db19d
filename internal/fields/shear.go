package fields

import "github.com/san-kum/advect/internal/advect"

// Shear is a horizontal flow whose speed grows linearly with y.
func Shear(rate float64) advect.Field {
	return advect.Field{
		U: func(t, x, y float64) float64 { return rate * y },
		V: func(t, x, y float64) float64 { return 0 },
	}
}
