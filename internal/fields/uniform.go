package fields

import "github.com/san-kum/advect/internal/advect"

// Uniform is a constant flow (ux, uy) everywhere. Under any consistent
// explicit scheme particles translate along straight lines.
func Uniform(ux, uy float64) advect.Field {
	return advect.Field{
		U: func(t, x, y float64) float64 { return ux },
		V: func(t, x, y float64) float64 { return uy },
	}
}
