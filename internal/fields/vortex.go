package fields

import (
	"math"

	"github.com/san-kum/advect/internal/advect"
)

// Vortex is a regularized point vortex of circulation gamma at the origin.
// The softening radius eps keeps velocities finite through the core; with
// eps == 0 an evaluation at the origin divides by zero and the march aborts
// with a numerical failure.
func Vortex(gamma, eps float64) advect.Field {
	coef := gamma / (2 * math.Pi)
	return advect.Field{
		U: func(t, x, y float64) float64 { return -coef * y / (x*x + y*y + eps*eps) },
		V: func(t, x, y float64) float64 { return coef * x / (x*x + y*y + eps*eps) },
	}
}
