package fields

import (
	"math"

	"github.com/san-kum/advect/internal/advect"
)

// DoubleGyre is the periodically perturbed double-gyre flow on [0,2]x[0,1],
// the usual benchmark for transport in time-dependent fields. amp scales the
// velocity, eps the gyre oscillation, omega the perturbation frequency. With
// eps == 0 the flow is steady.
//
//	f(x,t)  = eps*sin(omega*t)*x^2 + (1 - 2*eps*sin(omega*t))*x
//	u       = -pi*amp*sin(pi*f)*cos(pi*y)
//	v       =  pi*amp*cos(pi*f)*sin(pi*y)*df/dx
func DoubleGyre(amp, eps, omega float64) advect.Field {
	f := func(t, x float64) float64 {
		a := eps * math.Sin(omega*t)
		return a*x*x + (1-2*a)*x
	}
	dfdx := func(t, x float64) float64 {
		a := eps * math.Sin(omega*t)
		return 2*a*x + (1 - 2*a)
	}
	return advect.Field{
		U: func(t, x, y float64) float64 {
			return -math.Pi * amp * math.Sin(math.Pi*f(t, x)) * math.Cos(math.Pi*y)
		},
		V: func(t, x, y float64) float64 {
			return math.Pi * amp * math.Cos(math.Pi*f(t, x)) * math.Sin(math.Pi*y) * dfdx(t, x)
		},
	}
}
