// Package lab wires fields, schemes and analyses into complete runs.
package lab

import (
	"fmt"
	"sort"

	"github.com/san-kum/advect/internal/advect"
	"github.com/san-kum/advect/internal/fields"
	"github.com/san-kum/advect/internal/schemes"
)

type Registry struct {
	schemes map[string]func() advect.Scheme
	fields  map[string]func(params map[string]float64) advect.Field
}

func NewRegistry() *Registry {
	r := &Registry{
		schemes: make(map[string]func() advect.Scheme),
		fields:  make(map[string]func(map[string]float64) advect.Field),
	}

	r.schemes["euler"] = func() advect.Scheme { return schemes.NewEuler() }
	r.schemes["ab2"] = func() advect.Scheme { return schemes.NewAdamsBashforth2() }

	r.fields["uniform"] = func(p map[string]float64) advect.Field {
		return fields.Uniform(param(p, "ux", 1.0), param(p, "uy", 0.0))
	}
	r.fields["rotation"] = func(p map[string]float64) advect.Field {
		return fields.Rotation(param(p, "omega", 1.0))
	}
	r.fields["shear"] = func(p map[string]float64) advect.Field {
		return fields.Shear(param(p, "rate", 1.0))
	}
	r.fields["vortex"] = func(p map[string]float64) advect.Field {
		return fields.Vortex(param(p, "gamma", 1.0), param(p, "eps", 0.1))
	}
	r.fields["gyre"] = func(p map[string]float64) advect.Field {
		return fields.DoubleGyre(param(p, "amp", 0.1), param(p, "eps", 0.25), param(p, "omega", 0.628))
	}
	r.fields["taylor_green"] = func(p map[string]float64) advect.Field {
		return fields.TaylorGreen(param(p, "amp", 1.0), param(p, "nu", 0.05))
	}

	return r
}

func (r *Registry) GetScheme(name string) (advect.Scheme, error) {
	fn, ok := r.schemes[name]
	if !ok {
		return nil, fmt.Errorf("unknown scheme: %s", name)
	}
	return fn(), nil
}

func (r *Registry) GetField(name string, params map[string]float64) (advect.Field, error) {
	fn, ok := r.fields[name]
	if !ok {
		return advect.Field{}, fmt.Errorf("unknown field: %s", name)
	}
	return fn(params), nil
}

func (r *Registry) ListSchemes() []string {
	names := make([]string, 0, len(r.schemes))
	for name := range r.schemes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (r *Registry) ListFields() []string {
	names := make([]string, 0, len(r.fields))
	for name := range r.fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// param reads a field parameter with a default for absent keys.
func param(params map[string]float64, key string, def float64) float64 {
	if params == nil {
		return def
	}
	if v, ok := params[key]; ok {
		return v
	}
	return def
}
