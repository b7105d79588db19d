// Package seed generates initial-condition vectors for particle sets.
package seed

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/floats"
)

// Line places n particles evenly between (x0, y0) and (x1, y1), endpoints
// included.
func Line(n int, x0, y0, x1, y1 float64) ([]float64, []float64) {
	switch {
	case n <= 0:
		return []float64{}, []float64{}
	case n == 1:
		return []float64{x0}, []float64{y0}
	}
	xs := floats.Span(make([]float64, n), x0, x1)
	ys := floats.Span(make([]float64, n), y0, y1)
	return xs, ys
}

// Grid places nx*ny particles on a regular lattice covering the given
// bounds, row by row.
func Grid(nx, ny int, xmin, xmax, ymin, ymax float64) ([]float64, []float64) {
	if nx <= 0 || ny <= 0 {
		return []float64{}, []float64{}
	}
	xAxis := axis(nx, xmin, xmax)
	yAxis := axis(ny, ymin, ymax)

	xs := make([]float64, 0, nx*ny)
	ys := make([]float64, 0, nx*ny)
	for _, y := range yAxis {
		for _, x := range xAxis {
			xs = append(xs, x)
			ys = append(ys, y)
		}
	}
	return xs, ys
}

// Circle places n particles evenly around a circle of radius r centered at
// (cx, cy), starting at angle zero.
func Circle(n int, cx, cy, r float64) ([]float64, []float64) {
	if n <= 0 {
		return []float64{}, []float64{}
	}
	xs := make([]float64, n)
	ys := make([]float64, n)
	for i := 0; i < n; i++ {
		theta := 2 * math.Pi * float64(i) / float64(n)
		xs[i] = cx + r*math.Cos(theta)
		ys[i] = cy + r*math.Sin(theta)
	}
	return xs, ys
}

// RandomCloud scatters n particles uniformly over the given bounds using a
// deterministic source, so a run is reproducible from its seed.
func RandomCloud(n int, xmin, xmax, ymin, ymax float64, seed int64) ([]float64, []float64) {
	if n <= 0 {
		return []float64{}, []float64{}
	}
	rng := rand.New(rand.NewSource(seed))
	xs := make([]float64, n)
	ys := make([]float64, n)
	for i := 0; i < n; i++ {
		xs[i] = xmin + rng.Float64()*(xmax-xmin)
		ys[i] = ymin + rng.Float64()*(ymax-ymin)
	}
	return xs, ys
}

func axis(n int, lo, hi float64) []float64 {
	if n == 1 {
		return []float64{lo}
	}
	return floats.Span(make([]float64, n), lo, hi)
}
