// Package metrics computes summary statistics over marched trajectories.
package metrics

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/san-kum/advect/internal/advect"
)

// PathLength is the total arc length of a particle's trajectory, summed
// over every written segment including the trailing one.
func PathLength(p *advect.Particle) float64 {
	sum := 0.0
	for i := 1; i < len(p.X); i++ {
		sum += math.Hypot(p.X[i]-p.X[i-1], p.Y[i]-p.Y[i-1])
	}
	return sum
}

// Displacement is the straight-line distance between a particle's first and
// last written positions.
func Displacement(p *advect.Particle) float64 {
	last := len(p.X) - 1
	return math.Hypot(p.X[last]-p.X[0], p.Y[last]-p.Y[0])
}

// MeanSpeed is the mean segment speed of a trajectory marched with step dt.
func MeanSpeed(p *advect.Particle, dt float64) float64 {
	if len(p.X) < 2 || dt <= 0 {
		return 0
	}
	speeds := make([]float64, len(p.X)-1)
	for i := 1; i < len(p.X); i++ {
		speeds[i-1] = math.Hypot(p.X[i]-p.X[i-1], p.Y[i]-p.Y[i-1]) / dt
	}
	return stat.Mean(speeds, nil)
}

// Summarize aggregates per-particle metrics over a marched analysis.
func Summarize(a *advect.Analysis) map[string]float64 {
	parts := a.Particles()
	if parts.Len() == 0 {
		return map[string]float64{}
	}

	lengths := make([]float64, parts.Len())
	disps := make([]float64, parts.Len())
	speeds := make([]float64, parts.Len())
	for n := 0; n < parts.Len(); n++ {
		p := parts.At(n)
		lengths[n] = PathLength(p)
		disps[n] = Displacement(p)
		speeds[n] = MeanSpeed(p, a.Grid().Dt())
	}

	return map[string]float64{
		"mean_path_length":  stat.Mean(lengths, nil),
		"mean_displacement": stat.Mean(disps, nil),
		"mean_speed":        stat.Mean(speeds, nil),
	}
}
