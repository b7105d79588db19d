package lab

import (
	"time"

	"github.com/san-kum/advect/internal/advect"
	"github.com/san-kum/advect/internal/metrics"
)

// RunConfig names the pieces of one run; names resolve through a Registry.
type RunConfig struct {
	Field       string
	Scheme      string
	FieldParams map[string]float64
	Dt          float64
	Tmax        float64
	X0          []float64
	Y0          []float64
}

// Result is a finished run: the marched analysis, trajectory summary
// metrics and wall time spent marching.
type Result struct {
	Analysis *advect.Analysis
	Metrics  map[string]float64
	Elapsed  time.Duration
}

// Run builds the analysis from a config, marches it to completion and
// summarizes the trajectories.
func Run(reg *Registry, cfg RunConfig) (*Result, error) {
	field, err := reg.GetField(cfg.Field, cfg.FieldParams)
	if err != nil {
		return nil, err
	}
	scheme, err := reg.GetScheme(cfg.Scheme)
	if err != nil {
		return nil, err
	}

	a, err := advect.New(cfg.Dt, cfg.Tmax, cfg.X0, cfg.Y0, field)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	if err := a.March(scheme); err != nil {
		return nil, err
	}
	elapsed := time.Since(start)

	return &Result{
		Analysis: a,
		Metrics:  metrics.Summarize(a),
		Elapsed:  elapsed,
	}, nil
}
