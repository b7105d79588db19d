// Package config loads and saves run configurations.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/advect/internal/seed"
)

const (
	DefaultDt   = 0.01
	DefaultTmax = 10.0
)

type Config struct {
	Field       string             `yaml:"field"`
	Scheme      string             `yaml:"scheme"`
	Dt          float64            `yaml:"dt"`
	Tmax        float64            `yaml:"tmax"`
	Seed        int64              `yaml:"seed"`
	FieldParams map[string]float64 `yaml:"field_params"`
	Particles   ParticlesConfig    `yaml:"particles"`
}

// ParticlesConfig describes how initial conditions are generated. Layout
// selects the generator; the remaining fields apply per layout.
type ParticlesConfig struct {
	Layout string `yaml:"layout"` // line, grid, circle, cloud, explicit

	Count int `yaml:"count"` // line, circle, cloud
	NX    int `yaml:"nx"`    // grid
	NY    int `yaml:"ny"`    // grid

	XMin float64 `yaml:"xmin"` // grid, cloud
	XMax float64 `yaml:"xmax"`
	YMin float64 `yaml:"ymin"`
	YMax float64 `yaml:"ymax"`

	X0 float64 `yaml:"x0"` // line endpoints
	Y0 float64 `yaml:"y0"`
	X1 float64 `yaml:"x1"`
	Y1 float64 `yaml:"y1"`

	CX float64 `yaml:"cx"` // circle
	CY float64 `yaml:"cy"`
	R  float64 `yaml:"r"`

	XList []float64 `yaml:"x_list"` // explicit
	YList []float64 `yaml:"y_list"`
}

func DefaultConfig() *Config {
	return &Config{
		Field:  "gyre",
		Scheme: "ab2",
		Dt:     DefaultDt,
		Tmax:   DefaultTmax,
		Particles: ParticlesConfig{
			Layout: "grid",
			NX:     8,
			NY:     4,
			XMin:   0.1, XMax: 1.9,
			YMin: 0.1, YMax: 0.9,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// InitialConditions expands the particle layout into x0/y0 vectors.
func (c *Config) InitialConditions() ([]float64, []float64, error) {
	p := c.Particles
	switch p.Layout {
	case "line":
		x, y := seed.Line(p.Count, p.X0, p.Y0, p.X1, p.Y1)
		return x, y, nil
	case "grid", "":
		x, y := seed.Grid(p.NX, p.NY, p.XMin, p.XMax, p.YMin, p.YMax)
		return x, y, nil
	case "circle":
		x, y := seed.Circle(p.Count, p.CX, p.CY, p.R)
		return x, y, nil
	case "cloud":
		x, y := seed.RandomCloud(p.Count, p.XMin, p.XMax, p.YMin, p.YMax, c.Seed)
		return x, y, nil
	case "explicit":
		return p.XList, p.YList, nil
	default:
		return nil, nil, fmt.Errorf("unknown particle layout: %s", p.Layout)
	}
}
