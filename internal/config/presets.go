package config

var Presets = map[string]map[string]*Config{
	"gyre": {
		"grid": {
			Field: "gyre", Scheme: "ab2", Dt: 0.01, Tmax: 20.0,
			FieldParams: map[string]float64{"amp": 0.1, "eps": 0.25, "omega": 0.628},
			Particles: ParticlesConfig{
				Layout: "grid", NX: 10, NY: 5,
				XMin: 0.1, XMax: 1.9, YMin: 0.1, YMax: 0.9,
			},
		},
		"steady": {
			Field: "gyre", Scheme: "ab2", Dt: 0.01, Tmax: 20.0,
			FieldParams: map[string]float64{"amp": 0.1, "eps": 0.0, "omega": 0.0},
			Particles: ParticlesConfig{
				Layout: "line", Count: 20,
				X0: 0.2, Y0: 0.5, X1: 1.8, Y1: 0.5,
			},
		},
	},
	"vortex": {
		"ring": {
			Field: "vortex", Scheme: "ab2", Dt: 0.005, Tmax: 10.0,
			FieldParams: map[string]float64{"gamma": 1.0, "eps": 0.1},
			Particles: ParticlesConfig{
				Layout: "circle", Count: 24, CX: 0, CY: 0, R: 1.0,
			},
		},
		"cloud": {
			Field: "vortex", Scheme: "euler", Dt: 0.005, Tmax: 10.0,
			FieldParams: map[string]float64{"gamma": 1.0, "eps": 0.1},
			Particles: ParticlesConfig{
				Layout: "cloud", Count: 50,
				XMin: -1, XMax: 1, YMin: -1, YMax: 1,
			},
		},
	},
	"rotation": {
		"circle": {
			Field: "rotation", Scheme: "ab2", Dt: 0.01, Tmax: 12.6,
			FieldParams: map[string]float64{"omega": 1.0},
			Particles: ParticlesConfig{
				Layout: "line", Count: 5,
				X0: 0.2, Y0: 0, X1: 1.0, Y1: 0,
			},
		},
	},
	"taylor_green": {
		"cells": {
			Field: "taylor_green", Scheme: "ab2", Dt: 0.01, Tmax: 15.0,
			FieldParams: map[string]float64{"amp": 1.0, "nu": 0.05},
			Particles: ParticlesConfig{
				Layout: "grid", NX: 6, NY: 6,
				XMin: 0.3, XMax: 6.0, YMin: 0.3, YMax: 6.0,
			},
		},
	},
}

func GetPreset(field, preset string) *Config {
	fieldPresets, ok := Presets[field]
	if !ok {
		return nil
	}
	cfg, ok := fieldPresets[preset]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets(field string) []string {
	fieldPresets, ok := Presets[field]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(fieldPresets))
	for name := range fieldPresets {
		names = append(names, name)
	}
	return names
}
