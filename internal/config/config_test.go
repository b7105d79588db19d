package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Field != "gyre" {
		t.Errorf("expected field gyre, got %s", cfg.Field)
	}
	if cfg.Dt <= 0 {
		t.Error("dt should be positive")
	}
	if cfg.Tmax <= 0 {
		t.Error("tmax should be positive")
	}

	x0, y0, err := cfg.InitialConditions()
	if err != nil {
		t.Fatalf("initial conditions failed: %v", err)
	}
	if len(x0) != 32 || len(y0) != 32 {
		t.Errorf("expected 8x4 grid, got %d/%d points", len(x0), len(y0))
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("vortex", "ring")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Particles.Layout != "circle" {
		t.Errorf("expected circle layout, got %s", cfg.Particles.Layout)
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if cfg := GetPreset("vortex", "nonexistent"); cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}
	if cfg := GetPreset("nonexistent", "ring"); cfg != nil {
		t.Error("expected nil for nonexistent field")
	}
}

func TestListPresets(t *testing.T) {
	if presets := ListPresets("gyre"); len(presets) == 0 {
		t.Error("expected presets for gyre")
	}
	if presets := ListPresets("nonexistent"); presets != nil {
		t.Error("expected nil for nonexistent field")
	}
}

func TestLoadSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")

	cfg := DefaultConfig()
	cfg.Field = "vortex"
	cfg.Dt = 0.005
	cfg.FieldParams = map[string]float64{"gamma": 2.0}
	cfg.Particles = ParticlesConfig{Layout: "circle", Count: 12, R: 1.5}

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.Field != "vortex" || loaded.Dt != 0.005 {
		t.Errorf("loaded %s dt=%f", loaded.Field, loaded.Dt)
	}
	if loaded.FieldParams["gamma"] != 2.0 {
		t.Errorf("field params lost: %v", loaded.FieldParams)
	}
	if loaded.Particles.Count != 12 {
		t.Errorf("particle config lost: %+v", loaded.Particles)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); !os.IsNotExist(err) {
		t.Errorf("expected not-exist error, got %v", err)
	}
}

func TestInitialConditionsLayouts(t *testing.T) {
	tests := []struct {
		name   string
		p      ParticlesConfig
		points int
	}{
		{"line", ParticlesConfig{Layout: "line", Count: 4, X1: 1, Y1: 1}, 4},
		{"grid", ParticlesConfig{Layout: "grid", NX: 2, NY: 3, XMax: 1, YMax: 1}, 6},
		{"circle", ParticlesConfig{Layout: "circle", Count: 7, R: 1}, 7},
		{"cloud", ParticlesConfig{Layout: "cloud", Count: 9, XMax: 1, YMax: 1}, 9},
		{"explicit", ParticlesConfig{Layout: "explicit", XList: []float64{1, 2}, YList: []float64{3, 4}}, 2},
		{"default grid", ParticlesConfig{NX: 2, NY: 2, XMax: 1, YMax: 1}, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{Particles: tt.p}
			x0, y0, err := cfg.InitialConditions()
			if err != nil {
				t.Fatalf("initial conditions failed: %v", err)
			}
			if len(x0) != tt.points || len(y0) != tt.points {
				t.Errorf("expected %d points, got %d/%d", tt.points, len(x0), len(y0))
			}
		})
	}
}

func TestInitialConditionsUnknownLayout(t *testing.T) {
	cfg := &Config{Particles: ParticlesConfig{Layout: "spiral"}}
	if _, _, err := cfg.InitialConditions(); err == nil {
		t.Error("expected error for unknown layout")
	}
}
