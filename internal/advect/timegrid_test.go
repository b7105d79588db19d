package advect

import (
	"errors"
	"math"
	"testing"
)

func TestTimeGridConfigure(t *testing.T) {
	tests := []struct {
		name      string
		dt, tmax  float64
		stepCount int
	}{
		{"exact multiple", 0.5, 1.0, 3},
		{"flooring horizon", 0.3, 1.0, 4},
		{"zero horizon", 0.1, 0.0, 1},
		{"unit step", 1.0, 10.0, 11},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var g TimeGrid
			if err := g.Configure(tt.dt, tt.tmax); err != nil {
				t.Fatalf("configure failed: %v", err)
			}

			if g.StepCount() != tt.stepCount {
				t.Errorf("expected %d steps, got %d", tt.stepCount, g.StepCount())
			}

			times := g.Times()
			if times[0] != 0 {
				t.Errorf("times[0] should be 0, got %f", times[0])
			}
			for i := 1; i < len(times); i++ {
				if times[i] <= times[i-1] {
					t.Errorf("times not strictly increasing at %d: %f <= %f", i, times[i], times[i-1])
				}
			}
			if got := times[len(times)-1]; got > tt.tmax {
				t.Errorf("last instant %f exceeds tmax %f", got, tt.tmax)
			}
		})
	}
}

func TestTimeGridInvalidParameters(t *testing.T) {
	tests := []struct {
		name     string
		dt, tmax float64
	}{
		{"zero dt", 0, 1.0},
		{"negative dt", -0.1, 1.0},
		{"nan dt", math.NaN(), 1.0},
		{"inf dt", math.Inf(1), 1.0},
		{"negative tmax", 0.1, -1.0},
		{"nan tmax", 0.1, math.NaN()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var g TimeGrid
			err := g.Configure(tt.dt, tt.tmax)
			if !errors.Is(err, ErrInvalidParameter) {
				t.Errorf("expected ErrInvalidParameter, got %v", err)
			}
			if g.Configured() {
				t.Error("failed configure must not mark the grid configured")
			}
		})
	}
}

func TestTimeGridReconfigure(t *testing.T) {
	var g TimeGrid
	if err := g.Configure(0.5, 1.0); err != nil {
		t.Fatalf("configure failed: %v", err)
	}
	if err := g.Configure(-1, 1.0); err == nil {
		t.Fatal("expected error")
	}
	// A rejected reconfigure leaves the previous grid intact.
	if g.StepCount() != 3 || g.Dt() != 0.5 {
		t.Errorf("grid mutated by failed configure: steps=%d dt=%f", g.StepCount(), g.Dt())
	}
}
