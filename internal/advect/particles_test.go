package advect

import (
	"errors"
	"testing"
)

func TestParticleSetInit(t *testing.T) {
	var ps ParticleSet
	if err := ps.Init([]float64{1, 2, 3}, []float64{4, 5, 6}); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	if ps.Len() != 3 {
		t.Fatalf("expected 3 particles, got %d", ps.Len())
	}
	for n := 0; n < ps.Len(); n++ {
		p := ps.At(n)
		if len(p.X) != 1 || len(p.Y) != 1 {
			t.Errorf("particle %d: expected length-1 seed histories, got %d/%d", n, len(p.X), len(p.Y))
		}
	}
	if ps.At(1).X[0] != 2 || ps.At(1).Y[0] != 5 {
		t.Errorf("particle 1 seeded wrong: (%f, %f)", ps.At(1).X[0], ps.At(1).Y[0])
	}
}

func TestParticleSetInitMismatch(t *testing.T) {
	var ps ParticleSet
	err := ps.Init([]float64{1, 2}, []float64{1})
	if !errors.Is(err, ErrMismatchedInitialConditions) {
		t.Fatalf("expected ErrMismatchedInitialConditions, got %v", err)
	}
	if ps.Initialized() {
		t.Error("failed init must not install a particle set")
	}
}

func TestParticleSetInitMismatchPreservesPrevious(t *testing.T) {
	var ps ParticleSet
	if err := ps.Init([]float64{7}, []float64{8}); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	if err := ps.Init([]float64{1, 2}, []float64{3}); err == nil {
		t.Fatal("expected error")
	}

	if ps.Len() != 1 || ps.At(0).X[0] != 7 || ps.At(0).Y[0] != 8 {
		t.Error("failed init mutated the previous particle set")
	}
}

func TestParticleSetResizePreservesPrefix(t *testing.T) {
	var ps ParticleSet
	if err := ps.Init([]float64{1.5}, []float64{-2.5}); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	ps.resize(4)
	p := ps.At(0)
	if len(p.X) != 5 || len(p.Y) != 5 {
		t.Fatalf("expected buffers of length 5, got %d/%d", len(p.X), len(p.Y))
	}
	if p.X[0] != 1.5 || p.Y[0] != -2.5 {
		t.Error("resize disturbed seeded entries")
	}

	p.X[3] = 9
	ps.resize(2) // smaller step count must not shrink or clobber
	if len(p.X) != 5 || ps.At(0).X[3] != 9 {
		t.Error("resize shrank or rewrote an existing buffer")
	}
}

func TestParticleSetEmpty(t *testing.T) {
	var ps ParticleSet
	if err := ps.Init([]float64{}, []float64{}); err != nil {
		t.Fatalf("init failed: %v", err)
	}
	if ps.Len() != 0 {
		t.Errorf("expected empty set, got %d", ps.Len())
	}
	if !ps.Initialized() {
		t.Error("empty init still counts as initialized")
	}
}
