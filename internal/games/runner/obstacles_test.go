package runner

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/squirrel-run/internal/config"
)

func TestSpawnerRanges(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	s := NewSpawner(cfg)
	rnd := rand.New(rand.NewSource(7))

	for i := 0; i < 1000; i++ {
		o := s.Spawn(rnd)

		if o.H < 24 || o.H >= 60 {
			t.Fatalf("height %v outside [24, 60)", o.H)
		}
		if o.W < 18 || o.W >= 48 {
			t.Fatalf("width %v outside [18, 48)", o.W)
		}
		if o.Y+o.H != cfg.GroundY() {
			t.Fatalf("obstacle base %v not on ground line %v", o.Y+o.H, cfg.GroundY())
		}
		if o.X != cfg.SpawnX() {
			t.Fatalf("obstacle X = %v, expected %v", o.X, cfg.SpawnX())
		}
		if o.Passed {
			t.Fatal("new obstacle should not be passed")
		}
	}
}

func TestSpawnerDrawOrder(t *testing.T) {
	s := NewSpawner(config.DefaultRunnerConfig())

	o := s.Spawn(&seqRand{vals: []float64{0.5, 0.25}})

	// Height first, then width
	if o.H != 42 {
		t.Errorf("H = %v, expected 42", o.H)
	}
	if o.W != 25.5 {
		t.Errorf("W = %v, expected 25.5", o.W)
	}
}

func TestSpawnerDeterministic(t *testing.T) {
	s := NewSpawner(config.DefaultRunnerConfig())
	a := rand.New(rand.NewSource(99))
	b := rand.New(rand.NewSource(99))

	for i := 0; i < 50; i++ {
		if oa, ob := s.Spawn(a), s.Spawn(b); oa != ob {
			t.Fatalf("spawn %d differs: %+v vs %+v", i, oa, ob)
		}
	}
}

func TestSpawnerUsesFieldWidth(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	cfg.Field.Width = 1280
	cfg.Obstacles.SpawnOffset = 0

	o := NewSpawner(cfg).Spawn(&seqRand{vals: []float64{0}})
	if o.X != 1280 {
		t.Errorf("X = %v, expected 1280", o.X)
	}
}
