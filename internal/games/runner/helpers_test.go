package runner

import (
	"math"
	"math/rand"
	"testing"

	"github.com/vovakirdan/squirrel-run/internal/config"
)

const frameMs = 1000.0 / 60

// seqRand replays a fixed sequence of values.
type seqRand struct {
	vals []float64
	i    int
}

func (r *seqRand) Float64() float64 {
	v := r.vals[r.i%len(r.vals)]
	r.i++
	return v
}

func newTestGame(t *testing.T) *Game {
	t.Helper()
	return New(config.DefaultRunnerConfig(), &seqRand{vals: []float64{0}})
}

func newSeededGame(seed int64) *Game {
	return New(config.DefaultRunnerConfig(), rand.New(rand.NewSource(seed)))
}

func startGame(t *testing.T, g *Game) {
	t.Helper()
	if err := g.Start(); err != nil {
		t.Fatalf("Start() failed: %v", err)
	}
}

// passedObstacle returns an obstacle that scrolls behind the actor on the next tick
// without touching it.
func passedObstacle(g *Game) Obstacle {
	return Obstacle{X: g.actor.X - 20, Y: g.groundY - 24, W: 18, H: 24}
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}
