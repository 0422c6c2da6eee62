package runner

import (
	"github.com/vovakirdan/squirrel-run/internal/config"
	"github.com/vovakirdan/squirrel-run/internal/core"
)

// Rand is the random source used for obstacle dimensions.
// *math/rand.Rand satisfies it; tests can inject a fixed sequence.
type Rand interface {
	Float64() float64
}

// Obstacle is a ground block the actor must jump over.
type Obstacle struct {
	X, Y   float64 // Top-left corner; Y keeps the base on the ground line
	W, H   float64
	Passed bool // Set once when the obstacle scrolls behind the actor
}

// Right returns the x-coordinate of the trailing edge.
func (o Obstacle) Right() float64 {
	return o.X + o.W
}

// Rect returns the collision box for this obstacle.
func (o Obstacle) Rect() core.Rect {
	return core.NewRect(o.X, o.Y, o.W, o.H)
}

// Spawner creates obstacles just off the right edge of the field.
// It holds no run state; the sequence depends only on the random source.
type Spawner struct {
	cfg     config.ObstacleConfig
	spawnX  float64
	groundY float64
}

// NewSpawner creates a spawner for the given field configuration.
func NewSpawner(cfg config.RunnerConfig) Spawner {
	return Spawner{
		cfg:     cfg.Obstacles,
		spawnX:  cfg.SpawnX(),
		groundY: cfg.GroundY(),
	}
}

// Spawn draws a new obstacle with height in [MinHeight, MaxHeight) and width in
// [MinWidth, MaxWidth). Height is drawn first.
func (s Spawner) Spawn(rnd Rand) Obstacle {
	h := s.cfg.MinHeight + rnd.Float64()*(s.cfg.MaxHeight-s.cfg.MinHeight)
	w := s.cfg.MinWidth + rnd.Float64()*(s.cfg.MaxWidth-s.cfg.MinWidth)
	return Obstacle{
		X: s.spawnX,
		Y: s.groundY - h,
		W: w,
		H: h,
	}
}
