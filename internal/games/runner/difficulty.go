package runner

import (
	"math"

	"github.com/vovakirdan/squirrel-run/internal/config"
)

// Difficulty tracks score, passed count, speed multiplier and spawn interval for one run.
// Within a run the multiplier only rises and the interval only falls toward its floor.
type Difficulty struct {
	cfg             config.DifficultyConfig
	score           int
	passed          int
	speedMultiplier float64
	spawnInterval   float64
}

// NewDifficulty creates a controller at its initial values.
func NewDifficulty(cfg config.DifficultyConfig) *Difficulty {
	d := &Difficulty{cfg: cfg}
	d.Reset()
	return d
}

// Reset restores the initial values.
func (d *Difficulty) Reset() {
	d.score = 0
	d.passed = 0
	d.speedMultiplier = 1.0
	d.spawnInterval = d.cfg.InitialSpawnInterval
}

// Score returns the current score.
func (d *Difficulty) Score() int { return d.score }

// Passed returns how many obstacles have been passed.
func (d *Difficulty) Passed() int { return d.passed }

// SpeedMultiplier returns the current scroll speed multiplier.
func (d *Difficulty) SpeedMultiplier() float64 { return d.speedMultiplier }

// SpawnInterval returns the current time between spawns in milliseconds.
func (d *Difficulty) SpawnInterval() float64 { return d.spawnInterval }

// Speed returns the effective scroll speed for the given base speed.
func (d *Difficulty) Speed(baseSpeed float64) float64 {
	return baseSpeed * d.speedMultiplier
}

// OnObstaclePassed scores one pass event. Every MilestoneEvery-th pass raises the
// multiplier by MilestoneStep, every other pass by PassStep.
func (d *Difficulty) OnObstaclePassed() {
	d.passed++
	d.score += d.cfg.PointsPerPass

	if d.passed%d.cfg.MilestoneEvery == 0 {
		d.speedMultiplier += d.cfg.MilestoneStep
	} else {
		d.speedMultiplier += d.cfg.PassStep
	}

	d.clampInterval()
}

// DecaySpawnInterval shrinks the spawn interval after a spawn, never below the floor.
func (d *Difficulty) DecaySpawnInterval() {
	d.spawnInterval *= d.cfg.SpawnIntervalDecay
	d.clampInterval()
}

// clampInterval keeps the interval at or above the floor.
func (d *Difficulty) clampInterval() {
	d.spawnInterval = math.Max(d.cfg.SpawnIntervalFloor, d.spawnInterval)
}
