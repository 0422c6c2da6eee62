// Package runner implements the squirrel runner: the actor jumps over obstacles that
// scroll toward it faster and faster until it hits one.
//
// A Game holds the complete state of one run, so any number of runs can be simulated
// side by side. It is not safe for concurrent use; adapters drive it from one goroutine.
package runner

import (
	"math"

	"github.com/vovakirdan/squirrel-run/internal/config"
	"github.com/vovakirdan/squirrel-run/internal/core"
)

// Game implements the runner logic.
type Game struct {
	cfg        config.RunnerConfig
	rnd        Rand
	spawner    Spawner
	difficulty *Difficulty
	actor      Actor
	obstacles  []Obstacle
	phase      Phase
	spawnTimer float64 // Milliseconds accumulated since the last spawn
	ticks      int
	groundY    float64
	onGameOver func(GameOverEvent)
}

// New creates a game in the Idle phase. rnd supplies obstacle dimensions.
func New(cfg config.RunnerConfig, rnd Rand) *Game {
	g := &Game{
		cfg:        cfg,
		rnd:        rnd,
		spawner:    NewSpawner(cfg),
		difficulty: NewDifficulty(cfg.Difficulty),
		obstacles:  make([]Obstacle, 0, 8),
		groundY:    cfg.GroundY(),
	}
	g.Reset()
	return g
}

// Config returns the configuration the game was created with.
func (g *Game) Config() config.RunnerConfig {
	return g.cfg
}

// OnGameOver registers a callback invoked when a run ends in a collision.
func (g *Game) OnGameOver(fn func(GameOverEvent)) {
	g.onGameOver = fn
}

// Phase returns the current phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// Start begins a run from Idle with fresh run state.
func (g *Game) Start() error {
	if g.phase != PhaseIdle {
		return ErrInvalidTransition
	}
	g.resetRun()
	g.phase = PhaseRunning
	return nil
}

// Reset returns to Idle with initial run state. It does not start a new run.
func (g *Game) Reset() {
	g.resetRun()
	g.phase = PhaseIdle
}

func (g *Game) resetRun() {
	g.difficulty.Reset()
	g.actor = NewActor(g.cfg.Actor.X, g.cfg.Actor.Width, g.cfg.Actor.Height, g.groundY)
	g.obstacles = g.obstacles[:0]
	g.spawnTimer = 0
	g.ticks = 0
}

// Jump requests a jump. It takes effect immediately, independent of tick boundaries,
// and only while running with the actor on the ground.
func (g *Game) Jump() bool {
	if g.phase != PhaseRunning {
		return false
	}
	return g.actor.Jump(g.cfg.Physics.JumpImpulse)
}

// Handle applies an adapter action and reports whether it changed anything.
func (g *Game) Handle(a core.Action) bool {
	switch a {
	case core.ActionJump:
		return g.Jump()
	case core.ActionStart:
		return g.Start() == nil
	case core.ActionReset:
		g.Reset()
		return true
	default:
		return false
	}
}

// Tick advances the run by one frame. dt is the elapsed time in milliseconds and only
// drives the spawn timer; gravity and scrolling are applied per tick. Outside the
// Running phase a tick does nothing.
func (g *Game) Tick(dt float64) StepResult {
	if g.phase != PhaseRunning {
		return StepResult{State: g.State()}
	}
	if dt < 0 || math.IsNaN(dt) {
		dt = 0
	}
	g.ticks++

	// Actor physics
	g.actor.ApplyGravity(g.cfg.Physics.Gravity)
	g.actor.IntegratePosition()
	g.actor.ClampToGround(g.groundY)

	// Spawning
	g.spawnTimer += dt
	if g.spawnTimer > g.difficulty.SpawnInterval() {
		g.spawnTimer = 0
		g.obstacles = append(g.obstacles, g.spawner.Spawn(g.rnd))
		g.difficulty.DecaySpawnInterval()
	}

	// Scrolling, scoring and removal
	speed := g.difficulty.Speed(g.cfg.Physics.BaseSpeed)
	despawnX := g.cfg.DespawnX()
	kept := g.obstacles[:0]
	for _, o := range g.obstacles {
		o.X -= speed
		if !o.Passed && o.Right() < g.actor.X {
			o.Passed = true
			g.difficulty.OnObstaclePassed()
		}
		if o.Right() < despawnX {
			continue
		}
		kept = append(kept, o)
	}
	g.obstacles = kept

	// Collision ends the run
	result := StepResult{}
	if g.collides() {
		g.phase = PhaseGameOver
		ev := GameOverEvent{
			Score:           g.difficulty.Score(),
			Passed:          g.difficulty.Passed(),
			Ticks:           g.ticks,
			SpeedMultiplier: g.difficulty.SpeedMultiplier(),
		}
		result.GameOver = &ev
		if g.onGameOver != nil {
			g.onGameOver(ev)
		}
	}

	result.State = g.State()
	return result
}

// collides reports whether the actor overlaps any live obstacle.
func (g *Game) collides() bool {
	box := g.actor.Rect()
	for _, o := range g.obstacles {
		if box.Intersects(o.Rect()) {
			return true
		}
	}
	return false
}

// State returns the current run state.
func (g *Game) State() RunState {
	return RunState{
		Phase:           g.phase,
		Score:           g.difficulty.Score(),
		Passed:          g.difficulty.Passed(),
		SpeedMultiplier: g.difficulty.SpeedMultiplier(),
		SpawnInterval:   g.difficulty.SpawnInterval(),
		Ticks:           g.ticks,
	}
}

// Snapshot returns a copy of the run for drawing.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		State:     g.State(),
		Actor:     g.actor,
		Obstacles: append([]Obstacle(nil), g.obstacles...),
		Speed:     g.difficulty.Speed(g.cfg.Physics.BaseSpeed),
		GroundY:   g.groundY,
		FieldW:    g.cfg.Field.Width,
		FieldH:    g.cfg.Field.Height,
	}
}
