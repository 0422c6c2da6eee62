package runner

import "errors"

// ErrInvalidTransition is returned when a lifecycle call is not allowed in the current phase.
var ErrInvalidTransition = errors.New("runner: invalid phase transition")

// Phase is the coarse lifecycle state of a run.
type Phase int

const (
	PhaseIdle     Phase = iota // Static initial frame, waiting for Start
	PhaseRunning               // Ticking
	PhaseGameOver              // Frozen at the moment of impact until Reset
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "Idle"
	case PhaseRunning:
		return "Running"
	case PhaseGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// RunState is the HUD-facing view of a run.
type RunState struct {
	Phase           Phase
	Score           int
	Passed          int
	SpeedMultiplier float64
	SpawnInterval   float64 // Milliseconds between spawns
	Ticks           int     // Ticks processed while running
}

// Snapshot is a read-only copy of everything an adapter needs to draw a frame.
// Mutating it does not affect the game.
type Snapshot struct {
	State     RunState
	Actor     Actor
	Obstacles []Obstacle
	Speed     float64 // Effective scroll speed in pixels per tick
	GroundY   float64
	FieldW    float64
	FieldH    float64
}

// GameOverEvent is emitted once, on the tick where the actor hits an obstacle.
type GameOverEvent struct {
	Score           int
	Passed          int
	Ticks           int
	SpeedMultiplier float64
}

// StepResult is returned by Game.Tick.
type StepResult struct {
	State    RunState
	GameOver *GameOverEvent // Non-nil only on the tick that ended the run
}
