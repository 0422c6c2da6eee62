// Package config provides YAML-based configuration loading for the runner.
// Every length is in field pixels, every velocity in pixels per tick and every
// interval in milliseconds.
package config

// RunnerConfig contains all configuration for a run.
type RunnerConfig struct {
	Field      FieldConfig      `yaml:"field"`
	Actor      ActorConfig      `yaml:"actor"`
	Physics    PhysicsConfig    `yaml:"physics"`
	Obstacles  ObstacleConfig   `yaml:"obstacles"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// FieldConfig describes the visible playfield.
type FieldConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	GroundHeight float64 `yaml:"ground_height"` // Ground strip below the ground line
}

// ActorConfig defines the player's avatar.
type ActorConfig struct {
	X      float64 `yaml:"x"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PhysicsConfig defines per-tick motion parameters.
type PhysicsConfig struct {
	Gravity     float64 `yaml:"gravity"`
	JumpImpulse float64 `yaml:"jump_impulse"` // Negative = upward
	BaseSpeed   float64 `yaml:"base_speed"`   // Scroll speed at multiplier 1.0
}

// ObstacleConfig defines obstacle dimensions and the spawn/despawn lines.
type ObstacleConfig struct {
	MinWidth      float64 `yaml:"min_width"`
	MaxWidth      float64 `yaml:"max_width"`
	MinHeight     float64 `yaml:"min_height"`
	MaxHeight     float64 `yaml:"max_height"`
	SpawnOffset   float64 `yaml:"spawn_offset"`   // Distance past the right edge where obstacles appear
	DespawnMargin float64 `yaml:"despawn_margin"` // Distance past the left edge where obstacles are dropped
}

// DifficultyConfig defines scoring and the speed/spawn curve.
type DifficultyConfig struct {
	PointsPerPass        int     `yaml:"points_per_pass"`
	PassStep             float64 `yaml:"pass_step"`       // Speed multiplier gain per ordinary pass
	MilestoneEvery       int     `yaml:"milestone_every"` // Every Nth pass uses MilestoneStep instead
	MilestoneStep        float64 `yaml:"milestone_step"`
	InitialSpawnInterval float64 `yaml:"initial_spawn_interval"`
	SpawnIntervalDecay   float64 `yaml:"spawn_interval_decay"` // Applied once per spawn
	SpawnIntervalFloor   float64 `yaml:"spawn_interval_floor"`
}

// GroundY returns the y coordinate of the ground line.
func (c RunnerConfig) GroundY() float64 {
	return c.Field.Height - c.Field.GroundHeight
}

// SpawnX returns the x coordinate at which new obstacles appear.
func (c RunnerConfig) SpawnX() float64 {
	return c.Field.Width + c.Obstacles.SpawnOffset
}

// DespawnX returns the x coordinate an obstacle's right edge must cross to be dropped.
func (c RunnerConfig) DespawnX() float64 {
	return -c.Obstacles.DespawnMargin
}
