package config

import (
	_ "embed"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the built-in runner configuration.
// It mirrors defaults/runner.yaml and is used when the embedded file cannot be parsed.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		Field: FieldConfig{
			Width:        800,
			Height:       300,
			GroundHeight: 60,
		},
		Actor: ActorConfig{
			X:      120,
			Width:  48,
			Height: 36,
		},
		Physics: PhysicsConfig{
			Gravity:     0.6,
			JumpImpulse: -12.5,
			BaseSpeed:   4,
		},
		Obstacles: ObstacleConfig{
			MinWidth:      18,
			MaxWidth:      48,
			MinHeight:     24,
			MaxHeight:     60,
			SpawnOffset:   10,
			DespawnMargin: 50,
		},
		Difficulty: DifficultyConfig{
			PointsPerPass:        100,
			PassStep:             0.01,
			MilestoneEvery:       10,
			MilestoneStep:        0.12,
			InitialSpawnInterval: 1400,
			SpawnIntervalDecay:   0.98,
			SpawnIntervalFloor:   600,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultRunnerYAML
}
