package config

import (
	"errors"
	"fmt"
)

// Validate reports every setting that would make a run ill-formed.
func (c RunnerConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Field.Width > 0, "field.width must be positive, got %v", c.Field.Width)
	check(c.Field.Height > 0, "field.height must be positive, got %v", c.Field.Height)
	check(c.Field.GroundHeight >= 0 && c.Field.GroundHeight < c.Field.Height,
		"field.ground_height must be in [0, field.height), got %v", c.Field.GroundHeight)

	check(c.Actor.Width > 0 && c.Actor.Height > 0,
		"actor size must be positive, got %vx%v", c.Actor.Width, c.Actor.Height)
	check(c.Actor.Height <= c.GroundY(),
		"actor.height %v does not fit above the ground line at %v", c.Actor.Height, c.GroundY())
	check(c.Actor.X >= 0 && c.Actor.X+c.Actor.Width <= c.Field.Width,
		"actor must sit inside the field, x=%v width=%v", c.Actor.X, c.Actor.Width)

	check(c.Physics.Gravity > 0, "physics.gravity must be positive, got %v", c.Physics.Gravity)
	check(c.Physics.JumpImpulse < 0, "physics.jump_impulse must be negative (upward), got %v", c.Physics.JumpImpulse)
	check(c.Physics.BaseSpeed > 0, "physics.base_speed must be positive, got %v", c.Physics.BaseSpeed)

	o := c.Obstacles
	check(o.MinWidth > 0 && o.MaxWidth >= o.MinWidth,
		"obstacles width range [%v, %v) is invalid", o.MinWidth, o.MaxWidth)
	check(o.MinHeight > 0 && o.MaxHeight >= o.MinHeight,
		"obstacles height range [%v, %v) is invalid", o.MinHeight, o.MaxHeight)
	check(o.MaxHeight <= c.GroundY(),
		"obstacles.max_height %v does not fit above the ground line at %v", o.MaxHeight, c.GroundY())
	check(o.SpawnOffset >= 0, "obstacles.spawn_offset must not be negative, got %v", o.SpawnOffset)
	check(o.DespawnMargin >= 0, "obstacles.despawn_margin must not be negative, got %v", o.DespawnMargin)

	d := c.Difficulty
	check(d.PointsPerPass > 0, "difficulty.points_per_pass must be positive, got %d", d.PointsPerPass)
	check(d.PassStep >= 0 && d.MilestoneStep >= 0,
		"difficulty steps must not be negative, got %v and %v", d.PassStep, d.MilestoneStep)
	check(d.MilestoneEvery > 0, "difficulty.milestone_every must be positive, got %d", d.MilestoneEvery)
	check(d.SpawnIntervalFloor > 0, "difficulty.spawn_interval_floor must be positive, got %v", d.SpawnIntervalFloor)
	check(d.InitialSpawnInterval >= d.SpawnIntervalFloor,
		"difficulty.initial_spawn_interval %v is below the floor %v", d.InitialSpawnInterval, d.SpawnIntervalFloor)
	check(d.SpawnIntervalDecay > 0 && d.SpawnIntervalDecay <= 1,
		"difficulty.spawn_interval_decay must be in (0, 1], got %v", d.SpawnIntervalDecay)

	return errors.Join(errs...)
}
