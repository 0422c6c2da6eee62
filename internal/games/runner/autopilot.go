package runner

// Autopilot is a simple jumping strategy used by headless simulations.
type Autopilot struct {
	// Lookahead is how many ticks ahead of the actor's leading edge an obstacle may be
	// before the autopilot jumps.
	Lookahead float64
}

// DefaultAutopilot returns the tuned default strategy.
func DefaultAutopilot() Autopilot {
	return Autopilot{Lookahead: 8}
}

// ShouldJump decides whether to jump in the given frame.
func (a Autopilot) ShouldJump(s Snapshot) bool {
	if s.State.Phase != PhaseRunning || !s.Actor.Grounded {
		return false
	}

	reach := a.Lookahead * s.Speed
	front := s.Actor.X + s.Actor.W
	for _, o := range s.Obstacles {
		if o.Passed {
			continue
		}
		if gap := o.X - front; gap >= 0 && gap <= reach {
			return true
		}
	}
	return false
}
