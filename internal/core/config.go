package core

// RuntimeConfig contains platform settings handed to a presentation adapter.
// Field geometry and physics live in config.RunnerConfig; this only covers the
// surface the run is displayed on and the clock that drives it.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Ticks per second requested from the clock (default 60)
	Seed     int64 // RNG seed; 0 means derive one from the current time
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// FrameMs returns the nominal tick duration in milliseconds.
func (c RuntimeConfig) FrameMs() float64 {
	if c.TickRate <= 0 {
		return 1000.0 / 60
	}
	return 1000.0 / float64(c.TickRate)
}
