package sim

// Summary aggregates a batch of results.
type Summary struct {
	Runs       int
	MeanScore  float64
	MaxScore   int
	MeanPassed float64
	MeanTicks  float64
	MaxSpeed   float64
	CrashRate  float64 // Fraction of runs that ended in a collision
}

// Summarize aggregates results. An empty batch yields a zero Summary.
func Summarize(results []Result) Summary {
	s := Summary{Runs: len(results)}
	if len(results) == 0 {
		return s
	}

	var score, passed, ticks, crashed int
	for _, r := range results {
		score += r.Score
		passed += r.Passed
		ticks += r.Ticks
		if r.Crashed {
			crashed++
		}
		s.MaxScore = max(s.MaxScore, r.Score)
		s.MaxSpeed = max(s.MaxSpeed, r.SpeedMultiplier)
	}

	n := float64(len(results))
	s.MeanScore = float64(score) / n
	s.MeanPassed = float64(passed) / n
	s.MeanTicks = float64(ticks) / n
	s.CrashRate = float64(crashed) / n
	return s
}
