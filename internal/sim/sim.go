// Package sim runs headless runner games in parallel, each with its own Game and
// random source, steered by the autopilot. It is used to inspect the difficulty curve.
package sim

import (
	"context"
	"fmt"
	"math/rand"
	"runtime"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/squirrel-run/internal/config"
	"github.com/vovakirdan/squirrel-run/internal/games/runner"
)

// Options control a simulation batch.
type Options struct {
	Runs      int     // Number of runs
	Seed      int64   // Run i uses Seed+i
	Workers   int     // Parallel runs; 0 means GOMAXPROCS
	MaxTicks  int     // Runs still alive after this many ticks are stopped
	FrameMs   float64 // Simulated tick duration
	Lookahead float64 // Autopilot lookahead in ticks

	// Logger receives one debug line per finished run. Nil disables logging.
	Logger *log.Logger
}

// DefaultOptions returns a small batch at 60 ticks per second.
func DefaultOptions() Options {
	return Options{
		Runs:      32,
		Seed:      1,
		MaxTicks:  60 * 60 * 10, // ten simulated minutes
		FrameMs:   1000.0 / 60,
		Lookahead: runner.DefaultAutopilot().Lookahead,
	}
}

// Result is the outcome of one simulated run.
type Result struct {
	Run             int
	Seed            int64
	Score           int
	Passed          int
	Ticks           int
	SpeedMultiplier float64
	SpawnInterval   float64
	Crashed         bool // False when the run hit MaxTicks
}

// Run simulates opts.Runs games concurrently. Results are ordered by run index.
// It stops early and returns ctx.Err() if the context is cancelled.
func Run(ctx context.Context, cfg config.RunnerConfig, opts Options) ([]Result, error) {
	if opts.Runs <= 0 {
		return nil, fmt.Errorf("sim: runs must be positive, got %d", opts.Runs)
	}
	if opts.MaxTicks <= 0 {
		return nil, fmt.Errorf("sim: max ticks must be positive, got %d", opts.MaxTicks)
	}
	if opts.FrameMs <= 0 {
		opts.FrameMs = DefaultOptions().FrameMs
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	workers = min(workers, opts.Runs)

	results := make([]Result, opts.Runs)
	jobs := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				res := simulate(ctx, cfg, opts, i)
				results[i] = res
				if opts.Logger != nil {
					opts.Logger.Debug("run finished",
						"run", res.Run,
						"seed", res.Seed,
						"score", res.Score,
						"passed", res.Passed,
						"ticks", res.Ticks,
						"crashed", res.Crashed,
					)
				}
			}
		}()
	}

feed:
	for i := 0; i < opts.Runs; i++ {
		select {
		case jobs <- i:
		case <-ctx.Done():
			break feed
		}
	}
	close(jobs)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

// simulate plays one run to its end, to MaxTicks, or until ctx is cancelled.
func simulate(ctx context.Context, cfg config.RunnerConfig, opts Options, run int) Result {
	seed := opts.Seed + int64(run)
	g := runner.New(cfg, rand.New(rand.NewSource(seed)))
	pilot := runner.Autopilot{Lookahead: opts.Lookahead}

	res := Result{Run: run, Seed: seed}
	g.OnGameOver(func(runner.GameOverEvent) { res.Crashed = true })
	//nolint:errcheck // New always starts idle
	g.Start()

	for tick := 0; tick < opts.MaxTicks && g.Phase() == runner.PhaseRunning; tick++ {
		if tick%1024 == 0 && ctx.Err() != nil {
			break
		}
		if pilot.ShouldJump(g.Snapshot()) {
			g.Jump()
		}
		g.Tick(opts.FrameMs)
	}

	st := g.State()
	res.Score = st.Score
	res.Passed = st.Passed
	res.Ticks = st.Ticks
	res.SpeedMultiplier = st.SpeedMultiplier
	res.SpawnInterval = st.SpawnInterval
	return res
}
