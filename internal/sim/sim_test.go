package sim

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/vovakirdan/squirrel-run/internal/config"
)

func testOptions() Options {
	opts := DefaultOptions()
	opts.Runs = 6
	opts.MaxTicks = 3000
	return opts
}

func TestRunOrderedAndComplete(t *testing.T) {
	opts := testOptions()
	opts.Workers = 3

	results, err := Run(context.Background(), config.DefaultRunnerConfig(), opts)
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	if len(results) != opts.Runs {
		t.Fatalf("expected %d results, got %d", opts.Runs, len(results))
	}
	for i, r := range results {
		if r.Run != i || r.Seed != opts.Seed+int64(i) {
			t.Errorf("result %d out of order: %+v", i, r)
		}
		if r.Ticks == 0 || r.Ticks > opts.MaxTicks {
			t.Errorf("result %d has %d ticks", i, r.Ticks)
		}
		if r.Score != 100*r.Passed {
			t.Errorf("result %d: score %d for %d passes", i, r.Score, r.Passed)
		}
		if !r.Crashed && r.Ticks != opts.MaxTicks {
			t.Errorf("result %d stopped early without crashing: %+v", i, r)
		}
	}
}

func TestRunIndependentOfWorkers(t *testing.T) {
	cfg := config.DefaultRunnerConfig()

	serial := testOptions()
	serial.Workers = 1
	parallel := testOptions()
	parallel.Workers = 4

	a, err := Run(context.Background(), cfg, serial)
	if err != nil {
		t.Fatalf("serial Run() failed: %v", err)
	}
	b, err := Run(context.Background(), cfg, parallel)
	if err != nil {
		t.Fatalf("parallel Run() failed: %v", err)
	}

	if !reflect.DeepEqual(a, b) {
		t.Errorf("results depend on worker count:\n%+v\n%+v", a, b)
	}
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Run(ctx, config.DefaultRunnerConfig(), testOptions())
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Run() with cancelled context = %v, expected context.Canceled", err)
	}
}

func TestRunRejectsBadOptions(t *testing.T) {
	cfg := config.DefaultRunnerConfig()

	noRuns := testOptions()
	noRuns.Runs = 0
	if _, err := Run(context.Background(), cfg, noRuns); err == nil {
		t.Error("Run() should reject zero runs")
	}

	noTicks := testOptions()
	noTicks.MaxTicks = 0
	if _, err := Run(context.Background(), cfg, noTicks); err == nil {
		t.Error("Run() should reject zero max ticks")
	}
}

func TestSummarize(t *testing.T) {
	results := []Result{
		{Score: 300, Passed: 3, Ticks: 100, SpeedMultiplier: 1.03, Crashed: true},
		{Score: 1000, Passed: 10, Ticks: 500, SpeedMultiplier: 1.21, Crashed: false},
	}

	s := Summarize(results)
	if s.Runs != 2 || s.MaxScore != 1000 || s.MaxSpeed != 1.21 {
		t.Errorf("unexpected summary: %+v", s)
	}
	if s.MeanScore != 650 || s.MeanPassed != 6.5 || s.MeanTicks != 300 || s.CrashRate != 0.5 {
		t.Errorf("unexpected means: %+v", s)
	}

	if empty := Summarize(nil); empty != (Summary{}) {
		t.Errorf("empty batch should summarize to zero, got %+v", empty)
	}
}
