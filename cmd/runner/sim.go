package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/squirrel-run/internal/sim"
	"github.com/vovakirdan/squirrel-run/internal/storage"
)

var (
	flagRuns      int
	flagWorkers   int
	flagMaxTicks  int
	flagLookahead float64
	flagDBPath    string
	flagLimit     int
	flagBatch     int64
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run headless autopilot games",
	Long: `Play many runs in parallel without a screen. Each run is steered by a simple
autopilot that jumps when the next obstacle gets close, which makes the batch a
quick check of how the difficulty curve plays out.

Run i uses seed --seed + i, so a batch is reproducible. Use --db to keep the
batch for 'runner sim report'.

Examples:
  runner sim
  runner sim --runs 200 --workers 8 --seed 7
  runner sim --lookahead 6 --db ~/.squirrel/sim.db`,
	Args: cobra.NoArgs,
	Run:  runSim,
}

var simReportCmd = &cobra.Command{
	Use:   "report",
	Short: "Show stored simulation batches",
	Long: `List recent batches from the simulation database, or the runs of one batch.

Examples:
  runner sim report
  runner sim report --batch 3`,
	Args: cobra.NoArgs,
	Run:  runSimReport,
}

func init() {
	defaults := sim.DefaultOptions()
	simCmd.Flags().IntVar(&flagRuns, "runs", defaults.Runs, "Number of runs")
	simCmd.Flags().IntVar(&flagWorkers, "workers", 0, "Parallel runs (0 = number of CPUs)")
	simCmd.Flags().IntVar(&flagMaxTicks, "max-ticks", defaults.MaxTicks, "Stop runs that survive this many ticks")
	simCmd.Flags().Float64Var(&flagLookahead, "lookahead", defaults.Lookahead, "Autopilot lookahead in ticks")
	simCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to simulation database (report defaults to ~/.squirrel/sim.db)")

	simReportCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of batches to list")
	simReportCmd.Flags().Int64Var(&flagBatch, "batch", 0, "Show the runs of this batch")

	simCmd.AddCommand(simReportCmd)
}

func runSim(_ *cobra.Command, _ []string) {
	cfg := loadRunnerConfig()

	opts := sim.DefaultOptions()
	opts.Runs = flagRuns
	opts.Workers = flagWorkers
	opts.MaxTicks = flagMaxTicks
	opts.Lookahead = flagLookahead
	opts.Logger = logger
	if flagFPS > 0 {
		opts.FrameMs = 1000.0 / float64(flagFPS)
	}
	if flagSeed != 0 {
		opts.Seed = flagSeed
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	start := time.Now()
	results, err := sim.Run(ctx, cfg, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	summary := sim.Summarize(results)
	logger.Info("batch finished",
		"runs", summary.Runs,
		"mean_score", summary.MeanScore,
		"max_score", summary.MaxScore,
		"crash_rate", summary.CrashRate,
		"elapsed", time.Since(start).Round(time.Millisecond),
	)

	fmt.Println(resultsTable(results))
	fmt.Println(summaryLine(summary))

	if flagDBPath == "" {
		return
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening simulation database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	id, err := store.SaveBatch(storage.Batch{
		Seed:      opts.Seed,
		MaxTicks:  opts.MaxTicks,
		Lookahead: opts.Lookahead,
		Summary:   summary,
		Runs:      results,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error saving batch: %v\n", err)
		return
	}
	fmt.Printf("Saved as batch %d\n", id)
}

func runSimReport(_ *cobra.Command, _ []string) {
	path := flagDBPath
	if path == "" {
		path = "~/.squirrel/sim.db"
	}

	store, err := storage.Open(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening simulation database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagBatch > 0 {
		runs, err := store.BatchRuns(flagBatch)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		if len(runs) == 0 {
			fmt.Printf("Batch %d has no runs.\n", flagBatch)
			return
		}
		fmt.Println(resultsTable(runs))
		fmt.Println(summaryLine(sim.Summarize(runs)))
		return
	}

	batches, err := store.RecentBatches(flagLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}
	if len(batches) == 0 {
		fmt.Println("No batches recorded yet.")
		fmt.Println()
		fmt.Println("Run 'runner sim --db <path>' to record one.")
		return
	}
	fmt.Println(batchesTable(batches))
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("208")).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		Headers(headers...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
}

func resultsTable(results []sim.Result) *table.Table {
	t := newTable("Run", "Seed", "Score", "Passed", "Ticks", "Speed", "Interval", "End")
	for _, r := range results {
		end := "timeout"
		if r.Crashed {
			end = "crash"
		}
		t.Row(
			strconv.Itoa(r.Run),
			strconv.FormatInt(r.Seed, 10),
			strconv.Itoa(r.Score),
			strconv.Itoa(r.Passed),
			strconv.Itoa(r.Ticks),
			fmt.Sprintf("%.2fx", r.SpeedMultiplier),
			fmt.Sprintf("%.0fms", r.SpawnInterval),
			end,
		)
	}
	return t
}

func batchesTable(batches []storage.Batch) *table.Table {
	t := newTable("Batch", "Date", "Seed", "Runs", "Mean score", "Max score", "Max speed", "Crash rate")
	for _, b := range batches {
		t.Row(
			strconv.FormatInt(b.ID, 10),
			b.CreatedAt.Format("2006-01-02 15:04"),
			strconv.FormatInt(b.Seed, 10),
			strconv.Itoa(b.Summary.Runs),
			fmt.Sprintf("%.1f", b.Summary.MeanScore),
			strconv.Itoa(b.Summary.MaxScore),
			fmt.Sprintf("%.2fx", b.Summary.MaxSpeed),
			fmt.Sprintf("%.0f%%", b.Summary.CrashRate*100),
		)
	}
	return t
}

func summaryLine(s sim.Summary) string {
	return fmt.Sprintf("%d runs  mean score %.1f  max score %d  mean passed %.1f  crash rate %.0f%%",
		s.Runs, s.MeanScore, s.MaxScore, s.MeanPassed, s.CrashRate*100)
}
