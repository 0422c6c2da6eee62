// runner is a single-screen endless runner: a squirrel jumps over obstacles that
// scroll in faster and faster until it hits one.
//
// Usage:
//
//	runner play              - Play in the terminal
//	runner window            - Play in a desktop window
//	runner serve             - Start SSH server for remote play
//	runner sim               - Run headless autopilot games
//	runner sim report        - Show stored simulation batches
//	runner config            - Print the default game config
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible runs
//	--config <path>      - Use a custom game config YAML
//	--log-level <level>  - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/squirrel-run/internal/config"
	"github.com/vovakirdan/squirrel-run/internal/core"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagLogLevel string
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	Prefix:          "runner",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "runner",
	Short: "Squirrel Run - an endless runner for terminal, window and SSH",
	Long: `Squirrel Run is a single-screen endless runner. Jump over obstacles;
every one you clear scores 100 points and speeds the field up.

Available commands:
  play     - Play in the terminal
  window   - Play in a desktop window
  serve    - Start SSH server for remote play
  sim      - Run headless autopilot games
  config   - Print the default game config

Examples:
  runner play
  runner window --fps 120
  runner serve --ssh :2222
  runner sim --runs 64 --db ~/.squirrel/sim.db
  runner config > my-runner.yaml`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		level, err := log.ParseLevel(flagLogLevel)
		if err != nil {
			return fmt.Errorf("invalid --log-level: %w", err)
		}
		logger.SetLevel(level)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}

// loadRunnerConfig resolves the game config or exits with an error.
func loadRunnerConfig() config.RunnerConfig {
	cfg, err := config.LoadRunner(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger.Debug("config loaded", "field", fmt.Sprintf("%.0fx%.0f", cfg.Field.Width, cfg.Field.Height))
	return cfg
}

// runtimeConfig builds the adapter settings from the global flags.
func runtimeConfig(width, height int) core.RuntimeConfig {
	rc := core.DefaultConfig()
	rc.ScreenW = width
	rc.ScreenH = height
	rc.TickRate = flagFPS
	rc.Seed = flagSeed
	return rc
}
