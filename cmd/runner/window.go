package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/squirrel-run/internal/platform/desktop"
	"github.com/vovakirdan/squirrel-run/internal/platform/tui"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open a native window sized to the game field.

Controls:
  Enter          - Start
  Space/Up/W     - Jump (mouse click and touch too)
  R              - Reset
  Esc            - Quit`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func runWindow(_ *cobra.Command, _ []string) {
	cfg := loadRunnerConfig()
	rc := runtimeConfig(int(cfg.Field.Width), int(cfg.Field.Height))

	if err := desktop.Run(tui.NewGame(cfg, rc.Seed), rc, logger); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
