package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/squirrel-run/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default game config",
	Long: `Print the built-in game configuration as YAML.

Save it to ~/.squirrel/configs/runner.yaml or ./configs/runner.yaml and edit it,
or pass any file with --config.`,
	Args: cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Print(string(config.DefaultYAML()))
	},
}
