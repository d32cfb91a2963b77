package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Prints the configuration a game would start with, as YAML.

Search order: --config, ~/.tetris/configs/tetris.yaml, ./configs/tetris.yaml,
then the built-in defaults. Save the output to one of those paths to customize it.`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func runConfig(_ *cobra.Command, _ []string) {
	cfg, source, err := config.LoadTetris(flagConfig)
	if err != nil {
		fail(err)
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		fail(err)
	}

	fmt.Printf("# source: %s\n", source)
	os.Stdout.Write(data)
}
