package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/platform/rawterm"
)

var flagClassicDifficulty string

var classicCmd = &cobra.Command{
	Use:   "classic",
	Short: "Play with plain text output",
	Long: `Start a game that prints the whole board as text after every move,
the way the first version of the game did.

Controls: W rotate, A left, D right, S drop, Q quit.
Without --difficulty the game asks for one before starting.

Examples:
  tetris classic
  tetris classic --difficulty 3`,
	Args: cobra.NoArgs,
	Run:  runClassic,
}

func init() {
	classicCmd.Flags().StringVar(&flagClassicDifficulty, "difficulty", "", "Difficulty: 1-10, easy, normal, hard, fixed")
}

func runClassic(cmd *cobra.Command, _ []string) {
	logger, closeLog, err := newLogger()
	if err != nil {
		fail(err)
	}
	defer closeLog()

	cfg, err := loadConfig(logger, flagClassicDifficulty)
	if err != nil {
		fail(err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	res, err := rawterm.Run(ctx, rawterm.Config{
		Game:   cfg,
		Seed:   seed(),
		Prompt: flagClassicDifficulty == "",
		Logger: logger,
	})
	if err != nil {
		logger.Error("game failed", "error", err)
		fail(err)
	}

	logger.Info("stopped", "score", res.Score, "lines", res.Lines, "quit", res.Quit)
	fmt.Printf("score: %d  lines: %d\n", res.Score, res.Lines)
}
