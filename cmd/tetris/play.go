package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

var flagPlayDifficulty string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the full-screen interface",
	Long: `Start a game in the full-screen terminal interface.

Controls (defaults, configurable under "keys"):
  W/Up       - Rotate
  A/Left     - Move left
  D/Right    - Move right
  S/Down     - Drop one extra row
  P/Esc      - Pause
  R          - Restart (after game over)
  ?          - Show all keys
  Q/Ctrl+C   - Quit

Difficulty options:
  1-10   - Speed-up per point of score is the level squared, in ms
  easy   - Level 1
  normal - Level 5
  hard   - Level 10
  fixed  - No speed-up, keeps the base speed

Without --difficulty a picker is shown before the game starts.

Examples:
  tetris play
  tetris play --difficulty 8
  tetris play --difficulty fixed --seed 42`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagPlayDifficulty, "difficulty", "", "Difficulty: 1-10, easy, normal, hard, fixed")
}

func runPlay(_ *cobra.Command, _ []string) {
	logger, closeLog, err := newLogger()
	if err != nil {
		fail(err)
	}
	defer closeLog()

	cfg, err := loadConfig(logger, flagPlayDifficulty)
	if err != nil {
		fail(err)
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	if flagPlayDifficulty == "" {
		choice, ok, pickErr := tui.PickDifficulty(cfg.Difficulty.Level, width, height)
		if pickErr != nil {
			fail(pickErr)
		}
		if !ok {
			return
		}
		cfg.Difficulty.Level = choice.Level
		cfg.Difficulty.Scaling = !choice.Fixed
	}

	gameID := tetris.IDMarathon
	if !cfg.Difficulty.Scaling {
		gameID = tetris.IDClassic
	}
	tetris.SetConfig(cfg)

	game, err := registry.Create(gameID)
	if err != nil {
		fail(err)
	}

	rt := core.RuntimeConfig{
		ScreenW: width,
		ScreenH: height,
		Seed:    seed(),
	}
	logger.Info("starting", "game", gameID, "difficulty", cfg.Difficulty.Level, "seed", rt.Seed)

	if err := tui.Run(game, rt, tui.Options{Keys: tui.NewKeyMap(cfg.Keys), Logger: logger}); err != nil {
		logger.Error("game failed", "error", err)
		fail(err)
	}
	logger.Info("stopped")
}
