package rawterm

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
)

const (
	hideCursor = "\x1b[?25l"
	showCursor = "\x1b[?25h"
)

// Config describes one classic session.
type Config struct {
	Game   config.TetrisConfig
	Seed   int64
	Prompt bool // ask for the difficulty before the game starts
	Logger *log.Logger
}

// Run plays one game on the process's terminal. Raw mode is held only while
// the game runs and is restored on every exit path.
func Run(ctx context.Context, c Config) (Result, error) {
	logger := c.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	in, out := os.Stdin, os.Stdout

	cfg := c.Game
	if c.Prompt {
		if err := PromptDifficulty(in, out, &cfg.Difficulty); err != nil {
			return Result{}, err
		}
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	t, err := MakeRaw(in)
	if err != nil {
		return Result{}, err
	}
	defer func() {
		if err := t.Restore(); err != nil {
			logger.Error("restore terminal", "error", err)
		}
		logger.Info("raw mode released")
	}()
	logger.Info("raw mode acquired", "difficulty", cfg.Difficulty.Level, "scaling", cfg.Difficulty.Scaling, "seed", c.Seed)

	fmt.Fprint(out, hideCursor)
	defer fmt.Fprint(out, showCursor)

	keys := make(chan core.Action, core.DefaultQueueSize)
	go ReadKeys(ctx, in, NewKeyDecoder(cfg.Keys), keys)

	e := tetris.NewEngine(tetris.SettingsFrom(cfg), rand.New(rand.NewSource(c.Seed)))
	res, err := Loop(ctx, e, keys, Options{
		Out:    out,
		Logger: logger,
		CRLF:   true,
	})
	if err != nil {
		return res, err
	}

	if res.GameOver {
		fmt.Fprintf(out, "game over\r\n")
	}
	return res, nil
}
