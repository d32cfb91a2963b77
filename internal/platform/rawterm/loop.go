package rawterm

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
)

// clearScreen moves the cursor home and erases the display.
const clearScreen = "\x1b[H\x1b[2J"

// Options configure Loop.
type Options struct {
	Out    io.Writer
	Sleep  func(time.Duration) // defaults to time.Sleep
	Logger *log.Logger
	CRLF   bool // translate "\n" to "\r\n"; raw mode disables output processing
}

// Result summarizes a finished game.
type Result struct {
	Score    int
	Lines    int
	Ticks    uint64
	GameOver bool
	Quit     bool
}

// Loop runs e until game over, a quit key, or ctx is done.
//
// Each iteration takes at most one pending key from keys without waiting,
// ticks the engine, redraws the frame when the move was accepted, then
// sleeps for the engine's current speed. Keys arriving during the sleep
// stay in the channel for later ticks.
func Loop(ctx context.Context, e *tetris.Engine, keys <-chan core.Action, opts Options) (Result, error) {
	sleep := opts.Sleep
	if sleep == nil {
		sleep = time.Sleep
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	result := func() Result {
		return Result{Score: e.Score(), Lines: e.Lines(), Ticks: e.Ticks(), GameOver: e.GameOver()}
	}

	for {
		if ctx.Err() != nil {
			res := result()
			res.Quit = true
			return res, nil
		}

		a := poll(keys)
		if a == core.ActionQuit {
			res := result()
			res.Quit = true
			return res, nil
		}

		tr := e.Tick(a)
		if tr.Spawned {
			kind, pos, _, _ := e.Active()
			logger.Debug("spawn", "piece", kind, "col", pos.Col, "score", e.Score())
		}
		if tr.Locked {
			logger.Debug("lock", "cleared", tr.Cleared, "lines", e.Lines())
		}

		if tr.Rendered || tr.GameOver {
			if err := writeFrame(opts.Out, e.Frame(), opts.CRLF); err != nil {
				return result(), err
			}
		}
		if tr.GameOver {
			logger.Info("game over", "score", e.Score(), "lines", e.Lines(), "ticks", e.Ticks())
			return result(), nil
		}

		sleep(e.Speed())
	}
}

// poll returns the next queued action, or ActionNone when nothing is waiting.
func poll(keys <-chan core.Action) core.Action {
	select {
	case a, ok := <-keys:
		if ok {
			return a
		}
	default:
	}
	return core.ActionNone
}

func writeFrame(w io.Writer, frame string, crlf bool) error {
	out := clearScreen + frame
	if crlf {
		out = strings.ReplaceAll(out, "\n", "\r\n")
	}
	if _, err := io.WriteString(w, out); err != nil {
		return fmt.Errorf("rawterm: write frame: %w", err)
	}
	return nil
}
