package tetris

import (
	"time"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
)

// RandomSource supplies piece and spawn column choices.
// *rand.Rand satisfies it; tests pass scripted sequences.
type RandomSource interface {
	Intn(n int) int
}

// Settings parameterize an Engine.
type Settings struct {
	Rows       int
	Cols       int
	BaseSpeed  time.Duration // tick interval at score 0
	TopSpeed   time.Duration // shortest tick interval
	Difficulty int           // 1-10; each point of score costs (Difficulty mod 11)^2 ms
	Scaling    bool          // false keeps BaseSpeed for the whole game
}

// DefaultSettings returns a 15x10 board with 600ms/200ms speeds at difficulty 5.
func DefaultSettings() Settings {
	return SettingsFrom(config.DefaultTetrisConfig())
}

// SettingsFrom builds engine settings from a loaded configuration.
func SettingsFrom(cfg config.TetrisConfig) Settings {
	return Settings{
		Rows:       cfg.Board.Rows,
		Cols:       cfg.Board.Cols,
		BaseSpeed:  cfg.Timing.BaseSpeed(),
		TopSpeed:   cfg.Timing.TopSpeed(),
		Difficulty: cfg.Difficulty.Level,
		Scaling:    cfg.Difficulty.Scaling,
	}
}

// Speed returns the tick interval for a score:
// max(BaseSpeed - score*(Difficulty mod 11)^2 ms, TopSpeed).
func (s Settings) Speed(score int) time.Duration {
	if !s.Scaling {
		return s.BaseSpeed
	}
	step := time.Duration(score*config.SpeedFactor(s.Difficulty)) * time.Millisecond
	return max(s.BaseSpeed-step, s.TopSpeed)
}

// TickResult describes what happened during one tick.
type TickResult struct {
	Spawned  bool // a new piece entered the board
	Rendered bool // the move was accepted and View was recomposed
	Reverted bool // the move was rejected and position/rotation restored
	Locked   bool // the piece was merged into the board
	Cleared  int  // rows removed by this lock
	GameOver bool // the stack reached the top row
}

// Engine runs the falling-block simulation one tick at a time.
// It is not safe for concurrent use; a single loop owns it.
type Engine struct {
	settings Settings
	rng      RandomSource

	board    Board // settled cells
	view     Board // settled cells plus the falling piece, as last rendered
	piece    PieceKind
	pos      Position
	rotation int

	score    int
	lines    int
	ticks    uint64
	gameOver bool
}

// NewEngine returns an engine with an empty board and no falling piece.
func NewEngine(s Settings, rng RandomSource) *Engine {
	board := NewBoard(s.Rows, s.Cols)
	return &Engine{
		settings: s,
		rng:      rng,
		board:    board,
		view:     board.Clone(),
		piece:    NoPiece,
	}
}

// Tick advances the game by one step using a single input action.
// Actions other than rotate, left, right and drop are treated as no input.
func (e *Engine) Tick(a core.Action) TickResult {
	var res TickResult
	if e.gameOver {
		res.GameOver = true
		return res
	}
	e.ticks++

	if e.piece == NoPiece {
		e.spawn()
		res.Spawned = true
	} else {
		e.pos.Row++
	}

	savedPos, savedRotation := e.pos, e.rotation

	switch a {
	case core.ActionRotate:
		e.rotation++
	case core.ActionLeft:
		e.pos.Col--
	case core.ActionRight:
		e.pos.Col++
	case core.ActionDrop:
		e.pos.Row++
	}

	shape := e.piece.Shape(e.rotation)
	if IsValidPlacement(e.board, shape, e.pos) {
		e.view = Merge(e.board, shape, e.pos)
		res.Rendered = true
	} else {
		e.pos, e.rotation = savedPos, savedRotation
		shape = e.piece.Shape(e.rotation)
		res.Reverted = true
	}

	if IsLocked(e.board, shape, e.pos) {
		e.lock(shape, &res)
	}
	return res
}

func (e *Engine) spawn() {
	e.piece = PieceKind(e.rng.Intn(PieceCount))
	e.pos = Position{Row: 0, Col: e.rng.Intn(max(e.settings.Cols-1, 1))}
	e.rotation = 0
	e.score++
}

// lock settles the falling piece one row above where it was found stuck.
// The single step back assumes the piece advanced one row this tick; after
// gravity plus a soft drop it can leave the merge overlapping, which
// normalized() folds back to 0/1.
func (e *Engine) lock(shape Piece, res *TickResult) {
	e.piece = NoPiece
	e.pos.Row--

	merged := Merge(e.board, shape, e.pos).normalized()
	e.board, res.Cleared = ClearFullRows(merged)
	e.lines += res.Cleared
	res.Locked = true

	if IsGameOver(e.board) {
		e.gameOver = true
		e.view = e.board.Clone()
		res.GameOver = true
	}
}

// Speed returns the current tick interval.
func (e *Engine) Speed() time.Duration {
	return e.settings.Speed(e.score)
}

// Settings returns the engine parameters.
func (e *Engine) Settings() Settings {
	return e.settings
}

// Board returns a copy of the settled cells.
func (e *Engine) Board() Board {
	return e.board.Clone()
}

// View returns a copy of the last rendered frame: settled cells plus the
// falling piece at its last accepted position.
func (e *Engine) View() Board {
	return e.view.Clone()
}

// Active returns the falling piece, its position and rotation count.
// ok is false between a lock and the next spawn.
func (e *Engine) Active() (kind PieceKind, pos Position, rotation int, ok bool) {
	return e.piece, e.pos, e.rotation, e.piece != NoPiece
}

// Score returns the number of pieces spawned.
func (e *Engine) Score() int { return e.score }

// Lines returns the number of rows cleared.
func (e *Engine) Lines() int { return e.lines }

// Ticks returns the number of ticks simulated.
func (e *Engine) Ticks() uint64 { return e.ticks }

// GameOver reports whether the stack has reached the top row.
func (e *Engine) GameOver() bool { return e.gameOver }
