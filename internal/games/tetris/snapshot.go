package tetris

import "time"

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying  GameStateType = "playing"
	StateGameOver GameStateType = "game_over"
	StatePaused   GameStateType = "paused"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick     uint64
	Mode     string
	Score    int
	Lines    int
	Speed    time.Duration
	Piece    PieceKind
	Pos      Position
	Rotation int
	Board    Board
	View     Board
	State    GameStateType
}

// Snapshot returns the current engine snapshot.
func (e *Engine) Snapshot() Snapshot {
	state := StatePlaying
	if e.gameOver {
		state = StateGameOver
	}
	return Snapshot{
		Tick:     e.ticks,
		Score:    e.score,
		Lines:    e.lines,
		Speed:    e.Speed(),
		Piece:    e.piece,
		Pos:      e.pos,
		Rotation: e.rotation,
		Board:    e.board.Clone(),
		View:     e.view.Clone(),
		State:    state,
	}
}

// Snapshot returns the current game snapshot, including mode and pause state.
func (g *Game) Snapshot() Snapshot {
	snap := g.engine.Snapshot()
	snap.Mode = string(g.mode)
	if g.paused && snap.State == StatePlaying {
		snap.State = StatePaused
	}
	return snap
}
