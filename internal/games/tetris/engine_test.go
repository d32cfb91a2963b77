package tetris

import (
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// dropUntilLocked soft-drops every tick until the falling piece locks.
func dropUntilLocked(t *testing.T, e *Engine) (TickResult, int) {
	t.Helper()
	for i := 1; i <= 50; i++ {
		res := e.Tick(core.ActionDrop)
		if res.Locked {
			return res, i
		}
	}
	t.Fatal("piece never locked")
	return TickResult{}, 0
}

func TestBarDropsToFloor(t *testing.T) {
	e := NewEngine(DefaultSettings(), newScriptedRand(int(Bar), 3))

	res, ticks := dropUntilLocked(t, e)
	assert.Equal(t, 9, ticks)
	assert.False(t, res.GameOver)

	want := NewBoard(15, 10)
	want[14][3], want[14][4], want[14][5] = 1, 1, 1
	assert.True(t, want.Equal(e.Board()), "board:\n%s", strings.Join(BoardLines(e.Board()), "\n"))
	assert.Equal(t, 1, e.Score())

	_, _, _, ok := e.Active()
	assert.False(t, ok)
}

func TestSpawnUsesCatalogAndColumnRange(t *testing.T) {
	rng := newScriptedRand(6, 8)
	e := NewEngine(DefaultSettings(), rng)

	res := e.Tick(core.ActionNone)
	assert.True(t, res.Spawned)
	assert.Equal(t, []int{PieceCount, 9}, rng.bounds)

	kind, pos, rot, ok := e.Active()
	require.True(t, ok)
	assert.Equal(t, T, kind)
	assert.Equal(t, Position{Row: 0, Col: 8}, pos)
	assert.Zero(t, rot)
	assert.Equal(t, 1, e.Score())
}

func TestGravityAndSoftDrop(t *testing.T) {
	e := NewEngine(DefaultSettings(), newScriptedRand(int(T), 4))

	e.Tick(core.ActionNone)
	_, pos, _, _ := e.Active()
	assert.Equal(t, 0, pos.Row)

	e.Tick(core.ActionNone)
	_, pos, _, _ = e.Active()
	assert.Equal(t, 1, pos.Row)

	e.Tick(core.ActionDrop)
	_, pos, _, _ = e.Active()
	assert.Equal(t, 3, pos.Row, "drop applies on top of gravity")
}

func TestHorizontalMoves(t *testing.T) {
	e := NewEngine(DefaultSettings(), newScriptedRand(int(Bar), 0))

	e.Tick(core.ActionNone)
	res := e.Tick(core.ActionLeft)
	assert.True(t, res.Reverted)
	assert.False(t, res.Rendered)
	_, pos, _, _ := e.Active()
	assert.Equal(t, Position{Row: 1, Col: 0}, pos, "gravity survives a rejected move")

	res = e.Tick(core.ActionRight)
	assert.True(t, res.Rendered)
	_, pos, _, _ = e.Active()
	assert.Equal(t, Position{Row: 2, Col: 1}, pos)
	assert.Equal(t, 1, e.View()[2][1])
}

func TestRotateIntoStackReverts(t *testing.T) {
	e := NewEngine(DefaultSettings(), newScriptedRand(int(Bar), 0))
	e.board[3][2] = 1

	e.Tick(core.ActionNone)
	before := e.View()

	res := e.Tick(core.ActionRotate)
	assert.True(t, res.Reverted)
	assert.False(t, res.Locked)

	_, pos, rot, _ := e.Active()
	assert.Equal(t, Position{Row: 1, Col: 0}, pos)
	assert.Zero(t, rot)
	assert.True(t, before.Equal(e.View()), "rejected move keeps the previous frame")
}

func TestRotateOnOpenBoard(t *testing.T) {
	e := NewEngine(DefaultSettings(), newScriptedRand(int(Bar), 0))
	e.Tick(core.ActionNone)

	res := e.Tick(core.ActionRotate)
	assert.True(t, res.Rendered)
	_, _, rot, _ := e.Active()
	assert.Equal(t, 1, rot)

	view := e.View()
	for r := 1; r <= 3; r++ {
		assert.Equal(t, 1, view[r][2])
	}
}

func TestLockOnStack(t *testing.T) {
	e := NewEngine(DefaultSettings(), newScriptedRand(int(Bar), 0))
	e.board[10][1] = 1

	var res TickResult
	for i := 0; i < 20 && !res.Locked; i++ {
		res = e.Tick(core.ActionNone)
	}
	require.True(t, res.Locked)

	b := e.Board()
	assert.Equal(t, []int{1, 1, 1, 0, 0, 0, 0, 0, 0, 0}, b[9])
	assert.Equal(t, 4, b.Occupied())
}

func TestLockClearsRow(t *testing.T) {
	e := NewEngine(DefaultSettings(), newScriptedRand(int(Bar), 3))
	for c := 0; c < 10; c++ {
		if c < 3 || c > 5 {
			e.board[14][c] = 1
		}
	}

	res, _ := dropUntilLocked(t, e)
	assert.Equal(t, 1, res.Cleared)
	assert.Equal(t, 1, e.Lines())
	assert.Zero(t, e.Board().Occupied())
}

func TestGameOver(t *testing.T) {
	e := NewEngine(DefaultSettings(), newScriptedRand(int(Bar), 0))
	for r := 1; r < 15; r++ {
		e.board[r][0], e.board[r][1], e.board[r][2] = 1, 1, 1
	}

	res := e.Tick(core.ActionNone)
	assert.True(t, res.Rendered)
	assert.False(t, res.GameOver)

	res = e.Tick(core.ActionNone)
	assert.True(t, res.Locked)
	assert.True(t, res.GameOver)
	assert.True(t, e.GameOver())
	assert.Equal(t, []int{1, 1, 1, 0, 0, 0, 0, 0, 0, 0}, e.Board()[0])
	assert.True(t, e.Board().Equal(e.View()))

	ticks, score, board := e.Ticks(), e.Score(), e.Board()
	res = e.Tick(core.ActionDrop)
	assert.True(t, res.GameOver)
	assert.Equal(t, ticks, e.Ticks())
	assert.Equal(t, score, e.Score())
	assert.True(t, board.Equal(e.Board()))
}

func TestSettingsSpeed(t *testing.T) {
	s := DefaultSettings()
	tests := []struct {
		difficulty int
		scaling    bool
		score      int
		want       time.Duration
	}{
		{5, true, 0, 600 * time.Millisecond},
		{5, true, 1, 575 * time.Millisecond},
		{5, true, 16, 200 * time.Millisecond},
		{5, true, 100, 200 * time.Millisecond},
		{1, true, 10, 590 * time.Millisecond},
		{10, true, 3, 300 * time.Millisecond},
		{10, true, 4, 200 * time.Millisecond},
		{11, true, 50, 600 * time.Millisecond},
		{10, false, 50, 600 * time.Millisecond},
	}

	for _, tc := range tests {
		s.Difficulty, s.Scaling = tc.difficulty, tc.scaling
		assert.Equal(t, tc.want, s.Speed(tc.score), "difficulty %d score %d", tc.difficulty, tc.score)
	}
}

func TestEngineSpeedFollowsScore(t *testing.T) {
	e := NewEngine(DefaultSettings(), newScriptedRand(int(T), 4))
	assert.Equal(t, 600*time.Millisecond, e.Speed())
	e.Tick(core.ActionNone)
	assert.Equal(t, 575*time.Millisecond, e.Speed())
}

func TestBoardStaysBinary(t *testing.T) {
	e := NewEngine(DefaultSettings(), rand.New(rand.NewSource(7)))
	inputs := rand.New(rand.NewSource(11))
	actions := []core.Action{
		core.ActionNone, core.ActionRotate, core.ActionLeft,
		core.ActionRight, core.ActionDrop, core.ActionDrop,
	}

	for i := 0; i < 5000 && !e.GameOver(); i++ {
		e.Tick(actions[inputs.Intn(len(actions))])
		for _, b := range []Board{e.Board(), e.View()} {
			for _, row := range b {
				for _, v := range row {
					require.LessOrEqual(t, v, 1)
				}
			}
		}
	}
}

func TestFrame(t *testing.T) {
	e := NewEngine(DefaultSettings(), newScriptedRand(int(Bar), 0))
	lines := strings.Split(e.Frame(), "\n")

	require.GreaterOrEqual(t, len(lines), 18)
	assert.Equal(t, "<! . . . . . . . . . . !>", lines[0])
	assert.Equal(t, "<!=====================!>", lines[15])
	assert.Equal(t, "score: 0", lines[16])
	assert.Equal(t, "speed: 600", lines[17])

	e.Tick(core.ActionNone)
	lines = strings.Split(e.Frame(), "\n")
	assert.Equal(t, "<![][][] . . . . . . . !>", lines[0])
	assert.Equal(t, "score: 1", lines[16])
	assert.Equal(t, "speed: 625", lines[17])
}
