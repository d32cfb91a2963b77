package tetris

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		Seed:    seed,
		ScreenW: 80,
		ScreenH: 24,
	}
}

func TestDeterminism(t *testing.T) {
	g1 := New()
	g1.Reset(testRuntime(12345))

	g2 := New()
	g2.Reset(testRuntime(12345))

	input := core.NewInputFrame()
	for i := 0; i < 300; i++ {
		input.Clear()
		switch i % 7 {
		case 1:
			input.Set(core.ActionLeft)
		case 3:
			input.Set(core.ActionRotate)
		case 5:
			input.Set(core.ActionRight)
		case 6:
			input.Set(core.ActionDrop)
		}

		g1.Step(input)
		g2.Step(input)
	}

	snap1 := g1.Snapshot()
	snap2 := g2.Snapshot()

	if snap1.Tick != snap2.Tick {
		t.Errorf("Tick mismatch: %d vs %d", snap1.Tick, snap2.Tick)
	}
	if snap1.Score != snap2.Score {
		t.Errorf("Score mismatch: %d vs %d", snap1.Score, snap2.Score)
	}
	if snap1.Piece != snap2.Piece || snap1.Pos != snap2.Pos || snap1.Rotation != snap2.Rotation {
		t.Errorf("Active piece mismatch: %v@%v/%d vs %v@%v/%d",
			snap1.Piece, snap1.Pos, snap1.Rotation, snap2.Piece, snap2.Pos, snap2.Rotation)
	}
	if !snap1.Board.Equal(snap2.Board) {
		t.Error("Board mismatch")
	}
	if snap1.State != snap2.State {
		t.Errorf("State mismatch: %s vs %s", snap1.State, snap2.State)
	}
}

func TestStepReportsNextTick(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))

	res := g.Step(core.NewInputFrame())
	if res.Next != 575*time.Millisecond {
		t.Errorf("Expected next tick in 575ms, got %v", res.Next)
	}
	if res.State.Score != 1 {
		t.Errorf("Expected score 1 after first spawn, got %d", res.State.Score)
	}
	if !g.LastTick().Spawned {
		t.Error("Expected first tick to spawn a piece")
	}
}

func TestDifficultyOverride(t *testing.T) {
	g := New()
	rt := testRuntime(1)
	rt.Difficulty = 10
	g.Reset(rt)

	res := g.Step(core.NewInputFrame())
	if res.Next != 500*time.Millisecond {
		t.Errorf("Expected 500ms at difficulty 10 after one spawn, got %v", res.Next)
	}
}

func TestClassicKeepsBaseSpeed(t *testing.T) {
	g := NewClassic()
	g.Reset(testRuntime(3))

	input := core.NewInputFrame()
	input.Set(core.ActionDrop)
	var res core.StepResult
	for i := 0; i < 100 && !g.State().GameOver; i++ {
		res = g.Step(input)
		if res.Next != 600*time.Millisecond {
			t.Fatalf("Tick %d: expected fixed 600ms, got %v", i, res.Next)
		}
	}
	if g.State().Score < 2 {
		t.Errorf("Expected several pieces after 100 drops, got score %d", g.State().Score)
	}
	if g.Snapshot().Mode != string(ModeClassic) {
		t.Errorf("Expected classic mode, got %s", g.Snapshot().Mode)
	}
}

func TestSetConfig(t *testing.T) {
	t.Cleanup(func() { selectedConfig = nil })

	cfg := config.DefaultTetrisConfig()
	cfg.Board.Rows = 8
	cfg.Board.Cols = 6
	SetConfig(cfg)

	g := New()
	g.Reset(testRuntime(1))
	b := g.Engine().Board()
	if b.Rows() != 8 || b.Cols() != 6 {
		t.Errorf("Expected 8x6 board, got %dx%d", b.Rows(), b.Cols())
	}
}

func TestPause(t *testing.T) {
	g := New()
	g.Reset(testRuntime(9))
	g.Step(core.NewInputFrame())

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	g.Step(pause)

	if !g.State().Paused {
		t.Fatal("Expected game to be paused")
	}
	if g.Snapshot().State != StatePaused {
		t.Errorf("Expected paused snapshot, got %s", g.Snapshot().State)
	}

	ticks := g.Engine().Ticks()
	for i := 0; i < 5; i++ {
		g.Step(core.NewInputFrame())
	}
	if g.Engine().Ticks() != ticks {
		t.Errorf("Expected no ticks while paused, got %d -> %d", ticks, g.Engine().Ticks())
	}

	g.Step(pause)
	if g.State().Paused {
		t.Error("Expected game to resume")
	}
}

func TestRestartAfterGameOver(t *testing.T) {
	g := New()
	g.Reset(testRuntime(5))

	input := core.NewInputFrame()
	input.Set(core.ActionDrop)
	for i := 0; i < 2000 && !g.State().GameOver; i++ {
		g.Step(input)
	}
	if !g.State().GameOver {
		t.Fatal("Expected stack to reach the top")
	}
	if g.Snapshot().State != StateGameOver {
		t.Errorf("Expected game_over snapshot, got %s", g.Snapshot().State)
	}

	ticks := g.Engine().Ticks()
	g.Step(input)
	if g.Engine().Ticks() != ticks {
		t.Error("Expected no ticks after game over")
	}

	g.Reset(testRuntime(5))
	if g.State().GameOver || g.State().Score != 0 {
		t.Errorf("Expected fresh state after reset, got %+v", g.State())
	}
}

func TestRender(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))
	g.engine = NewEngine(g.engine.Settings(), newScriptedRand(int(Bar), 3))
	g.Step(core.NewInputFrame())

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()

	for _, want := range []string{"<!", "!>", "<!=====================!>", "score: 1", "speed: 625", "lines: 0"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected %q in rendered screen", want)
		}
	}
	if !strings.Contains(out, "[]") {
		t.Error("Expected the falling piece to be drawn")
	}
}

func TestRenderOverlays(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))
	g.Step(core.NewInputFrame())

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	g.Step(pause)

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.String(), "PAUSED") {
		t.Error("Expected PAUSED overlay")
	}

	g.Reset(testRuntime(1))
	g.engine.gameOver = true
	g.Render(screen)
	if !strings.Contains(screen.String(), "GAME OVER") {
		t.Error("Expected GAME OVER overlay")
	}
}

func TestRenderTooSmall(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))

	screen := core.NewScreen(20, 10)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Window too small") {
		t.Error("Expected too-small message")
	}
}

func TestRegistered(t *testing.T) {
	for _, id := range []string{IDMarathon, IDClassic} {
		if !registry.Exists(id) {
			t.Errorf("Expected %q to be registered", id)
		}
		g, err := registry.Create(id)
		if err != nil {
			t.Fatalf("Create(%q): %v", id, err)
		}
		if g.ID() != id {
			t.Errorf("Expected ID %q, got %q", id, g.ID())
		}
		if _, ok := g.(registry.Resizer); !ok {
			t.Errorf("Expected %q to support resize", id)
		}
	}
}
