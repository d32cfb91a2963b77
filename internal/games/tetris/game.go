package tetris

import (
	"math/rand"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

// Mode selects how the tick interval evolves.
type Mode string

const (
	// ModeMarathon shortens the tick as score grows, per the difficulty level.
	ModeMarathon Mode = "marathon"
	// ModeClassic keeps the base tick interval for the whole game.
	ModeClassic Mode = "classic"
)

// Registry IDs for the two modes.
const (
	IDMarathon = "tetris"
	IDClassic  = "tetris_classic"
)

// Game adapts Engine to the platform's registry.Game interface.
type Game struct {
	mode    Mode
	cfg     config.TetrisConfig
	engine  *Engine
	last    TickResult
	paused  bool
	screenW int
	screenH int
}

// Package-level configuration set from the CLI before games are created.
var (
	selectedConfig *config.TetrisConfig
)

// SetConfig sets the configuration used by subsequent Reset calls.
// Without it games use config.DefaultTetrisConfig.
func SetConfig(cfg config.TetrisConfig) {
	selectedConfig = &cfg
}

func activeConfig() config.TetrisConfig {
	if selectedConfig != nil {
		return *selectedConfig
	}
	return config.DefaultTetrisConfig()
}

// New creates a game whose speed scales with score.
func New() *Game {
	return &Game{mode: ModeMarathon}
}

// NewClassic creates a fixed-speed game.
func NewClassic() *Game {
	return &Game{mode: ModeClassic}
}

func init() {
	registry.Register(IDMarathon, func() registry.Game {
		return New()
	})
	registry.Register(IDClassic, func() registry.Game {
		return NewClassic()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeClassic {
		return IDClassic
	}
	return IDMarathon
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeClassic {
		return "Tetris (Fixed Speed)"
	}
	return "Tetris"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(rt core.RuntimeConfig) {
	cfg := activeConfig()
	if rt.Difficulty > 0 {
		cfg.Difficulty.Level = rt.Difficulty
	}
	if g.mode == ModeClassic {
		cfg.Difficulty.Scaling = false
	}

	g.cfg = cfg
	g.engine = NewEngine(SettingsFrom(cfg), rand.New(rand.NewSource(rt.Seed)))
	g.last = TickResult{}
	g.paused = false
	g.screenW = rt.ScreenW
	g.screenH = rt.ScreenH
}

// Resize updates the screen size used for layout without restarting.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionPause) && !g.engine.GameOver() {
		g.paused = !g.paused
	}

	if !g.paused && !g.engine.GameOver() {
		g.last = g.engine.Tick(in.Move())
	}

	return core.StepResult{
		State: g.State(),
		Next:  g.engine.Speed(),
	}
}

// LastTick returns the outcome of the most recent simulated tick.
func (g *Game) LastTick() TickResult {
	return g.last
}

// Engine exposes the underlying simulation.
func (g *Game) Engine() *Engine {
	return g.engine
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.engine.Score(),
		Lines:    g.engine.Lines(),
		GameOver: g.engine.GameOver(),
		Paused:   g.paused,
	}
}
