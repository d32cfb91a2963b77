package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

// helpHeight is the number of terminal rows reserved under the board for
// the key help line.
const helpHeight = 1

// Options configure a game session.
type Options struct {
	Keys   KeyMap
	Logger *log.Logger
}

// Model is the Bubble Tea model for running a game.
//
// Keys pressed between ticks wait in a FIFO queue; each tick consumes at
// most one of them, so a burst of presses plays out over several ticks.
type Model struct {
	game      registry.Game
	screen    *core.Screen
	config    core.RuntimeConfig
	keys      KeyMap
	help      help.Model
	queue     *core.InputQueue
	pending   core.InputFrame // platform actions applied on the next tick
	gameState core.GameState
	logger    *log.Logger
	overSeen  bool // game over already logged for the current round
	quitting  bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return Model{
		game:    game,
		screen:  core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-helpHeight, 0)),
		config:  cfg,
		keys:    opts.Keys,
		help:    help.New(),
		queue:   core.NewInputQueue(core.DefaultQueueSize),
		pending: core.NewInputFrame(),
		logger:  logger,
	}
}

// Init initializes the model and runs the first tick immediately.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Info("game started", "game", m.game.ID(), "seed", m.config.Seed, "difficulty", m.config.Difficulty)
	return tickCmd(0)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	action := m.keys.MapKey(msg)
	switch {
	case action == core.ActionQuit:
		m.quitting = true
		m.logger.Info("game quit", "game", m.game.ID(), "score", m.gameState.Score)
		return m, tea.Quit

	case action == core.ActionRestart:
		if m.gameState.GameOver {
			m.restart()
		}

	case action == core.ActionPause:
		m.pending.Set(core.ActionPause)

	case action.IsMove():
		if !m.queue.Push(action) {
			m.logger.Debug("input queue full, key dropped", "action", action)
		}
	}

	return m, nil
}

// restart begins a new round with a fresh seed.
func (m *Model) restart() {
	m.config.Seed = time.Now().UnixNano()
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	m.queue.Clear()
	m.pending.Clear()
	m.overSeen = false
	m.logger.Info("game restarted", "game", m.game.ID(), "seed", m.config.Seed)
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-helpHeight, 0))
	m.help.Width = msg.Width

	if r, ok := m.game.(registry.Resizer); ok {
		r.Resize(msg.Width, msg.Height-helpHeight)
	} else if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}

	return m, nil
}

// handleTick runs one simulation step and schedules the next one after the
// interval the game asks for.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	in := m.pending.Clone()
	if !m.gameState.Paused || in.Has(core.ActionPause) {
		if a := m.queue.Pop(); a != core.ActionNone {
			in.Set(a)
		}
	}

	result := m.game.Step(in)
	m.gameState = result.State
	m.pending.Clear()

	if m.gameState.GameOver && !m.overSeen {
		m.overSeen = true
		m.logger.Info("game over", "game", m.game.ID(), "score", m.gameState.Score, "lines", m.gameState.Lines)
	}

	return m, tickCmd(result.Next)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// State returns the game state observed at the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
