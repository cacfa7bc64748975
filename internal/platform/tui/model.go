package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

const helpHeight = 1 // Rows below the game screen

// newSeed picks the seed for games configured with seed 0.
var newSeed = func() int64 { return time.Now().UnixNano() }

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	renderer   *Renderer
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	logger     *log.Logger
	keys       GameKeyMap
	help       help.Model
	rounds     roundsView
	showRounds bool
	quitting   bool
	backToMenu bool
}

// Option configures a Model.
type Option func(*Model)

// WithLogger sets the logger for game events.
func WithLogger(l *log.Logger) Option {
	return func(m *Model) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithRenderer sets the lipgloss renderer, e.g. one bound to an SSH session.
func WithRenderer(lg *lipgloss.Renderer) Option {
	return func(m *Model) {
		m.renderer = NewRenderer(lg, m.config.Palette.Text)
	}
}

// WithBackToMenu enables the key that leaves the game for the menu.
func WithBackToMenu() Option {
	return func(m *Model) {
		m.keys.Back.SetEnabled(true)
	}
}

// NewModel creates a Bubble Tea model for the given game and resets the game.
// cfg.ScreenH is the terminal height; the last row holds the help line.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts ...Option) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = newSeed()
	}
	if cfg.Palette == (core.Palette{}) {
		cfg.Palette = core.DefaultPalette()
	}

	h := help.New()
	h.ShowAll = false
	h.Width = cfg.ScreenW

	m := Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, gameHeight(cfg.ScreenH)),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		logger:     log.New(io.Discard),
		keys:       DefaultGameKeyMap(),
		help:       h,
		rounds:     newRoundsView(cfg.ScreenW, cfg.ScreenH),
	}
	m.renderer = NewRenderer(nil, cfg.Palette.Text)
	for _, opt := range opts {
		opt(&m)
	}

	gameCfg := cfg
	gameCfg.ScreenH = gameHeight(cfg.ScreenH)
	m.game.Reset(gameCfg)
	m.gameState = m.game.State()
	m.game.Render(m.screen)

	m.logger.Debug("game started", "game", game.ID(), "seed", cfg.Seed)
	return m
}

func gameHeight(termHeight int) int {
	return max(termHeight-helpHeight, 0)
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
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
	switch {
	case key.Matches(msg, m.keys.Rounds):
		m.showRounds = !m.showRounds
		if rr, ok := m.game.(roundsReporter); ok && m.showRounds {
			m.rounds.SetRounds(rr.Rounds())
		}
		return m, nil

	case key.Matches(msg, m.keys.Back):
		if m.showRounds {
			m.showRounds = false
			return m, nil
		}
		m.backToMenu = true
		return m, nil
	}

	if m.showRounds && !key.Matches(msg, m.keys.Quit) {
		var cmd tea.Cmd
		m.rounds, cmd = m.rounds.Update(msg)
		return m, cmd
	}

	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		m.logger.Debug("quit", "game", m.game.ID(), "length", m.gameState.Length)
		return m, tea.Quit
	}
	return m, nil
}

// handleResize adapts the screen without resetting play.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height

	h := gameHeight(msg.Height)
	m.screen.Resize(msg.Width, h)
	m.game.Resize(msg.Width, h)
	m.game.Render(m.screen)

	m.help.Width = msg.Width
	m.rounds.SetSize(msg.Width, msg.Height)
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	// The board holds still while the rounds table is open.
	if m.showRounds {
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	prev := m.gameState
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	if result.Collided {
		m.logger.Debug("snake bit itself", "game", m.game.ID(),
			"length", prev.Length, "resets", result.State.Resets)
	}
	if result.Ate {
		m.logger.Debug("apple eaten", "game", m.game.ID(),
			"apples", result.State.Score, "length", result.State.Length)
	}

	m.draw()
	return m, tickCmd(m.config.TickRate)
}

// draw refreshes the screen buffer, incrementally when the game supports it.
func (m Model) draw() {
	if dr, ok := m.game.(registry.DeltaRenderer); ok && dr.RenderDelta(m.screen) {
		return
	}
	m.game.Render(m.screen)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.showRounds {
		return m.rounds.View(m.game.Title()+" - rounds") + "\n" + m.renderer.Help(m.help.View(m.keys))
	}
	return m.renderer.Render(m.screen) + "\n" + m.renderer.Help(m.help.View(m.keys))
}

// Screen returns the screen buffer the game draws into.
func (m Model) Screen() *core.Screen {
	return m.screen
}

// State returns the game state after the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if user requested to quit.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program for game.
func Run(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, cfg, WithLogger(logger))

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
