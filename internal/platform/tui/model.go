package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pongblast/internal/core"
	"github.com/vovakirdan/pongblast/internal/registry"
)

// statusTicks is how long a status message stays on screen.
const statusTicks = 120

var statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

// Model is the Bubble Tea model for running a match.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	fixedSeed  bool
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	help       help.Model
	showHelp   bool
	events     *EventLogger
	logger     *log.Logger
	status     string
	statusLeft int
	remote     bool
	quitting   bool
	backToMenu bool
}

// Option configures a Model.
type Option func(*Model)

// WithLogger logs match events and platform actions to logger.
func WithLogger(logger *log.Logger) Option {
	return func(m *Model) {
		m.logger = logger
	}
}

// WithRemote marks the model as serving a remote session.
// Screenshots and the clipboard are disabled, and Back returns to the menu
// instead of quitting.
func WithRemote() Option {
	return func(m *Model) {
		m.remote = true
	}
}

// NewModel creates a Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts ...Option) Model {
	m := Model{
		game:       game,
		config:     cfg,
		fixedSeed:  cfg.Seed != 0,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
		help:       help.New(),
	}
	for _, opt := range opts {
		opt(&m)
	}
	if m.config.Seed == 0 {
		m.config.Seed = time.Now().UnixNano()
	}
	if m.logger == nil {
		m.logger = log.New(io.Discard)
	}
	m.screen = core.NewScreen(cfg.ScreenW, cfg.ScreenH)
	m.help.Width = cfg.ScreenW

	// Reset before the first frame so View never sees an empty world.
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	m.events = NewEventLogger(m.logger)
	m.events.Attach(m.game)
	return m
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
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.keyMapper.Keys()
	switch {
	case key.Matches(msg, keys.Help):
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp
		return m, nil
	case key.Matches(msg, keys.Screenshot):
		m.setStatus(m.saveScreenshot())
		return m, nil
	case key.Matches(msg, keys.Copy):
		m.setStatus(m.copyScreen())
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		m.logger.Info("match quit", "match", m.events.MatchID())
		return m, tea.Quit
	}

	if m.inputFrame.Has(core.ActionBack) && (m.gameState.GameOver || m.gameState.Paused) {
		m.backToMenu = true
		if !m.remote {
			return m, tea.Quit
		}
	}

	return m, nil
}

// handleTick advances the simulation by one tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.backToMenu {
		return m, nil
	}

	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		if !m.fixedSeed {
			m.config.Seed = time.Now().UnixNano()
		}
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.inputFrame.Clear()
		m.logger.Info("match restarted", "match", m.events.MatchID(), "seed", m.config.Seed)
		return m, tickCmd(m.config.TickRate)
	}

	wasOver := m.gameState.GameOver
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	if m.gameState.GameOver && !wasOver {
		m.logger.Info("match over",
			"match", m.events.MatchID(),
			"player", m.gameState.Score,
			"enemy", m.gameState.OpponentScore,
		)
	}

	if m.statusLeft > 0 {
		m.statusLeft--
		if m.statusLeft == 0 {
			m.status = ""
		}
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.statusLeft = statusTicks
}

// saveScreenshot writes the current frame as plain text under
// ~/.pongblast/screenshots and returns a status line.
func (m *Model) saveScreenshot() string {
	if m.remote {
		return "screenshots are disabled over SSH"
	}
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Sprintf("screenshot failed: %v", err)
	}
	dir := filepath.Join(home, ".pongblast", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Sprintf("screenshot failed: %v", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return fmt.Sprintf("screenshot failed: %v", err)
	}
	m.logger.Info("screenshot saved", "path", path)
	return "saved " + path
}

// copyScreen puts the current frame on the system clipboard.
func (m *Model) copyScreen() string {
	if m.remote || clipboard.Unsupported {
		return "clipboard unavailable"
	}
	m.game.Render(m.screen)
	if err := clipboard.WriteAll(m.screen.String()); err != nil {
		return fmt.Sprintf("copy failed: %v", err)
	}
	return "frame copied to clipboard"
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var footer string
	switch {
	case m.status != "":
		footer = statusStyle.Render(m.status)
	case m.showHelp:
		footer = m.help.View(m.keyMapper.Keys())
	}

	height := m.config.ScreenH
	if footer != "" {
		height -= lipgloss.Height(footer)
	}
	m.screen.Resize(m.config.ScreenW, max(height, 1))
	m.game.Render(m.screen)

	if footer == "" {
		return RenderScreen(m.screen)
	}
	return RenderScreen(m.screen) + "\n" + footer
}

// State returns the last state reported by the game.
func (m Model) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if the user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user requested to go back to the menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts a Bubble Tea program for the given game and blocks until it exits.
// It reports whether the user asked to return to the menu.
func Run(game registry.Game, cfg core.RuntimeConfig, opts ...Option) (backToMenu bool, err error) {
	p := tea.NewProgram(NewModel(game, cfg, opts...), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(Model)
	return ok && m.BackToMenu(), nil
}
