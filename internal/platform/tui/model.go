package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/flapterm/flapterm/internal/core"
	"github.com/flapterm/flapterm/internal/game"
)

// Model is the Bubble Tea model driving one game session. It drains key
// events into an input frame, steps the simulation on tick messages, and
// renders the session's snapshot. The bottom row is reserved for help.
type Model struct {
	session *game.Session
	screen  *core.Screen
	config  core.RuntimeConfig

	inputFrame core.InputFrame
	keys       KeyMap
	help       help.Model

	quitting bool
}

// NewModel creates a model for a fresh session sized for the given
// runtime config.
func NewModel(cfg core.RuntimeConfig) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}

	return Model{
		session:    game.NewSession(game.DefaultConfig(), game.NewRand(cfg.Seed)),
		screen:     core.NewScreen(cfg.ScreenW, core.Max(cfg.ScreenH-1, 1)),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keys:       DefaultKeyMap(),
		help:       help.New(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and advances the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, core.Max(msg.Height-1, 1))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey maps a key press into the current input frame. Events within
// one tick accumulate in arrival order and are applied together on the
// next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}
	if action != core.ActionNone {
		m.inputFrame.Set(action)
	}
	return m, nil
}

// handleTick steps the simulation with the drained input.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.session.Step(m.inputFrame)
	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// View renders the current snapshot plus the help footer.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	DrawSnapshot(m.screen, m.session.Snapshot(), m.session.Config())
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Run starts a local Bubble Tea program for one session.
func Run(cfg core.RuntimeConfig) error {
	p := tea.NewProgram(
		NewModel(cfg),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
