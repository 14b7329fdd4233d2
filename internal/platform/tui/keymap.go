package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/flapterm/flapterm/internal/core"
)

// KeyMap defines the key bindings for the game view. Implements
// help.KeyMap so the footer help line can be generated from it.
type KeyMap struct {
	Jump    key.Binding
	Restart key.Binding
	Pause   key.Binding
	Quit    key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Jump: key.NewBinding(
			key.WithKeys(" ", "up", "w"),
			key.WithHelp("space", "flap"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p", "pause"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns the bindings for the one-line help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Jump, k.Pause, k.Restart, k.Quit}
}

// FullHelp returns the bindings for the expanded help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Jump, k.Pause},
		{k.Restart, k.Quit},
	}
}

// MapKey translates a key message into a game action. Returns the action
// (possibly ActionNone) and whether the key was a quit request. Every
// other filtering decision (jump during game over, restart during play)
// belongs to the simulation, not the platform.
func (k KeyMap) MapKey(msg tea.KeyMsg) (core.Action, bool) {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit, true
	case key.Matches(msg, k.Jump):
		return core.ActionJump, false
	case key.Matches(msg, k.Restart):
		return core.ActionRestart, false
	case key.Matches(msg, k.Pause):
		return core.ActionPause, false
	}
	return core.ActionNone, false
}
