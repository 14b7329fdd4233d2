// Package tui provides the Bubble Tea integration: the terminal loop,
// key-to-action mapping, and the renderer that projects simulation
// snapshots onto terminal cells.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger one simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that emits tick messages at the
// given rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
