package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// tickMsg is one second of the idle countdown. The generation stamps which
// login the tick belongs to; the session discards stale generations.
type tickMsg struct {
	generation int
}

// tickCmd schedules the next countdown tick for the given generation.
func tickCmd(generation int) tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return tickMsg{generation: generation}
	})
}
