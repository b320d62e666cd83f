package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

type copiedMsg struct{}

type clearStatusMsg struct{}

func clearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
