package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/go-task-keeper/models"
)

type styles struct {
	app         lipgloss.Style
	title       lipgloss.Style
	tabActive   lipgloss.Style
	tabInactive lipgloss.Style
	selected    lipgloss.Style
	pinned      lipgloss.Style
	completed   lipgloss.Style
	help        lipgloss.Style
	errorText   lipgloss.Style
	status      lipgloss.Style
}

// newStyles builds the style set for the active theme. The keeper core only
// persists the flag; applying it is the renderer's job.
func newStyles(theme models.Theme) styles {
	accent := lipgloss.Color("63")
	muted := lipgloss.Color("240")
	if theme == models.ThemeLight {
		accent = lipgloss.Color("27")
		muted = lipgloss.Color("245")
	}

	return styles{
		app:         lipgloss.NewStyle().Padding(1, 2),
		title:       lipgloss.NewStyle().Bold(true),
		tabActive:   lipgloss.NewStyle().Bold(true).Foreground(accent).Underline(true),
		tabInactive: lipgloss.NewStyle().Foreground(muted),
		selected:    lipgloss.NewStyle().Bold(true).Foreground(accent),
		pinned:      lipgloss.NewStyle().Foreground(accent),
		completed:   lipgloss.NewStyle().Faint(true).Strikethrough(true),
		help:        lipgloss.NewStyle().Faint(true),
		errorText:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("160")),
		status:      lipgloss.NewStyle().Foreground(accent),
	}
}
