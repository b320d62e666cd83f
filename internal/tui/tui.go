package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-task-keeper/internal/keeper"
	"github.com/MKhiriev/go-task-keeper/internal/logger"
)

type TUI struct {
	keeper *keeper.Keeper
	logger *logger.Logger
}

func New(k *keeper.Keeper, log *logger.Logger) (*TUI, error) {
	return &TUI{keeper: k, logger: log}, nil
}

// Run drives the interactive session until the user quits.
func (t *TUI) Run(ctx context.Context) error {
	model := newRootModel(ctx, t.keeper, t.logger)
	_, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	return err
}
