package keeper

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-task-keeper/models"
)

// Theme returns the active colour scheme for the rendering layer.
func (k *Keeper) Theme() models.Theme {
	return k.theme
}

// ToggleTheme flips the colour scheme and writes it through to its slot.
func (k *Keeper) ToggleTheme(ctx context.Context) error {
	k.theme = k.theme.Toggle()

	if err := k.store.Save(ctx, themeKey, []byte(k.theme)); err != nil {
		return fmt.Errorf("save theme slot: %w", err)
	}

	return nil
}
