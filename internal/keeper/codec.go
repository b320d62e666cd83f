package keeper

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/models"
)

// decodeTodos deserializes a persisted todos slot. A corrupt payload or a
// record failing the schema check (missing id or empty text) resets the
// collection to empty: losing a corrupt cache beats failing startup.
// Unknown priority values are normalized to medium instead of resetting.
func decodeTodos(log *logger.Logger, raw []byte) []models.Todo {
	if len(raw) == 0 {
		return nil
	}

	var items []models.Todo
	if err := json.Unmarshal(raw, &items); err != nil {
		log.Err(err).
			Str("func", "decodeTodos").
			Msg("corrupt todos slot, resetting to empty")
		return nil
	}

	for i, item := range items {
		if item.ID == "" || strings.TrimSpace(item.Text) == "" {
			log.Error().
				Str("func", "decodeTodos").
				Int("index", i).
				Msg("todos slot failed schema check, resetting to empty")
			return nil
		}
		if !item.Priority.Valid() {
			items[i].Priority = models.Medium
		}
	}

	return items
}

// decodeNotes deserializes a persisted notes slot under the same
// reset-on-corruption policy as decodeTodos. The title is allowed to be
// empty: editing a note with an empty title keeps the record.
func decodeNotes(log *logger.Logger, raw []byte) []models.Note {
	if len(raw) == 0 {
		return nil
	}

	var items []models.Note
	if err := json.Unmarshal(raw, &items); err != nil {
		log.Err(err).
			Str("func", "decodeNotes").
			Msg("corrupt notes slot, resetting to empty")
		return nil
	}

	for i, item := range items {
		if item.ID == "" || strings.TrimSpace(item.Text) == "" {
			log.Error().
				Str("func", "decodeNotes").
				Int("index", i).
				Msg("notes slot failed schema check, resetting to empty")
			return nil
		}
	}

	return items
}

// saveTodos writes the full todos collection through to its slot.
func (k *Keeper) saveTodos(ctx context.Context) error {
	payload, err := json.Marshal(k.todos)
	if err != nil {
		return fmt.Errorf("encode todos: %w", err)
	}

	if err := k.store.Save(ctx, todosKey, payload); err != nil {
		return fmt.Errorf("save todos slot: %w", err)
	}

	return nil
}

// saveNotes writes the full notes collection through to its slot.
func (k *Keeper) saveNotes(ctx context.Context) error {
	payload, err := json.Marshal(k.notes)
	if err != nil {
		return fmt.Errorf("encode notes: %w", err)
	}

	if err := k.store.Save(ctx, notesKey, payload); err != nil {
		return fmt.Errorf("save notes slot: %w", err)
	}

	return nil
}
