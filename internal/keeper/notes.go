package keeper

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-task-keeper/models"
)

// AddNote creates a new note at the end of the collection and writes the
// collection through. Both the title and the text must be non-empty after
// trimming, otherwise the call is a silent no-op.
func (k *Keeper) AddNote(ctx context.Context, title string, text string) error {
	trimmedTitle := strings.TrimSpace(title)
	trimmedText := strings.TrimSpace(text)
	if trimmedTitle == "" || trimmedText == "" {
		return nil
	}

	k.notes = append(k.notes, models.Note{
		ID:    k.newID(),
		Title: trimmedTitle,
		Text:  trimmedText,
		Date:  k.today(),
	})

	return k.saveNotes(ctx)
}

// DeleteNote removes the note with the given id. An unknown id is a no-op.
func (k *Keeper) DeleteNote(ctx context.Context, id string) error {
	idx := k.noteIndex(id)
	if idx < 0 {
		return nil
	}

	k.notes = append(k.notes[:idx], k.notes[idx+1:]...)

	return k.saveNotes(ctx)
}

// EditNote replaces both the title and the text of the note with the given
// id by their trimmed new values. An effectively empty text deletes the
// record regardless of the new title; an empty title alone keeps the
// record. An unknown id is a no-op.
func (k *Keeper) EditNote(ctx context.Context, id string, newTitle string, newText string) error {
	trimmedText := strings.TrimSpace(newText)
	if trimmedText == "" {
		return k.DeleteNote(ctx, id)
	}

	idx := k.noteIndex(id)
	if idx < 0 {
		return nil
	}

	k.notes[idx].Title = strings.TrimSpace(newTitle)
	k.notes[idx].Text = trimmedText

	return k.saveNotes(ctx)
}

// SetNotePinned sets the pinned flag of the note with the given id.
// Idempotent; an unknown id is a no-op.
func (k *Keeper) SetNotePinned(ctx context.Context, id string, pinned bool) error {
	idx := k.noteIndex(id)
	if idx < 0 {
		return nil
	}

	k.notes[idx].Pinned = pinned

	return k.saveNotes(ctx)
}

// Notes returns a copy of the collection in storage (insertion) order.
func (k *Keeper) Notes() []models.Note {
	out := make([]models.Note, len(k.notes))
	copy(out, k.notes)
	return out
}

// VisibleNotes returns a copy of the collection in display order: pinned
// notes first, insertion order preserved within each group.
func (k *Keeper) VisibleNotes() []models.Note {
	return orderForDisplay(k.notes, func(n models.Note) bool { return n.Pinned })
}

func (k *Keeper) noteIndex(id string) int {
	for i := range k.notes {
		if k.notes[i].ID == id {
			return i
		}
	}
	return -1
}
