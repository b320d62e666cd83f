package keeper

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-task-keeper/models"
)

// AddTodo creates a new task at the end of the collection and writes the
// collection through. Empty text after trimming is a silent no-op; an
// invalid priority falls back to medium. The id, creation date and priority
// of the new record never change afterwards.
func (k *Keeper) AddTodo(ctx context.Context, text string, priority models.Priority) error {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil
	}
	if !priority.Valid() {
		priority = models.Medium
	}

	k.todos = append(k.todos, models.Todo{
		ID:       k.newID(),
		Text:     trimmed,
		Priority: priority,
		Date:     k.today(),
	})

	return k.saveTodos(ctx)
}

// DeleteTodo removes the task with the given id. An unknown id is a no-op:
// the record is already in its terminal state.
func (k *Keeper) DeleteTodo(ctx context.Context, id string) error {
	idx := k.todoIndex(id)
	if idx < 0 {
		return nil
	}

	k.todos = append(k.todos[:idx], k.todos[idx+1:]...)

	return k.saveTodos(ctx)
}

// ToggleTodoComplete flips the completed flag of the task with the given
// id. An unknown id is a no-op.
func (k *Keeper) ToggleTodoComplete(ctx context.Context, id string) error {
	idx := k.todoIndex(id)
	if idx < 0 {
		return nil
	}

	k.todos[idx].Completed = !k.todos[idx].Completed

	return k.saveTodos(ctx)
}

// EditTodo replaces the text of the task with the given id by the trimmed
// new value, leaving id, date, priority and flags untouched. Editing to an
// effectively empty text deletes the record instead. An unknown id is a
// no-op.
func (k *Keeper) EditTodo(ctx context.Context, id string, newText string) error {
	trimmed := strings.TrimSpace(newText)
	if trimmed == "" {
		return k.DeleteTodo(ctx, id)
	}

	idx := k.todoIndex(id)
	if idx < 0 {
		return nil
	}

	k.todos[idx].Text = trimmed

	return k.saveTodos(ctx)
}

// SetTodoPinned sets the pinned flag of the task with the given id.
// Idempotent; an unknown id is a no-op.
func (k *Keeper) SetTodoPinned(ctx context.Context, id string, pinned bool) error {
	idx := k.todoIndex(id)
	if idx < 0 {
		return nil
	}

	k.todos[idx].Pinned = pinned

	return k.saveTodos(ctx)
}

// Todos returns a copy of the collection in storage (insertion) order.
func (k *Keeper) Todos() []models.Todo {
	out := make([]models.Todo, len(k.todos))
	copy(out, k.todos)
	return out
}

// VisibleTodos returns a copy of the collection in display order: pinned
// tasks first, insertion order preserved within each group.
func (k *Keeper) VisibleTodos() []models.Todo {
	return orderForDisplay(k.todos, func(t models.Todo) bool { return t.Pinned })
}

func (k *Keeper) todoIndex(id string) int {
	for i := range k.todos {
		if k.todos[i].ID == id {
			return i
		}
	}
	return -1
}
