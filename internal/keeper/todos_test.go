package keeper

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-task-keeper/models"
)

// ── AddTodo ───────────────────────────────────────────────────────────────────

// TestAddTodo_DerivesFields verifies that a new task gets its id, defaults
// and formatted creation date from the core, not from the caller.
func TestAddTodo_DerivesFields(t *testing.T) {
	slots := newMemStore()
	k := newTestKeeper(t, slots)

	require.NoError(t, k.AddTodo(context.Background(), "  Buy milk  ", models.High))

	todos := k.Todos()
	require.Len(t, todos, 1)
	assert.Equal(t, "id-1", todos[0].ID)
	assert.Equal(t, "Buy milk", todos[0].Text)
	assert.False(t, todos[0].Completed)
	assert.Equal(t, models.High, todos[0].Priority)
	assert.False(t, todos[0].Pinned)
	assert.Equal(t, "January 5, 2024", todos[0].Date)
}

// TestAddTodo_EmptyTextIsNoOp verifies add validity: effectively empty text
// leaves the collection unchanged and writes nothing.
func TestAddTodo_EmptyTextIsNoOp(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{name: "empty string", text: ""},
		{name: "spaces only", text: "   "},
		{name: "tabs and newlines", text: "\t\n "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slots := newMemStore()
			k := newTestKeeper(t, slots)

			require.NoError(t, k.AddTodo(context.Background(), tt.text, models.High))

			assert.Empty(t, k.Todos())
			assert.Zero(t, slots.saves, "a rejected add must not touch the store")
		})
	}
}

// TestAddTodo_InvalidPriorityDefaultsToMedium verifies the priority default.
func TestAddTodo_InvalidPriorityDefaultsToMedium(t *testing.T) {
	k := newTestKeeper(t, newMemStore())

	require.NoError(t, k.AddTodo(context.Background(), "task", models.Priority("whenever")))

	todos := k.Todos()
	require.Len(t, todos, 1)
	assert.Equal(t, models.Medium, todos[0].Priority)
}

// TestAddTodo_AppendsInInsertionOrder verifies storage order and unique ids.
func TestAddTodo_AppendsInInsertionOrder(t *testing.T) {
	k := newTestKeeper(t, newMemStore())
	ctx := context.Background()

	require.NoError(t, k.AddTodo(ctx, "first", models.Medium))
	require.NoError(t, k.AddTodo(ctx, "second", models.Medium))
	require.NoError(t, k.AddTodo(ctx, "third", models.Medium))

	todos := k.Todos()
	require.Len(t, todos, 3)
	assert.Equal(t, []string{"first", "second", "third"},
		[]string{todos[0].Text, todos[1].Text, todos[2].Text})
	assert.NotEqual(t, todos[0].ID, todos[1].ID)
	assert.NotEqual(t, todos[1].ID, todos[2].ID)
}

// TestAddTodo_WritesThrough verifies that the full collection lands in the
// todos slot on every add.
func TestAddTodo_WritesThrough(t *testing.T) {
	slots := newMemStore()
	k := newTestKeeper(t, slots)

	require.NoError(t, k.AddTodo(context.Background(), "persisted", models.Low))

	var persisted []models.Todo
	require.NoError(t, json.Unmarshal(slots.slots["todos"], &persisted))
	require.Len(t, persisted, 1)
	assert.Equal(t, k.Todos(), persisted)
}

// TestAddTodo_SaveFailureIsReturned verifies the write-failure contract:
// the error surfaces to the caller.
func TestAddTodo_SaveFailureIsReturned(t *testing.T) {
	slots := newMemStore()
	slots.saveErr = assert.AnError
	k := newTestKeeper(t, slots)

	err := k.AddTodo(context.Background(), "doomed", models.Medium)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// ── DeleteTodo ────────────────────────────────────────────────────────────────

func TestDeleteTodo_RemovesRecord(t *testing.T) {
	k := newTestKeeper(t, newMemStore())
	ctx := context.Background()
	require.NoError(t, k.AddTodo(ctx, "keep", models.Medium))
	require.NoError(t, k.AddTodo(ctx, "drop", models.Medium))

	require.NoError(t, k.DeleteTodo(ctx, "id-2"))

	todos := k.Todos()
	require.Len(t, todos, 1)
	assert.Equal(t, "keep", todos[0].Text)
}

func TestDeleteTodo_UnknownIDIsNoOp(t *testing.T) {
	slots := newMemStore()
	k := newTestKeeper(t, slots)
	ctx := context.Background()
	require.NoError(t, k.AddTodo(ctx, "stays", models.Medium))
	savesBefore := slots.saves

	require.NoError(t, k.DeleteTodo(ctx, "missing"))

	assert.Len(t, k.Todos(), 1)
	assert.Equal(t, savesBefore, slots.saves)
}

// ── ToggleTodoComplete ────────────────────────────────────────────────────────

func TestToggleTodoComplete_FlipsBothWays(t *testing.T) {
	k := newTestKeeper(t, newMemStore())
	ctx := context.Background()
	require.NoError(t, k.AddTodo(ctx, "task", models.Medium))

	require.NoError(t, k.ToggleTodoComplete(ctx, "id-1"))
	assert.True(t, k.Todos()[0].Completed)

	require.NoError(t, k.ToggleTodoComplete(ctx, "id-1"))
	assert.False(t, k.Todos()[0].Completed)
}

func TestToggleTodoComplete_UnknownIDIsNoOp(t *testing.T) {
	slots := newMemStore()
	k := newTestKeeper(t, slots)

	require.NoError(t, k.ToggleTodoComplete(context.Background(), "missing"))
	assert.Zero(t, slots.saves)
}

// ── EditTodo ──────────────────────────────────────────────────────────────────

// TestEditTodo_ReplacesTextOnly verifies that an edit trims the new text and
// leaves every other field untouched.
func TestEditTodo_ReplacesTextOnly(t *testing.T) {
	k := newTestKeeper(t, newMemStore())
	ctx := context.Background()
	require.NoError(t, k.AddTodo(ctx, "Buy milk", models.High))
	before := k.Todos()[0]

	require.NoError(t, k.EditTodo(ctx, before.ID, "  Buy milk and eggs  "))

	after := k.Todos()[0]
	assert.Equal(t, "Buy milk and eggs", after.Text)
	assert.Equal(t, before.ID, after.ID)
	assert.Equal(t, before.Date, after.Date)
	assert.Equal(t, before.Priority, after.Priority)
	assert.Equal(t, before.Completed, after.Completed)
	assert.Equal(t, before.Pinned, after.Pinned)
}

// TestEditTodo_EmptyTextDeletes verifies the empty-edit-deletes rule.
func TestEditTodo_EmptyTextDeletes(t *testing.T) {
	k := newTestKeeper(t, newMemStore())
	ctx := context.Background()
	require.NoError(t, k.AddTodo(ctx, "going away", models.Medium))
	require.NoError(t, k.AddTodo(ctx, "staying", models.Medium))

	require.NoError(t, k.EditTodo(ctx, "id-1", "   "))

	todos := k.Todos()
	require.Len(t, todos, 1)
	for _, todo := range todos {
		assert.NotEqual(t, "id-1", todo.ID)
	}
}

func TestEditTodo_UnknownIDIsNoOp(t *testing.T) {
	slots := newMemStore()
	k := newTestKeeper(t, slots)

	require.NoError(t, k.EditTodo(context.Background(), "missing", "new text"))
	assert.Zero(t, slots.saves)
}

// ── SetTodoPinned ─────────────────────────────────────────────────────────────

// TestSetTodoPinned_Idempotent verifies that pinning twice leaves exactly
// one pinned record and that unknown ids change nothing.
func TestSetTodoPinned_Idempotent(t *testing.T) {
	slots := newMemStore()
	k := newTestKeeper(t, slots)
	ctx := context.Background()
	require.NoError(t, k.AddTodo(ctx, "task", models.Medium))

	require.NoError(t, k.SetTodoPinned(ctx, "id-1", true))
	require.NoError(t, k.SetTodoPinned(ctx, "id-1", true))

	todos := k.Todos()
	require.Len(t, todos, 1)
	assert.True(t, todos[0].Pinned)

	savesBefore := slots.saves
	require.NoError(t, k.SetTodoPinned(ctx, "unknown-id", true))
	assert.Len(t, k.Todos(), 1)
	assert.Equal(t, savesBefore, slots.saves)
}

func TestSetTodoPinned_Unpin(t *testing.T) {
	k := newTestKeeper(t, newMemStore())
	ctx := context.Background()
	require.NoError(t, k.AddTodo(ctx, "task", models.Medium))
	require.NoError(t, k.SetTodoPinned(ctx, "id-1", true))

	require.NoError(t, k.SetTodoPinned(ctx, "id-1", false))
	assert.False(t, k.Todos()[0].Pinned)
}

// ── scenario ──────────────────────────────────────────────────────────────────

// TestTodoLifecycle runs the full add → toggle → edit → delete scenario.
func TestTodoLifecycle(t *testing.T) {
	k := newTestKeeper(t, newMemStore())
	ctx := context.Background()

	require.NoError(t, k.AddTodo(ctx, "Buy milk", models.High))
	todos := k.Todos()
	require.Len(t, todos, 1)
	created := todos[0]
	assert.False(t, created.Completed)
	assert.Equal(t, models.High, created.Priority)

	require.NoError(t, k.ToggleTodoComplete(ctx, created.ID))
	assert.True(t, k.Todos()[0].Completed)

	require.NoError(t, k.EditTodo(ctx, created.ID, "Buy milk and eggs"))
	edited := k.Todos()[0]
	assert.Equal(t, "Buy milk and eggs", edited.Text)
	assert.Equal(t, created.ID, edited.ID)
	assert.Equal(t, created.Date, edited.Date)
	assert.Equal(t, created.Priority, edited.Priority)

	require.NoError(t, k.DeleteTodo(ctx, created.ID))
	assert.Empty(t, k.Todos())
}
