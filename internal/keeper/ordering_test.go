package keeper

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-task-keeper/models"
)

// TestOrderForDisplay_PinnedFirstStable verifies the pinned-first grouping:
// [A(unpinned), B(pinned), C(unpinned), D(pinned)] displays as [B, D, A, C].
func TestOrderForDisplay_PinnedFirstStable(t *testing.T) {
	items := []models.Todo{
		{ID: "A"},
		{ID: "B", Pinned: true},
		{ID: "C"},
		{ID: "D", Pinned: true},
	}

	got := orderForDisplay(items, func(todo models.Todo) bool { return todo.Pinned })

	ids := make([]string, 0, len(got))
	for _, item := range got {
		ids = append(ids, item.ID)
	}
	assert.Equal(t, []string{"B", "D", "A", "C"}, ids)
}

// TestOrderForDisplay_Idempotent verifies that re-ordering an already
// ordered sequence yields the same sequence.
func TestOrderForDisplay_Idempotent(t *testing.T) {
	items := []models.Note{
		{ID: "n1"},
		{ID: "n2", Pinned: true},
		{ID: "n3", Pinned: true},
		{ID: "n4"},
	}
	pinned := func(n models.Note) bool { return n.Pinned }

	once := orderForDisplay(items, pinned)
	twice := orderForDisplay(once, pinned)

	assert.Equal(t, once, twice)
}

// TestOrderForDisplay_DoesNotMutateInput verifies purity.
func TestOrderForDisplay_DoesNotMutateInput(t *testing.T) {
	items := []models.Todo{
		{ID: "A"},
		{ID: "B", Pinned: true},
	}

	_ = orderForDisplay(items, func(todo models.Todo) bool { return todo.Pinned })

	assert.Equal(t, "A", items[0].ID)
	assert.Equal(t, "B", items[1].ID)
}

// TestVisibleTodos_DerivedProjection verifies that display order never
// rewrites storage order.
func TestVisibleTodos_DerivedProjection(t *testing.T) {
	k := newTestKeeper(t, newMemStore())
	ctx := context.Background()
	require.NoError(t, k.AddTodo(ctx, "A", models.Medium))
	require.NoError(t, k.AddTodo(ctx, "B", models.Medium))
	require.NoError(t, k.AddTodo(ctx, "C", models.Medium))
	require.NoError(t, k.AddTodo(ctx, "D", models.Medium))
	require.NoError(t, k.SetTodoPinned(ctx, "id-2", true))
	require.NoError(t, k.SetTodoPinned(ctx, "id-4", true))

	visible := k.VisibleTodos()
	visibleTexts := make([]string, 0, len(visible))
	for _, todo := range visible {
		visibleTexts = append(visibleTexts, todo.Text)
	}
	assert.Equal(t, []string{"B", "D", "A", "C"}, visibleTexts)

	stored := k.Todos()
	storedTexts := make([]string, 0, len(stored))
	for _, todo := range stored {
		storedTexts = append(storedTexts, todo.Text)
	}
	assert.Equal(t, []string{"A", "B", "C", "D"}, storedTexts)
}

// TestVisibleNotes_NoSecondarySort verifies that unpinned notes keep pure
// insertion order with no date or title sorting.
func TestVisibleNotes_NoSecondarySort(t *testing.T) {
	k := newTestKeeper(t, newMemStore())
	ctx := context.Background()
	require.NoError(t, k.AddNote(ctx, "zebra", "z"))
	require.NoError(t, k.AddNote(ctx, "alpha", "a"))

	visible := k.VisibleNotes()
	require.Len(t, visible, 2)
	assert.Equal(t, "zebra", visible[0].Title)
	assert.Equal(t, "alpha", visible[1].Title)
}
