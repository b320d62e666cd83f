// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package keeper

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/store"
	"github.com/MKhiriev/go-task-keeper/models"
)

// Slot keys inside the persisted key-value store. Each slot is replaced
// wholesale on every mutation.
const (
	todosKey = "todos"
	notesKey = "notes"
	themeKey = "theme"
)

// Keeper is the state container of the application core: the todo and note
// collections plus the theme flag, backed by a persisted key-value store.
//
// Every mutating operation applies the change in memory first and then
// writes the full affected collection through to the store before
// returning. Only a storage write failure is ever reported; invalid input
// and unknown ids are silent no-ops.
//
// A Keeper is not safe for concurrent use. The application drives it from a
// single goroutine (the UI event loop); callers porting it elsewhere must
// add their own serialization. Concurrent processes sharing one store
// follow last-write-wins per slot, with no cross-process invalidation.
type Keeper struct {
	store  store.KeyValueStore
	logger *logger.Logger

	newID func() string
	now   func() time.Time

	todos []models.Todo
	notes []models.Note
	theme models.Theme
}

// Option customises a Keeper during construction.
type Option func(*Keeper)

// WithIDGenerator overrides the record id source. Used in tests to produce
// predictable ids.
func WithIDGenerator(fn func() string) Option {
	return func(k *Keeper) { k.newID = fn }
}

// WithClock overrides the wall clock used to stamp creation dates. Used in
// tests to pin the formatted date.
func WithClock(fn func() time.Time) Option {
	return func(k *Keeper) { k.now = fn }
}

// New constructs a Keeper and seeds its in-memory state with a single read
// of the three persisted slots. A missing slot yields an empty collection
// (or the default theme); a corrupt slot is logged and likewise treated as
// empty. Only an actual storage read failure is returned as an error.
func New(ctx context.Context, slots store.KeyValueStore, log *logger.Logger, opts ...Option) (*Keeper, error) {
	k := &Keeper{
		store:  slots,
		logger: log,
		newID:  newUUID,
		now:    time.Now,
		theme:  models.DefaultTheme,
	}
	for _, opt := range opts {
		opt(k)
	}

	rawTodos, err := slots.Load(ctx, todosKey)
	if err != nil {
		return nil, fmt.Errorf("load todos slot: %w", err)
	}
	k.todos = decodeTodos(log, rawTodos)

	rawNotes, err := slots.Load(ctx, notesKey)
	if err != nil {
		return nil, fmt.Errorf("load notes slot: %w", err)
	}
	k.notes = decodeNotes(log, rawNotes)

	rawTheme, err := slots.Load(ctx, themeKey)
	if err != nil {
		return nil, fmt.Errorf("load theme slot: %w", err)
	}
	k.theme = models.ParseTheme(string(rawTheme))

	log.Debug().
		Int("todos", len(k.todos)).
		Int("notes", len(k.notes)).
		Str("theme", string(k.theme)).
		Msg("keeper state loaded")

	return k, nil
}
