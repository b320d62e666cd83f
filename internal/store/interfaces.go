package store

import (
	"context"
)

// KeyValueStore is the durable slot storage behind the keeper core.
// Each collection (and the theme flag) lives in its own keyed slot holding
// the full serialized value; every save replaces the slot wholesale.
type KeyValueStore interface {
	// Load returns the raw value stored under key. A missing slot is not
	// an error: Load returns (nil, nil) so callers can apply their own
	// empty-state default.
	Load(ctx context.Context, key string) ([]byte, error)

	// Save replaces the value stored under key.
	Save(ctx context.Context, key string, value []byte) error
}
