package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-task-keeper/internal/logger"
)

type slotRepository struct {
	*DB
	logger *logger.Logger
}

// NewSlotRepository returns a [KeyValueStore] backed by the slots table of
// the local SQLite database.
func NewSlotRepository(db *DB, logger *logger.Logger) KeyValueStore {
	return &slotRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *slotRepository) Load(ctx context.Context, key string) ([]byte, error) {
	var value []byte

	row := r.DB.QueryRowContext(ctx, getSlot, key)
	if err := row.Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// absent slot is a valid empty state, not an error
			return nil, nil
		}
		r.logger.Err(err).
			Str("func", "slotRepository.Load").
			Str("key", key).
			Msg("failed to scan slot row")
		return nil, fmt.Errorf("failed to load slot %q: %w", key, err)
	}

	return value, nil
}

func (r *slotRepository) Save(ctx context.Context, key string, value []byte) error {
	_, err := r.DB.ExecContext(ctx, upsertSlot, key, value)
	if err != nil {
		r.logger.Err(err).
			Str("func", "slotRepository.Save").
			Str("key", key).
			Msg("failed to execute upsert for slot")
		return fmt.Errorf("failed to save slot %q: %w", key, err)
	}

	return nil
}
