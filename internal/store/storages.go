package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-task-keeper/internal/config"
	"github.com/MKhiriev/go-task-keeper/internal/logger"
)

// defaultSQLiteDSN is used when the sqlite backend is selected without an
// explicit database path.
const defaultSQLiteDSN = "keeper.db"

// Storages groups all storage backends into a single value that can be
// passed around the keeper core. Currently it holds only the slot
// [KeyValueStore]; additional repositories can be added here as the feature
// set grows.
type Storages struct {
	// Slots is the persisted key-value storage holding the todo, note
	// and theme slots.
	Slots KeyValueStore
}

// NewStorages initialises the storage layer using the supplied configuration
// and logger. The backend is selected by cfg.Backend:
//   - [config.BackendFile] (and empty) — one file per slot inside the data
//     directory;
//   - [config.BackendSQLite] — a slots table inside a local SQLite file,
//     created and migrated on startup.
//
// Returns an error if the SQLite database cannot be opened or migrated.
func NewStorages(cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Str("backend", cfg.Backend).Msg("creating new storages...")

	switch cfg.Backend {
	case config.BackendSQLite:
		dbCfg := cfg.DB
		if dbCfg.DSN == "" {
			dbCfg.DSN = defaultSQLiteDSN
		}

		db, err := NewConnectSQLite(context.Background(), dbCfg, logger)
		if err != nil {
			return nil, fmt.Errorf("sqlite connection error: %w", err)
		}

		if err := db.Migrate(); err != nil {
			return nil, fmt.Errorf("migration failed: %w", err)
		}

		return &Storages{
			Slots: NewSlotRepository(db, logger),
		}, nil

	default:
		return &Storages{
			Slots: NewFileStore(cfg.Files.DataDir, logger),
		}, nil
	}
}
