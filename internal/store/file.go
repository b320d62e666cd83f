package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/MKhiriev/go-task-keeper/internal/logger"
)

// defaultDataDir is used when no data directory is configured.
const defaultDataDir = "keeper-data"

type fileStore struct {
	dir    string
	mu     sync.RWMutex
	logger *logger.Logger
}

// NewFileStore returns a [KeyValueStore] that keeps each slot in its own
// file inside dir, the closest analog of per-key browser local storage.
// The directory is created lazily on the first save.
func NewFileStore(dir string, logger *logger.Logger) KeyValueStore {
	if dir == "" {
		dir = defaultDataDir
	}

	return &fileStore{
		dir:    dir,
		logger: logger,
	}
}

func (s *fileStore) Load(ctx context.Context, key string) ([]byte, error) {
	_ = ctx

	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(filepath.Join(s.dir, key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		s.logger.Err(err).
			Str("func", "fileStore.Load").
			Str("key", key).
			Msg("failed to read slot file")
		return nil, fmt.Errorf("read slot file %q: %w", key, err)
	}

	return data, nil
}

func (s *fileStore) Save(ctx context.Context, key string, value []byte) error {
	_ = ctx

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		s.logger.Err(err).
			Str("func", "fileStore.Save").
			Str("key", key).
			Msg("failed to create data dir")
		return fmt.Errorf("create data dir: %w", err)
	}

	if err := os.WriteFile(filepath.Join(s.dir, key), value, 0o600); err != nil {
		s.logger.Err(err).
			Str("func", "fileStore.Save").
			Str("key", key).
			Msg("failed to write slot file")
		return fmt.Errorf("write slot file %q: %w", key, err)
	}

	return nil
}
