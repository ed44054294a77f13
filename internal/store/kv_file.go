package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
)

type fileKeyValueStore struct {
	path     string
	inMemory bool

	mu    sync.RWMutex
	slots map[string]string

	logger *logger.Logger
}

type filePersistedState struct {
	Slots map[string]string `json:"slots"`
}

// NewFileKeyValueStore returns a [KeyValueStore] that keeps all slots in one
// JSON document at path. An empty path or ":memory:" keeps them in memory.
// A corrupt document is logged and the store starts empty; the next Set
// overwrites it.
func NewFileKeyValueStore(path string, logger *logger.Logger) (KeyValueStore, error) {
	if path == "" {
		path = memoryDSN
	}

	s := &fileKeyValueStore{
		path:     path,
		inMemory: path == memoryDSN,
		slots:    make(map[string]string),
		logger:   logger,
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *fileKeyValueStore) Get(_ context.Context, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.slots[key]
	if !ok {
		return "", ErrKeyNotFound
	}
	return value, nil
}

func (s *fileKeyValueStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev, existed := s.slots[key]
	s.slots[key] = value
	if err := s.persist(); err != nil {
		if existed {
			s.slots[key] = prev
		} else {
			delete(s.slots, key)
		}
		return err
	}
	return nil
}

func (s *fileKeyValueStore) Close() error {
	return nil
}

func (s *fileKeyValueStore) load() error {
	if s.inMemory {
		return nil
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read slot file: %w", err)
	}

	var st filePersistedState
	if err = json.Unmarshal(data, &st); err != nil {
		s.logger.Warn().Err(err).Str("func", "fileKeyValueStore.load").Str("path", s.path).Msg("malformed slot file, starting empty")
		return nil
	}
	if st.Slots != nil {
		s.slots = st.Slots
	}

	return nil
}

// persist writes the whole document to a temp file and renames it over the
// previous one.
func (s *fileKeyValueStore) persist() error {
	if s.inMemory {
		return nil
	}

	dir := filepath.Dir(s.path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create slot file dir: %w", err)
		}
	}

	payload, err := json.MarshalIndent(filePersistedState{Slots: s.slots}, "", "  ")
	if err != nil {
		return fmt.Errorf("encode slot file: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp slot file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err = tmp.Write(payload); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write slot file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close slot file: %w", err)
	}
	if err = os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace slot file: %w", err)
	}

	return nil
}
