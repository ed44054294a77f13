package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
)

// ClientStorages groups the client-side storage layer into a single value
// that can be passed to the service layer.
type ClientStorages struct {
	// KeyValueStore is the persistent slot store selected by the driver.
	KeyValueStore KeyValueStore
	// NoteStore keeps the note list in the configured slot.
	NoteStore NoteStore
}

// NewClientStorages initialises the client storage layer using the supplied
// configuration and logger.
//
// For [config.DriverSQLite] it opens the database at cfg.DSN, creating the
// file when missing, and runs pending migrations. For [config.DriverFile] it
// opens the JSON slot file at cfg.FilePath.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Str("driver", cfg.Driver).Msg("creating new storages...")

	var kv KeyValueStore
	switch cfg.Driver {
	case config.DriverSQLite:
		db, err := NewConnectSQLite(ctx, cfg.DSN, logger)
		if err != nil {
			return nil, fmt.Errorf("sqlite connection error: %w", err)
		}

		if err := db.Migrate(); err != nil {
			db.Close()
			return nil, fmt.Errorf("migration failed: %w", err)
		}

		kv = NewSQLiteKeyValueStore(db, logger)
	case config.DriverFile:
		fileKV, err := NewFileKeyValueStore(cfg.FilePath, logger)
		if err != nil {
			return nil, fmt.Errorf("slot file error: %w", err)
		}

		kv = fileKV
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.Driver)
	}

	return &ClientStorages{
		KeyValueStore: kv,
		NoteStore:     NewNoteStore(kv, cfg.SlotKey, logger),
	}, nil
}

// Close releases the key-value backend.
func (s *ClientStorages) Close() error {
	return s.KeyValueStore.Close()
}
