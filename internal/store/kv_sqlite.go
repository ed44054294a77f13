package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
)

type sqliteKeyValueStore struct {
	*DB
	logger *logger.Logger
}

// NewSQLiteKeyValueStore returns a [KeyValueStore] backed by the kv_slots
// table. The schema must already be migrated.
func NewSQLiteKeyValueStore(db *DB, logger *logger.Logger) KeyValueStore {
	return &sqliteKeyValueStore{
		DB:     db,
		logger: logger,
	}
}

func (s *sqliteKeyValueStore) Get(ctx context.Context, key string) (string, error) {
	log := logger.FromContextOr(ctx, s.logger)

	query, args, err := buildGetSlotQuery(key)
	if err != nil {
		log.Err(err).Str("func", "sqliteKeyValueStore.Get").Str("key", key).Msg("failed to build query")
		return "", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var value string
	err = s.DB.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrKeyNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "sqliteKeyValueStore.Get").Str("key", key).Msg("failed to read slot")
		return "", fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return value, nil
}

func (s *sqliteKeyValueStore) Set(ctx context.Context, key, value string) error {
	log := logger.FromContextOr(ctx, s.logger)

	query, args, err := buildUpsertSlotQuery(key, value)
	if err != nil {
		log.Err(err).Str("func", "sqliteKeyValueStore.Set").Str("key", key).Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "sqliteKeyValueStore.Set").Str("key", key).Msg("failed to write slot")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (s *sqliteKeyValueStore) Close() error {
	return s.DB.Close()
}
