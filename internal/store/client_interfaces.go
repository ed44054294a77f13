package store

import (
	"context"

	"github.com/MKhiriev/go-note-keeper/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// KeyValueStore is a persistent string-keyed store holding string values.
type KeyValueStore interface {
	// Get returns the value stored under key, or [ErrKeyNotFound].
	Get(ctx context.Context, key string) (string, error)
	// Set stores value under key, overwriting any prior value.
	Set(ctx context.Context, key, value string) error
	// Close releases the underlying resources.
	Close() error
}

// NoteStore persists the note list in a single slot of a [KeyValueStore].
type NoteStore interface {
	// Save overwrites the slot with {"notes": notes}.
	Save(ctx context.Context, notes []models.Note) error
	// Load returns the persisted list. A missing or malformed slot yields an
	// empty list; Load never fails.
	Load(ctx context.Context) []models.Note
}
