package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClientStorages(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name string
		cfg  config.ClientStorage
	}{
		{
			name: "sqlite",
			cfg:  config.ClientStorage{Driver: config.DriverSQLite, DSN: filepath.Join(dir, "notes.db")},
		},
		{
			name: "file",
			cfg:  config.ClientStorage{Driver: config.DriverFile, FilePath: filepath.Join(dir, "notes_prefs.json")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			notes := []models.Note{{ID: 3, Title: "T", Content: "C", Timestamp: "2024-01-01T00:00:00Z", IsCompleted: true}}

			storages, err := NewClientStorages(ctx, tt.cfg, logger.Nop())
			require.NoError(t, err)
			require.NoError(t, storages.NoteStore.Save(ctx, notes))
			require.NoError(t, storages.Close())

			reopened, err := NewClientStorages(ctx, tt.cfg, logger.Nop())
			require.NoError(t, err)
			t.Cleanup(func() { reopened.Close() })

			assert.Equal(t, notes, reopened.NoteStore.Load(ctx))
		})
	}
}

func TestNewClientStorages_UnknownDriver(t *testing.T) {
	_, err := NewClientStorages(context.Background(), config.ClientStorage{Driver: "redis"}, logger.Nop())
	assert.ErrorIs(t, err, ErrUnknownDriver)
}

func TestNewClientStorages_CorruptSlotFile(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "notes_prefs.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"slots":{"notes_json":"{\"notes\":[]}"`), 0o600))
	cfg := config.ClientStorage{Driver: config.DriverFile, FilePath: path}

	storages, err := NewClientStorages(ctx, cfg, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { storages.Close() })

	assert.Empty(t, storages.NoteStore.Load(ctx))

	notes := []models.Note{{ID: 1001, Title: "T", Content: "C", Timestamp: "2024-01-01T00:00:00Z"}}
	require.NoError(t, storages.NoteStore.Save(ctx, notes))

	reopened, err := NewClientStorages(ctx, cfg, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { reopened.Close() })
	assert.Equal(t, notes, reopened.NoteStore.Load(ctx))
}
