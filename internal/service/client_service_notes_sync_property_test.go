package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/store"
	"github.com/MKhiriev/go-note-keeper/internal/utils"
	"github.com/MKhiriev/go-note-keeper/models"
)

// stubAdapter answers every fetch with the same list.
type stubAdapter struct {
	notes []models.Note
	err   error
}

func (s *stubAdapter) FetchNotes(context.Context) ([]models.Note, error) {
	return s.notes, s.err
}

func noteGen() *rapid.Generator[models.Note] {
	return rapid.Custom(func(t *rapid.T) models.Note {
		return models.Note{
			ID:          rapid.IntRange(0, 50).Draw(t, "id"),
			Title:       rapid.StringN(0, 8, -1).Draw(t, "title"),
			Content:     rapid.StringN(0, 8, -1).Draw(t, "content"),
			Timestamp:   "2024-01-01T00:00:00Z",
			IsCompleted: rapid.Bool().Draw(t, "isCompleted"),
		}
	})
}

func orEmpty(notes []models.Note) []models.Note {
	if notes == nil {
		return []models.Note{}
	}
	return notes
}

func newPropertyNotesSvc(t require.TestingT, remote *stubAdapter) (*notesSyncService, store.NoteStore) {
	kv, err := store.NewFileKeyValueStore(":memory:", logger.Nop())
	require.NoError(t, err)
	noteStore := store.NewNoteStore(kv, store.DefaultNotesSlotKey, logger.Nop())

	svc := NewNotesSyncService(remote, noteStore, config.ClientWorkers{AutoRefreshInterval: time.Minute}, logger.Nop()).(*notesSyncService)
	return svc, noteStore
}

func TestNotesSyncService_Property_RefreshReplacesOnlyWhenLonger(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		local := rapid.SliceOfN(noteGen(), 0, 6).Draw(rt, "local")
		remote := rapid.SliceOfN(noteGen(), 0, 6).Draw(rt, "remote")

		svc, noteStore := newPropertyNotesSvc(rt, &stubAdapter{notes: remote})
		defer svc.Close()
		svc.notes.Set(local)

		svc.Refresh(context.Background())

		want := local
		if len(remote) > len(local) {
			want = remote
			require.Equal(rt, remote, noteStore.Load(context.Background()))
		}
		require.Equal(rt, want, svc.Notes().Get())
		require.False(rt, svc.IsRefreshing().Get())
		require.Empty(rt, svc.Error().Get())
	})
}

func TestNotesSyncService_Property_ToggleTwiceRestores(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		notes := orEmpty(rapid.SliceOfN(noteGen(), 0, 8).Draw(rt, "notes"))
		id := rapid.IntRange(0, 60).Draw(rt, "id")

		svc, noteStore := newPropertyNotesSvc(rt, &stubAdapter{})
		defer svc.Close()
		svc.notes.Set(notes)

		svc.ToggleNoteCompletion(context.Background(), id)
		once := svc.Notes().Get()
		require.Len(rt, once, len(notes))
		for i := range notes {
			if notes[i].ID == id {
				require.Equal(rt, !notes[i].IsCompleted, once[i].IsCompleted)
			} else {
				require.Equal(rt, notes[i], once[i])
			}
		}

		svc.ToggleNoteCompletion(context.Background(), id)
		require.Equal(rt, notes, svc.Notes().Get())
		require.Equal(rt, notes, noteStore.Load(context.Background()))
	})
}

func TestNotesSyncService_Property_AddLocalNoteAppends(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		notes := orEmpty(rapid.SliceOfN(noteGen(), 0, 8).Draw(rt, "notes"))
		title := rapid.StringN(1, 16, -1).Draw(rt, "title")
		content := rapid.StringN(0, 16, -1).Draw(rt, "content")

		svc, noteStore := newPropertyNotesSvc(rt, &stubAdapter{})
		defer svc.Close()
		svc.notes.Set(notes)

		before := time.Now().Add(-time.Second)
		added := svc.AddLocalNote(context.Background(), title, content)

		require.GreaterOrEqual(rt, added.ID, utils.MinLocalNoteID)
		require.LessOrEqual(rt, added.ID, utils.MaxLocalNoteID)
		require.Equal(rt, title, added.Title)
		require.Equal(rt, content, added.Content)
		require.False(rt, added.IsCompleted)

		ts, err := time.Parse(time.RFC3339Nano, added.Timestamp)
		require.NoError(rt, err)
		require.True(rt, ts.After(before))

		got := svc.Notes().Get()
		require.Len(rt, got, len(notes)+1)
		require.Equal(rt, notes, got[:len(notes)])
		require.Equal(rt, added, got[len(notes)])
		require.Equal(rt, got, noteStore.Load(context.Background()))
	})
}
