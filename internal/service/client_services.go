package service

import (
	"github.com/MKhiriev/go-note-keeper/internal/adapter"
	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/store"
)

type ClientServices struct {
	NotesSyncService NotesSyncService
}

func NewClientServices(
	storages *store.ClientStorages,
	notesAdapter adapter.NotesAdapter,
	workersCfg config.ClientWorkers,
	logger *logger.Logger,
) *ClientServices {
	return &ClientServices{
		NotesSyncService: NewNotesSyncService(notesAdapter, storages.NoteStore, workersCfg, logger),
	}
}
