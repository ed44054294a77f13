// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/models"
)

// DefaultNotesSlotKey is the slot the note list is stored under.
const DefaultNotesSlotKey = "notes_json"

type noteStore struct {
	kv      KeyValueStore
	slotKey string

	logger *logger.Logger
}

// NewNoteStore returns a [NoteStore] writing to slotKey of kv. An empty
// slotKey means [DefaultNotesSlotKey].
func NewNoteStore(kv KeyValueStore, slotKey string, logger *logger.Logger) NoteStore {
	if slotKey == "" {
		slotKey = DefaultNotesSlotKey
	}

	return &noteStore{
		kv:      kv,
		slotKey: slotKey,
		logger:  logger,
	}
}

func (n *noteStore) Save(ctx context.Context, notes []models.Note) error {
	log := logger.FromContextOr(ctx, n.logger)

	if notes == nil {
		notes = []models.Note{}
	}
	payload, err := json.Marshal(models.NotesResponse{Notes: notes})
	if err != nil {
		log.Err(err).Str("func", "noteStore.Save").Msg("failed to encode notes")
		return err
	}

	if err = n.kv.Set(ctx, n.slotKey, string(payload)); err != nil {
		log.Err(err).Str("func", "noteStore.Save").Str("slot", n.slotKey).Msg("failed to save notes")
		return err
	}

	log.Debug().Str("func", "noteStore.Save").Int("notes", len(notes)).Msg("notes saved")
	return nil
}

func (n *noteStore) Load(ctx context.Context) []models.Note {
	log := logger.FromContextOr(ctx, n.logger)

	raw, err := n.kv.Get(ctx, n.slotKey)
	if errors.Is(err, ErrKeyNotFound) {
		return []models.Note{}
	}
	if err != nil {
		log.Warn().Err(err).Str("func", "noteStore.Load").Str("slot", n.slotKey).Msg("failed to read notes, starting empty")
		return []models.Note{}
	}

	var saved models.NotesResponse
	if err = json.Unmarshal([]byte(raw), &saved); err != nil {
		log.Warn().Err(err).Str("func", "noteStore.Load").Str("slot", n.slotKey).Msg("malformed notes slot, starting empty")
		return []models.Note{}
	}
	if saved.Notes == nil {
		return []models.Note{}
	}

	return saved.Notes
}
