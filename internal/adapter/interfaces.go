// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport-layer abstraction used to fetch the
// remote note list.
//
// The primary abstraction is [NotesAdapter], which decouples the service
// layer from the underlying protocol. The package ships an HTTP
// implementation ([NewHTTPNotesAdapter]) built on go-resty.
//
// Every failure is returned as an error value from errors.go so callers can
// use [errors.Is] and [errors.As] to tell transport, status, empty-body and
// parse failures apart.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-note-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/notes_adapter_mock.go -package=mock

// NotesAdapter fetches the remote note list.
type NotesAdapter interface {
	// FetchNotes issues exactly one request for the note list and returns it
	// in server order. It never retries. The returned error is one of
	// [*TransportError], [*HTTPStatusError], [ErrEmptyBody] or [*ParseError].
	FetchNotes(ctx context.Context) ([]models.Note, error)
}
