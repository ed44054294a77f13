package models

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrNoteFieldMissing is returned when a decoded note lacks one of its
// mandatory fields (id, title, content, timestamp).
var ErrNoteFieldMissing = errors.New("note field is missing")

// Note is a single note record as served by the remote endpoint and kept in
// the local cache.
type Note struct {
	// ID is the identity key of the note. Uniqueness is expected but never
	// enforced: locally created notes use random ids and may collide.
	ID int `json:"id"`

	// Title is the short headline of the note.
	Title string `json:"title"`

	// Content is the note body.
	Content string `json:"content"`

	// Timestamp is an opaque ISO-8601 creation marker. It is only parsed for
	// display formatting.
	Timestamp string `json:"timestamp"`

	// IsCompleted marks the note as done. Optional on the wire, defaults to
	// false.
	IsCompleted bool `json:"isCompleted"`
}

// noteWire mirrors Note with pointer fields so that absent keys can be told
// apart from zero values.
type noteWire struct {
	ID          *int    `json:"id"`
	Title       *string `json:"title"`
	Content     *string `json:"content"`
	Timestamp   *string `json:"timestamp"`
	IsCompleted *bool   `json:"isCompleted"`
}

// UnmarshalJSON decodes a note and rejects payloads that miss any mandatory
// field. Unknown keys are ignored.
func (n *Note) UnmarshalJSON(b []byte) error {
	var w noteWire
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}

	switch {
	case w.ID == nil:
		return fmt.Errorf("%w: id", ErrNoteFieldMissing)
	case w.Title == nil:
		return fmt.Errorf("%w: title", ErrNoteFieldMissing)
	case w.Content == nil:
		return fmt.Errorf("%w: content", ErrNoteFieldMissing)
	case w.Timestamp == nil:
		return fmt.Errorf("%w: timestamp", ErrNoteFieldMissing)
	}

	*n = Note{
		ID:        *w.ID,
		Title:     *w.Title,
		Content:   *w.Content,
		Timestamp: *w.Timestamp,
	}
	if w.IsCompleted != nil {
		n.IsCompleted = *w.IsCompleted
	}

	return nil
}

// NoteDraft is the user input for a locally created note.
type NoteDraft struct {
	Title   string
	Content string
}
