package validators

import (
	"context"
	"errors"
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/MKhiriev/go-note-keeper/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldTitle targets the note headline. It must contain a non-blank
	// character.
	FieldTitle = "title"

	// FieldID targets the note identifier.
	FieldID = "id"

	// FieldTimestamp targets the creation marker.
	FieldTimestamp = "timestamp"
)

// NoteValidator validates note drafts typed by the user and notes about to be
// displayed. Content is free text and never validated.
type NoteValidator struct {
}

// NewNoteValidator returns a NoteValidator as the Validator interface.
func NewNoteValidator() Validator {
	return &NoteValidator{}
}

// Validate dispatches on the type of obj. Drafts are checked for the title
// only; notes default to every known field.
func (v *NoteValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.NoteDraft:
		return v.validateDraft(ctx, value, fields...)
	case *models.NoteDraft:
		return v.validateDraft(ctx, *value, fields...)

	case models.Note:
		return v.validateNote(ctx, value, fields...)
	case *models.Note:
		return v.validateNote(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *NoteValidator) validateDraft(ctx context.Context, draft models.NoteDraft, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle}
	}

	for _, f := range fields {
		switch f {
		case FieldTitle:
			if err := validateTitle(ctx, draft.Title); err != nil {
				return err
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	return nil
}

func (v *NoteValidator) validateNote(ctx context.Context, note models.Note, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldTitle, FieldTimestamp}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if err := validation.ValidateWithContext(ctx, note.ID, validation.Min(0)); err != nil {
				return fmt.Errorf("%w: %v", ErrInvalidNoteID, err)
			}
		case FieldTitle:
			if err := validateTitle(ctx, note.Title); err != nil {
				return err
			}
		case FieldTimestamp:
			if err := validation.ValidateWithContext(ctx, note.Timestamp, validation.Required); err != nil {
				return fmt.Errorf("%w: %v", ErrEmptyTimestamp, err)
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	return nil
}

// validateTitle rejects titles that are empty or consist of whitespace only.
func validateTitle(ctx context.Context, title string) error {
	err := validation.ValidateWithContext(ctx, strings.TrimSpace(title), validation.Required)
	if err == nil {
		return nil
	}

	var vErr validation.Error
	if errors.As(err, &vErr) {
		return fmt.Errorf("%w: %s", ErrTitleRequired, vErr.Message())
	}
	return fmt.Errorf("%w: %v", ErrTitleRequired, err)
}
