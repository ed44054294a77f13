package adapter

import (
	"encoding/json"
	"errors"

	"github.com/MKhiriev/go-note-keeper/models"
)

var errNotesKeyMissing = errors.New(`"notes" key is missing or null`)

// envelope is the {"notes": [...]} shape. A pointer tells a missing or null
// key apart from an empty list.
type envelope struct {
	Notes *[]models.Note `json:"notes"`
}

// decodeNotes tries the envelope shape first and the bare array shape second.
func decodeNotes(body []byte) ([]models.Note, error) {
	notes, envErr := decodeEnvelope(body)
	if envErr == nil {
		return notes, nil
	}

	notes, arrErr := decodeArray(body)
	if arrErr == nil {
		return notes, nil
	}

	return nil, &ParseError{Envelope: envErr, Fallback: arrErr}
}

func decodeEnvelope(body []byte) ([]models.Note, error) {
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, err
	}
	if env.Notes == nil {
		return nil, errNotesKeyMissing
	}

	return *env.Notes, nil
}

func decodeArray(body []byte) ([]models.Note, error) {
	var notes []models.Note
	if err := json.Unmarshal(body, &notes); err != nil {
		return nil, err
	}
	if notes == nil {
		// literal null
		return nil, errNotesKeyMissing
	}

	return notes, nil
}
