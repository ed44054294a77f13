package tui

import "github.com/MKhiriev/go-note-keeper/models"

// Observable updates. Each one re-arms its own subscription.
type (
	notesChangedMsg       []models.Note
	errorChangedMsg       string
	refreshingChangedMsg  bool
	autoRefreshChangedMsg bool
)

// clearErrorMsg fires when an error has been on screen long enough.
type clearErrorMsg struct {
	message string
}

type noteAddedMsg struct {
	note models.Note
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}
