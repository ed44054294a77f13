// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// go-note-keeper client.
//
// All Msg* constants are human-readable message strings surfaced through the
// sync state error field or the terminal UI. Keeping them in one place
// ensures consistent wording.
package app

const (
	// MsgUnknownError is shown when a refresh failed without a message.
	MsgUnknownError = "Unknown error"

	// MsgEmptyResponseBody is the message of a 2xx response that carried no
	// body at all.
	MsgEmptyResponseBody = "empty response body"

	// MsgNoteNotFound is rendered by the detail screen when the selected id
	// is no longer present in the note list.
	MsgNoteNotFound = "Note not found"

	// MsgTitleRequired is shown by the add-note form for a blank title.
	MsgTitleRequired = "title is required"

	// MsgClipboardUnavailable is shown when the system clipboard cannot be
	// written.
	MsgClipboardUnavailable = "clipboard is unavailable"
)
