package models

// NotesResponse is the envelope shape of a note list: {"notes": [...]}.
// The same envelope is used for the remote payload and for the locally
// persisted snapshot.
type NotesResponse struct {
	// Notes is the wrapped note list in insertion order.
	Notes []Note `json:"notes"`
}
