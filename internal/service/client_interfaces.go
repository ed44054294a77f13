package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-note-keeper/internal/observable"
	"github.com/MKhiriev/go-note-keeper/models"
)

// NotesSyncService owns the authoritative note list. It merges remote
// snapshots into it, applies local edits, persists every change and
// publishes its state as four independently observable values.
type NotesSyncService interface {
	// Init loads the persisted snapshot into state (if non-empty) and starts
	// one refresh in the background. Auto-refresh stays off.
	Init(ctx context.Context)

	// Refresh fetches the remote list and replaces the local one only when
	// the fetched list is strictly longer. Failures end up in Error. Refresh
	// blocks until the fetch is done; overlapping calls are allowed and the
	// last one to finish wins. Close cancels and waits for every running
	// Refresh; after Close it is a no-op.
	Refresh(ctx context.Context)

	// SetAutoRefreshEnabled turns the periodic refresh on (restarting the
	// timer) or off.
	SetAutoRefreshEnabled(enabled bool)

	// ToggleNoteCompletion flips IsCompleted of the note with id and
	// persists the list. Unknown ids leave the list unchanged.
	ToggleNoteCompletion(ctx context.Context, id int)

	// AddLocalNote appends a new uncompleted note with a random id in
	// [1000, 9999] and the current timestamp, persists the list and returns
	// the note. The title is not validated here.
	AddLocalNote(ctx context.Context, title, content string) models.Note

	// ClearError resets Error.
	ClearError()

	// State returns a snapshot of all four observable values.
	State() models.SyncState

	Notes() *observable.Value[[]models.Note]
	Error() *observable.Value[string]
	IsRefreshing() *observable.Value[bool]
	AutoRefreshEnabled() *observable.Value[bool]

	// Close stops the auto-refresh job, cancels running refreshes and waits
	// for them to return.
	Close()
}

// AutoRefreshJob defines the contract for the background worker that
// periodically triggers a refresh.
type AutoRefreshJob interface {
	// Start launches the background goroutine. It ticks every interval,
	// defaulting to one minute if interval is zero or negative. Any previously
	// running job is stopped before the new one begins.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the background goroutine to exit and blocks until it has
	// fully terminated. Refreshes the job already launched keep running.
	Stop()
}

// backgroundRefresher is what the auto-refresh job drives.
type backgroundRefresher interface {
	AutoRefreshEnabled() *observable.Value[bool]
	refreshInBackground()
}

// idGenerator draws note identifiers.
type idGenerator interface {
	Generate() int
}

// traceIDGenerator draws refresh identifiers.
type traceIDGenerator interface {
	Generate() string
}
