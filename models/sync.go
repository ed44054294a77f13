package models

// SyncState is a point-in-time snapshot of everything the notes controller
// publishes to the presentation layer.
type SyncState struct {
	// Notes is the authoritative note list.
	Notes []Note

	// Error is the message of the last failed refresh. Empty means no error.
	Error string

	// IsRefreshing is set when a refresh starts and cleared when any refresh
	// finishes. Overlapping refreshes are not counted.
	IsRefreshing bool

	// AutoRefreshEnabled reports whether the periodic refresh is active.
	AutoRefreshEnabled bool
}
