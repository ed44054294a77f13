// Package utils provides general-purpose helper utilities
// used across different parts of the notes client.
// Includes tools for working with context, type-safe keys, identifier
// generation and HTTP client initialization.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// RefreshIDCtxKey is the key used to store the identifier of the refresh
// an operation belongs to.
//
// Example of writing a value to the context:
//
//	ctx := utils.WithRefreshID(ctx, "0190...")
var RefreshIDCtxKey = contextKey("refreshID")

// WithRefreshID returns a copy of ctx carrying refreshID.
func WithRefreshID(ctx context.Context, refreshID string) context.Context {
	return context.WithValue(ctx, RefreshIDCtxKey, refreshID)
}

// GetRefreshIDFromContext retrieves the refresh identifier from the context.
//
// Returns the identifier and an ok flag:
//   - ok == true: value is found and is a non-empty string
//   - ok == false: value is missing or has an unexpected type
func GetRefreshIDFromContext(ctx context.Context) (string, bool) {
	refreshID, ok := ctx.Value(RefreshIDCtxKey).(string)
	return refreshID, ok && refreshID != ""
}
