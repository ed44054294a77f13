package adapter

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-note-keeper/internal/app"
)

// ErrEmptyBody is returned when a successful response carries no body.
var ErrEmptyBody = errors.New(app.MsgEmptyResponseBody)

// maxErrorBodyLen bounds how much of an error response body ends up in
// [HTTPStatusError.Error].
const maxErrorBodyLen = 200

// TransportError wraps a connection-level failure: dial errors, timeouts and
// cancelled contexts.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("request failed: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// HTTPStatusError is returned for any non-2xx response.
type HTTPStatusError struct {
	StatusCode int
	// Reason is the reason phrase of the status line.
	Reason string
	// Body is the trimmed, truncated response body.
	Body string
}

func (e *HTTPStatusError) Error() string {
	msg := fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Reason)
	if e.Body != "" {
		msg += " (" + e.Body + ")"
	}
	return msg
}

// ParseError is returned when the body matches neither the envelope shape nor
// the bare array shape.
type ParseError struct {
	Envelope error
	Fallback error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse notes: envelope: %v; array: %v", e.Envelope, e.Fallback)
}

func (e *ParseError) Unwrap() []error {
	return []error{e.Envelope, e.Fallback}
}
