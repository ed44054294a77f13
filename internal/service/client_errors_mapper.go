// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"

	"github.com/MKhiriev/go-note-keeper/internal/adapter"
	"github.com/MKhiriev/go-note-keeper/internal/app"
)

// refreshErrorMessage is the text published in the Error value for a failed
// refresh.
func refreshErrorMessage(err error) string {
	if err == nil {
		return ""
	}
	if msg := err.Error(); msg != "" {
		return msg
	}
	return app.MsgUnknownError
}

// refreshErrorKind names the failure class for logging.
func refreshErrorKind(err error) string {
	var (
		transportErr *adapter.TransportError
		statusErr    *adapter.HTTPStatusError
		parseErr     *adapter.ParseError
	)

	switch {
	case errors.As(err, &transportErr):
		return "transport"
	case errors.As(err, &statusErr):
		return "http_status"
	case errors.Is(err, adapter.ErrEmptyBody):
		return "empty_body"
	case errors.As(err, &parseErr):
		return "parse"
	default:
		return "unknown"
	}
}
