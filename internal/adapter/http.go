package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/utils"
	"github.com/MKhiriev/go-note-keeper/models"
)

type httpNotesAdapter struct {
	client   *utils.HTTPClient
	notesURL string

	logger *logger.Logger
}

// NewHTTPNotesAdapter constructs the HTTP implementation of [NotesAdapter].
// It normalises and validates adapterCfg.NotesURL and configures the
// underlying HTTP client with the request timeout and no retries.
//
// Returns an error if adapterCfg.NotesURL is empty or cannot be parsed as a
// valid URL.
func NewHTTPNotesAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (NotesAdapter, error) {
	notesURL, err := normalizeURL(adapterCfg.NotesURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter notes url: %w", err)
	}

	return &httpNotesAdapter{
		client:   utils.NewHTTPClient(adapterCfg.RequestTimeout),
		notesURL: notesURL,
		logger:   logger,
	}, nil
}

func normalizeURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return u.String(), nil
}

// FetchNotes implements [NotesAdapter]. It sends GET <notes-url> and decodes
// the body as {"notes": [...]} or, failing that, as a bare array.
func (h *httpNotesAdapter) FetchNotes(ctx context.Context) ([]models.Note, error) {
	log := logger.FromContextOr(ctx, h.logger)
	start := time.Now()

	resp, err := h.client.R().
		SetContext(ctx).
		Get(h.notesURL)
	if err != nil {
		log.Err(err).Str("func", "httpNotesAdapter.FetchNotes").Dur("took", time.Since(start)).Msg("notes request failed")
		return nil, &TransportError{Err: err}
	}

	if err = mapHTTPError(resp); err != nil {
		log.Err(err).Str("func", "httpNotesAdapter.FetchNotes").Int("status", resp.StatusCode()).Msg("notes request rejected")
		return nil, err
	}

	body := resp.Body()
	if len(body) == 0 {
		log.Warn().Str("func", "httpNotesAdapter.FetchNotes").Int("status", resp.StatusCode()).Msg("notes response has no body")
		return nil, ErrEmptyBody
	}

	notes, err := decodeNotes(body)
	if err != nil {
		log.Err(err).Str("func", "httpNotesAdapter.FetchNotes").Int("size", len(body)).Msg("notes response cannot be parsed")
		return nil, err
	}

	log.Debug().
		Str("func", "httpNotesAdapter.FetchNotes").
		Int("status", resp.StatusCode()).
		Int("notes", len(notes)).
		Dur("took", time.Since(start)).
		Msg("notes fetched")

	return notes, nil
}
