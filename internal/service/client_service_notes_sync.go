package service

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-note-keeper/internal/adapter"
	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/observable"
	"github.com/MKhiriev/go-note-keeper/internal/store"
	"github.com/MKhiriev/go-note-keeper/internal/utils"
	"github.com/MKhiriev/go-note-keeper/models"
)

type notesSyncService struct {
	notesAdapter adapter.NotesAdapter
	noteStore    store.NoteStore

	job      AutoRefreshJob
	interval time.Duration

	notes       *observable.Value[[]models.Note]
	err         *observable.Value[string]
	refreshing  *observable.Value[bool]
	autoRefresh *observable.Value[bool]

	// mu serialises the read-compare-write of the note list.
	mu sync.Mutex

	// lifetime is cancelled by Close.
	lifetime context.Context
	cancel   context.CancelFunc
	bgMu     sync.Mutex
	bg       sync.WaitGroup
	closed   bool

	noteIDs  idGenerator
	traceIDs traceIDGenerator
	now      func() time.Time

	logger *logger.Logger
}

// NewNotesSyncService constructs the notes controller. State starts empty
// with auto-refresh off; call Init to load the persisted snapshot.
func NewNotesSyncService(
	notesAdapter adapter.NotesAdapter,
	noteStore store.NoteStore,
	workersCfg config.ClientWorkers,
	logger *logger.Logger,
) NotesSyncService {
	lifetime, cancel := context.WithCancel(context.Background())

	s := &notesSyncService{
		notesAdapter: notesAdapter,
		noteStore:    noteStore,
		interval:     workersCfg.AutoRefreshInterval,
		notes:        observable.NewValue([]models.Note{}),
		err:          observable.NewValue(""),
		refreshing:   observable.NewValue(false),
		autoRefresh:  observable.NewValue(false),
		lifetime:     lifetime,
		cancel:       cancel,
		noteIDs:      utils.NewNoteIDGenerator(),
		traceIDs:     utils.NewUUIDGenerator(),
		now:          time.Now,
		logger:       logger,
	}
	s.job = NewAutoRefreshJob(s)

	return s
}

func (s *notesSyncService) Init(ctx context.Context) {
	log := logger.FromContextOr(ctx, s.logger)

	saved := s.noteStore.Load(ctx)
	if len(saved) > 0 {
		s.notes.Set(saved)
	}
	log.Info().Str("func", "notesSyncService.Init").Int("notes", len(saved)).Msg("notes snapshot loaded")

	s.refreshInBackground()
}

func (s *notesSyncService) Refresh(ctx context.Context) {
	if !s.track() {
		return
	}
	defer s.bg.Done()

	ctx, cancel := context.WithCancel(ctx)
	stop := context.AfterFunc(s.lifetime, cancel)
	defer func() {
		stop()
		cancel()
	}()

	refreshID := s.traceIDs.Generate()
	log := s.logger.GetChildLogger()
	log.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("refresh_id", refreshID)
	})
	ctx = utils.WithRefreshID(log.WithContext(ctx), refreshID)

	s.refreshing.Set(true)
	s.err.Set("")
	defer s.refreshing.Set(false)

	fetched, err := s.notesAdapter.FetchNotes(ctx)
	if err != nil {
		log.Err(err).
			Str("func", "notesSyncService.Refresh").
			Str("kind", refreshErrorKind(err)).
			Msg("refresh failed")
		s.err.Set(refreshErrorMessage(err))
		return
	}

	s.merge(ctx, fetched)
}

// merge replaces the note list only when fetched is strictly longer.
func (s *notesSyncService) merge(ctx context.Context, fetched []models.Note) {
	log := logger.FromContextOr(ctx, s.logger)

	s.mu.Lock()
	defer s.mu.Unlock()

	current := s.notes.Get()
	if len(fetched) <= len(current) {
		log.Debug().
			Str("func", "notesSyncService.merge").
			Int("fetched", len(fetched)).
			Int("current", len(current)).
			Msg("fetched list is not longer, keeping local notes")
		return
	}

	replaced := slices.Clone(fetched)
	s.notes.Set(replaced)
	s.persist(ctx, replaced)

	log.Info().
		Str("func", "notesSyncService.merge").
		Int("fetched", len(fetched)).
		Int("previous", len(current)).
		Msg("notes replaced by remote list")
}

func (s *notesSyncService) SetAutoRefreshEnabled(enabled bool) {
	s.autoRefresh.Set(enabled)
	s.logger.Info().Str("func", "notesSyncService.SetAutoRefreshEnabled").Bool("enabled", enabled).Msg("auto-refresh switched")

	if !enabled {
		s.job.Stop()
		return
	}

	s.bgMu.Lock()
	closed := s.closed
	s.bgMu.Unlock()
	if closed {
		return
	}
	s.job.Start(s.lifetime, s.interval)
}

func (s *notesSyncService) ToggleNoteCompletion(ctx context.Context, id int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	updated := s.notes.Update(func(current []models.Note) []models.Note {
		toggled := make([]models.Note, len(current))
		for i, note := range current {
			if note.ID == id {
				note.IsCompleted = !note.IsCompleted
			}
			toggled[i] = note
		}
		return toggled
	})
	s.persist(ctx, updated)
}

func (s *notesSyncService) AddLocalNote(ctx context.Context, title, content string) models.Note {
	note := models.Note{
		ID:          s.noteIDs.Generate(),
		Title:       title,
		Content:     content,
		Timestamp:   s.now().UTC().Format(time.RFC3339Nano),
		IsCompleted: false,
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	updated := s.notes.Update(func(current []models.Note) []models.Note {
		appended := make([]models.Note, 0, len(current)+1)
		appended = append(appended, current...)
		return append(appended, note)
	})
	s.persist(ctx, updated)

	logger.FromContextOr(ctx, s.logger).Debug().
		Str("func", "notesSyncService.AddLocalNote").
		Int("id", note.ID).
		Msg("local note added")

	return note
}

func (s *notesSyncService) ClearError() {
	s.err.Set("")
}

func (s *notesSyncService) State() models.SyncState {
	return models.SyncState{
		Notes:              s.notes.Get(),
		Error:              s.err.Get(),
		IsRefreshing:       s.refreshing.Get(),
		AutoRefreshEnabled: s.autoRefresh.Get(),
	}
}

func (s *notesSyncService) Notes() *observable.Value[[]models.Note] {
	return s.notes
}

func (s *notesSyncService) Error() *observable.Value[string] {
	return s.err
}

func (s *notesSyncService) IsRefreshing() *observable.Value[bool] {
	return s.refreshing
}

func (s *notesSyncService) AutoRefreshEnabled() *observable.Value[bool] {
	return s.autoRefresh
}

func (s *notesSyncService) Close() {
	s.bgMu.Lock()
	if s.closed {
		s.bgMu.Unlock()
		return
	}
	s.closed = true
	s.bgMu.Unlock()

	s.job.Stop()
	s.cancel()
	s.bg.Wait()
	s.logger.Debug().Str("func", "notesSyncService.Close").Msg("notes controller closed")
}

// refreshInBackground runs Refresh on its own goroutine tied to the
// controller lifetime rather than to the caller.
func (s *notesSyncService) refreshInBackground() {
	if !s.track() {
		return
	}

	go func() {
		defer s.bg.Done()
		s.Refresh(s.lifetime)
	}()
}

// track registers one more refresh with bg so Close waits for it. It
// reports false once the controller is closed.
func (s *notesSyncService) track() bool {
	s.bgMu.Lock()
	defer s.bgMu.Unlock()
	if s.closed {
		return false
	}

	s.bg.Add(1)
	return true
}

// persist must be called with s.mu held. Failures are logged and otherwise
// ignored: the in-memory list stays authoritative.
func (s *notesSyncService) persist(ctx context.Context, notes []models.Note) {
	if err := s.noteStore.Save(ctx, notes); err != nil {
		logger.FromContextOr(ctx, s.logger).Err(err).
			Str("func", "notesSyncService.persist").
			Int("notes", len(notes)).
			Msg("failed to persist notes")
	}
}
