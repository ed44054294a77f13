package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-note-keeper/internal/service"
	"github.com/MKhiriev/go-note-keeper/models"
)

// subscriptions holds one channel per observable of the notes controller.
// Every channel first yields the current value.
type subscriptions struct {
	notes       <-chan []models.Note
	err         <-chan string
	refreshing  <-chan bool
	autoRefresh <-chan bool

	cancels []func()
}

func subscribe(svc service.NotesSyncService) *subscriptions {
	s := &subscriptions{}

	var cancel func()
	s.notes, cancel = svc.Notes().Subscribe()
	s.cancels = append(s.cancels, cancel)
	s.err, cancel = svc.Error().Subscribe()
	s.cancels = append(s.cancels, cancel)
	s.refreshing, cancel = svc.IsRefreshing().Subscribe()
	s.cancels = append(s.cancels, cancel)
	s.autoRefresh, cancel = svc.AutoRefreshEnabled().Subscribe()
	s.cancels = append(s.cancels, cancel)

	return s
}

// close cancels every subscription. Pending waits return nil messages.
func (s *subscriptions) close() {
	for _, cancel := range s.cancels {
		cancel()
	}
}

func (s *subscriptions) waitNotes() tea.Cmd {
	return waitFor(s.notes, func(v []models.Note) tea.Msg { return notesChangedMsg(v) })
}

func (s *subscriptions) waitError() tea.Cmd {
	return waitFor(s.err, func(v string) tea.Msg { return errorChangedMsg(v) })
}

func (s *subscriptions) waitRefreshing() tea.Cmd {
	return waitFor(s.refreshing, func(v bool) tea.Msg { return refreshingChangedMsg(v) })
}

func (s *subscriptions) waitAutoRefresh() tea.Cmd {
	return waitFor(s.autoRefresh, func(v bool) tea.Msg { return autoRefreshChangedMsg(v) })
}

// waitFor blocks on ch and wraps the next value. A closed channel yields a
// nil message, which bubbletea drops.
func waitFor[T any](ch <-chan T, wrap func(T) tea.Msg) tea.Cmd {
	return func() tea.Msg {
		v, ok := <-ch
		if !ok {
			return nil
		}
		return wrap(v)
	}
}
