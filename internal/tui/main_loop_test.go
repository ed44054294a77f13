package tui

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-note-keeper/internal/adapter"
	"github.com/MKhiriev/go-note-keeper/internal/app"
	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/mock"
	"github.com/MKhiriev/go-note-keeper/internal/service"
	"github.com/MKhiriev/go-note-keeper/internal/store"
	"github.com/MKhiriev/go-note-keeper/internal/validators"
	"github.com/MKhiriev/go-note-keeper/models"
)

var seedNotes = []models.Note{
	{ID: 1, Title: "Buy milk", Content: "2 liters", Timestamp: "2024-01-15T10:30:00Z"},
	{ID: 2, Title: "Call Bob", Content: "about the trip", Timestamp: "2024-01-16T08:00:00Z", IsCompleted: true},
}

func newTestModel(t *testing.T) (mainLoopModel, service.NotesSyncService, *mock.MockNotesAdapter) {
	t.Helper()
	ctrl := gomock.NewController(t)
	notesAdapter := mock.NewMockNotesAdapter(ctrl)

	kv, err := store.NewFileKeyValueStore(":memory:", logger.Nop())
	require.NoError(t, err)
	noteStore := store.NewNoteStore(kv, store.DefaultNotesSlotKey, logger.Nop())

	svc := service.NewNotesSyncService(notesAdapter, noteStore, config.ClientWorkers{AutoRefreshInterval: time.Minute}, logger.Nop())
	t.Cleanup(svc.Close)

	m := newMainLoopModel(context.Background(), svc, validators.NewNoteValidator(), models.NewAppBuildInfo("1.0.0", "2026-01-01", "abc123"), logger.Nop())
	m.errorTTL = time.Millisecond
	m.statusTTL = time.Millisecond
	t.Cleanup(m.subs.close)

	return m, svc, notesAdapter
}

// seed loads seedNotes into the controller and the model.
func seed(t *testing.T, m mainLoopModel, svc service.NotesSyncService, notesAdapter *mock.MockNotesAdapter) mainLoopModel {
	t.Helper()
	notesAdapter.EXPECT().FetchNotes(gomock.Any()).Return(seedNotes, nil)
	svc.Refresh(context.Background())
	require.Len(t, svc.Notes().Get(), len(seedNotes))

	m, _ = update(t, m, notesChangedMsg(svc.Notes().Get()))
	return m
}

func update(t *testing.T, m mainLoopModel, msg tea.Msg) (mainLoopModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	out, ok := next.(mainLoopModel)
	require.True(t, ok)
	return out, cmd
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// runCmd executes cmd and flattens batches. Only use it for commands that
// do not wait on a subscription.
func runCmd(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, runCmd(c)...)
		}
		return out
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}

func TestMainLoop_Init_DeliversCurrentState(t *testing.T) {
	m, _, _ := newTestModel(t)

	msgs := runCmd(m.Init())

	assert.ElementsMatch(t, []tea.Msg{
		notesChangedMsg([]models.Note{}),
		errorChangedMsg(""),
		refreshingChangedMsg(false),
		autoRefreshChangedMsg(false),
	}, msgs)
}

func TestMainLoop_ListView_States(t *testing.T) {
	m, _, _ := newTestModel(t)

	m, _ = update(t, m, refreshingChangedMsg(true))
	assert.Contains(t, m.View(), "Loading notes...")
	assert.Contains(t, m.View(), "Notes (0)")

	m, _ = update(t, m, refreshingChangedMsg(false))
	assert.Contains(t, m.View(), "No notes")
	assert.Contains(t, m.View(), "Press r to refresh")

	m, _ = update(t, m, notesChangedMsg(seedNotes))
	view := m.View()
	assert.Contains(t, view, "Notes (2)")
	assert.Contains(t, view, "[ ] Buy milk")
	assert.Contains(t, view, "[x]")
	assert.Contains(t, view, "auto-refresh off")

	m, _ = update(t, m, autoRefreshChangedMsg(true))
	assert.Contains(t, m.View(), "auto-refresh on")
}

func TestMainLoop_Refresh_Key(t *testing.T) {
	m, svc, notesAdapter := newTestModel(t)
	notesAdapter.EXPECT().FetchNotes(gomock.Any()).Return(seedNotes, nil)

	_, cmd := update(t, m, keyRunes("r"))
	require.NotNil(t, cmd)
	assert.Empty(t, runCmd(cmd))

	assert.Equal(t, seedNotes, svc.Notes().Get())
}

func TestMainLoop_AutoRefresh_KeyToggles(t *testing.T) {
	m, svc, _ := newTestModel(t)

	m, _ = update(t, m, keyRunes("a"))
	assert.True(t, svc.AutoRefreshEnabled().Get())

	m, _ = update(t, m, autoRefreshChangedMsg(true))
	_, _ = update(t, m, keyRunes("a"))
	assert.False(t, svc.AutoRefreshEnabled().Get())
}

func TestMainLoop_Toggle_FromList(t *testing.T) {
	m, svc, notesAdapter := newTestModel(t)
	m = seed(t, m, svc, notesAdapter)

	_, cmd := update(t, m, tea.KeyMsg{Type: tea.KeySpace})
	runCmd(cmd)

	got := svc.Notes().Get()
	assert.True(t, got[0].IsCompleted)
	assert.True(t, got[1].IsCompleted)
}

func TestMainLoop_Navigation(t *testing.T) {
	m, svc, notesAdapter := newTestModel(t)
	m = seed(t, m, svc, notesAdapter)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, m.list.idx)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, m.list.idx)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = update(t, m, notesChangedMsg(seedNotes[:1]))
	assert.Equal(t, 0, m.list.idx, "cursor follows a shrinking list")
}

func TestMainLoop_Detail(t *testing.T) {
	m, svc, notesAdapter := newTestModel(t)
	m = seed(t, m, svc, notesAdapter)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, screenDetail, m.currentScreen)

	view := m.View()
	assert.Contains(t, view, "Buy milk")
	assert.Contains(t, view, "2 liters")
	assert.Contains(t, view, "Not completed")
	assert.Contains(t, view, "Created: "+formatCreated("2024-01-15T10:30:00Z"))

	_, cmd := update(t, m, tea.KeyMsg{Type: tea.KeySpace})
	runCmd(cmd)
	assert.True(t, svc.Notes().Get()[0].IsCompleted)

	m, _ = update(t, m, notesChangedMsg(svc.Notes().Get()))
	assert.Contains(t, m.View(), "[x] Completed")

	m, _ = update(t, m, notesChangedMsg(seedNotes[1:]))
	assert.Contains(t, m.View(), app.MsgNoteNotFound)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, screenList, m.currentScreen)
}

func TestMainLoop_AddNote(t *testing.T) {
	m, svc, _ := newTestModel(t)

	m, _ = update(t, m, keyRunes("n"))
	require.Equal(t, screenAdd, m.currentScreen)
	assert.Contains(t, m.View(), "NEW NOTE")

	// "q" and "n" are typed, not handled as shortcuts
	m, _ = update(t, m, keyRunes("quick note"))
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m, _ = update(t, m, keyRunes("body"))
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	msgs := runCmd(cmd)
	require.Len(t, msgs, 1)
	added, ok := msgs[0].(noteAddedMsg)
	require.True(t, ok)
	assert.Equal(t, "quick note", added.note.Title)
	assert.Equal(t, "body", added.note.Content)

	m, _ = update(t, m, added)
	assert.Equal(t, screenList, m.currentScreen)
	assert.Len(t, m.notes, 1)
	assert.Equal(t, added.note, svc.Notes().Get()[0])
	assert.Contains(t, m.View(), `Note "quick note" added`)

	m, _ = update(t, m, clearStatusMsg{})
	assert.NotContains(t, m.View(), "added")
}

func TestMainLoop_AddNote_BlankTitleRefused(t *testing.T) {
	m, svc, _ := newTestModel(t)

	m, _ = update(t, m, keyRunes("n"))
	m, _ = update(t, m, keyRunes("   "))
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, cmd)
	assert.Equal(t, app.MsgTitleRequired, m.form.err)
	assert.Equal(t, screenAdd, m.currentScreen)
	assert.Contains(t, m.View(), app.MsgTitleRequired)
	assert.Empty(t, svc.Notes().Get())

	m, _ = update(t, m, keyRunes("x"))
	assert.Empty(t, m.form.err)
}

func TestMainLoop_AddNote_EscCancels(t *testing.T) {
	m, svc, _ := newTestModel(t)

	m, _ = update(t, m, keyRunes("n"))
	m, _ = update(t, m, keyRunes("draft"))
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})

	assert.Equal(t, screenList, m.currentScreen)
	assert.Empty(t, m.form.inputs[0].Value())
	assert.Empty(t, svc.Notes().Get())
}

func TestMainLoop_ErrorBanner(t *testing.T) {
	m, svc, notesAdapter := newTestModel(t)
	notesAdapter.EXPECT().FetchNotes(gomock.Any()).Return(nil, &adapter.HTTPStatusError{StatusCode: 500, Reason: "Internal Server Error"})
	svc.Refresh(context.Background())
	message := svc.Error().Get()
	require.NotEmpty(t, message)

	m, cmd := update(t, m, errorChangedMsg(message))
	assert.NotNil(t, cmd)
	assert.Contains(t, m.View(), "Error: "+message)

	// a stale timer leaves a newer error alone
	m, _ = update(t, m, clearErrorMsg{message: "older error"})
	assert.Equal(t, message, svc.Error().Get())

	_, _ = update(t, m, clearErrorMsg{message: message})
	assert.Empty(t, svc.Error().Get())

	m, _ = update(t, m, errorChangedMsg(""))
	assert.NotContains(t, m.View(), "Error:")
}

func TestMainLoop_ErrorBanner_EscDismisses(t *testing.T) {
	m, svc, notesAdapter := newTestModel(t)
	notesAdapter.EXPECT().FetchNotes(gomock.Any()).Return(nil, adapter.ErrEmptyBody)
	svc.Refresh(context.Background())

	m, _ = update(t, m, errorChangedMsg(svc.Error().Get()))
	_, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})

	assert.Empty(t, svc.Error().Get())
}

func TestMainLoop_Copy(t *testing.T) {
	var copied string
	orig := writeClipboard
	writeClipboard = func(text string) error {
		copied = text
		return nil
	}
	t.Cleanup(func() { writeClipboard = orig })

	m, svc, notesAdapter := newTestModel(t)
	m = seed(t, m, svc, notesAdapter)

	m, cmd := update(t, m, keyRunes("c"))
	msgs := runCmd(cmd)
	require.Len(t, msgs, 1)
	assert.Equal(t, "2 liters", copied)

	m, _ = update(t, m, msgs[0])
	assert.Contains(t, m.View(), "Copied")

	writeClipboard = func(string) error { return errors.New("no clipboard") }
	m, cmd = update(t, m, keyRunes("c"))
	m, _ = update(t, m, runCmd(cmd)[0])
	assert.Contains(t, m.View(), app.MsgClipboardUnavailable)
}

func TestMainLoop_BuildInfo(t *testing.T) {
	m, _, _ := newTestModel(t)

	m, _ = update(t, m, keyRunes("v"))
	view := m.View()
	assert.Contains(t, view, "Version: 1.0.0")
	assert.Contains(t, view, "Commit: abc123")

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, screenList, m.currentScreen)
}

func TestMainLoop_Quit(t *testing.T) {
	m, _, _ := newTestModel(t)

	_, cmd := update(t, m, keyRunes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	m, _ = update(t, m, keyRunes("n"))
	_, cmd = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestNew_RequiresNotesService(t *testing.T) {
	_, err := New(nil, models.AppBuildInfo{}, logger.Nop())
	require.ErrorIs(t, err, ErrNoNotesService)

	_, err = New(&service.ClientServices{}, models.AppBuildInfo{}, logger.Nop())
	require.ErrorIs(t, err, ErrNoNotesService)
}
