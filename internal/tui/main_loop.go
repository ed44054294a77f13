package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-note-keeper/internal/app"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/service"
	"github.com/MKhiriev/go-note-keeper/internal/validators"
	"github.com/MKhiriev/go-note-keeper/models"
)

const (
	// errorDisplayDuration is how long a refresh error stays on screen
	// before the controller error is cleared.
	errorDisplayDuration = 4 * time.Second

	statusDisplayDuration = 2 * time.Second
)

// writeClipboard is replaced in tests.
var writeClipboard = clipboard.WriteAll

type screen int

const (
	screenList screen = iota
	screenDetail
	screenAdd
	screenBuildInfo
)

type mainLoopModel struct {
	ctx       context.Context
	service   service.NotesSyncService
	validator validators.Validator
	subs      *subscriptions
	buildInfo models.AppBuildInfo
	logger    *logger.Logger

	currentScreen screen
	previous      screen

	list   listModel
	detail detailModel
	form   noteFormModel
	banner errorBannerModel

	notes       []models.Note
	refreshing  bool
	autoRefresh bool

	errorTTL  time.Duration
	statusTTL time.Duration
}

func newMainLoopModel(
	ctx context.Context,
	svc service.NotesSyncService,
	validator validators.Validator,
	buildInfo models.AppBuildInfo,
	log *logger.Logger,
) mainLoopModel {
	return mainLoopModel{
		ctx:           ctx,
		service:       svc,
		validator:     validator,
		subs:          subscribe(svc),
		buildInfo:     buildInfo,
		logger:        log,
		currentScreen: screenList,
		list:          newListModel(),
		form:          newNoteFormModel(),
		errorTTL:      errorDisplayDuration,
		statusTTL:     statusDisplayDuration,
	}
}

func (m mainLoopModel) Init() tea.Cmd {
	return tea.Batch(
		m.subs.waitNotes(),
		m.subs.waitError(),
		m.subs.waitRefreshing(),
		m.subs.waitAutoRefresh(),
	)
}

func (m mainLoopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case notesChangedMsg:
		m.notes = msg
		m.list.clamp(len(m.notes))
		return m, m.subs.waitNotes()
	case errorChangedMsg:
		m.banner.message = string(msg)
		cmds := []tea.Cmd{m.subs.waitError()}
		if msg != "" {
			cmds = append(cmds, m.cmdClearErrorAfter(string(msg)))
		}
		return m, tea.Batch(cmds...)
	case refreshingChangedMsg:
		m.refreshing = bool(msg)
		cmds := []tea.Cmd{m.subs.waitRefreshing()}
		if m.refreshing {
			cmds = append(cmds, m.list.spinner.Tick)
		}
		return m, tea.Batch(cmds...)
	case autoRefreshChangedMsg:
		m.autoRefresh = bool(msg)
		return m, m.subs.waitAutoRefresh()
	case clearErrorMsg:
		if m.banner.message == msg.message {
			m.service.ClearError()
		}
		return m, nil
	case noteAddedMsg:
		m.form.submitting = false
		m.form = newNoteFormModel()
		m.currentScreen = screenList
		m.notes = m.service.Notes().Get()
		m.list.idx = len(m.notes) - 1
		m.list.clamp(len(m.notes))
		m.list.status = fmt.Sprintf("Note %q added", msg.note.Title)
		return m, m.cmdClearStatus()
	case copiedMsg:
		status := "Copied"
		if msg.err != nil {
			m.logger.Warn().Err(msg.err).Str("func", "mainLoopModel.Update").Msg("clipboard write failed")
			status = app.MsgClipboardUnavailable
		}
		m.list.status = status
		m.detail.status = status
		return m, m.cmdClearStatus()
	case clearStatusMsg:
		m.list.status = ""
		m.detail.status = ""
		return m, nil
	case spinner.TickMsg:
		if !m.refreshing {
			return m, nil
		}
		var cmd tea.Cmd
		m.list.spinner, cmd = m.list.spinner.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		if key.Matches(msg, keys.forceQuit) {
			return m, tea.Quit
		}
	}

	switch m.currentScreen {
	case screenDetail:
		return m.updateDetail(msg)
	case screenAdd:
		return m.updateAdd(msg)
	case screenBuildInfo:
		return m.updateBuildInfo(msg)
	default:
		return m.updateList(msg)
	}
}

func (m mainLoopModel) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	case key.Matches(keyMsg, keys.up):
		if m.list.idx > 0 {
			m.list.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.list.idx < len(m.notes)-1 {
			m.list.idx++
		}
	case key.Matches(keyMsg, keys.refresh):
		return m, m.cmdRefresh()
	case key.Matches(keyMsg, keys.autoRefresh):
		m.service.SetAutoRefreshEnabled(!m.autoRefresh)
	case key.Matches(keyMsg, keys.toggle):
		note, ok := m.list.current(m.notes)
		if !ok {
			return m, nil
		}
		return m, m.cmdToggle(note.ID)
	case key.Matches(keyMsg, keys.enter):
		note, ok := m.list.current(m.notes)
		if !ok {
			return m, nil
		}
		m.detail = detailModel{noteID: note.ID}
		m.currentScreen = screenDetail
	case key.Matches(keyMsg, keys.newNote):
		m.form = newNoteFormModel()
		m.currentScreen = screenAdd
		return m, textinput.Blink
	case key.Matches(keyMsg, keys.copy):
		note, ok := m.list.current(m.notes)
		if !ok {
			return m, nil
		}
		return m, cmdCopyToClipboard(note.Content)
	case key.Matches(keyMsg, keys.info):
		m.previous = m.currentScreen
		m.currentScreen = screenBuildInfo
	case key.Matches(keyMsg, keys.esc):
		if m.banner.message != "" {
			m.service.ClearError()
		}
	}

	return m, nil
}

func (m mainLoopModel) updateDetail(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	case key.Matches(keyMsg, keys.esc):
		m.detail = detailModel{}
		m.currentScreen = screenList
	case key.Matches(keyMsg, keys.toggle):
		if _, ok := m.detail.find(m.notes); !ok {
			return m, nil
		}
		return m, m.cmdToggle(m.detail.noteID)
	case key.Matches(keyMsg, keys.copy):
		note, ok := m.detail.find(m.notes)
		if !ok {
			return m, nil
		}
		return m, cmdCopyToClipboard(note.Content)
	}

	return m, nil
}

func (m mainLoopModel) updateAdd(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.form = newNoteFormModel()
			m.currentScreen = screenList
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.form = m.form.focusNext()
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.form = m.form.focusPrev()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.form.submitting {
				return m, nil
			}
			draft := m.form.draft()
			if err := m.validator.Validate(m.ctx, draft); err != nil {
				m.form.err = app.MsgTitleRequired
				return m, nil
			}
			m.form.err = ""
			m.form.submitting = true
			return m, m.cmdAddNote(draft)
		}
	}

	var cmd tea.Cmd
	m.form.inputs[m.form.focus], cmd = m.form.inputs[m.form.focus].Update(msg)
	if m.form.err != "" && strings.TrimSpace(m.form.inputs[0].Value()) != "" {
		m.form.err = ""
	}
	return m, cmd
}

func (m mainLoopModel) updateBuildInfo(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	if key.Matches(keyMsg, keys.esc) || key.Matches(keyMsg, keys.info) {
		m.currentScreen = m.previous
	}
	return m, nil
}

func (m mainLoopModel) View() string {
	var body string
	switch m.currentScreen {
	case screenDetail:
		body = m.detail.View(m.notes)
	case screenAdd:
		body = m.form.View()
	case screenBuildInfo:
		body = renderBuildInfoWindow(m.buildInfo)
	default:
		body = m.list.View(m.notes, m.refreshing, m.autoRefresh, m.banner)
	}

	return appStyle.Render(body)
}

// cmdRefresh runs a refresh off the UI goroutine. Its outcome arrives
// through the observables.
func (m mainLoopModel) cmdRefresh() tea.Cmd {
	svc, ctx := m.service, m.ctx
	return func() tea.Msg {
		svc.Refresh(ctx)
		return nil
	}
}

func (m mainLoopModel) cmdToggle(id int) tea.Cmd {
	svc, ctx := m.service, m.ctx
	return func() tea.Msg {
		svc.ToggleNoteCompletion(ctx, id)
		return nil
	}
}

func (m mainLoopModel) cmdAddNote(draft models.NoteDraft) tea.Cmd {
	svc, ctx := m.service, m.ctx
	return func() tea.Msg {
		note := svc.AddLocalNote(ctx, draft.Title, draft.Content)
		return noteAddedMsg{note: note}
	}
}

func (m mainLoopModel) cmdClearErrorAfter(message string) tea.Cmd {
	return tea.Tick(m.errorTTL, func(time.Time) tea.Msg {
		return clearErrorMsg{message: message}
	})
}

func (m mainLoopModel) cmdClearStatus() tea.Cmd {
	return tea.Tick(m.statusTTL, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{err: writeClipboard(text)}
	}
}
