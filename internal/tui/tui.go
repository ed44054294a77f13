// Package tui renders the notes controller state in the terminal and turns
// key presses into controller operations.
package tui

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/service"
	"github.com/MKhiriev/go-note-keeper/internal/validators"
	"github.com/MKhiriev/go-note-keeper/models"
)

// ErrNoNotesService is returned by New when services carry no notes
// controller.
var ErrNoNotesService = errors.New("tui: notes service is required")

type TUI struct {
	services  *service.ClientServices
	validator validators.Validator
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
	options   []tea.ProgramOption
}

func New(services *service.ClientServices, buildInfo models.AppBuildInfo, logger *logger.Logger) (*TUI, error) {
	if services == nil || services.NotesSyncService == nil {
		return nil, ErrNoNotesService
	}

	return &TUI{
		services:  services,
		validator: validators.NewNoteValidator(),
		buildInfo: buildInfo,
		logger:    logger,
		options:   []tea.ProgramOption{tea.WithAltScreen()},
	}, nil
}

// MainLoop runs the notes screens until the user quits or ctx is cancelled.
func (t *TUI) MainLoop(ctx context.Context) error {
	model := newMainLoopModel(ctx, t.services.NotesSyncService, t.validator, t.buildInfo, t.logger)
	defer model.subs.close()

	opts := append([]tea.ProgramOption{tea.WithContext(ctx)}, t.options...)
	if _, err := tea.NewProgram(model, opts...).Run(); err != nil {
		// a cancelled ctx kills the program; that is a normal shutdown
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("tui: %w", err)
	}

	t.logger.Debug().Str("func", "TUI.MainLoop").Msg("main loop finished")
	return nil
}
