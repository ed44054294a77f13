package client

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/service"
	"github.com/MKhiriev/go-note-keeper/internal/store"
)

var ErrMissingDependency = errors.New("client: missing dependency")

type App struct {
	services *service.ClientServices
	storages *store.ClientStorages
	ui       UI
	workers  config.ClientWorkers
	logger   *logger.Logger
}

func NewApp(
	services *service.ClientServices,
	storages *store.ClientStorages,
	ui UI,
	workersCfg config.ClientWorkers,
	logger *logger.Logger,
) (*App, error) {
	switch {
	case services == nil || services.NotesSyncService == nil:
		return nil, fmt.Errorf("%w: services", ErrMissingDependency)
	case storages == nil:
		return nil, fmt.Errorf("%w: storages", ErrMissingDependency)
	case ui == nil:
		return nil, fmt.Errorf("%w: ui", ErrMissingDependency)
	}

	return &App{
		services: services,
		storages: storages,
		ui:       ui,
		workers:  workersCfg,
		logger:   logger,
	}, nil
}

// Run blocks until the UI exits or the process receives SIGINT or SIGTERM.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return a.run(ctx)
}

func (a *App) run(ctx context.Context) (err error) {
	notes := a.services.NotesSyncService
	defer func() {
		err = errors.Join(err, a.shutdown())
	}()

	notes.Init(ctx)
	if a.workers.AutoRefreshOnStart {
		notes.SetAutoRefreshEnabled(true)
	}

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gCtx := errgroup.WithContext(runCtx)

	g.Go(func() error {
		// leaving the UI ends the whole run
		defer cancel()
		return a.ui.MainLoop(gCtx)
	})

	g.Go(func() error {
		<-gCtx.Done()
		if ctx.Err() != nil {
			a.logger.Info().Str("func", "App.run").Msg("received shutdown signal")
		} else {
			a.logger.Info().Str("func", "App.run").Msg("ui closed, shutting down")
		}
		return nil
	})

	if err = g.Wait(); err != nil {
		a.logger.Err(err).Str("func", "App.run").Msg("client run error")
		return err
	}

	return nil
}

// shutdown stops background work before the storage it writes to is closed.
func (a *App) shutdown() error {
	a.services.NotesSyncService.Close()

	if err := a.storages.Close(); err != nil {
		a.logger.Err(err).Str("func", "App.shutdown").Msg("failed to close storages")
		return fmt.Errorf("close storages: %w", err)
	}

	a.logger.Info().Str("func", "App.shutdown").Msg("client stopped")
	return nil
}
