package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/okto-client/internal/config"
	"github.com/MKhiriev/okto-client/internal/logger"
	"github.com/MKhiriev/okto-client/internal/service"
	"github.com/MKhiriev/okto-client/internal/workers"
)

var ErrNilDependency = errors.New("client: nil dependency")

type App struct {
	services *service.ClientServices
	ui       UI
	workers  *workers.Workers
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, ui UI, feedCfg config.ClientFeed, logger *logger.Logger) (*App, error) {
	if services == nil || ui == nil {
		return nil, ErrNilDependency
	}

	feedRefresh := workers.NewFeedRefreshWorker(services.SessionService, services.FeedService, feedCfg.RefreshInterval, logger)

	return &App{
		services: services,
		ui:       ui,
		workers:  workers.NewWorkers(feedRefresh),
		logger:   logger,
	}, nil
}

// Run restores the previous session, starts the workers and blocks in the UI.
// A failed restore is not fatal: the session snapshot carries the error and
// the UI offers to retry or log out.
func (a *App) Run(ctx context.Context) error {
	if err := a.services.SessionService.Restore(ctx); err != nil {
		a.logger.Err(err).Str("func", "App.Run").Msg("session restore failed")
	}

	a.workers.Start(ctx)
	defer a.workers.Stop()

	if err := a.ui.Run(ctx); err != nil {
		return fmt.Errorf("ui: %w", err)
	}
	return nil
}
