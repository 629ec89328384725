// Package tui is the terminal presentation layer of the client. It renders
// the session and feed snapshots published by the services and calls the
// services only from tea.Cmd functions, never from Update.
package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/okto-client/internal/config"
	"github.com/MKhiriev/okto-client/internal/logger"
	"github.com/MKhiriev/okto-client/internal/service"
	"github.com/MKhiriev/okto-client/internal/validators"
	"github.com/MKhiriev/okto-client/models"
	tea "github.com/charmbracelet/bubbletea"
)

type TUI struct {
	services  *service.ClientServices
	validator validators.Validator
	currency  string
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(services *service.ClientServices, appCfg config.ClientApp, buildInfo models.AppBuildInfo, logger *logger.Logger) (*TUI, error) {
	if services == nil || services.SessionService == nil || services.FeedService == nil {
		return nil, ErrNilServices
	}

	currency := appCfg.Currency
	if currency == "" {
		currency = config.DefaultCurrency
	}

	return &TUI{
		services:  services,
		validator: validators.NewOnboardingValidator(),
		currency:  currency,
		buildInfo: buildInfo,
		logger:    logger,
	}, nil
}

// Run blocks until the user quits or ctx is cancelled. Session and feed
// snapshots are forwarded to the program for as long as it runs.
func (t *TUI) Run(ctx context.Context) error {
	model := newAppModel(ctx, t.services, t.validator, t.currency, t.buildInfo, t.logger)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	unsubscribeSession := t.services.SessionService.Subscribe(func(s models.Session) {
		p.Send(sessionChangedMsg{session: s})
	})
	defer unsubscribeSession()

	unsubscribeFeed := t.services.FeedService.Subscribe(func(s models.FeedState) {
		p.Send(feedChangedMsg{state: s})
	})
	defer unsubscribeFeed()

	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}
