package service

import (
	"github.com/MKhiriev/okto-client/internal/adapter"
	"github.com/MKhiriev/okto-client/internal/config"
	"github.com/MKhiriev/okto-client/internal/logger"
	"github.com/MKhiriev/okto-client/internal/store"
	"github.com/MKhiriev/okto-client/internal/utils"
)

// ClientServices groups the client services built on one adapter and one
// local store.
type ClientServices struct {
	SessionService ClientSessionService
	FeedService    ClientFeedService
}

func NewClientServices(storages *store.ClientStorages, serverAdapter adapter.ServerAdapter, cfg *config.ClientConfig, logger *logger.Logger) *ClientServices {
	return &ClientServices{
		SessionService: NewClientSessionService(serverAdapter, storages.TokenRepository, cfg.App, logger),
		FeedService:    NewClientFeedService(serverAdapter, utils.NewInsightIDGenerator(), cfg.Feed, logger),
	}
}
