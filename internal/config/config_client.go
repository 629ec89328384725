package config

import (
	"fmt"
	"time"
)

// ClientApp holds client behaviour settings.
type ClientApp struct {
	// RollbackTokenOnLoadFailure, see [App.RollbackTokenOnLoadFailure].
	RollbackTokenOnLoadFailure bool
	// Currency is the ISO 4217 code used for amount rendering.
	Currency string
	// LogFile is the client log path.
	LogFile string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the base URL of the remote API.
	HTTPAddress string
	// RequestTimeout is the outbound request timeout, zero for the default.
	RequestTimeout time.Duration
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite file path.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientFeed contains feed loading settings.
type ClientFeed struct {
	// PageSize bounds the number of articles per load.
	PageSize int
	// RefreshInterval defines how often the feed refresh worker runs;
	// zero disables it.
	RefreshInterval time.Duration
}

// ClientConfig is the client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
	Feed    ClientFeed
}

// GetClientConfig builds and validates the client config from the merged
// structured configuration. args are the command-line arguments without the
// program name.
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			RollbackTokenOnLoadFailure: cfg.App.RollbackTokenOnLoadFailure,
			Currency:                   cfg.App.Currency,
			LogFile:                    cfg.App.LogFile,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{DSN: cfg.Storage.DB.DSN},
		},
		Feed: ClientFeed{
			PageSize:        cfg.Feed.PageSize,
			RefreshInterval: cfg.Feed.RefreshInterval,
		},
	}
}
