// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"net/url"
	"strings"

	"github.com/Rhymond/go-money"
)

// validate checks the merged [StructuredConfig] before it is mapped to the
// client view. Field-level rules live in [ClientConfig.validate].
func (cfg *StructuredConfig) validate() error {
	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if !validAddress(cfg.Adapter.HTTPAddress) || cfg.Adapter.RequestTimeout < 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Feed.PageSize <= 0 || cfg.Feed.RefreshInterval < 0 {
		return ErrInvalidFeedConfigs
	}

	if money.GetCurrency(cfg.App.Currency) == nil {
		return ErrInvalidAppConfigs
	}

	return nil
}

func validAddress(raw string) bool {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return false
	}
	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}
	u, err := url.Parse(raw)
	return err == nil && u.Host != ""
}
