// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/okto-client/internal/adapter"
	"github.com/MKhiriev/okto-client/internal/app"
	"github.com/MKhiriev/okto-client/internal/store"
)

// UserMessage translates an error returned by the adapter or the local store
// into the text stored in snapshots for display.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	var te *adapter.TransportError
	errors.As(err, &te)

	switch {
	case errors.Is(err, ErrNoActiveSession):
		return app.MsgNoActiveSession
	case errors.Is(err, adapter.ErrInvalidRequest):
		return app.MsgInvalidURL
	case errors.Is(err, adapter.ErrUnauthorized):
		return app.MsgUnauthorized
	case errors.Is(err, adapter.ErrNotFound):
		return app.MsgNotFound
	case errors.Is(err, adapter.ErrServerUnavailable):
		return app.MsgServerError
	case errors.Is(err, adapter.ErrDecodingFailed):
		return fmt.Sprintf(app.MsgDecodingFailed, detail(te))
	case errors.Is(err, adapter.ErrNetwork):
		return fmt.Sprintf(app.MsgNetworkError, detail(te))
	case errors.Is(err, ErrPersistToken),
		errors.Is(err, store.ErrExecutingQuery),
		errors.Is(err, store.ErrExecutingStatement),
		errors.Is(err, store.ErrBuildingSQLQuery):
		return app.MsgLocalStorageFailed
	default:
		return app.MsgUnknownError
	}
}

func detail(te *adapter.TransportError) string {
	if te == nil {
		return ""
	}
	return te.Detail
}
