// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the Okto API.
//
// The primary abstraction is [ServerAdapter], which decouples the service layer
// from the underlying protocol. The package ships an HTTP/JSON implementation
// ([NewHTTPServerAdapter]).
//
// Every failure is returned as a [*TransportError] whose kind is one of the
// sentinel values in errors.go, so callers can use [errors.Is] (e.g.
// [ErrUnauthorized] for 401) and [errors.As] for the detail text.
package adapter

import (
	"context"

	"github.com/MKhiriev/okto-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines communication with the Okto API. Implementations are
// responsible for serialisation, bearer token management and mapping
// transport-level failures to the sentinel values defined in this package.
//
// Implementations must be safe for concurrent use: the feed fan-out calls
// several methods at once.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to all subsequent
	// authenticated requests. An empty token clears it.
	SetToken(token string)

	// Token returns the bearer token currently held, or an empty string.
	Token() string

	// OnUnauthorized registers fn to be called whenever the server answers
	// 401 for the token currently held. The adapter clears its token and
	// calls fn before the error is returned to the caller. A 401 for a token
	// replaced while the request was in flight leaves both alone. fn must not
	// call back into the adapter's network methods.
	OnUnauthorized(fn func())

	// Signup registers a new account. It does not store the returned token;
	// the session layer decides when a session starts.
	Signup(ctx context.Context, req models.SignupRequest) (models.AuthResponse, error)

	// Login exchanges credentials for a bearer token. Like Signup it leaves
	// the adapter token untouched.
	Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error)

	// GetCurrentUser returns the identity behind the current token.
	GetCurrentUser(ctx context.Context) (models.User, error)

	// GetProfile returns the profile snapshot of userID.
	GetProfile(ctx context.Context, userID int64) (models.Profile, error)

	// UpdateProfile sends a sparse patch for userID's profile. Absent fields
	// are omitted from the body and left unchanged by the server.
	UpdateProfile(ctx context.Context, userID int64, req models.ProfileUpdateRequest) error

	// GetNewsFeed returns up to limit articles for userID. The token travels
	// in the query string for this endpoint.
	GetNewsFeed(ctx context.Context, userID int64, limit int) ([]models.NewsArticle, error)

	// GetNewsSources returns the names of the configured news sources.
	GetNewsSources(ctx context.Context) ([]string, error)

	// RefreshNews asks the server to re-fetch its news sources.
	RefreshNews(ctx context.Context) error

	// GetInsights returns the personalised insights for userID. The returned
	// insights have no ID; assigning one is up to the caller.
	GetInsights(ctx context.Context, userID int64) ([]models.Insight, error)
}
