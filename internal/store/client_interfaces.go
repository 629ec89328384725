package store

import (
	"context"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// TokenRepository persists the session bearer token across client restarts.
// It is the only durable state of the client.
type TokenRepository interface {
	// LoadToken returns the persisted token or [ErrTokenNotFound].
	LoadToken(ctx context.Context) (string, error)
	// SaveToken stores token, replacing any previous one.
	SaveToken(ctx context.Context, token string) error
	// DeleteToken removes the persisted token. Deleting a missing token is
	// not an error.
	DeleteToken(ctx context.Context) error
}
