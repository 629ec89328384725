package adapter

import (
	"errors"
	"fmt"
)

// Kinds of transport failures. A [*TransportError] unwraps to exactly one of
// them.
var (
	ErrInvalidRequest    = errors.New("invalid request")
	ErrUnauthorized      = errors.New("client unauthorized")
	ErrNotFound          = errors.New("resource not found")
	ErrServerUnavailable = errors.New("server unavailable")
	ErrUnknown           = errors.New("unknown error")
	ErrDecodingFailed    = errors.New("decoding failed")
	ErrNetwork           = errors.New("network error")
)

// TransportError is returned by every [ServerAdapter] method on failure.
type TransportError struct {
	// Kind is one of the sentinel errors of this package.
	Kind error
	// Status is the HTTP status code, zero when no response was received.
	Status int
	// Detail carries the decoder or network error text, or the response body.
	Detail string
}

func (e *TransportError) Error() string {
	if e.Detail == "" {
		return e.Kind.Error()
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Detail)
}

func (e *TransportError) Unwrap() error {
	return e.Kind
}

func newTransportError(kind error, status int, detail string) *TransportError {
	return &TransportError{Kind: kind, Status: status, Detail: detail}
}
