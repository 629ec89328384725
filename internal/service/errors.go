package service

import "errors"

var (
	// ErrNoActiveSession is returned by operations that need a signed-in user
	// when no user id is known.
	ErrNoActiveSession = errors.New("no active session")

	// ErrSessionChanged is returned when the session was ended or replaced
	// while a request was in flight; the response is discarded.
	ErrSessionChanged = errors.New("session changed during request")

	// ErrUnknownCategory is returned by SelectCategory for labels outside
	// models.Categories.
	ErrUnknownCategory = errors.New("unknown category")

	// ErrPersistToken is returned when the session token cannot be written
	// to the local store.
	ErrPersistToken = errors.New("failed to persist session token")
)
