// Package workers provides the background jobs of the client and a Workers
// aggregate that starts and stops them together.
package workers

import (
	"context"

	"github.com/MKhiriev/okto-client/models"
)

// Worker is a background job bound to the lifetime of a context.
//
// Start must not block; work happens on goroutines owned by the worker.
// Stop cancels the job and blocks until those goroutines have exited. Both
// may be called repeatedly and Stop is safe before Start.
type Worker interface {
	Start(ctx context.Context)
	Stop()
}

// SessionSource exposes the current session snapshot.
type SessionSource interface {
	Snapshot() models.Session
}

// FeedRefresher reloads the feed of a user.
type FeedRefresher interface {
	RefreshFeed(ctx context.Context, userID int64) error
}
