// Package service implements the client-side session and feed logic on top
// of the transport adapter and the local token store.
//
// Both services keep a mutex-guarded snapshot, never hold a lock across a
// network call and publish a fresh snapshot to subscribers after every
// mutation. Failures are returned to the caller and also stored as a
// user-facing message in the snapshot.
package service

import (
	"context"

	"github.com/MKhiriev/okto-client/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_services_mock.go -package=mock

// ClientSessionService owns the token lifecycle, the current user identity
// and the profile snapshot. There is exactly one per running client.
type ClientSessionService interface {
	// Signup registers a new account and starts a session with the issued
	// token. The session becomes authenticated only after the identity and
	// the profile have both been loaded.
	Signup(ctx context.Context, firstName, lastName, email, password string) error

	// Login authenticates with e-mail and password; otherwise identical to
	// Signup.
	Login(ctx context.Context, email, password string) error

	// Logout clears the token in memory and in the local store together with
	// the identity and the profile. It always succeeds.
	Logout(ctx context.Context)

	// LoadCurrentUser fetches the identity and then the profile of that
	// identity. Both must succeed for the snapshot to change.
	LoadCurrentUser(ctx context.Context) error

	// UpdateProfile sends patch for the current user and replaces the profile
	// snapshot with the server's copy read back afterwards. Returns
	// [ErrNoActiveSession] when no user id is known.
	UpdateProfile(ctx context.Context, patch models.ProfileUpdateRequest) error

	// Restore resumes a session from the persisted token at startup. Without
	// a persisted token the session stays anonymous and nil is returned.
	Restore(ctx context.Context) error

	// Snapshot returns the current session state.
	Snapshot() models.Session

	// Subscribe registers listener for every subsequent snapshot and returns
	// the function that removes it. Listeners are called synchronously and
	// must not call mutating methods of the service from that call.
	Subscribe(listener func(models.Session)) (unsubscribe func())
}

// ClientFeedService retrieves articles, insights and sources and maintains
// the category selection.
type ClientFeedService interface {
	// LoadFeed fetches articles, insights and sources for userID
	// concurrently. Either all three replace the current data or, on any
	// failure, none do.
	LoadFeed(ctx context.Context, userID int64) error

	// RefreshFeed is LoadFeed under another name, used for pull-to-refresh
	// and the periodic refresh worker.
	RefreshFeed(ctx context.Context, userID int64) error

	// ManualRefreshNews asks the server to re-fetch its sources. It does not
	// change local state.
	ManualRefreshNews(ctx context.Context) error

	// FilterByCategory returns the loaded articles matching label. It has no
	// side effects.
	FilterByCategory(label string) []models.NewsArticle

	// SelectCategory changes the selected category. Unknown labels are
	// rejected with [ErrUnknownCategory].
	SelectCategory(label string) error

	// Reset drops all loaded data and restores the default category. Loads
	// still in flight return [ErrSessionChanged] and leave the state alone.
	Reset()

	// Snapshot returns the current feed state.
	Snapshot() models.FeedState

	// Subscribe registers listener for every subsequent snapshot and returns
	// the function that removes it. The same reentrancy rule as for
	// [ClientSessionService.Subscribe] applies.
	Subscribe(listener func(models.FeedState)) (unsubscribe func())
}

// IDGenerator produces client-side identifiers for insights.
type IDGenerator interface {
	Generate() string
}
