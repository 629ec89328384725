package models

// SessionStatus is the authentication state of the running client.
type SessionStatus int

const (
	// SessionAnonymous means no user has been loaded.
	SessionAnonymous SessionStatus = iota
	// SessionAuthenticating means credentials were sent or a stored token is
	// being used to load the user.
	SessionAuthenticating
	// SessionAuthenticated means both identity and profile are loaded.
	SessionAuthenticated
)

func (s SessionStatus) String() string {
	switch s {
	case SessionAnonymous:
		return "anonymous"
	case SessionAuthenticating:
		return "authenticating"
	case SessionAuthenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

// Session is an immutable snapshot of the client session. The session
// service publishes a new value after every mutation.
//
// Token is empty when unauthenticated; in that case User and Profile are nil.
type Session struct {
	Status  SessionStatus
	Token   string
	UserID  *int64
	User    *User
	Profile *Profile
	Claims  TokenClaims

	// Loading is true while an auth or profile operation is in flight.
	Loading bool

	// ErrorMessage is the user-facing message of the last failed operation.
	ErrorMessage string
}

// IsAuthenticated reports whether the session reached the authenticated
// state.
func (s Session) IsAuthenticated() bool {
	return s.Status == SessionAuthenticated
}

// NeedsOnboarding reports whether an authenticated user still has to fill in
// the profile wizard.
func (s Session) NeedsOnboarding() bool {
	return s.IsAuthenticated() && (s.Profile == nil || !s.Profile.IsComplete())
}
