package models

import "time"

// TokenClaims is the client-side view of the claims carried by the server's
// bearer token. The client never verifies the signature; the values are used
// for display and diagnostics only, the server stays the authority.
type TokenClaims struct {
	// Subject is the "sub" claim. The API puts the user's e-mail there.
	Subject string

	// ExpiresAt is the "exp" claim, zero when the token carries none.
	ExpiresAt time.Time
}

// Expired reports whether the token's expiry is known and lies before now.
func (c TokenClaims) Expired(now time.Time) bool {
	return !c.ExpiresAt.IsZero() && c.ExpiresAt.Before(now)
}
