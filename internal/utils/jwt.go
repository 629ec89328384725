package utils

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/okto-client/models"
	"github.com/golang-jwt/jwt/v5"
)

// ErrEmptyToken is returned by ParseTokenClaims for an empty token string.
var ErrEmptyToken = errors.New("empty token")

// ParseTokenClaims reads the "sub" and "exp" claims of a server-issued JWT
// without verifying its signature. The client never holds the signing key;
// the claims are used for display and logging only and must not be trusted
// for authorization decisions.
//
// Returns an error if the string is not a well-formed JWT.
//
// Example usage:
//
//	claims, err := utils.ParseTokenClaims(token)
//	if err == nil && claims.Expired(time.Now()) {
//	    // token will be rejected by the server
//	}
func ParseTokenClaims(tokenString string) (models.TokenClaims, error) {
	if tokenString == "" {
		return models.TokenClaims{}, ErrEmptyToken
	}

	claims := jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, &claims); err != nil {
		return models.TokenClaims{}, fmt.Errorf("error parsing token claims: %w", err)
	}

	result := models.TokenClaims{Subject: claims.Subject}
	if claims.ExpiresAt != nil {
		result.ExpiresAt = claims.ExpiresAt.Time
	}

	return result, nil
}
