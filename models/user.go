package models

// User is the authenticated identity returned by GET /users/me.
// It is immutable on the client: every fetch replaces the previous value
// wholesale.
type User struct {
	// ID is the server-assigned user identifier.
	ID int64 `json:"id"`

	// Email is the login e-mail of the user.
	Email string `json:"email"`

	// FirstName is the given name entered at signup.
	FirstName string `json:"first_name"`

	// LastName is the family name entered at signup.
	LastName string `json:"last_name"`
}

// FullName returns "FirstName LastName" trimmed of a missing part.
func (u User) FullName() string {
	switch {
	case u.FirstName == "":
		return u.LastName
	case u.LastName == "":
		return u.FirstName
	default:
		return u.FirstName + " " + u.LastName
	}
}

// SignupRequest is the body of POST /auth/signup.
type SignupRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is returned by both signup and login.
type AuthResponse struct {
	// AccessToken is the bearer token used on every authenticated call.
	AccessToken string `json:"access_token"`

	// TokenType is always "bearer" for the current API.
	TokenType string `json:"token_type"`

	// UserID is the identifier of the authenticated user.
	UserID int64 `json:"user_id"`
}
