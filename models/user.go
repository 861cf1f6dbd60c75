package models

import "time"

// User is the profile of an account as returned by the backend.
type User struct {
	// ID is the backend identifier of the user.
	ID ID `json:"id"`

	// Username is the display name chosen at registration.
	Username string `json:"username"`

	// Email is the unique login identifier.
	Email string `json:"email"`

	// Activated reports whether the account completed email activation.
	// Only activated accounts can obtain an authentication token.
	Activated bool `json:"activated"`

	// CreatedAt is the account creation time.
	CreatedAt time.Time `json:"created_at"`
}

// RegisterRequest is the body of POST /v1/users.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the body of POST /v1/tokens/authentication.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Registration is the locally kept copy of a freshly registered profile.
// It is reference data only and is never turned into a session.
type Registration struct {
	User         User
	RegisteredAt time.Time
}
