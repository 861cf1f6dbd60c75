package models

import "time"

// AuthenticationToken is an opaque bearer token issued by the backend.
type AuthenticationToken struct {
	// Token is the plaintext bearer value sent in the Authorization header.
	Token string `json:"token"`

	// Expiry is the moment the backend stops accepting Token. A zero Expiry
	// means the expiry is unknown and the token is never treated as expired
	// on the client side.
	Expiry time.Time `json:"expiry"`
}

// Expired reports whether the token is past its expiry at now.
func (t AuthenticationToken) Expired(now time.Time) bool {
	return !t.Expiry.IsZero() && !now.Before(t.Expiry)
}
