package models

import "time"

// SessionState is a state of the session lifecycle.
type SessionState int

const (
	// SessionUninitialized is the state before the first restore.
	SessionUninitialized SessionState = iota
	// SessionRestoring is the state while persisted credentials are loaded.
	SessionRestoring
	// SessionAnonymous means no user is logged in.
	SessionAnonymous
	// SessionAuthenticated means a token and a profile are held.
	SessionAuthenticated
)

func (s SessionState) String() string {
	switch s {
	case SessionUninitialized:
		return "uninitialized"
	case SessionRestoring:
		return "restoring"
	case SessionAnonymous:
		return "anonymous"
	case SessionAuthenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

// Session is the in-memory record of the authenticated user and their token.
type Session struct {
	User  User
	Token AuthenticationToken
	// Degraded is set when the session was restored from the persisted
	// profile because the profile refresh failed.
	Degraded bool
}

// CredentialEnvelope is the persisted subset of a Session. It is written and
// deleted as a single record.
type CredentialEnvelope struct {
	Token AuthenticationToken
	// User is the last known profile, nil when the record has none.
	User    *User
	SavedAt time.Time
}

// Complete reports whether the envelope holds both halves of a session.
func (e CredentialEnvelope) Complete() bool {
	return e.Token.Token != "" && e.User != nil && e.User.ID != ""
}

// Credentials is what an authenticated backend call needs.
type Credentials struct {
	Token  string
	UserID ID
}
