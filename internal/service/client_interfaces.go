// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/anime-verse/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// SessionManager owns the authentication state of the client: the token, the
// user profile and the last error of a session operation. It is built once
// by the composition root and passed to every consumer that needs it.
//
// Mutating operations (Restore, Login, Register, Activate, Logout,
// LogoutToken, Refresh) are serialized; accessors never wait for a network call.
type SessionManager interface {
	// Restore loads the persisted credentials and tries to bring the session
	// back. It never fails: the outcome is the returned state, and a
	// connectivity problem while refreshing the profile keeps the persisted
	// profile instead of logging the user out.
	Restore(ctx context.Context) models.SessionState

	// Login exchanges email and password for a token, fetches the profile and
	// persists both in one write before switching to the authenticated state.
	// On failure neither memory nor storage changes and the error is
	// remembered until the next ClearError or Login.
	Login(ctx context.Context, email, password string) error

	// Register creates an account on the backend and keeps the returned
	// profile locally for reference. No session is created; the account must
	// be activated before Login succeeds.
	Register(ctx context.Context, username, email, password string) (models.User, error)

	// Activate confirms an account with the token delivered by email.
	Activate(ctx context.Context, activationToken string) (models.User, error)

	// Logout drops the persisted and the in-memory session. Storage failures
	// are logged and never returned.
	Logout(ctx context.Context)

	// LogoutToken logs out only while the active session still holds token,
	// so the rejection of an older token never ends a newer session. It
	// reports whether a logout happened.
	LogoutToken(ctx context.Context, token string) bool

	// Refresh re-fetches the profile of the authenticated user and rewrites
	// the persisted record. An authentication failure logs the user out.
	Refresh(ctx context.Context) error

	// ClearError forgets the last recorded error.
	ClearError()

	// State returns the current lifecycle state.
	State() models.SessionState

	// Session returns a copy of the active session, false when anonymous.
	Session() (models.Session, bool)

	// User returns the profile of the active session, false when anonymous.
	User() (models.User, bool)

	// Credentials returns the token and user id for an authenticated backend
	// call, or an authentication error when there is no session or its token
	// has expired.
	Credentials() (models.Credentials, error)

	// IsAuthenticated reports whether State is SessionAuthenticated.
	IsAuthenticated() bool

	// Err returns the error recorded by the last failed operation.
	Err() error
}

// AnimeListService manages the anime list of the logged-in user.
type AnimeListService interface {
	// Save validates req and stores it as an entry of the user's list.
	// The user id is taken from the session.
	Save(ctx context.Context, req models.SaveAnimeRequest) (models.AnimeListEntry, error)

	// List returns every entry of the user's list.
	List(ctx context.Context) ([]models.AnimeListEntry, error)
}

// CatalogService reads the public anime catalog.
type CatalogService interface {
	TopAiring(ctx context.Context) ([]models.CatalogAnime, error)
	Random(ctx context.Context) (models.CatalogAnime, error)
	Search(ctx context.Context, query string) ([]models.CatalogAnime, error)
	Details(ctx context.Context, id int64) (models.CatalogAnime, error)

	// RandomBatch fetches n random entries concurrently. The result keeps
	// request order; the first failure cancels the outstanding requests.
	RandomBatch(ctx context.Context, n int) ([]models.CatalogAnime, error)

	// Snapshot converts a catalog entry into the metadata stored with a list
	// entry.
	Snapshot(anime models.CatalogAnime) models.AnimeSnapshot
}

// QuoteService reads the backend quotes collection.
type QuoteService interface {
	// List returns the quotes, newest first.
	List(ctx context.Context) ([]models.Quote, error)
}
