// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer of the client: the
// AnimeVerse backend ([BackendAdapter]) and the public Jikan catalog
// ([CatalogAdapter]).
//
// Both adapters speak JSON over HTTP via resty. Every failure is returned as
// an [app.Error]: transport failures are of kind network, non-2xx responses
// are classified by [app.KindForStatus] with the message parsed from the
// structured error body, and undecodable success bodies are of kind server.
// No call is retried.
package adapter

import (
	"context"

	"github.com/MKhiriev/anime-verse/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// BackendAdapter is the API gateway of the AnimeVerse backend. It is
// stateless: authenticated calls take the bearer token as an argument.
type BackendAdapter interface {
	// RegisterUser creates an account and returns its (not yet activated)
	// profile.
	RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error)

	// LoginUser exchanges credentials for an authentication token. When the
	// backend omits the expiry and the token is a JWT, the expiry is read
	// from its exp claim.
	LoginUser(ctx context.Context, req models.LoginRequest) (models.AuthenticationToken, error)

	// GetUserProfile returns the profile the token belongs to.
	GetUserProfile(ctx context.Context, token string) (models.User, error)

	// SaveAnimeToList stores a list entry for userID and returns the created
	// entry.
	SaveAnimeToList(ctx context.Context, token string, userID models.ID, req models.SaveAnimeRequest) (models.AnimeListEntry, error)

	// GetUserAnimeList returns the entries of userID in backend order.
	GetUserAnimeList(ctx context.Context, token string, userID models.ID) ([]models.AnimeListEntry, error)

	// ActivateUser redeems an activation token and returns the activated
	// profile.
	ActivateUser(ctx context.Context, activationToken string) (models.User, error)

	// ListQuotes returns the quotes collection, newest first.
	ListQuotes(ctx context.Context) ([]models.Quote, error)
}

// CatalogAdapter reads the public Jikan v4 catalog. Calls are throttled by
// a limiter shared across goroutines.
type CatalogAdapter interface {
	// TopAiring returns the top currently airing anime.
	TopAiring(ctx context.Context) ([]models.CatalogAnime, error)

	// Random returns one random anime.
	Random(ctx context.Context) (models.CatalogAnime, error)

	// Search returns anime matching query.
	Search(ctx context.Context, query string) ([]models.CatalogAnime, error)

	// Details returns the anime with the given MyAnimeList id.
	Details(ctx context.Context, id int64) (models.CatalogAnime, error)
}
