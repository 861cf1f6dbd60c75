// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/anime-verse/internal/app"
	"github.com/MKhiriev/anime-verse/internal/config"
	"github.com/MKhiriev/anime-verse/internal/logger"
	"github.com/MKhiriev/anime-verse/internal/utils"
	"github.com/MKhiriev/anime-verse/models"
	"github.com/go-resty/resty/v2"
)

// Backend routes.
const (
	pathUsers          = "/v1/users"
	pathTokens         = "/v1/tokens/authentication"
	pathCurrentUser    = "/v1/users/me"
	pathUserAnimeList  = "/v1/user_anime_list"
	pathUsersActivated = "/v1/users/activated"
	pathQuotes         = "/v1/quotes"
)

type httpBackendAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPBackendAdapter constructs the HTTP implementation of
// [BackendAdapter]. It normalises adapterCfg.HTTPAddress (a missing scheme
// defaults to http) and applies adapterCfg.RequestTimeout to every call.
//
// Returns an error if the address is empty or cannot be parsed as a URL.
func NewHTTPBackendAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (BackendAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpBackendAdapter{
		client: newClient(baseURL, adapterCfg.RequestTimeout, logger),
		logger: logger,
	}, nil
}

// RegisterUser implements [BackendAdapter]. POST /v1/users.
func (h *httpBackendAdapter) RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	var out models.UserResponse
	if err := execute(h.client.R().SetContext(ctx).SetBody(req), http.MethodPost, pathUsers, &out); err != nil {
		return models.User{}, fmt.Errorf("register request: %w", err)
	}

	return userOf(out)
}

// LoginUser implements [BackendAdapter]. POST /v1/tokens/authentication.
func (h *httpBackendAdapter) LoginUser(ctx context.Context, req models.LoginRequest) (models.AuthenticationToken, error) {
	var out models.LoginResponse
	if err := execute(h.client.R().SetContext(ctx).SetBody(req), http.MethodPost, pathTokens, &out); err != nil {
		return models.AuthenticationToken{}, fmt.Errorf("login request: %w", err)
	}

	token := out.AuthenticationToken
	if strings.TrimSpace(token.Token) == "" {
		return models.AuthenticationToken{}, app.NewServerError(http.StatusOK, app.MsgMalformedResponse, nil)
	}

	if token.Expiry.IsZero() {
		if exp, ok := utils.TokenExpiry(token.Token); ok {
			token.Expiry = exp
		} else {
			h.logger.Warn().Str("func", "httpBackendAdapter.LoginUser").
				Msg("authentication token carries no expiry")
		}
	}

	return token, nil
}

// GetUserProfile implements [BackendAdapter]. GET /v1/users/me.
func (h *httpBackendAdapter) GetUserProfile(ctx context.Context, token string) (models.User, error) {
	req, err := h.authedRequest(ctx, token)
	if err != nil {
		return models.User{}, err
	}

	var out models.UserResponse
	if err = execute(req, http.MethodGet, pathCurrentUser, &out); err != nil {
		return models.User{}, fmt.Errorf("get user profile request: %w", err)
	}

	return userOf(out)
}

// SaveAnimeToList implements [BackendAdapter]. POST /v1/user_anime_list.
// The user id of the request body is always set to userID.
func (h *httpBackendAdapter) SaveAnimeToList(ctx context.Context, token string, userID models.ID, saveReq models.SaveAnimeRequest) (models.AnimeListEntry, error) {
	req, err := h.authedRequest(ctx, token)
	if err != nil {
		return models.AnimeListEntry{}, err
	}

	saveReq.UserID = userID

	var out models.AnimeListEntryResponse
	if err = execute(req.SetBody(saveReq), http.MethodPost, pathUserAnimeList, &out); err != nil {
		return models.AnimeListEntry{}, fmt.Errorf("save anime request: %w", err)
	}

	return out.Entry, nil
}

// GetUserAnimeList implements [BackendAdapter].
// GET /v1/user_anime_list?user_id=.
func (h *httpBackendAdapter) GetUserAnimeList(ctx context.Context, token string, userID models.ID) ([]models.AnimeListEntry, error) {
	req, err := h.authedRequest(ctx, token)
	if err != nil {
		return nil, err
	}

	var out models.AnimeListResponse
	req.SetQueryParam("user_id", userID.String())
	if err = execute(req, http.MethodGet, pathUserAnimeList, &out); err != nil {
		return nil, fmt.Errorf("get anime list request: %w", err)
	}

	if out.Entries == nil {
		return []models.AnimeListEntry{}, nil
	}
	return out.Entries, nil
}

// ActivateUser implements [BackendAdapter]. GET /v1/users/activated?token=.
func (h *httpBackendAdapter) ActivateUser(ctx context.Context, activationToken string) (models.User, error) {
	activationToken = strings.TrimSpace(activationToken)
	if activationToken == "" {
		return models.User{}, app.NewValidationError(app.MsgInvalidInput, map[string]string{"token": "must be provided"})
	}

	var out models.UserResponse
	req := h.client.R().SetContext(ctx).SetQueryParam("token", activationToken)
	if err := execute(req, http.MethodGet, pathUsersActivated, &out); err != nil {
		return models.User{}, fmt.Errorf("activate user request: %w", err)
	}

	return userOf(out)
}

// ListQuotes implements [BackendAdapter]. GET /v1/quotes?sort=-id.
func (h *httpBackendAdapter) ListQuotes(ctx context.Context) ([]models.Quote, error) {
	var out models.QuotesResponse
	req := h.client.R().SetContext(ctx).SetQueryParam("sort", "-id")
	if err := execute(req, http.MethodGet, pathQuotes, &out); err != nil {
		return nil, fmt.Errorf("list quotes request: %w", err)
	}

	if out.Quotes == nil {
		return []models.Quote{}, nil
	}
	return out.Quotes, nil
}

// authedRequest returns a request carrying the bearer token. An empty token
// fails with an authentication error before anything is sent.
func (h *httpBackendAdapter) authedRequest(ctx context.Context, token string) (*resty.Request, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, app.NewAuthenticationError(app.MsgNotAuthenticated)
	}

	return h.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+token), nil
}

// userOf rejects a success body without a user: a profile always carries the
// backend-assigned id.
func userOf(out models.UserResponse) (models.User, error) {
	if strings.TrimSpace(out.User.ID.String()) == "" {
		return models.User{}, app.NewServerError(http.StatusOK, app.MsgMalformedResponse, nil)
	}
	return out.User, nil
}
