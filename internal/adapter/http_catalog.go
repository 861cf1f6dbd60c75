// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/MKhiriev/anime-verse/internal/app"
	"github.com/MKhiriev/anime-verse/internal/config"
	"github.com/MKhiriev/anime-verse/internal/logger"
	"github.com/MKhiriev/anime-verse/internal/utils"
	"github.com/MKhiriev/anime-verse/models"
	"github.com/go-resty/resty/v2"
	"golang.org/x/time/rate"
)

// Jikan v4 routes.
const (
	pathTopAnime    = "/v4/top/anime"
	pathRandomAnime = "/v4/random/anime"
	pathAnime       = "/v4/anime"
)

type httpCatalogAdapter struct {
	client  *utils.HTTPClient
	limiter *rate.Limiter

	logger *logger.Logger
}

// NewHTTPCatalogAdapter constructs the Jikan implementation of
// [CatalogAdapter]. Requests wait on a token bucket of
// catalogCfg.RequestsPerSecond with catalogCfg.Burst; the wait honours the
// request context.
func NewHTTPCatalogAdapter(catalogCfg config.ClientCatalog, logger *logger.Logger) (CatalogAdapter, error) {
	baseURL, err := normalizeBaseURL(catalogCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid catalog http address: %w", err)
	}

	burst := catalogCfg.Burst
	if burst < 1 {
		burst = 1
	}
	limit := rate.Inf
	if catalogCfg.RequestsPerSecond > 0 {
		limit = rate.Limit(catalogCfg.RequestsPerSecond)
	}

	return &httpCatalogAdapter{
		client:  newClient(baseURL, catalogCfg.RequestTimeout, logger),
		limiter: rate.NewLimiter(limit, burst),
		logger:  logger,
	}, nil
}

// TopAiring implements [CatalogAdapter]. GET /v4/top/anime?filter=airing.
func (c *httpCatalogAdapter) TopAiring(ctx context.Context) ([]models.CatalogAnime, error) {
	req, err := c.request(ctx)
	if err != nil {
		return nil, err
	}

	var out models.CatalogAnimeListResponse
	if err = execute(req.SetQueryParam("filter", "airing"), http.MethodGet, pathTopAnime, &out); err != nil {
		return nil, fmt.Errorf("top airing request: %w", err)
	}

	return orEmpty(out.Data), nil
}

// Random implements [CatalogAdapter]. GET /v4/random/anime.
func (c *httpCatalogAdapter) Random(ctx context.Context) (models.CatalogAnime, error) {
	req, err := c.request(ctx)
	if err != nil {
		return models.CatalogAnime{}, err
	}

	var out models.CatalogAnimeResponse
	if err = execute(req, http.MethodGet, pathRandomAnime, &out); err != nil {
		return models.CatalogAnime{}, fmt.Errorf("random anime request: %w", err)
	}

	return out.Data, nil
}

// Search implements [CatalogAdapter]. GET /v4/anime?q=. A blank query is
// rejected without a request.
func (c *httpCatalogAdapter) Search(ctx context.Context, query string) ([]models.CatalogAnime, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, app.NewValidationError(app.MsgInvalidInput, map[string]string{"q": "must be provided"})
	}

	req, err := c.request(ctx)
	if err != nil {
		return nil, err
	}

	var out models.CatalogAnimeListResponse
	if err = execute(req.SetQueryParam("q", query), http.MethodGet, pathAnime, &out); err != nil {
		return nil, fmt.Errorf("search anime request: %w", err)
	}

	return orEmpty(out.Data), nil
}

// Details implements [CatalogAdapter]. GET /v4/anime/{id}.
func (c *httpCatalogAdapter) Details(ctx context.Context, id int64) (models.CatalogAnime, error) {
	if id <= 0 {
		return models.CatalogAnime{}, app.NewValidationError(app.MsgInvalidInput, map[string]string{"id": "must be a positive integer"})
	}

	req, err := c.request(ctx)
	if err != nil {
		return models.CatalogAnime{}, err
	}

	var out models.CatalogAnimeResponse
	if err = execute(req, http.MethodGet, pathAnime+"/"+strconv.FormatInt(id, 10), &out); err != nil {
		return models.CatalogAnime{}, fmt.Errorf("anime details request: %w", err)
	}

	return out.Data, nil
}

// request waits for the limiter and returns a request bound to ctx.
func (c *httpCatalogAdapter) request(ctx context.Context) (*resty.Request, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, app.NewNetworkError(fmt.Errorf("catalog rate limiter: %w", err))
	}

	return c.client.R().SetContext(ctx), nil
}

func orEmpty(list []models.CatalogAnime) []models.CatalogAnime {
	if list == nil {
		return []models.CatalogAnime{}
	}
	return list
}
