// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/anime-verse/internal/app"
	"github.com/MKhiriev/anime-verse/internal/config"
	"github.com/MKhiriev/anime-verse/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const jikanAnime = `{
  "mal_id": 5114,
  "title": "Fullmetal Alchemist: Brotherhood",
  "images": {"jpg": {"image_url": "https://cdn/small.jpg", "large_image_url": "https://cdn/large.jpg"}},
  "trailer": {"youtube_id": null, "embed_url": "https://www.youtube-nocookie.com/embed/--IcmZkvL0Q?enablejsapi=1"},
  "synopsis": "Two brothers.",
  "episodes": 64,
  "status": "Finished Airing",
  "rating": "R - 17+ (violence & profanity)",
  "score": 9.1,
  "scored_by": 2100000,
  "aired": {"from": "2009-04-05T00:00:00+00:00"},
  "broadcast": {"string": "Sundays at 17:00 (JST)"},
  "genres": [{"name": "Action"}, {"name": "Adventure"}],
  "studios": [{"name": "Bones"}]
}`

func newTestCatalog(t *testing.T, serverURL string, rps float64) *httpCatalogAdapter {
	t.Helper()
	a, err := NewHTTPCatalogAdapter(config.ClientCatalog{
		HTTPAddress:       serverURL,
		RequestTimeout:    2 * time.Second,
		RequestsPerSecond: rps,
		Burst:             1,
	}, logger.Nop())
	require.NoError(t, err)
	return a.(*httpCatalogAdapter)
}

func serveJSON(body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}
}

func TestCatalog_TopAiring(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, pathTopAnime, r.URL.Path)
		assert.Equal(t, "airing", r.URL.Query().Get("filter"))
		serveJSON(`{"data":[` + jikanAnime + `]}`)(w, r)
	}))
	defer srv.Close()

	list, err := newTestCatalog(t, srv.URL, 100).TopAiring(context.Background())

	require.NoError(t, err)
	require.Len(t, list, 1)
	anime := list[0]
	assert.Equal(t, int64(5114), anime.MalID)
	assert.Equal(t, "https://cdn/large.jpg", anime.Images.CoverURL())
	assert.Equal(t, "--IcmZkvL0Q", anime.Trailer.VideoID())
	assert.Equal(t, 64, anime.Episodes)
	assert.Equal(t, "Bones", anime.Studios[0].Name)
	assert.Equal(t, "Sundays at 17:00 (JST)", anime.Broadcast.String)
}

func TestCatalog_Random(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, pathRandomAnime, r.URL.Path)
		serveJSON(`{"data":` + jikanAnime + `}`)(w, r)
	}))
	defer srv.Close()

	anime, err := newTestCatalog(t, srv.URL, 100).Random(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Fullmetal Alchemist: Brotherhood", anime.Title)
}

func TestCatalog_Search(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, pathAnime, r.URL.Path)
		assert.Equal(t, "fullmetal alchemist", r.URL.Query().Get("q"))
		serveJSON(`{"data":[]}`)(w, r)
	}))
	defer srv.Close()

	a := newTestCatalog(t, srv.URL, 100)

	list, err := a.Search(context.Background(), "  fullmetal alchemist ")
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)

	_, err = a.Search(context.Background(), "   ")
	assert.ErrorIs(t, err, app.ErrValidation)
}

func TestCatalog_Details(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == pathAnime+"/5114" {
			serveJSON(`{"data":` + jikanAnime + `}`)(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"status":404,"type":"BadResponseException","message":"Resource does not exist","error":"404 on https://myanimelist.net/anime/1/"}`))
	}))
	defer srv.Close()

	a := newTestCatalog(t, srv.URL, 100)

	anime, err := a.Details(context.Background(), 5114)
	require.NoError(t, err)
	assert.Equal(t, int64(5114), anime.MalID)

	_, err = a.Details(context.Background(), 1)
	require.ErrorIs(t, err, app.ErrValidation)
	assert.Equal(t, "404 on https://myanimelist.net/anime/1/", appErrorOf(t, err).Message)

	_, err = a.Details(context.Background(), 0)
	assert.ErrorIs(t, err, app.ErrValidation)
}

func TestCatalog_RateLimited(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		serveJSON(`{"data":` + jikanAnime + `}`)(w, r)
	}))
	defer srv.Close()

	// 5 rps with burst 1: the third call cannot start before ~400ms.
	a := newTestCatalog(t, srv.URL, 5)

	start := time.Now()
	for i := 0; i < 3; i++ {
		_, err := a.Random(context.Background())
		require.NoError(t, err)
	}

	assert.GreaterOrEqual(t, time.Since(start), 350*time.Millisecond)
	assert.Equal(t, int32(3), hits.Load())
}

func TestCatalog_LimiterHonoursContext(t *testing.T) {
	srv := httptest.NewServer(serveJSON(`{"data":` + jikanAnime + `}`))
	defer srv.Close()

	a := newTestCatalog(t, srv.URL, 0.1)

	_, err := a.Random(context.Background())
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err = a.Random(ctx)
	assert.ErrorIs(t, err, app.ErrNetwork)
}
