package service

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/anime-verse/internal/adapter"
	"github.com/MKhiriev/anime-verse/internal/logger"
	"github.com/MKhiriev/anime-verse/models"
)

// maxRandomBatch bounds the fan-out of RandomBatch.
const maxRandomBatch = 25

type catalogService struct {
	adapter adapter.CatalogAdapter
	logger  *logger.Logger
}

func NewCatalogService(catalog adapter.CatalogAdapter, logger *logger.Logger) CatalogService {
	return &catalogService{adapter: catalog, logger: logger}
}

func (s *catalogService) TopAiring(ctx context.Context) ([]models.CatalogAnime, error) {
	return s.adapter.TopAiring(ctx)
}

func (s *catalogService) Random(ctx context.Context) (models.CatalogAnime, error) {
	return s.adapter.Random(ctx)
}

func (s *catalogService) Search(ctx context.Context, query string) ([]models.CatalogAnime, error) {
	return s.adapter.Search(ctx, query)
}

func (s *catalogService) Details(ctx context.Context, id int64) (models.CatalogAnime, error) {
	return s.adapter.Details(ctx, id)
}

func (s *catalogService) RandomBatch(ctx context.Context, n int) ([]models.CatalogAnime, error) {
	if n <= 0 || n > maxRandomBatch {
		return nil, fmt.Errorf("%w: got %d, max %d", ErrInvalidBatchSize, n, maxRandomBatch)
	}

	result := make([]models.CatalogAnime, n)

	g, gctx := errgroup.WithContext(ctx)
	for i := range n {
		g.Go(func() error {
			anime, err := s.adapter.Random(gctx)
			if err != nil {
				return err
			}
			result[i] = anime
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		s.logger.Warn().Err(err).Str("func", "catalogService.RandomBatch").Int("n", n).Msg("random batch failed")
		return nil, err
	}

	return result, nil
}

func (s *catalogService) Snapshot(anime models.CatalogAnime) models.AnimeSnapshot {
	return models.AnimeSnapshot{
		Title:                anime.Title,
		Synopsis:             anime.Synopsis,
		CoverImageURL:        anime.Images.CoverURL(),
		TotalEpisodes:        anime.Episodes,
		Status:               anime.Status,
		ReleaseDate:          releaseDate(anime.Aired.From),
		Rating:               anime.Rating,
		Score:                anime.Score,
		Genres:               names(anime.Genres),
		Studios:              names(anime.Studios),
		BroadcastInformation: anime.Broadcast.String,
	}
}

// releaseDate reduces the catalog's RFC 3339 airing timestamp to a
// YYYY-MM-DD date. Values in any other form are kept as they are.
func releaseDate(aired string) string {
	t, err := time.Parse(time.RFC3339, aired)
	if err != nil {
		return aired
	}
	return t.Format(models.DateLayout)
}

func names(named []models.CatalogNamed) []string {
	out := make([]string, 0, len(named))
	for _, n := range named {
		out = append(out, n.Name)
	}
	return out
}
