package service

import (
	"context"

	"github.com/MKhiriev/anime-verse/internal/adapter"
	"github.com/MKhiriev/anime-verse/models"
)

type quoteService struct {
	adapter adapter.BackendAdapter
}

func NewQuoteService(backend adapter.BackendAdapter) QuoteService {
	return &quoteService{adapter: backend}
}

func (s *quoteService) List(ctx context.Context) ([]models.Quote, error) {
	return s.adapter.ListQuotes(ctx)
}
