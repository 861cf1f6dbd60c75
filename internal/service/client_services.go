package service

import (
	"github.com/MKhiriev/anime-verse/internal/adapter"
	"github.com/MKhiriev/anime-verse/internal/logger"
	"github.com/MKhiriev/anime-verse/internal/store"
)

type ClientServices struct {
	Session   SessionManager
	AnimeList AnimeListService
	Catalog   CatalogService
	Quotes    QuoteService
}

func NewClientServices(storages *store.ClientStorages, backend adapter.BackendAdapter, catalog adapter.CatalogAdapter, logger *logger.Logger) *ClientServices {
	session := NewSessionManager(backend, storages.Session, logger)

	return &ClientServices{
		Session:   session,
		AnimeList: NewAnimeListService(backend, session, logger),
		Catalog:   NewCatalogService(catalog, logger),
		Quotes:    NewQuoteService(backend),
	}
}
