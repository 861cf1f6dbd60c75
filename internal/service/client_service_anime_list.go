package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/anime-verse/internal/adapter"
	"github.com/MKhiriev/anime-verse/internal/app"
	"github.com/MKhiriev/anime-verse/internal/logger"
	"github.com/MKhiriev/anime-verse/internal/validators"
	"github.com/MKhiriev/anime-verse/models"
)

type animeListService struct {
	adapter   adapter.BackendAdapter
	session   SessionManager
	validator validators.Validator
	logger    *logger.Logger
}

func NewAnimeListService(backend adapter.BackendAdapter, session SessionManager, logger *logger.Logger) AnimeListService {
	return &animeListService{
		adapter:   backend,
		session:   session,
		validator: validators.NewAnimeListValidator(),
		logger:    logger,
	}
}

func (s *animeListService) Save(ctx context.Context, req models.SaveAnimeRequest) (models.AnimeListEntry, error) {
	if err := s.validator.Validate(ctx, req); err != nil {
		return models.AnimeListEntry{}, err
	}

	creds, err := s.session.Credentials()
	if err != nil {
		return models.AnimeListEntry{}, err
	}

	entry, err := s.adapter.SaveAnimeToList(ctx, creds.Token, creds.UserID, req)
	if err != nil {
		s.logoutOnAuthError(ctx, "animeListService.Save", creds.Token, err)
		return models.AnimeListEntry{}, err
	}

	s.logger.Debug().Str("func", "animeListService.Save").
		Int64("anime_id", req.AnimeID).
		Str("entry_id", entry.ID.String()).
		Msg("anime saved to list")
	return entry, nil
}

func (s *animeListService) List(ctx context.Context) ([]models.AnimeListEntry, error) {
	creds, err := s.session.Credentials()
	if err != nil {
		return nil, err
	}

	entries, err := s.adapter.GetUserAnimeList(ctx, creds.Token, creds.UserID)
	if err != nil {
		s.logoutOnAuthError(ctx, "animeListService.List", creds.Token, err)
		return nil, err
	}

	return entries, nil
}

// logoutOnAuthError ends the session when the backend rejected token and
// that token is still the active one.
func (s *animeListService) logoutOnAuthError(ctx context.Context, fn, token string, err error) {
	if !errors.Is(err, app.ErrAuthentication) {
		return
	}
	if s.session.LogoutToken(ctx, token) {
		s.logger.Info().Err(err).Str("func", fn).Msg("token was rejected, logged out")
	}
}
