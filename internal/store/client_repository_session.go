// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/anime-verse/internal/crypto"
	"github.com/MKhiriev/anime-verse/internal/logger"
	"github.com/MKhiriev/anime-verse/models"
)

type sessionStorage struct {
	*DB
	sealer crypto.Sealer
	logger *logger.Logger
}

// NewSessionStorage returns the sqlite implementation of [SessionStorage].
// Tokens pass through sealer before they are written.
func NewSessionStorage(db *DB, sealer crypto.Sealer, logger *logger.Logger) SessionStorage {
	return &sessionStorage{
		DB:     db,
		sealer: sealer,
		logger: logger,
	}
}

func (s *sessionStorage) SaveCredentials(ctx context.Context, envelope models.CredentialEnvelope) error {
	log := logger.FromContext(ctx)

	sealed, err := s.sealer.Seal(envelope.Token.Token)
	if err != nil {
		log.Err(err).Str("func", "sessionStorage.SaveCredentials").Msg("failed to seal token")
		return fmt.Errorf("failed to seal token: %w", err)
	}

	profile := ""
	if envelope.User != nil {
		raw, err := json.Marshal(envelope.User)
		if err != nil {
			return fmt.Errorf("failed to encode profile: %w", err)
		}
		profile = string(raw)
	}

	savedAt := envelope.SavedAt
	if savedAt.IsZero() {
		savedAt = time.Now()
	}

	query, args, err := buildUpsertCredentialsQuery(credentialsRow{
		Token:       sealed,
		TokenExpiry: formatTime(envelope.Token.Expiry),
		Profile:     profile,
		SavedAt:     formatTime(savedAt),
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "sessionStorage.SaveCredentials").Msg("failed to upsert credentials")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (s *sessionStorage) LoadCredentials(ctx context.Context) (models.CredentialEnvelope, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectCredentialsQuery()
	if err != nil {
		return models.CredentialEnvelope{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var row credentialsRow
	err = s.DB.QueryRowContext(ctx, query, args...).Scan(&row.Token, &row.TokenExpiry, &row.Profile, &row.SavedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.CredentialEnvelope{}, ErrCredentialsNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "sessionStorage.LoadCredentials").Msg("failed to scan credentials row")
		return models.CredentialEnvelope{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	token, err := s.sealer.Open(row.Token)
	if err != nil {
		log.Warn().Err(err).Str("func", "sessionStorage.LoadCredentials").Msg("failed to unseal token")
		return models.CredentialEnvelope{}, fmt.Errorf("%w: %w", ErrCredentialsUnreadable, err)
	}

	envelope := models.CredentialEnvelope{
		Token: models.AuthenticationToken{
			Token:  token,
			Expiry: parseTime(row.TokenExpiry),
		},
		SavedAt: parseTime(row.SavedAt),
	}

	if row.Profile != "" {
		var user models.User
		if err = json.Unmarshal([]byte(row.Profile), &user); err != nil {
			// An unreadable profile leaves the envelope incomplete.
			log.Warn().Err(err).Str("func", "sessionStorage.LoadCredentials").Msg("failed to decode persisted profile")
		} else {
			envelope.User = &user
		}
	}

	return envelope, nil
}

func (s *sessionStorage) DeleteCredentials(ctx context.Context) error {
	query, args, err := buildDeleteCredentialsQuery()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.DB.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "sessionStorage.DeleteCredentials").Msg("failed to delete credentials")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (s *sessionStorage) SaveRegistration(ctx context.Context, registration models.Registration) error {
	registeredAt := registration.RegisteredAt
	if registeredAt.IsZero() {
		registeredAt = time.Now()
	}

	query, args, err := buildUpsertRegistrationQuery(registrationRow{
		Email:        normalizeEmail(registration.User.Email),
		UserID:       registration.User.ID.String(),
		Username:     registration.User.Username,
		Activated:    registration.User.Activated,
		CreatedAt:    formatTime(registration.User.CreatedAt),
		RegisteredAt: formatTime(registeredAt),
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.DB.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "sessionStorage.SaveRegistration").
			Str("user_id", registration.User.ID.String()).
			Msg("failed to upsert registration")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (s *sessionStorage) GetRegistration(ctx context.Context, email string) (models.Registration, error) {
	query, args, err := buildSelectRegistrationQuery(normalizeEmail(email))
	if err != nil {
		return models.Registration{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var (
		row    registrationRow
		userID string
	)
	err = s.DB.QueryRowContext(ctx, query, args...).
		Scan(&row.Email, &userID, &row.Username, &row.Activated, &row.CreatedAt, &row.RegisteredAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Registration{}, ErrRegistrationNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "sessionStorage.GetRegistration").Msg("failed to scan registration row")
		return models.Registration{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return models.Registration{
		User: models.User{
			ID:        models.ID(userID),
			Username:  row.Username,
			Email:     row.Email,
			Activated: row.Activated,
			CreatedAt: parseTime(row.CreatedAt),
		},
		RegisteredAt: parseTime(row.RegisteredAt),
	}, nil
}

func (s *sessionStorage) MarkRegistrationActivated(ctx context.Context, email string) error {
	query, args, err := buildActivateRegistrationQuery(normalizeEmail(email))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := s.DB.ExecContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "sessionStorage.MarkRegistrationActivated").Msg("failed to update registration")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrRegistrationNotFound
	}

	return nil
}

func (s *sessionStorage) ClearAll(ctx context.Context) error {
	log := logger.FromContext(ctx)

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "sessionStorage.ClearAll").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	for _, build := range []func() (string, []any, error){buildDeleteCredentialsQuery, buildDeleteRegistrationsQuery} {
		query, args, err := build()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			log.Err(err).Str("func", "sessionStorage.ClearAll").Msg("failed to clear table")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "sessionStorage.ClearAll").Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// formatTime renders t for a TEXT column; the zero time is stored as "".
func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

// parseTime reverses formatTime; unparseable values yield the zero time.
func parseTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
