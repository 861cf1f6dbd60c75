// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/anime-verse/internal/config"
	"github.com/MKhiriev/anime-verse/internal/crypto"
	"github.com/MKhiriev/anime-verse/internal/logger"
	"github.com/MKhiriev/anime-verse/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── sqlmock helpers ──────────────────────────────────────────────────────────

func newMockSessionStorage(t *testing.T) (*sessionStorage, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	l := logger.Nop()
	return &sessionStorage{
		DB:     &DB{DB: db, logger: l},
		sealer: crypto.NewSealer(""),
		logger: l,
	}, mock
}

// ── real sqlite helpers ──────────────────────────────────────────────────────

func newSQLiteStorages(t *testing.T, sealKey string) *ClientStorages {
	t.Helper()
	cfg := config.ClientStorage{DB: config.ClientDB{DSN: filepath.Join(t.TempDir(), "nested", "animeverse.db")}}

	s, err := NewClientStorages(context.Background(), cfg, crypto.NewSealer(sealKey), logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func testEnvelope() models.CredentialEnvelope {
	return models.CredentialEnvelope{
		Token: models.AuthenticationToken{
			Token:  "abc123",
			Expiry: time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC),
		},
		User: &models.User{
			ID:        "u1",
			Username:  "rasul",
			Email:     "rasul@example.com",
			Activated: true,
			CreatedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		},
		SavedAt: time.Date(2026, 10, 17, 9, 0, 0, 0, time.UTC),
	}
}

// ── sqlmock: credentials ─────────────────────────────────────────────────────

func TestSaveCredentials_SingleStatement(t *testing.T) {
	s, mock := newMockSessionStorage(t)

	mock.ExpectExec(`INSERT INTO credentials \(id,token,token_expiry,profile,saved_at\) VALUES \(\?,\?,\?,\?,\?\) ON CONFLICT\(id\) DO UPDATE`).
		WithArgs(credentialsRowID, "abc123", "2026-10-18T12:00:00Z", sqlmock.AnyArg(), "2026-10-17T09:00:00Z").
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, s.SaveCredentials(context.Background(), testEnvelope()))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveCredentials_ExecError(t *testing.T) {
	s, mock := newMockSessionStorage(t)

	mock.ExpectExec("INSERT INTO credentials").WillReturnError(errors.New("disk I/O error"))

	err := s.SaveCredentials(context.Background(), testEnvelope())
	assert.ErrorIs(t, err, ErrExecutingStatement)
}

func TestLoadCredentials_NotFound(t *testing.T) {
	s, mock := newMockSessionStorage(t)

	mock.ExpectQuery(`SELECT token, token_expiry, profile, saved_at FROM credentials WHERE id = \?`).
		WithArgs(credentialsRowID).
		WillReturnError(sql.ErrNoRows)

	_, err := s.LoadCredentials(context.Background())
	assert.ErrorIs(t, err, ErrCredentialsNotFound)
}

func TestLoadCredentials_ScanError(t *testing.T) {
	s, mock := newMockSessionStorage(t)

	mock.ExpectQuery("SELECT token").WillReturnError(errors.New("database is locked"))

	_, err := s.LoadCredentials(context.Background())
	assert.ErrorIs(t, err, ErrScanningRow)
}

func TestLoadCredentials_IncompleteRows(t *testing.T) {
	s, mock := newMockSessionStorage(t)

	rows := sqlmock.NewRows([]string{"token", "token_expiry", "profile", "saved_at"}).
		AddRow("abc123", "", "{not json", "2026-10-17T09:00:00Z")
	mock.ExpectQuery("SELECT token").WillReturnRows(rows)

	env, err := s.LoadCredentials(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "abc123", env.Token.Token)
	assert.True(t, env.Token.Expiry.IsZero())
	assert.Nil(t, env.User)
	assert.False(t, env.Complete())
}

func TestDeleteCredentials(t *testing.T) {
	s, mock := newMockSessionStorage(t)

	mock.ExpectExec("DELETE FROM credentials").WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, s.DeleteCredentials(context.Background()))

	mock.ExpectExec("DELETE FROM credentials").WillReturnError(errors.New("boom"))
	assert.ErrorIs(t, s.DeleteCredentials(context.Background()), ErrExecutingStatement)
}

// ── sqlmock: registrations & ClearAll ────────────────────────────────────────

func TestMarkRegistrationActivated_NotFound(t *testing.T) {
	s, mock := newMockSessionStorage(t)

	mock.ExpectExec(`UPDATE registrations SET activated = \? WHERE email = \?`).
		WithArgs(true, "rasul@example.com").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := s.MarkRegistrationActivated(context.Background(), " Rasul@Example.com ")
	assert.ErrorIs(t, err, ErrRegistrationNotFound)
}

func TestClearAll_Transaction(t *testing.T) {
	s, mock := newMockSessionStorage(t)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM credentials").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM registrations").WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	require.NoError(t, s.ClearAll(context.Background()))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestClearAll_RollsBackOnError(t *testing.T) {
	s, mock := newMockSessionStorage(t)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM credentials").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM registrations").WillReturnError(errors.New("boom"))
	mock.ExpectRollback()

	err := s.ClearAll(context.Background())
	assert.ErrorIs(t, err, ErrExecutingStatement)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestClearAll_BeginError(t *testing.T) {
	s, mock := newMockSessionStorage(t)

	mock.ExpectBegin().WillReturnError(errors.New("boom"))

	assert.ErrorIs(t, s.ClearAll(context.Background()), ErrBeginningTransaction)
}

// ── sqlite integration ───────────────────────────────────────────────────────

func TestSQLite_CredentialsRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := newSQLiteStorages(t, "")

	_, err := s.Session.LoadCredentials(ctx)
	require.ErrorIs(t, err, ErrCredentialsNotFound)

	want := testEnvelope()
	require.NoError(t, s.Session.SaveCredentials(ctx, want))

	got, err := s.Session.LoadCredentials(ctx)
	require.NoError(t, err)
	assert.Equal(t, want.Token.Token, got.Token.Token)
	assert.True(t, want.Token.Expiry.Equal(got.Token.Expiry))
	require.NotNil(t, got.User)
	assert.Equal(t, want.User.ID, got.User.ID)
	assert.Equal(t, want.User.Email, got.User.Email)
	assert.True(t, want.SavedAt.Equal(got.SavedAt))
	assert.True(t, got.Complete())

	// A second save replaces the only row.
	next := testEnvelope()
	next.Token.Token = "def456"
	require.NoError(t, s.Session.SaveCredentials(ctx, next))

	got, err = s.Session.LoadCredentials(ctx)
	require.NoError(t, err)
	assert.Equal(t, "def456", got.Token.Token)

	require.NoError(t, s.Session.DeleteCredentials(ctx))
	_, err = s.Session.LoadCredentials(ctx)
	assert.ErrorIs(t, err, ErrCredentialsNotFound)

	// Deleting twice is fine.
	assert.NoError(t, s.Session.DeleteCredentials(ctx))
}

func TestSQLite_SealedToken(t *testing.T) {
	ctx := context.Background()
	s := newSQLiteStorages(t, "seal-key")

	require.NoError(t, s.Session.SaveCredentials(ctx, testEnvelope()))

	var raw string
	require.NoError(t, s.db.QueryRowContext(ctx, "SELECT token FROM credentials").Scan(&raw))
	assert.NotEqual(t, "abc123", raw)

	got, err := s.Session.LoadCredentials(ctx)
	require.NoError(t, err)
	assert.Equal(t, "abc123", got.Token.Token)

	other := &sessionStorage{DB: s.db, sealer: crypto.NewSealer("another-key"), logger: logger.Nop()}
	_, err = other.LoadCredentials(ctx)
	assert.ErrorIs(t, err, ErrCredentialsUnreadable)
}

func TestSQLite_Registrations(t *testing.T) {
	ctx := context.Background()
	s := newSQLiteStorages(t, "")

	reg := models.Registration{
		User:         models.User{ID: "7", Username: "rasul", Email: "Rasul@Example.com"},
		RegisteredAt: time.Date(2026, 10, 17, 9, 0, 0, 0, time.UTC),
	}
	require.NoError(t, s.Session.SaveRegistration(ctx, reg))

	got, err := s.Session.GetRegistration(ctx, "rasul@example.com")
	require.NoError(t, err)
	assert.Equal(t, models.ID("7"), got.User.ID)
	assert.False(t, got.User.Activated)
	assert.True(t, reg.RegisteredAt.Equal(got.RegisteredAt))

	require.NoError(t, s.Session.MarkRegistrationActivated(ctx, "rasul@example.com"))
	got, err = s.Session.GetRegistration(ctx, "rasul@example.com")
	require.NoError(t, err)
	assert.True(t, got.User.Activated)

	assert.ErrorIs(t, s.Session.MarkRegistrationActivated(ctx, "nobody@example.com"), ErrRegistrationNotFound)
	_, err = s.Session.GetRegistration(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, ErrRegistrationNotFound)
}

func TestSQLite_ClearAll(t *testing.T) {
	ctx := context.Background()
	s := newSQLiteStorages(t, "")

	require.NoError(t, s.Session.SaveCredentials(ctx, testEnvelope()))
	require.NoError(t, s.Session.SaveRegistration(ctx, models.Registration{User: models.User{ID: "7", Email: "a@b.com"}}))

	require.NoError(t, s.Session.ClearAll(ctx))

	_, err := s.Session.LoadCredentials(ctx)
	assert.ErrorIs(t, err, ErrCredentialsNotFound)
	_, err = s.Session.GetRegistration(ctx, "a@b.com")
	assert.ErrorIs(t, err, ErrRegistrationNotFound)
}

func TestClientStorages_CloseNil(t *testing.T) {
	var s *ClientStorages
	assert.NoError(t, s.Close())
}
