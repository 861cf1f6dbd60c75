// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/anime-verse/internal/adapter"
	"github.com/MKhiriev/anime-verse/internal/app"
	"github.com/MKhiriev/anime-verse/internal/logger"
	"github.com/MKhiriev/anime-verse/internal/store"
	"github.com/MKhiriev/anime-verse/internal/validators"
	"github.com/MKhiriev/anime-verse/models"
)

type sessionManager struct {
	adapter   adapter.BackendAdapter
	storage   store.SessionStorage
	validator validators.Validator
	logger    *logger.Logger
	now       func() time.Time

	// opMu serializes mutating operations so their persisted writes never
	// interleave.
	opMu sync.Mutex

	mu      sync.RWMutex
	state   models.SessionState
	session models.Session
	lastErr error
}

// NewSessionManager returns a SessionManager in the Uninitialized state.
// Call Restore before using it.
func NewSessionManager(backend adapter.BackendAdapter, storage store.SessionStorage, logger *logger.Logger) SessionManager {
	return &sessionManager{
		adapter:   backend,
		storage:   storage,
		validator: validators.NewAccountValidator(),
		logger:    logger,
		now:       time.Now,
		state:     models.SessionUninitialized,
	}
}

func (m *sessionManager) Restore(ctx context.Context) models.SessionState {
	m.opMu.Lock()
	defer m.opMu.Unlock()

	m.mu.Lock()
	m.state = models.SessionRestoring
	m.mu.Unlock()

	envelope, err := m.storage.LoadCredentials(ctx)
	switch {
	case errors.Is(err, store.ErrCredentialsNotFound):
		m.logger.Debug().Str("func", "sessionManager.Restore").Msg("no persisted session")
		return m.becomeAnonymous()
	case errors.Is(err, store.ErrCredentialsUnreadable):
		m.logger.Warn().Err(err).Str("func", "sessionManager.Restore").Msg("persisted session is unreadable, purging")
		m.purge(ctx)
		return m.becomeAnonymous()
	case err != nil:
		m.logger.Err(err).Str("func", "sessionManager.Restore").Msg("failed to load persisted session")
		return m.becomeAnonymous()
	}

	if !envelope.Complete() {
		m.logger.Warn().Str("func", "sessionManager.Restore").Msg("persisted session is incomplete, purging")
		m.purge(ctx)
		return m.becomeAnonymous()
	}

	if envelope.Token.Expired(m.now()) {
		m.logger.Info().Str("func", "sessionManager.Restore").
			Time("expiry", envelope.Token.Expiry).
			Msg("persisted token has expired, purging")
		m.purge(ctx)
		return m.becomeAnonymous()
	}

	user, err := m.adapter.GetUserProfile(ctx, envelope.Token.Token)
	if err == nil {
		err = checkProfile(user)
	}
	if errors.Is(err, app.ErrAuthentication) {
		m.logger.Info().Err(err).Str("func", "sessionManager.Restore").Msg("persisted token was rejected, purging")
		m.purge(ctx)
		return m.becomeAnonymous()
	}
	if err != nil {
		// Keep the user logged in with what we had; connectivity loss does
		// not invalidate the session.
		m.logger.Warn().Err(err).Str("func", "sessionManager.Restore").
			Str("user_id", envelope.User.ID.String()).
			Msg("profile refresh failed, restoring from persisted profile")
		m.becomeAuthenticated(models.Session{User: *envelope.User, Token: envelope.Token, Degraded: true})
		return models.SessionAuthenticated
	}

	refreshed := models.CredentialEnvelope{Token: envelope.Token, User: &user, SavedAt: m.now()}
	if err = m.storage.SaveCredentials(ctx, refreshed); err != nil {
		m.logger.Warn().Err(err).Str("func", "sessionManager.Restore").Msg("failed to persist refreshed profile")
	}

	m.becomeAuthenticated(models.Session{User: user, Token: envelope.Token})
	m.logger.Info().Str("func", "sessionManager.Restore").Str("user_id", user.ID.String()).Msg("session restored")
	return models.SessionAuthenticated
}

func (m *sessionManager) Login(ctx context.Context, email, password string) error {
	m.opMu.Lock()
	defer m.opMu.Unlock()

	m.ClearError()

	req := models.LoginRequest{Email: strings.TrimSpace(email), Password: password}
	if err := m.validator.Validate(ctx, req); err != nil {
		return m.fail("sessionManager.Login", err)
	}

	token, err := m.adapter.LoginUser(ctx, req)
	if errors.Is(err, app.ErrAuthentication) && m.awaitingActivation(ctx, req.Email) {
		err = &app.Error{Kind: app.KindAuthentication, Message: app.MsgAccountNotActivated, Err: err}
	}
	if err != nil {
		return m.fail("sessionManager.Login", err)
	}

	user, err := m.adapter.GetUserProfile(ctx, token.Token)
	if err == nil {
		err = checkProfile(user)
	}
	if err != nil {
		return m.fail("sessionManager.Login", err)
	}

	envelope := models.CredentialEnvelope{Token: token, User: &user, SavedAt: m.now()}
	if err = m.storage.SaveCredentials(ctx, envelope); err != nil {
		return m.fail("sessionManager.Login", err)
	}

	m.becomeAuthenticated(models.Session{User: user, Token: token})
	m.logger.Info().Str("func", "sessionManager.Login").Str("user_id", user.ID.String()).Msg("logged in")
	return nil
}

func (m *sessionManager) Register(ctx context.Context, username, email, password string) (models.User, error) {
	m.opMu.Lock()
	defer m.opMu.Unlock()

	m.ClearError()

	req := models.RegisterRequest{
		Username: strings.TrimSpace(username),
		Email:    strings.TrimSpace(email),
		Password: password,
	}
	if err := m.validator.Validate(ctx, req); err != nil {
		return models.User{}, m.fail("sessionManager.Register", err)
	}

	user, err := m.adapter.RegisterUser(ctx, req)
	if err == nil {
		err = checkProfile(user)
	}
	if err != nil {
		return models.User{}, m.fail("sessionManager.Register", err)
	}

	// The account already exists on the backend; a lost local copy only
	// costs the reference record.
	if err = m.storage.SaveRegistration(ctx, models.Registration{User: user, RegisteredAt: m.now()}); err != nil {
		m.logger.Warn().Err(err).Str("func", "sessionManager.Register").Msg("failed to persist registration record")
	}

	m.logger.Info().Str("func", "sessionManager.Register").Str("user_id", user.ID.String()).Msg("account registered")
	return user, nil
}

func (m *sessionManager) Activate(ctx context.Context, activationToken string) (models.User, error) {
	m.opMu.Lock()
	defer m.opMu.Unlock()

	m.ClearError()

	user, err := m.adapter.ActivateUser(ctx, strings.TrimSpace(activationToken))
	if err == nil {
		err = checkProfile(user)
	}
	if err != nil {
		return models.User{}, m.fail("sessionManager.Activate", err)
	}

	err = m.storage.MarkRegistrationActivated(ctx, user.Email)
	if err != nil && !errors.Is(err, store.ErrRegistrationNotFound) {
		m.logger.Warn().Err(err).Str("func", "sessionManager.Activate").Msg("failed to update registration record")
	}

	m.logger.Info().Str("func", "sessionManager.Activate").Str("user_id", user.ID.String()).Msg("account activated")
	return user, nil
}

func (m *sessionManager) Logout(ctx context.Context) {
	m.opMu.Lock()
	defer m.opMu.Unlock()

	m.logout(ctx)
}

func (m *sessionManager) LogoutToken(ctx context.Context, token string) bool {
	m.opMu.Lock()
	defer m.opMu.Unlock()

	session, ok := m.Session()
	if !ok || session.Token.Token != token {
		m.logger.Debug().Str("func", "sessionManager.LogoutToken").Msg("token no longer active, session kept")
		return false
	}

	m.logout(ctx)
	return true
}

func (m *sessionManager) Refresh(ctx context.Context) error {
	m.opMu.Lock()
	defer m.opMu.Unlock()

	session, ok := m.Session()
	if !ok {
		return app.NewAuthenticationError(app.MsgNotAuthenticated)
	}

	if session.Token.Expired(m.now()) {
		m.logout(ctx)
		return app.NewAuthenticationError(app.MsgTokenExpired)
	}

	user, err := m.adapter.GetUserProfile(ctx, session.Token.Token)
	if err == nil {
		err = checkProfile(user)
	}
	if errors.Is(err, app.ErrAuthentication) {
		m.logger.Info().Err(err).Str("func", "sessionManager.Refresh").Msg("token was rejected, logging out")
		m.logout(ctx)
		return err
	}
	if err != nil {
		return err
	}

	envelope := models.CredentialEnvelope{Token: session.Token, User: &user, SavedAt: m.now()}
	if err = m.storage.SaveCredentials(ctx, envelope); err != nil {
		m.logger.Err(err).Str("func", "sessionManager.Refresh").Msg("failed to persist refreshed profile")
		return err
	}

	m.becomeAuthenticated(models.Session{User: user, Token: session.Token})
	m.logger.Debug().Str("func", "sessionManager.Refresh").Str("user_id", user.ID.String()).Msg("profile refreshed")
	return nil
}

func (m *sessionManager) ClearError() {
	m.mu.Lock()
	m.lastErr = nil
	m.mu.Unlock()
}

func (m *sessionManager) State() models.SessionState {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state
}

func (m *sessionManager) Session() (models.Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.state != models.SessionAuthenticated {
		return models.Session{}, false
	}
	return m.session, true
}

func (m *sessionManager) User() (models.User, bool) {
	session, ok := m.Session()
	return session.User, ok
}

func (m *sessionManager) Credentials() (models.Credentials, error) {
	session, ok := m.Session()
	if !ok {
		return models.Credentials{}, app.NewAuthenticationError(app.MsgNotAuthenticated)
	}
	if session.Token.Expired(m.now()) {
		return models.Credentials{}, app.NewAuthenticationError(app.MsgTokenExpired)
	}
	return models.Credentials{Token: session.Token.Token, UserID: session.User.ID}, nil
}

func (m *sessionManager) IsAuthenticated() bool {
	return m.State() == models.SessionAuthenticated
}

func (m *sessionManager) Err() error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.lastErr
}

// logout must be called with opMu held.
func (m *sessionManager) logout(ctx context.Context) {
	// Storage is cleared even when the caller's context is already done.
	if err := m.storage.ClearAll(context.WithoutCancel(ctx)); err != nil {
		m.logger.Err(err).Str("func", "sessionManager.logout").Msg("failed to clear persisted session")
	}
	m.becomeAnonymous()
	m.logger.Info().Str("func", "sessionManager.logout").Msg("logged out")
}

// awaitingActivation reports whether email belongs to an account registered
// from this client that has not been activated since.
func (m *sessionManager) awaitingActivation(ctx context.Context, email string) bool {
	registration, err := m.storage.GetRegistration(ctx, email)
	if err != nil {
		if !errors.Is(err, store.ErrRegistrationNotFound) {
			m.logger.Warn().Err(err).Str("func", "sessionManager.awaitingActivation").Msg("failed to read registration record")
		}
		return false
	}
	return !registration.User.Activated
}

// checkProfile rejects a profile without an id. An authenticated session
// always holds a profile the backend identified.
func checkProfile(user models.User) error {
	if strings.TrimSpace(user.ID.String()) == "" {
		return app.NewServerError(http.StatusOK, app.MsgMalformedResponse, nil)
	}
	return nil
}

func (m *sessionManager) purge(ctx context.Context) {
	if err := m.storage.DeleteCredentials(context.WithoutCancel(ctx)); err != nil {
		m.logger.Err(err).Str("func", "sessionManager.purge").Msg("failed to delete persisted session")
	}
}

func (m *sessionManager) becomeAnonymous() models.SessionState {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state = models.SessionAnonymous
	m.session = models.Session{}
	return m.state
}

func (m *sessionManager) becomeAuthenticated(session models.Session) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state = models.SessionAuthenticated
	m.session = session
}

func (m *sessionManager) fail(fn string, err error) error {
	m.mu.Lock()
	m.lastErr = err
	m.mu.Unlock()

	m.logger.Warn().Err(err).Str("func", fn).Msg("session operation failed")
	return err
}
