// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/anime-verse/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// CredentialRepository persists the single session record.
type CredentialRepository interface {
	// SaveCredentials replaces the persisted record in one statement.
	SaveCredentials(ctx context.Context, envelope models.CredentialEnvelope) error
	// LoadCredentials returns the persisted record, or ErrCredentialsNotFound.
	LoadCredentials(ctx context.Context) (models.CredentialEnvelope, error)
	// DeleteCredentials removes the record; deleting nothing is not an error.
	DeleteCredentials(ctx context.Context) error
}

// RegistrationRepository keeps the profiles returned at registration time,
// keyed by email. They are reference data and never form a session.
type RegistrationRepository interface {
	SaveRegistration(ctx context.Context, registration models.Registration) error
	// GetRegistration returns the record for email, or ErrRegistrationNotFound.
	GetRegistration(ctx context.Context, email string) (models.Registration, error)
	// MarkRegistrationActivated sets the activated flag of the record for
	// email. It returns ErrRegistrationNotFound when there is none.
	MarkRegistrationActivated(ctx context.Context, email string) error
}

// SessionStorage is everything the session manager persists.
type SessionStorage interface {
	CredentialRepository
	RegistrationRepository

	// ClearAll removes credentials and registrations in one transaction.
	ClearAll(ctx context.Context) error
}
