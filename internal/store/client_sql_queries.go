// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"
)

const (
	credentialsTable   = "credentials"
	registrationsTable = "registrations"

	// credentialsRowID is the primary key of the only credentials row.
	credentialsRowID = 1
)

// psql is the statement builder for sqlite ("?" placeholders).
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Question)

// credentialsRow is the column form of a persisted envelope.
type credentialsRow struct {
	Token       string
	TokenExpiry string
	Profile     string
	SavedAt     string
}

func buildUpsertCredentialsQuery(row credentialsRow) (string, []any, error) {
	return psql.
		Insert(credentialsTable).
		Columns("id", "token", "token_expiry", "profile", "saved_at").
		Values(credentialsRowID, row.Token, row.TokenExpiry, row.Profile, row.SavedAt).
		Suffix(`ON CONFLICT(id) DO UPDATE SET
			token        = excluded.token,
			token_expiry = excluded.token_expiry,
			profile      = excluded.profile,
			saved_at     = excluded.saved_at`).
		ToSql()
}

func buildSelectCredentialsQuery() (string, []any, error) {
	return psql.
		Select("token", "token_expiry", "profile", "saved_at").
		From(credentialsTable).
		Where(sq.Eq{"id": credentialsRowID}).
		ToSql()
}

func buildDeleteCredentialsQuery() (string, []any, error) {
	return psql.Delete(credentialsTable).ToSql()
}

// registrationRow is the column form of a registration record.
type registrationRow struct {
	Email        string
	UserID       string
	Username     string
	Activated    bool
	CreatedAt    string
	RegisteredAt string
}

func buildUpsertRegistrationQuery(row registrationRow) (string, []any, error) {
	return psql.
		Insert(registrationsTable).
		Columns("email", "user_id", "username", "activated", "created_at", "registered_at").
		Values(row.Email, row.UserID, row.Username, row.Activated, row.CreatedAt, row.RegisteredAt).
		Suffix(`ON CONFLICT(email) DO UPDATE SET
			user_id       = excluded.user_id,
			username      = excluded.username,
			activated     = excluded.activated,
			created_at    = excluded.created_at,
			registered_at = excluded.registered_at`).
		ToSql()
}

func buildSelectRegistrationQuery(email string) (string, []any, error) {
	return psql.
		Select("email", "user_id", "username", "activated", "created_at", "registered_at").
		From(registrationsTable).
		Where(sq.Eq{"email": email}).
		ToSql()
}

func buildActivateRegistrationQuery(email string) (string, []any, error) {
	return psql.
		Update(registrationsTable).
		Set("activated", true).
		Where(sq.Eq{"email": email}).
		ToSql()
}

func buildDeleteRegistrationsQuery() (string, []any, error) {
	return psql.Delete(registrationsTable).ToSql()
}
