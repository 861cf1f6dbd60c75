// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/anime-verse/internal/app"
	"github.com/MKhiriev/anime-verse/models"
)

// Field names accepted by [AccountValidator].
const (
	FieldUsername = "username"
	FieldEmail    = "email"
	FieldPassword = "password"
)

const (
	// MinPasswordLength is the minimum number of characters of a password.
	MinPasswordLength = 8
	// MaxPasswordBytes is the bcrypt input limit enforced by the backend.
	MaxPasswordBytes = 72
)

// AccountValidator validates registration and login input.
//
// Supported types:
//   - models.RegisterRequest / *models.RegisterRequest
//     (default fields: username, email, password)
//   - models.LoginRequest / *models.LoginRequest
//     (default fields: email, password; only presence of the password is
//     checked, so that accounts created under older rules can still log in)
type AccountValidator struct{}

// NewAccountValidator constructs an AccountValidator.
func NewAccountValidator() Validator {
	return &AccountValidator{}
}

func (v *AccountValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegisterRequest:
		return v.validateRegister(value, fields...)
	case *models.RegisterRequest:
		return v.validateRegister(*value, fields...)
	case models.LoginRequest:
		return v.validateLogin(value, fields...)
	case *models.LoginRequest:
		return v.validateLogin(*value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *AccountValidator) validateRegister(req models.RegisterRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldEmail, FieldPassword}
	}

	errs := make(fieldErrors)
	for _, f := range fields {
		switch f {
		case FieldUsername:
			if strings.TrimSpace(req.Username) == "" {
				errs.add(FieldUsername, msgRequired)
			}
		case FieldEmail:
			checkEmail(errs, req.Email)
		case FieldPassword:
			checkPasswordStrength(errs, req.Password)
		default:
			return ErrUnknownField
		}
	}

	return errs.err()
}

func (v *AccountValidator) validateLogin(req models.LoginRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	errs := make(fieldErrors)
	for _, f := range fields {
		switch f {
		case FieldEmail:
			checkEmail(errs, req.Email)
		case FieldPassword:
			if req.Password == "" {
				errs.add(FieldPassword, msgRequired)
			}
		default:
			return ErrUnknownField
		}
	}

	return errs.err()
}

func checkEmail(errs fieldErrors, email string) {
	if email == "" {
		errs.add(FieldEmail, msgRequired)
		return
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		errs.add(FieldEmail, msgInvalidEmail)
	}
}

func checkPasswordStrength(errs fieldErrors, password string) {
	switch {
	case password == "":
		errs.add(FieldPassword, msgRequired)
	case utf8.RuneCountInString(password) < MinPasswordLength:
		errs.add(FieldPassword, msgPasswordTooShort)
	case len(password) > MaxPasswordBytes:
		errs.add(FieldPassword, msgPasswordTooLong)
	}
}

// fieldErrors collects per-field messages; the first message for a field wins.
type fieldErrors map[string]string

func (e fieldErrors) add(field, msg string) {
	if _, ok := e[field]; !ok {
		e[field] = msg
	}
}

func (e fieldErrors) err() error {
	if len(e) == 0 {
		return nil
	}
	return app.NewValidationError(app.MsgInvalidInput, e)
}
