// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the application-wide error taxonomy and the message
// strings shared by the adapters, validators and services of the client.
//
// Every failure that reaches the presentation layer is an [*Error] whose Kind
// tells the caller what happened (network, validation, authentication,
// server). Callers branch with [errors.Is] against the Err* sentinels and use
// the message only for display.
package app

const (
	// MsgGenericError replaces a failed response body that could not be
	// decoded into a structured error.
	MsgGenericError = "an error occurred"

	// MsgBackendUnreachable is shown when the request never produced an HTTP
	// response (DNS failure, refused connection, timeout).
	MsgBackendUnreachable = "backend is unreachable"

	// MsgMalformedResponse is returned when a 2xx response body cannot be
	// decoded into the expected payload.
	MsgMalformedResponse = "malformed response from server"

	// MsgNotAuthenticated is returned by operations that need a session when
	// none is active.
	MsgNotAuthenticated = "you must be logged in"

	// MsgTokenExpired is returned when the session token is past its expiry.
	MsgTokenExpired = "authentication token has expired"

	// MsgAccountNotActivated replaces a rejected login for an account this
	// client registered but never saw activated.
	MsgAccountNotActivated = "account is not activated yet, use the token from the activation email"

	// MsgInvalidInput heads every client-side validation failure.
	MsgInvalidInput = "invalid input"
)
