// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package app

import (
	"errors"
	"net/http"
	"sort"
	"strings"
)

// Kind classifies an [Error].
type Kind uint8

const (
	KindUnknown Kind = iota
	// KindNetwork: no HTTP response was obtained.
	KindNetwork
	// KindValidation: the input was rejected, locally or by the backend
	// (400, 404, 409, 422).
	KindValidation
	// KindAuthentication: bad credentials, missing or expired token (401, 403).
	KindAuthentication
	// KindServer: any other failure reported by the remote side.
	KindServer
)

func (k Kind) String() string {
	switch k {
	case KindNetwork:
		return "network"
	case KindValidation:
		return "validation"
	case KindAuthentication:
		return "authentication"
	case KindServer:
		return "server"
	default:
		return "unknown"
	}
}

// Sentinels matched by [Error.Is] according to the error kind.
var (
	ErrNetwork        = errors.New("network error")
	ErrValidation     = errors.New("validation error")
	ErrAuthentication = errors.New("authentication error")
	ErrServer         = errors.New("server error")
)

func (k Kind) sentinel() error {
	switch k {
	case KindNetwork:
		return ErrNetwork
	case KindValidation:
		return ErrValidation
	case KindAuthentication:
		return ErrAuthentication
	case KindServer:
		return ErrServer
	default:
		return nil
	}
}

// Error is the single failure type surfaced by the client.
type Error struct {
	Kind Kind
	// Status is the HTTP status code, zero for local or network failures.
	Status int
	// Message is human-readable and safe to display.
	Message string
	// Fields holds per-field messages for validation failures.
	Fields map[string]string
	// Err is the underlying cause, if any.
	Err error
}

func (e *Error) Error() string {
	msg := e.Message
	if msg == "" {
		if s := e.Kind.sentinel(); s != nil {
			msg = s.Error()
		} else {
			msg = MsgGenericError
		}
	}

	if len(e.Fields) == 0 {
		return msg
	}

	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}

	return msg + " (" + strings.Join(parts, "; ") + ")"
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is the sentinel of e's kind.
func (e *Error) Is(target error) bool {
	s := e.Kind.sentinel()
	return s != nil && target == s
}

// NewNetworkError wraps a transport failure.
func NewNetworkError(err error) *Error {
	return &Error{Kind: KindNetwork, Message: MsgBackendUnreachable, Err: err}
}

// NewValidationError builds a validation failure. fields may be nil.
func NewValidationError(message string, fields map[string]string) *Error {
	return &Error{Kind: KindValidation, Message: message, Fields: fields}
}

// NewAuthenticationError builds an authentication failure.
func NewAuthenticationError(message string) *Error {
	return &Error{Kind: KindAuthentication, Message: message}
}

// NewServerError builds a failure for an unexpected remote response.
func NewServerError(status int, message string, err error) *Error {
	return &Error{Kind: KindServer, Status: status, Message: message, Err: err}
}

// KindForStatus maps a non-2xx HTTP status code to an error kind.
func KindForStatus(status int) Kind {
	switch status {
	case http.StatusBadRequest, http.StatusNotFound, http.StatusConflict, http.StatusUnprocessableEntity:
		return KindValidation
	case http.StatusUnauthorized, http.StatusForbidden:
		return KindAuthentication
	default:
		return KindServer
	}
}

// KindOf returns the kind of the first [*Error] in err's chain, or
// KindUnknown.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindUnknown
}
