package app

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError_IsMatchesKindSentinel(t *testing.T) {
	tests := []struct {
		name   string
		err    *Error
		target error
	}{
		{"network", NewNetworkError(errors.New("dial tcp")), ErrNetwork},
		{"validation", NewValidationError("bad", nil), ErrValidation},
		{"authentication", NewAuthenticationError("nope"), ErrAuthentication},
		{"server", NewServerError(http.StatusBadGateway, "boom", nil), ErrServer},
	}

	all := []error{ErrNetwork, ErrValidation, ErrAuthentication, ErrServer}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := fmt.Errorf("op: %w", tt.err)
			for _, s := range all {
				assert.Equal(t, s == tt.target, errors.Is(wrapped, s), "sentinel %v", s)
			}
		})
	}
}

func TestError_UnwrapKeepsCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewNetworkError(cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, MsgBackendUnreachable, err.Error())
}

func TestError_MessageWithFields(t *testing.T) {
	err := NewValidationError("invalid input", map[string]string{
		"password": "must be at least 8 characters",
		"email":    "must be provided",
	})

	assert.Equal(t, "invalid input (email: must be provided; password: must be at least 8 characters)", err.Error())
}

func TestError_EmptyMessageFallsBackToKind(t *testing.T) {
	assert.Equal(t, "authentication error", (&Error{Kind: KindAuthentication}).Error())
	assert.Equal(t, MsgGenericError, (&Error{}).Error())
}

func TestKindForStatus(t *testing.T) {
	tests := map[int]Kind{
		http.StatusBadRequest:          KindValidation,
		http.StatusNotFound:            KindValidation,
		http.StatusConflict:            KindValidation,
		http.StatusUnprocessableEntity: KindValidation,
		http.StatusUnauthorized:        KindAuthentication,
		http.StatusForbidden:           KindAuthentication,
		http.StatusTooManyRequests:     KindServer,
		http.StatusInternalServerError: KindServer,
	}

	for status, want := range tests {
		assert.Equal(t, want, KindForStatus(status), "status %d", status)
	}
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindValidation, KindOf(fmt.Errorf("wrap: %w", NewValidationError("x", nil))))
	assert.Equal(t, KindUnknown, KindOf(errors.New("plain")))
	assert.Equal(t, KindUnknown, KindOf(nil))
	assert.Equal(t, "authentication", KindAuthentication.String())
}
