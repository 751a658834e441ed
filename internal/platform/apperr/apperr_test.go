// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package apperr_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/phoenix/internal/platform/apperr"
)

/*
TestRemote_Codes verifies the status to code mapping for backend failures.
*/
func TestRemote_Codes(t *testing.T) {
	tests := []struct {
		name   string
		status int
		code   string
	}{
		{"bad_request", http.StatusBadRequest, "VALIDATION_ERROR"},
		{"unauthorized", http.StatusUnauthorized, "UNAUTHORIZED"},
		{"forbidden", http.StatusForbidden, "FORBIDDEN"},
		{"not_found", http.StatusNotFound, "NOT_FOUND"},
		{"conflict", http.StatusConflict, "CONFLICT"},
		{"server_error", http.StatusBadGateway, "UPSTREAM_ERROR"},
		{"teapot", http.StatusTeapot, "REQUEST_FAILED"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := apperr.Remote(tt.status, "")
			assert.Equal(t, tt.code, err.Code)
			assert.Equal(t, tt.status, err.HTTPStatus)
			assert.NotEmpty(t, err.Message)
		})
	}
}

/*
TestMessageOr checks that backend messages win over fallbacks, except for transport failures.
*/
func TestMessageOr(t *testing.T) {
	remote := apperr.Remote(http.StatusBadRequest, "Title is required")
	assert.Equal(t, "Title is required", apperr.MessageOr(remote, "Failed to create post"))

	wrapped := fmt.Errorf("create post: %w", remote)
	assert.Equal(t, "Title is required", apperr.MessageOr(wrapped, "Failed to create post"))

	network := apperr.Network(errors.New("connection refused"))
	assert.Equal(t, "Failed to create post", apperr.MessageOr(network, "Failed to create post"))

	assert.Equal(t, "Failed", apperr.MessageOr(errors.New("boom"), "Failed"))
}

/*
TestAs_Unwrap verifies that the cause chain is reachable through an AppError.
*/
func TestAs_Unwrap(t *testing.T) {
	cause := errors.New("dial tcp: refused")
	err := fmt.Errorf("list posts: %w", apperr.Network(cause))

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "NETWORK_ERROR", ae.Code)
	assert.ErrorIs(t, err, cause)
	assert.True(t, apperr.HasStatus(err, http.StatusBadGateway))
	assert.Nil(t, apperr.As(cause))
}

func TestSurface(t *testing.T) {
	assert.Nil(t, apperr.Surface(nil, "x"))

	remote := apperr.Surface(apperr.Remote(http.StatusConflict, "Email already registered"), "Registration failed")
	assert.Equal(t, "CONFLICT", remote.Code)
	assert.Equal(t, "Email already registered", remote.Message)
	assert.Equal(t, http.StatusConflict, remote.HTTPStatus)

	network := apperr.Surface(apperr.Network(errors.New("refused")), "Login failed")
	assert.Equal(t, "NETWORK_ERROR", network.Code)
	assert.Equal(t, "Login failed", network.Message)

	plain := apperr.Surface(errors.New("boom"), "Failed")
	assert.Equal(t, "INTERNAL_ERROR", plain.Code)
	assert.Equal(t, "Failed", plain.Message)
}
