// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package respond_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/phoenix/internal/platform/apperr"
	"github.com/taibuivan/phoenix/internal/platform/respond"
)

func TestOK_Envelope(t *testing.T) {
	recorder := httptest.NewRecorder()
	respond.OK(recorder, map[string]int{"likeCount": 5})

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"data":{"likeCount":5}}`, recorder.Body.String())
}

func TestRaw_NoEnvelope(t *testing.T) {
	recorder := httptest.NewRecorder()
	respond.Raw(recorder, map[string]int{"count": 3})

	assert.JSONEq(t, `{"count":3}`, recorder.Body.String())
}

/*
TestError verifies status and body for typed and untyped errors.
*/
func TestError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"remote_validation", apperr.Remote(http.StatusBadRequest, "Title is required"), http.StatusBadRequest, "VALIDATION_ERROR"},
		{"unauthenticated", apperr.Unauthenticated(), http.StatusUnauthorized, "UNAUTHENTICATED"},
		{"network", apperr.Network(errors.New("refused")), http.StatusBadGateway, "NETWORK_ERROR"},
		{"untyped", errors.New("boom"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			respond.Error(recorder, httptest.NewRequest(http.MethodGet, "/", nil), tt.err)

			assert.Equal(t, tt.wantStatus, recorder.Code)

			var body respond.ErrorEnvelope
			require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
			assert.Equal(t, tt.wantCode, body.Code)
			assert.Equal(t, body.Error, body.Message)
			assert.NotContains(t, body.Message, "boom")
		})
	}
}
