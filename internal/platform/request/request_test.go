// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package requestutil_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	requestutil "github.com/taibuivan/phoenix/internal/platform/request"
	"github.com/taibuivan/phoenix/internal/platform/validate"
)

func TestDecodeJSON(t *testing.T) {
	var body struct {
		Title string `json:"title"`
	}

	request := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"title":"T"}`))
	require.NoError(t, requestutil.DecodeJSON(request, &body))
	assert.Equal(t, "T", body.Title)

	request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"title":`))
	assert.ErrorIs(t, requestutil.DecodeJSON(request, &body), validate.ErrInvalidJSON)

	// An empty body leaves the target untouched.
	request = httptest.NewRequest(http.MethodPost, "/", http.NoBody)
	assert.NoError(t, requestutil.DecodeJSON(request, &body))
}

func TestQueryHelpers(t *testing.T) {
	request := httptest.NewRequest(http.MethodGet, "/?page=3&size=x&restore=true", nil)

	assert.Equal(t, 3, requestutil.QueryInt(request, "page", 0))
	assert.Equal(t, 6, requestutil.QueryInt(request, "size", 6))
	assert.Equal(t, 0, requestutil.QueryInt(request, "missing", 0))
	assert.True(t, requestutil.QueryBool(request, "restore"))
	assert.False(t, requestutil.QueryBool(request, "missing"))
}
