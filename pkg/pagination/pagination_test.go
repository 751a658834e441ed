// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package pagination_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/phoenix/pkg/pagination"
)

func TestParams_Query(t *testing.T) {
	q := pagination.Params{Page: 2, Size: 10}.Query()
	assert.Equal(t, "page=2&size=10", q.Encode())
}

/*
TestPage_Decode verifies that server metadata is decoded as-is.
*/
func TestPage_Decode(t *testing.T) {
	raw := `{"content":["c21","c22","c23","c24","c25"],"pageNumber":2,"totalPages":3,"totalElements":25,"first":false,"last":true}`

	var page pagination.Page[string]
	require.NoError(t, json.Unmarshal([]byte(raw), &page))

	assert.Len(t, page.Content, 5)
	assert.Equal(t, 2, page.PageNumber)
	assert.Equal(t, int64(25), page.TotalElements)
	assert.False(t, page.First)
	assert.True(t, page.Last)
}

func TestEmpty(t *testing.T) {
	page := pagination.Empty[int]()
	assert.NotNil(t, page.Content)
	assert.True(t, page.First)
	assert.True(t, page.Last)
}
