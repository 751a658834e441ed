// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package apiclient_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/phoenix/internal/apiclient"
	"github.com/taibuivan/phoenix/internal/apiclient/apiclienttest"
	"github.com/taibuivan/phoenix/internal/blog"
	"github.com/taibuivan/phoenix/internal/platform/apperr"
	"github.com/taibuivan/phoenix/internal/platform/ctxutil"
	"github.com/taibuivan/phoenix/pkg/pagination"
)

/*
TestBearerToken verifies that the token is attached only when a session exists.
*/
func TestBearerToken(t *testing.T) {
	backend := apiclienttest.New(t)
	backend.Router.Get("/api/tags", func(w http.ResponseWriter, _ *http.Request) {
		apiclienttest.Data(w, http.StatusOK, []string{"go"})
	})

	_, err := backend.Client(t, apiclienttest.StaticToken("")).Tags(context.Background())
	require.NoError(t, err)
	_, err = backend.Client(t, apiclienttest.StaticToken("jwt-abc")).Tags(context.Background())
	require.NoError(t, err)
	_, err = backend.Client(t, nil).Tags(context.Background())
	require.NoError(t, err)

	requests := backend.Requests()
	require.Len(t, requests, 3)
	assert.Empty(t, requests[0].Authorization)
	assert.Equal(t, "Bearer jwt-abc", requests[1].Authorization)
	assert.Empty(t, requests[2].Authorization)
}

func TestRequestIDForwarded(t *testing.T) {
	backend := apiclienttest.New(t)
	backend.Router.Get("/api/tags", func(w http.ResponseWriter, _ *http.Request) {
		apiclienttest.Data(w, http.StatusOK, []string{})
	})
	client := backend.Client(t, nil)

	ctx := ctxutil.WithRequestID(context.Background(), "req-42")
	_, err := client.Tags(ctx)
	require.NoError(t, err)
	_, err = client.Tags(context.Background())
	require.NoError(t, err)

	requests := backend.Requests()
	assert.Equal(t, "req-42", requests[0].RequestID)
	assert.NotEmpty(t, requests[1].RequestID)
}

/*
TestErrors covers the mapping of backend failures and transport failures.
*/
func TestErrors(t *testing.T) {
	backend := apiclienttest.New(t)
	backend.Router.Post("/api/posts", func(w http.ResponseWriter, _ *http.Request) {
		apiclienttest.Fail(w, http.StatusBadRequest, "Title is required")
	})
	backend.Router.Get("/api/posts/{id}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("<html>oops</html>"))
	})
	client := backend.Client(t, nil)

	t.Run("backend_message_kept", func(t *testing.T) {
		_, err := client.CreatePost(context.Background(), blog.PostRequest{})
		ae := apperr.As(err)
		require.NotNil(t, ae)
		assert.Equal(t, http.StatusBadRequest, ae.HTTPStatus)
		assert.Equal(t, "Title is required", ae.Message)
		assert.Equal(t, "Title is required", apperr.MessageOr(err, "Failed to create post"))
	})

	t.Run("non_json_body", func(t *testing.T) {
		_, err := client.GetPost(context.Background(), "p1")
		ae := apperr.As(err)
		require.NotNil(t, ae)
		assert.Equal(t, "UPSTREAM_ERROR", ae.Code)
	})

	t.Run("network", func(t *testing.T) {
		dead, err := apiclient.New(apiclient.Options{BaseURL: "http://127.0.0.1:1"})
		require.NoError(t, err)

		_, err = dead.Tags(context.Background())
		ae := apperr.As(err)
		require.NotNil(t, ae)
		assert.Equal(t, "NETWORK_ERROR", ae.Code)
		assert.Equal(t, "Failed to load tags", apperr.MessageOr(err, "Failed to load tags"))
	})

	t.Run("canceled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := client.Tags(ctx)
		assert.True(t, apiclient.IsCanceled(err))
	})

	t.Run("unauthorized", func(t *testing.T) {
		backend.Router.Get("/api/bookmarks", func(w http.ResponseWriter, _ *http.Request) {
			apiclienttest.Fail(w, http.StatusUnauthorized, "Full authentication is required")
		})
		_, err := client.Bookmarks(context.Background())
		assert.True(t, apiclient.IsUnauthorized(err))
	})
}

/*
TestDotSegmentsRejected verifies that an identifier of "." or ".." cannot walk
the request onto another endpoint.
*/
func TestDotSegmentsRejected(t *testing.T) {
	backend := apiclienttest.New(t)
	client := backend.Client(t, nil)
	ctx := context.Background()

	calls := []struct {
		name string
		call func() error
	}{
		{"post_parent", func() error { _, err := client.GetPost(ctx, ".."); return err }},
		{"post_current", func() error { _, err := client.GetPost(ctx, "."); return err }},
		{"post_empty", func() error { _, err := client.GetPost(ctx, ""); return err }},
		{"profile_parent", func() error { _, err := client.Profile(ctx, ".."); return err }},
		{"comment_parent", func() error { return client.DeleteComment(ctx, "p1", "..") }},
	}

	for _, tt := range calls {
		t.Run(tt.name, func(t *testing.T) {
			ae := apperr.As(tt.call())
			require.NotNil(t, ae)
			assert.Equal(t, "VALIDATION_ERROR", ae.Code)
		})
	}
	assert.Empty(t, backend.Requests())
}

func TestNew_InvalidBaseURL(t *testing.T) {
	for _, raw := range []string{"", "localhost:8080", "://bad"} {
		_, err := apiclient.New(apiclient.Options{BaseURL: raw})
		assert.Error(t, err, raw)
	}
}

/*
TestListPosts verifies query encoding and paged envelope decoding.
*/
func TestListPosts(t *testing.T) {
	backend := apiclienttest.New(t)
	backend.Router.Get("/api/posts", func(w http.ResponseWriter, _ *http.Request) {
		apiclienttest.Data(w, http.StatusOK, map[string]any{
			"content":       []map[string]any{{"id": "p7", "title": "Seven"}},
			"pageNumber":    1,
			"totalPages":    2,
			"totalElements": 7,
			"first":         false,
			"last":          true,
		})
	})

	page, err := backend.Client(t, nil).ListPosts(context.Background(),
		blog.ListFilter{Search: "go lang", Tag: "go"},
		pagination.Params{Page: 1, Size: 6},
	)
	require.NoError(t, err)

	assert.Equal(t, "Seven", page.Content[0].Title)
	assert.Equal(t, 1, page.PageNumber)
	assert.True(t, page.Last)
	assert.False(t, page.First)

	requests := backend.Requests()
	assert.Equal(t, "page=1&search=go+lang&size=6&sort=newest&tag=go", requests[0].RawQuery)
}

/*
TestCommentsPage verifies that page 2 of a 3-page collection is returned as sent.
*/
func TestCommentsPage(t *testing.T) {
	backend := apiclienttest.New(t)
	backend.Router.Get("/api/posts/{id}/comments", func(w http.ResponseWriter, _ *http.Request) {
		content := make([]map[string]any, 0, 5)
		for i := 21; i <= 25; i++ {
			content = append(content, map[string]any{"id": "c" + string(rune('0'+i%10)), "content": "comment"})
		}
		apiclienttest.Data(w, http.StatusOK, map[string]any{
			"content": content, "pageNumber": 1, "totalPages": 3, "totalElements": 25, "first": false, "last": false,
		})
	})

	page, err := backend.Client(t, nil).ListComments(context.Background(), "p1", pagination.Params{Page: 1, Size: 10})
	require.NoError(t, err)

	assert.Len(t, page.Content, 5)
	assert.False(t, page.First)
	assert.False(t, page.Last)
	assert.Equal(t, int64(25), page.TotalElements)
	assert.Equal(t, "page=1&size=10", backend.Requests()[0].RawQuery)
}

func TestReplyBody(t *testing.T) {
	backend := apiclienttest.New(t)
	backend.Router.Post("/api/posts/{id}/comments", func(w http.ResponseWriter, _ *http.Request) {
		apiclienttest.Data(w, http.StatusCreated, map[string]any{"id": "c2", "content": "thanks", "parentId": "c1"})
	})

	comment, err := backend.Client(t, apiclienttest.StaticToken("t")).Reply(context.Background(), "p1", "c1", "thanks")
	require.NoError(t, err)
	assert.True(t, comment.IsReply())
	assert.JSONEq(t, `{"content":"thanks","parentId":"c1"}`, string(backend.Requests()[0].Body))
}

/*
TestBareEndpoints covers the endpoints answered without the data envelope.
*/
func TestBareEndpoints(t *testing.T) {
	backend := apiclienttest.New(t)
	backend.Router.Get("/api/notifications/unread-count", func(w http.ResponseWriter, _ *http.Request) {
		apiclienttest.Bare(w, http.StatusOK, map[string]int{"count": 4})
	})
	backend.Router.Get("/api/notifications", func(w http.ResponseWriter, _ *http.Request) {
		apiclienttest.Bare(w, http.StatusOK, map[string]any{
			"content":    []map[string]any{{"id": "n1", "type": "LIKE", "read": false}},
			"pageNumber": 0, "totalPages": 1, "totalElements": 1, "first": true, "last": true,
		})
	})
	backend.Router.Put("/api/notifications/read-all", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	backend.Router.Post("/api/payments/create-order", func(w http.ResponseWriter, _ *http.Request) {
		apiclienttest.Bare(w, http.StatusOK, map[string]any{"orderId": "order_1", "amount": 4999, "currency": "INR", "keyId": "rzp_test"})
	})

	client := backend.Client(t, apiclienttest.StaticToken("t"))
	ctx := context.Background()

	count, err := client.UnreadCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(4), count)

	page, err := client.Notifications(ctx, pagination.Params{Page: 0, Size: 15})
	require.NoError(t, err)
	assert.Equal(t, "LIKE", page.Content[0].Type)

	require.NoError(t, client.MarkAllRead(ctx))

	order, err := client.CreateOrder(ctx, "p9")
	require.NoError(t, err)
	assert.Equal(t, blog.Order{OrderID: "order_1", Amount: 4999, Currency: "INR", KeyID: "rzp_test"}, order)

	var body map[string]string
	require.NoError(t, json.Unmarshal(backend.Requests()[3].Body, &body))
	assert.Equal(t, "p9", body["postId"])
}

func TestToggles(t *testing.T) {
	backend := apiclienttest.New(t)
	backend.Router.Post("/api/posts/{id}/like", func(w http.ResponseWriter, _ *http.Request) {
		apiclienttest.Data(w, http.StatusOK, blog.LikeState{LikeCount: 5, LikedByCurrentUser: true})
	})
	backend.Router.Post("/api/bookmarks/{id}", func(w http.ResponseWriter, _ *http.Request) {
		apiclienttest.Data(w, http.StatusOK, true)
	})
	backend.Router.Post("/api/users/{name}/follow", func(w http.ResponseWriter, _ *http.Request) {
		apiclienttest.Data(w, http.StatusOK, false)
	})

	client := backend.Client(t, apiclienttest.StaticToken("t"))
	ctx := context.Background()

	like, err := client.ToggleLike(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, blog.LikeState{LikeCount: 5, LikedByCurrentUser: true}, like)

	bookmarked, err := client.ToggleBookmark(ctx, "p1")
	require.NoError(t, err)
	assert.True(t, bookmarked)

	following, err := client.ToggleFollow(ctx, "jane doe")
	require.NoError(t, err)
	assert.False(t, following)

	assert.Equal(t, "/api/users/jane doe/follow", backend.Requests()[2].Path)
}
