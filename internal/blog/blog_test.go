// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package blog_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/phoenix/internal/blog"
	"github.com/taibuivan/phoenix/internal/platform/apperr"
)

/*
TestTagSet_Add covers normalization, duplicates, and the five-tag limit.
*/
func TestTagSet_Add(t *testing.T) {
	var set blog.TagSet

	tag, err := set.Add("Hello World!")
	require.NoError(t, err)
	assert.Equal(t, "helloworld", tag)

	_, err = set.Add("  HELLOWORLD ")
	assert.ErrorIs(t, err, blog.ErrTagDuplicate)

	_, err = set.Add("!!!")
	assert.ErrorIs(t, err, blog.ErrTagEmpty)

	for _, raw := range []string{"go", "web-dev", "db", "api"} {
		_, err := set.Add(raw)
		require.NoError(t, err)
	}
	assert.Equal(t, 5, set.Len())

	_, err = set.Add("sixth")
	assert.ErrorIs(t, err, blog.ErrTagLimit)
	assert.Equal(t, []string{"helloworld", "go", "web-dev", "db", "api"}, set.Values())
}

func TestTagSet_RemovePop(t *testing.T) {
	set := blog.NewTagSet([]string{"Go", "web", "go", "db"})
	assert.Equal(t, []string{"go", "web", "db"}, set.Values())

	set.Remove("web")
	assert.Equal(t, []string{"go", "db"}, set.Values())

	last, ok := set.Pop()
	assert.True(t, ok)
	assert.Equal(t, "db", last)

	set.Pop()
	_, ok = set.Pop()
	assert.False(t, ok)
	assert.NotNil(t, set.Values())
}

/*
TestPostForm_Request verifies the exact body built for a plain post.
*/
func TestPostForm_Request(t *testing.T) {
	req, err := blog.PostForm{Title: "T", Content: "C"}.Request()
	require.NoError(t, err)

	body, err := json.Marshal(req)
	require.NoError(t, err)
	assert.JSONEq(t, `{"title":"T","content":"C","isPremium":false,"price":0,"tags":[]}`, string(body))
}

func TestPostForm_Price(t *testing.T) {
	tests := []struct {
		name      string
		form      blog.PostForm
		wantPrice int64
		wantErr   bool
	}{
		{"premium_converts_to_minor_units", blog.PostForm{Title: "T", Content: "C", IsPremium: true, Price: "49.99"}, 4999, false},
		{"non_premium_forces_zero", blog.PostForm{Title: "T", Content: "C", Price: "49.99"}, 0, false},
		{"premium_without_price", blog.PostForm{Title: "T", Content: "C", IsPremium: true}, 0, true},
		{"premium_with_garbage", blog.PostForm{Title: "T", Content: "C", IsPremium: true, Price: "free"}, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := tt.form.Request()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantPrice, req.Price)
		})
	}
}

func TestPostForm_RequiresTitleAndContent(t *testing.T) {
	_, err := blog.PostForm{Title: "   ", Content: "C"}.Request()
	require.Error(t, err)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "Title and content are required", ae.Message)
	assert.Equal(t, "title", ae.Details[0].Field)
}

func TestFormFromPost(t *testing.T) {
	post := blog.Post{Title: "T", Content: "C", IsPremium: true, Price: 4900, Tags: []string{"go"}}
	form := blog.FormFromPost(post)

	assert.Equal(t, "49.00", form.Price)
	assert.True(t, form.Equal(blog.PostForm{Title: "T", Content: "C", IsPremium: true, Price: "49.00", Tags: []string{"go"}}))
	assert.False(t, form.Equal(blog.PostForm{Title: "T2", Content: "C", IsPremium: true, Price: "49.00", Tags: []string{"go"}}))
}

func TestResetPasswordForm(t *testing.T) {
	tests := []struct {
		name    string
		form    blog.ResetPasswordForm
		wantMsg string
	}{
		{"missing_token", blog.ResetPasswordForm{NewPassword: "secret1", ConfirmPassword: "secret1"}, "Invalid or missing reset token"},
		{"mismatch", blog.ResetPasswordForm{Token: "t", NewPassword: "secret1", ConfirmPassword: "secret2"}, "Passwords do not match"},
		{"too_short", blog.ResetPasswordForm{Token: "t", NewPassword: "abc", ConfirmPassword: "abc"}, "Password must be at least 6 characters"},
		{"valid", blog.ResetPasswordForm{Token: "t", NewPassword: "secret1", ConfirmPassword: "secret1"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.form.Validate()
			if tt.wantMsg == "" {
				assert.NoError(t, err)
				return
			}
			assert.EqualError(t, err, tt.wantMsg)
		})
	}
}

/*
TestTimestamp_Unmarshal accepts both the string and the array encodings.
*/
func TestTimestamp_Unmarshal(t *testing.T) {
	want := time.Date(2026, 3, 14, 9, 26, 53, 0, time.Local)

	tests := []struct {
		name string
		raw  string
	}{
		{"iso_local", `"2026-03-14T09:26:53"`},
		{"iso_fraction", `"2026-03-14T09:26:53.000"`},
		{"array", `[2026,3,14,9,26,53]`},
		{"array_with_nanos", `[2026,3,14,9,26,53,0]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ts blog.Timestamp
			require.NoError(t, json.Unmarshal([]byte(tt.raw), &ts))
			assert.True(t, want.Equal(ts.Time), "got %s", ts.Time)
		})
	}

	var ts blog.Timestamp
	require.NoError(t, json.Unmarshal([]byte(`null`), &ts))
	assert.True(t, ts.IsZero())

	assert.Error(t, json.Unmarshal([]byte(`"yesterday"`), &ts))
	assert.Error(t, json.Unmarshal([]byte(`[2026]`), &ts))
}

func TestTimestamp_InPost(t *testing.T) {
	var post blog.Post
	raw := `{"id":"p1","title":"T","createdAt":[2026,1,2,3,4,5,600000000],"updatedAt":null,"tags":["go"]}`
	require.NoError(t, json.Unmarshal([]byte(raw), &post))

	assert.Equal(t, 2026, post.CreatedAt.Year())
	assert.Equal(t, 600*time.Millisecond, time.Duration(post.CreatedAt.Nanosecond()))
	assert.True(t, post.UpdatedAt.IsZero())
}

func TestRelative(t *testing.T) {
	now := time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		ago  time.Duration
		want string
	}{
		{"future", -time.Minute, "just now"},
		{"seconds", 30 * time.Second, "just now"},
		{"one_minute", time.Minute, "1 minute ago"},
		{"minutes", 45 * time.Minute, "45 minutes ago"},
		{"hours", 3 * time.Hour, "3 hours ago"},
		{"one_day", 25 * time.Hour, "1 day ago"},
		{"weeks", 15 * 24 * time.Hour, "2 weeks ago"},
		{"absolute", 40 * 24 * time.Hour, "Sep 6, 2026"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, blog.Relative(now.Add(-tt.ago), now))
		})
	}

	assert.Equal(t, "", blog.Relative(time.Time{}, now))
}

func TestPost_Flags(t *testing.T) {
	assert.True(t, blog.Post{IsPremium: true}.Locked())
	assert.False(t, blog.Post{IsPremium: true, PaidByCurrentUser: true}.Locked())
	assert.False(t, blog.Post{IsPremium: true, Author: true}.Locked())
	assert.True(t, blog.Post{Status: blog.StatusDraft}.IsDraft())

	assert.Equal(t, blog.SortMostLiked, blog.NormalizeSort("MOSTLIKED"))
	assert.Equal(t, blog.SortNewest, blog.NormalizeSort("random"))
}

func TestUser_IsAdmin(t *testing.T) {
	assert.True(t, blog.User{Role: "ADMIN"}.IsAdmin())
	assert.False(t, blog.User{Role: "USER"}.IsAdmin())

	result := blog.AuthResult{Token: "t", Email: "a@b.c", Name: "A", Role: "USER"}
	assert.Equal(t, blog.User{Email: "a@b.c", Name: "A", Role: "USER"}, result.User())
}
