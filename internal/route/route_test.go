// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package route_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/phoenix/internal/route"
)

type viewer struct{ authenticated, admin bool }

func (v viewer) IsAuthenticated() bool { return v.authenticated }
func (v viewer) IsAdmin() bool         { return v.admin }

func TestBuilders(t *testing.T) {
	assert.Equal(t, "/posts/p1", route.Post("p1"))
	assert.Equal(t, "/posts/p1/edit", route.EditPost("p1"))
	assert.Equal(t, "/series/s%2F1", route.Series("s/1"))
	assert.Equal(t, "/profile/jane", route.Profile("jane", route.TabPosts))
	assert.Equal(t, "/profile/jane", route.Profile("jane", ""))
	assert.Equal(t, "/profile/jane?tab=drafts", route.Profile("jane", route.TabDrafts))
	assert.Equal(t, "/reset-password?token=a+b%26c", route.ResetPasswordWithToken("a b&c"))
}

/*
TestCheck covers the guard table for each kind of viewer.
*/
func TestCheck(t *testing.T) {
	anonymous := viewer{}
	member := viewer{authenticated: true}
	admin := viewer{authenticated: true, admin: true}

	tests := []struct {
		name     string
		path     string
		viewer   viewer
		redirect string
		ok       bool
	}{
		{"home_anonymous", route.Home, anonymous, "", true},
		{"post_anonymous", route.Post("1"), anonymous, "", true},
		{"create_anonymous", route.Create, anonymous, route.Login, false},
		{"create_member", route.Create, member, "", true},
		{"edit_anonymous", route.EditPost("1"), anonymous, route.Login, false},
		{"admin_anonymous", route.Admin, anonymous, route.Login, false},
		{"admin_member", route.Admin, member, route.Home, false},
		{"admin_admin", route.Admin + "/", admin, "", true},
		{"profile_tab_anonymous", route.Profile("jane", route.TabSaved), anonymous, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			redirect, ok := route.Check(tt.path, tt.viewer)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.redirect, redirect)
		})
	}
}

func TestHistory(t *testing.T) {
	h := route.NewHistory(nil)
	assert.Equal(t, route.Home, h.Current())

	h.Navigate(route.Post("1"))
	h.Navigate(route.Login)
	assert.Equal(t, route.Login, h.Current())
	assert.Equal(t, []string{"/", "/posts/1", "/login"}, h.Entries())

	assert.Equal(t, "/posts/1", h.Back())
	assert.Equal(t, "/", h.Back())
	assert.Equal(t, "/", h.Back())
}
