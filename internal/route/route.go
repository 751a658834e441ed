// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package route names the client's navigation surface and the checks that gate it.

Routes are plain paths. The checks here are a convenience for the front end;
they are not a security boundary, and the backend enforces authorization on
its own.

Routes:

  - Public: home, login, register, password reset, post detail, profile, series.
  - Authenticated: create post, edit post.
  - Admin: admin dashboard.
*/
package route

import (
	"net/url"
	"strings"
)

// # Static Routes

const (
	Home           = "/"
	Login          = "/login"
	Register       = "/register"
	ForgotPassword = "/forgot-password"
	ResetPassword  = "/reset-password"
	Create         = "/create"
	Admin          = "/admin"
)

// Tab is one of the profile page's tabs.
type Tab string

const (
	TabPosts  Tab = "posts"
	TabSaved  Tab = "saved"
	TabDrafts Tab = "drafts"
	TabStats  Tab = "stats"
)

// # Builders

// Post is the detail page of a post.
func Post(id string) string {
	return "/posts/" + url.PathEscape(id)
}

// EditPost is the editor of an existing post.
func EditPost(id string) string {
	return Post(id) + "/edit"
}

// Series is the detail page of a series.
func Series(id string) string {
	return "/series/" + url.PathEscape(id)
}

// Profile is a user's profile page. The posts tab is the default and is
// not spelled out.
func Profile(username string, tab Tab) string {
	path := "/profile/" + url.PathEscape(username)
	if tab == "" || tab == TabPosts {
		return path
	}
	return path + "?tab=" + url.QueryEscape(string(tab))
}

// ResetPasswordWithToken is the link sent in the password-reset email.
func ResetPasswordWithToken(token string) string {
	return ResetPassword + "?token=" + url.QueryEscape(token)
}

// # Access Control

// Access is the minimum session a route requires.
type Access int

const (
	Public Access = iota
	Authenticated
	AdminOnly
)

// Viewer is the part of the session the guards look at.
type Viewer interface {
	IsAuthenticated() bool
	IsAdmin() bool
}

// AccessOf classifies path.
func AccessOf(path string) Access {
	path, _, _ = strings.Cut(path, "?")
	path = strings.TrimRight(path, "/")

	switch {
	case path == Admin || strings.HasPrefix(path, Admin+"/"):
		return AdminOnly
	case path == Create:
		return Authenticated
	case strings.HasPrefix(path, "/posts/") && strings.HasSuffix(path, "/edit"):
		return Authenticated
	default:
		return Public
	}
}

// Check decides whether viewer may open path. When it may not, redirect is
// where the front end should go instead.
func Check(path string, viewer Viewer) (redirect string, ok bool) {
	switch AccessOf(path) {
	case Authenticated:
		if !viewer.IsAuthenticated() {
			return Login, false
		}
	case AdminOnly:
		if !viewer.IsAuthenticated() {
			return Login, false
		}
		if !viewer.IsAdmin() {
			return Home, false
		}
	}
	return "", true
}
