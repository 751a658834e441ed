// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package middleware

import (
	"net/http"

	"github.com/taibuivan/phoenix/internal/platform/apperr"
	"github.com/taibuivan/phoenix/internal/platform/respond"
)

// SessionChecker reports the state of the locally held session.
//
// The gateway does not verify tokens; it only knows whether the user logged in
// through this client. The backend remains the authority on every request.
type SessionChecker interface {
	IsAuthenticated() bool
	IsAdmin() bool
}

// RequireSession blocks requests while no session is held locally.
//
// # Flow
//  1. Ask the [SessionChecker] whether a session exists.
//  2. If not, abort with 401 and a pointer to the login route.
func RequireSession(checker SessionChecker) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			if !checker.IsAuthenticated() {
				respond.Error(writer, request, apperr.Unauthenticated())
				return
			}
			next.ServeHTTP(writer, request)
		})
	}
}

// RequireAdmin blocks requests unless the local session carries the admin role.
// It implies [RequireSession].
func RequireAdmin(checker SessionChecker) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			if !checker.IsAuthenticated() {
				respond.Error(writer, request, apperr.Unauthenticated())
				return
			}
			if !checker.IsAdmin() {
				respond.Error(writer, request, apperr.Forbidden("You do not have permission to access this page."))
				return
			}
			next.ServeHTTP(writer, request)
		})
	}
}
