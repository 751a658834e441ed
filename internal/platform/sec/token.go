// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package sec provides the client's small set of security primitives.
//
// # Architecture
//
// The client trusts the backend: it never verifies a token signature and never
// validates token format before storing it. This package only offers:
//
//   - Informational inspection of a bearer token's expiry (for `whoami`).
//   - Sealing of values kept in durable client storage, so that a copied
//     database file does not expose a live bearer token.
package sec

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenInfo is the unverified, informational view of a bearer token.
type TokenInfo struct {
	Subject   string
	Issuer    string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Inspect decodes the registered claims of a JWT without verifying it.
//
// It reports false for opaque (non-JWT) tokens. The result must never be used
// to decide whether a session is authenticated; only the backend decides that.
func Inspect(token string) (TokenInfo, bool) {
	if token == "" {
		return TokenInfo{}, false
	}

	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return TokenInfo{}, false
	}

	info := TokenInfo{Subject: claims.Subject, Issuer: claims.Issuer}
	if claims.IssuedAt != nil {
		info.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		info.ExpiresAt = claims.ExpiresAt.Time
	}

	return info, true
}

// Expired reports whether the token carries an expiry that lies before now.
// Tokens without an expiry are never considered expired.
func (info TokenInfo) Expired(now time.Time) bool {
	return !info.ExpiresAt.IsZero() && info.ExpiresAt.Before(now)
}
