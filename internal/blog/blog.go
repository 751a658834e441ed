// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package blog defines the domain types exchanged with the Phoenix blogging backend.

It mirrors the backend's JSON contract (field names, optional fields, timestamp
formats) and holds the small amount of client-side form logic that decides
what a request body looks like: tag normalization, price conversion, and the
checks a form runs before anything is sent.

Entities:

  - Post: Authored article, optionally premium (paywalled).
  - Comment: One level of replies via ParentID.
  - Notification: Activity addressed to the current user.
  - Series: Ordered collection of an author's posts.
  - Profile: Public view of a user plus follow counters.
*/
package blog

import "github.com/taibuivan/phoenix/internal/platform/constants"

// # Identity

// User is the identity cached alongside the session token.
type User struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

// IsAdmin reports whether the user carries the admin role.
func (u User) IsAdmin() bool {
	return u.Role == constants.RoleAdmin
}

// AuthResult is the backend's answer to a successful login or registration.
type AuthResult struct {
	Token string `json:"token"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

// User extracts the cached identity from the result.
func (r AuthResult) User() User {
	return User{Email: r.Email, Name: r.Name, Role: r.Role}
}

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest is the body of POST /api/auth/register.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ForgotPasswordRequest is the body of POST /api/auth/forgot-password.
type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

// ResetPasswordRequest is the body of POST /api/auth/reset-password.
type ResetPasswordRequest struct {
	Token       string `json:"token"`
	NewPassword string `json:"newPassword"`
}

// AdminUser is one row of the admin dashboard's user table.
type AdminUser struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	CreatedAt Timestamp `json:"createdAt"`
}
