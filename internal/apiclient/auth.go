// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package apiclient

import (
	"context"
	"net/http"

	"github.com/taibuivan/phoenix/internal/blog"
)

// Login exchanges credentials for a session token.
func (c *Client) Login(ctx context.Context, req blog.LoginRequest) (blog.AuthResult, error) {
	return do[blog.AuthResult](ctx, c, call{op: "auth.login", method: http.MethodPost, path: "/api/auth/login", body: req})
}

// Register creates an account and returns its first session token.
func (c *Client) Register(ctx context.Context, req blog.RegisterRequest) (blog.AuthResult, error) {
	return do[blog.AuthResult](ctx, c, call{op: "auth.register", method: http.MethodPost, path: "/api/auth/register", body: req})
}

// ForgotPassword asks the backend to mail a reset link. The backend answers
// success whether or not the address exists.
func (c *Client) ForgotPassword(ctx context.Context, email string) error {
	return c.exec(ctx, call{
		op: "auth.forgot_password", method: http.MethodPost, path: "/api/auth/forgot-password",
		body: blog.ForgotPasswordRequest{Email: email},
	})
}

// ResetPassword sets a new password using the token from the reset link.
func (c *Client) ResetPassword(ctx context.Context, req blog.ResetPasswordRequest) error {
	return c.exec(ctx, call{op: "auth.reset_password", method: http.MethodPost, path: "/api/auth/reset-password", body: req})
}
