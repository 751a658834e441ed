// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package account implements the authentication flows: login, registration,
logout, and the two-step password reset.

Each flow validates its form locally, calls the backend, updates the session,
and navigates the way the corresponding screen does.
*/
package account

import (
	"context"
	"log/slog"

	"github.com/taibuivan/phoenix/internal/blog"
	"github.com/taibuivan/phoenix/internal/platform/apperr"
	"github.com/taibuivan/phoenix/internal/platform/clock"
	"github.com/taibuivan/phoenix/internal/platform/constants"
	"github.com/taibuivan/phoenix/internal/route"
	"github.com/taibuivan/phoenix/internal/session"
)

// AuthAPI is the backend surface of the authentication flows.
type AuthAPI interface {
	Login(ctx context.Context, req blog.LoginRequest) (blog.AuthResult, error)
	Register(ctx context.Context, req blog.RegisterRequest) (blog.AuthResult, error)
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, req blog.ResetPasswordRequest) error
}

// Service runs the authentication flows.
type Service struct {
	api     AuthAPI
	session *session.Store
	nav     route.Navigator
	clock   clock.Clock
	logger  *slog.Logger
}

// NewService wires the flows to their collaborators.
func NewService(api AuthAPI, sess *session.Store, nav route.Navigator, clk clock.Clock, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{api: api, session: sess, nav: nav, clock: clk, logger: logger}
}

// # Session Flows

// Login authenticates and starts a session, then goes home.
func (s *Service) Login(ctx context.Context, req blog.LoginRequest) (blog.User, error) {
	if err := blog.ValidateLogin(req); err != nil {
		return blog.User{}, err
	}

	result, err := s.api.Login(ctx, req)
	if err != nil {
		return blog.User{}, apperr.Surface(err, "Login failed")
	}

	return s.start(ctx, result)
}

// Register creates an account and starts a session, then goes home.
func (s *Service) Register(ctx context.Context, req blog.RegisterRequest) (blog.User, error) {
	if err := blog.ValidateRegister(req); err != nil {
		return blog.User{}, err
	}

	result, err := s.api.Register(ctx, req)
	if err != nil {
		return blog.User{}, apperr.Surface(err, "Registration failed")
	}

	return s.start(ctx, result)
}

func (s *Service) start(ctx context.Context, result blog.AuthResult) (blog.User, error) {
	user := result.User()
	if err := s.session.Login(ctx, result.Token, user); err != nil {
		return blog.User{}, apperr.Internal(err)
	}

	s.nav.Navigate(route.Home)
	return user, nil
}

// Logout ends the session and goes home.
func (s *Service) Logout(ctx context.Context) error {
	err := s.session.Logout(ctx)
	s.nav.Navigate(route.Home)
	if err != nil {
		return apperr.Internal(err)
	}
	return nil
}

// # Password Reset

// ForgotPassword asks the backend to email a reset link.
func (s *Service) ForgotPassword(ctx context.Context, email string) error {
	if err := blog.ValidateForgotPassword(email); err != nil {
		return err
	}

	if err := s.api.ForgotPassword(ctx, email); err != nil {
		return apperr.Surface(err, "Something went wrong. Please try again.")
	}
	return nil
}

// ResetPassword sets a new password from a reset link. On success the login
// page is opened after a short delay, leaving the confirmation visible.
func (s *Service) ResetPassword(ctx context.Context, form blog.ResetPasswordForm) error {
	req, err := form.Request()
	if err != nil {
		return err
	}

	if err := s.api.ResetPassword(ctx, req); err != nil {
		return apperr.Surface(err, "Failed to reset password. The link may be invalid or expired.")
	}

	s.logger.InfoContext(ctx, "password_reset")
	s.clock.AfterFunc(constants.ResetRedirectDelay, func() {
		s.nav.Navigate(route.Login)
	})
	return nil
}
