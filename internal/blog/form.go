// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package blog

import (
	"slices"
	"strings"

	"github.com/taibuivan/phoenix/internal/platform/constants"
	"github.com/taibuivan/phoenix/internal/platform/validate"
	"github.com/taibuivan/phoenix/pkg/convert"
)

// # Post Editor

// PostForm is the state of the post editor, as typed.
//
// Price is kept as the author typed it, in major currency units; it is
// converted only when the request is built. PostForm is also the shape of an
// autosave record, so its JSON names are part of the stored format.
type PostForm struct {
	Title     string   `json:"title"`
	Content   string   `json:"content"`
	IsPremium bool     `json:"isPremium"`
	Price     string   `json:"price"`
	Tags      []string `json:"tags"`
}

// FormFromPost seeds the editor with a fetched post.
func FormFromPost(post Post) PostForm {
	form := PostForm{
		Title:     post.Title,
		Content:   post.Content,
		IsPremium: post.IsPremium,
		Tags:      NewTagSet(post.Tags).Values(),
	}
	if post.IsPremium {
		form.Price = convert.FromMinorUnits(post.Price)
	}
	return form
}

// Equal reports whether two forms hold the same values.
func (f PostForm) Equal(other PostForm) bool {
	return f.Title == other.Title &&
		f.Content == other.Content &&
		f.IsPremium == other.IsPremium &&
		f.Price == other.Price &&
		slices.Equal(f.Tags, other.Tags)
}

// Validate runs the editor's pre-submit checks.
//
// The top-level message is the one the editor always showed; the field
// details are there for richer front ends.
func (f PostForm) Validate() error {
	v := &validate.Validator{}
	v.Required("title", f.Title).Required("content", f.Content)
	if v.HasErrors() {
		return v.ErrWith("Title and content are required")
	}

	if f.IsPremium {
		minor, ok := convert.ToMinorUnits(f.Price)
		v.Custom("price", !ok || minor < 1, "Premium posts need a price")
	}
	v.Custom("tags", len(f.Tags) > constants.MaxTags, "A post can have at most 5 tags")

	return v.ErrWith("Please fix the highlighted fields")
}

// Request validates the form and builds the request body.
//
// Price is converted to minor units when premium and forced to 0 otherwise;
// Tags is never nil. Title and content are sent as typed.
func (f PostForm) Request() (PostRequest, error) {
	if err := f.Validate(); err != nil {
		return PostRequest{}, err
	}

	var price int64
	if f.IsPremium {
		price, _ = convert.ToMinorUnits(f.Price)
	}

	tags := f.Tags
	if tags == nil {
		tags = []string{}
	}

	return PostRequest{
		Title:     f.Title,
		Content:   f.Content,
		IsPremium: f.IsPremium,
		Price:     price,
		Tags:      tags,
	}, nil
}

// # Account Forms

// ResetPasswordForm is the state of the password reset page.
type ResetPasswordForm struct {
	Token           string
	NewPassword     string
	ConfirmPassword string
}

// Validate runs the reset page's checks, in the order the page shows them.
func (f ResetPasswordForm) Validate() error {
	switch {
	case strings.TrimSpace(f.Token) == "":
		return validate.RequiredError("token", "Invalid or missing reset token")
	case f.NewPassword != f.ConfirmPassword:
		return validate.RequiredError("confirmPassword", "Passwords do not match")
	case len(f.NewPassword) < constants.MinPasswordLength:
		return validate.RequiredError("newPassword", "Password must be at least 6 characters")
	}
	return nil
}

// Request builds the reset request body.
func (f ResetPasswordForm) Request() (ResetPasswordRequest, error) {
	if err := f.Validate(); err != nil {
		return ResetPasswordRequest{}, err
	}
	return ResetPasswordRequest{Token: f.Token, NewPassword: f.NewPassword}, nil
}

// ValidateLogin checks the login form before it is sent.
func ValidateLogin(req LoginRequest) error {
	v := &validate.Validator{}
	v.Required("email", req.Email).Required("password", req.Password)
	return v.ErrWith("Email and password are required")
}

// ValidateRegister checks the registration form before it is sent.
func ValidateRegister(req RegisterRequest) error {
	v := &validate.Validator{}
	v.Required("name", req.Name).Required("email", req.Email).Required("password", req.Password)
	if v.HasErrors() {
		return v.ErrWith("All fields are required")
	}
	v.Email("email", req.Email)
	return v.ErrWith("Must be a valid email address")
}

// ValidateForgotPassword checks the email of the forgot-password form.
func ValidateForgotPassword(email string) error {
	v := &validate.Validator{}
	v.Required("email", email)
	if v.HasErrors() {
		return v.ErrWith("Email is required")
	}
	v.Email("email", email)
	return v.ErrWith("Must be a valid email address")
}

// ValidateComment checks a comment body before it is sent.
func ValidateComment(content string) error {
	if strings.TrimSpace(content) == "" {
		return validate.RequiredError("content", "Content is required")
	}
	return nil
}
