// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package editor drives the create and edit post flows.

An [Editor] owns the form of one editing context and its autosave controller.
Submitting validates the form, sends the request, clears the autosave record,
and navigates to the post.
*/
package editor

import (
	"context"
	"log/slog"

	"github.com/taibuivan/phoenix/internal/autosave"
	"github.com/taibuivan/phoenix/internal/blog"
	"github.com/taibuivan/phoenix/internal/platform/apperr"
	"github.com/taibuivan/phoenix/internal/platform/clock"
	"github.com/taibuivan/phoenix/internal/platform/metrics"
	"github.com/taibuivan/phoenix/internal/route"
	"github.com/taibuivan/phoenix/internal/storage"
)

// PostsAPI is the backend surface the editor needs.
type PostsAPI interface {
	GetPost(ctx context.Context, id string) (blog.Post, error)
	CreatePost(ctx context.Context, req blog.PostRequest) (blog.Post, error)
	UpdatePost(ctx context.Context, id string, req blog.PostRequest) (blog.Post, error)
}

// Deps are the collaborators shared by every editor.
type Deps struct {
	API     PostsAPI
	Store   storage.Store
	Clock   clock.Clock
	Nav     route.Navigator
	Logger  *slog.Logger
	Metrics *metrics.Metrics
}

// Editor is one open editing context.
type Editor struct {
	deps   Deps
	postID string
	drafts *autosave.Controller
}

// OpenNew opens the "create post" editor.
func OpenNew(ctx context.Context, deps Deps) *Editor {
	e := &Editor{
		deps:   deps,
		drafts: autosave.New(deps.Store, deps.Clock, autosave.KeyFor(""), deps.Logger, deps.Metrics),
	}
	e.drafts.Mount(ctx, blog.PostForm{Tags: []string{}})
	return e
}

// OpenEdit fetches postID and opens its editor with the server's values as
// baseline.
//
// A viewer who is not the author is sent to the post page and gets a
// FORBIDDEN error.
func OpenEdit(ctx context.Context, deps Deps, viewer blog.User, postID string) (*Editor, error) {
	post, err := deps.API.GetPost(ctx, postID)
	if err != nil {
		return nil, apperr.Surface(err, "Failed to load post")
	}

	if !post.Author && post.AuthorEmail != viewer.Email {
		deps.Nav.Navigate(route.Post(postID))
		return nil, apperr.Forbidden("Only the author can edit this post")
	}

	e := &Editor{
		deps:   deps,
		postID: postID,
		drafts: autosave.New(deps.Store, deps.Clock, autosave.KeyFor(postID), deps.Logger, deps.Metrics),
	}
	e.drafts.Mount(ctx, blog.FormFromPost(post))
	return e, nil
}

// # Draft Offer

// Offer returns the autosave record found when the editor opened.
func (e *Editor) Offer() (autosave.Record, bool) {
	return e.drafts.Offer()
}

// Restore applies the offered record.
func (e *Editor) Restore() (blog.PostForm, bool) {
	return e.drafts.Restore()
}

// Dismiss discards the offered record.
func (e *Editor) Dismiss(ctx context.Context) error {
	return e.drafts.Dismiss(ctx)
}

// # Editing

// Form returns the current form values.
func (e *Editor) Form() blog.PostForm {
	return e.drafts.Form()
}

// Update replaces the form values.
func (e *Editor) Update(form blog.PostForm) autosave.State {
	return e.drafts.Update(form)
}

// AddTag normalizes raw and adds it to the form.
func (e *Editor) AddTag(raw string) (string, error) {
	form := e.drafts.Form()
	set := blog.NewTagSet(form.Tags)

	tag, err := set.Add(raw)
	if err != nil {
		return tag, err
	}

	form.Tags = set.Values()
	e.drafts.Update(form)
	return tag, nil
}

// RemoveTag removes tag from the form.
func (e *Editor) RemoveTag(tag string) {
	form := e.drafts.Form()
	set := blog.NewTagSet(form.Tags)
	set.Remove(tag)

	form.Tags = set.Values()
	e.drafts.Update(form)
}

// Changed reports whether the form differs from its baseline.
func (e *Editor) Changed() bool {
	return e.drafts.Changed()
}

// State returns the autosave state.
func (e *Editor) State() autosave.State {
	return e.drafts.State()
}

// Flush persists the form now if it has unsaved changes.
func (e *Editor) Flush(ctx context.Context) error {
	return e.drafts.Flush(ctx)
}

// Close stops the autosave interval.
func (e *Editor) Close() {
	e.drafts.Close()
}

// # Submit

// Submit validates and sends the form. With saveAsDraft the post is stored
// unpublished.
//
// On success the autosave record is deleted and the front end navigates to
// the post. On failure the backend's message is kept when there is one.
func (e *Editor) Submit(ctx context.Context, saveAsDraft bool) (blog.Post, error) {
	req, err := e.drafts.Form().Request()
	if err != nil {
		return blog.Post{}, err
	}
	req.SaveAsDraft = saveAsDraft

	var (
		post     blog.Post
		fallback string
	)
	if e.postID == "" {
		post, err = e.deps.API.CreatePost(ctx, req)
		fallback = "Failed to create post"
	} else {
		post, err = e.deps.API.UpdatePost(ctx, e.postID, req)
		fallback = "Failed to update post"
	}
	if err != nil {
		return blog.Post{}, apperr.Surface(err, fallback)
	}

	if post.ID == "" {
		post.ID = e.postID
	}

	if err := e.drafts.Submitted(ctx); err != nil {
		e.logger().WarnContext(ctx, "draft_clear_failed", slog.Any("error", err))
	}

	e.deps.Nav.Navigate(route.Post(post.ID))
	return post, nil
}

func (e *Editor) logger() *slog.Logger {
	if e.deps.Logger == nil {
		return slog.Default()
	}
	return e.deps.Logger
}
