// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package gateway

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/phoenix/internal/account"
	"github.com/taibuivan/phoenix/internal/autosave"
	"github.com/taibuivan/phoenix/internal/blog"
	"github.com/taibuivan/phoenix/internal/mutation"
	"github.com/taibuivan/phoenix/internal/notify"
	"github.com/taibuivan/phoenix/internal/paging"
	"github.com/taibuivan/phoenix/internal/platform/apperr"
	"github.com/taibuivan/phoenix/internal/platform/clock"
	"github.com/taibuivan/phoenix/internal/platform/constants"
	"github.com/taibuivan/phoenix/internal/platform/middleware"
	requestutil "github.com/taibuivan/phoenix/internal/platform/request"
	"github.com/taibuivan/phoenix/internal/platform/respond"
	"github.com/taibuivan/phoenix/internal/session"
	"github.com/taibuivan/phoenix/internal/storage"
	"github.com/taibuivan/phoenix/pkg/pagination"
)

// newDraftContext names the "create post" editor in /drafts/{context}.
const newDraftContext = "new"

// AdminAPI is the slice of the backend client the admin routes need.
type AdminAPI interface {
	AdminPosts(ctx context.Context) ([]blog.Post, error)
	AdminUsers(ctx context.Context) ([]blog.AdminUser, error)
	AdminDeletePost(ctx context.Context, id string) error
}

// Controllers are the collaborators the routes delegate to.
type Controllers struct {
	Session    *session.Store
	Appearance *session.Appearance
	Account    *account.Service
	Feed       *paging.List[blog.Post]
	Likes      *mutation.Likes
	Bookmarks  *mutation.Bookmarks
	Follows    *mutation.Follows
	Unread     *notify.Poller
	Admin      AdminAPI

	// Drafts is the store autosave records live in.
	Drafts storage.Store
	Clock  clock.Clock
}

// Handler implements the controller routes.
type Handler struct {
	c Controllers
}

// NewHandler constructs a [Handler].
func NewHandler(c Controllers) *Handler {
	if c.Clock == nil {
		c.Clock = clock.Real()
	}
	return &Handler{c: c}
}

// Routes returns the router mounted under /api.
//
// # Endpoints
//   - GET    /session                    : Current session and theme.
//   - POST   /session                    : Log in.
//   - DELETE /session                    : Log out.
//   - GET    /posts                      : One page of the feed.
//   - POST   /posts/{id}/like            : Toggle a like.
//   - POST   /posts/{id}/bookmark        : Toggle a bookmark.
//   - POST   /users/{name}/follow        : Toggle a follow.
//   - GET    /drafts/{context}           : Autosave record on offer.
//   - PUT    /drafts/{context}           : Store an autosave record.
//   - DELETE /drafts/{context}           : Discard an autosave record.
//   - GET    /notifications/unread-count : Last known unread counter.
//   - GET    /admin/posts                : Every post. Admin session only.
//   - GET    /admin/users                : Every account. Admin session only.
//   - DELETE /admin/posts/{id}           : Delete any post. Admin session only.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/session", handler.getSession)
	router.Post("/session", handler.login)
	router.Delete("/session", handler.logout)

	router.Get("/posts", handler.listPosts)

	router.Route("/drafts/{context}", func(r chi.Router) {
		r.Get("/", handler.getDraft)
		r.Put("/", handler.putDraft)
		r.Delete("/", handler.deleteDraft)
	})

	router.Group(func(r chi.Router) {
		r.Use(middleware.RequireSession(handler.c.Session))

		r.Post("/posts/{id}/like", handler.toggleLike)
		r.Post("/posts/{id}/bookmark", handler.toggleBookmark)
		r.Post("/users/{name}/follow", handler.toggleFollow)
		r.Get("/notifications/unread-count", handler.unreadCount)
	})

	if handler.c.Admin != nil {
		router.Route("/admin", func(r chi.Router) {
			r.Use(middleware.RequireAdmin(handler.c.Session))

			r.Get("/posts", handler.adminPosts)
			r.Get("/users", handler.adminUsers)
			r.Delete("/posts/{id}", handler.adminDeletePost)
		})
	}

	return router
}

// # Session

type sessionView struct {
	Authenticated bool       `json:"authenticated"`
	Admin         bool       `json:"admin"`
	User          *blog.User `json:"user,omitempty"`
	Theme         string     `json:"theme,omitempty"`
}

func (handler *Handler) sessionView() sessionView {
	view := sessionView{
		Authenticated: handler.c.Session.IsAuthenticated(),
		Admin:         handler.c.Session.IsAdmin(),
	}
	if user, ok := handler.c.Session.User(); ok {
		view.User = &user
	}
	if handler.c.Appearance != nil {
		view.Theme = string(handler.c.Appearance.Current())
	}
	return view
}

// getSession handles GET /api/session.
func (handler *Handler) getSession(writer http.ResponseWriter, request *http.Request) {
	respond.OK(writer, handler.sessionView())
}

// login handles POST /api/session.
//
// # Returns
//   - 200 with the new session view.
//   - 400 when the form is incomplete.
//   - The backend's status and message when it rejects the credentials.
func (handler *Handler) login(writer http.ResponseWriter, request *http.Request) {
	var input blog.LoginRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if _, err := handler.c.Account.Login(request.Context(), input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, handler.sessionView())
}

// logout handles DELETE /api/session.
func (handler *Handler) logout(writer http.ResponseWriter, request *http.Request) {
	if err := handler.c.Account.Logout(request.Context()); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

// # Feed

type feedView struct {
	Page    pagination.Page[blog.Post] `json:"page"`
	Index   int                        `json:"index"`
	Size    int                        `json:"size"`
	Search  string                     `json:"search"`
	Tag     string                     `json:"tag"`
	Sort    string                     `json:"sort"`
	Message string                     `json:"message,omitempty"`
}

// listPosts handles GET /api/posts?page=&search=&tag=&sort=.
//
// A request that changes any filter starts at page 0 whatever page it names.
// Concurrent requests share the one feed: each response describes its own
// fetch, and the feed keeps whichever of them was issued last.
//
// A failed load is not an HTTP error: the view carries the inline message the
// feed would show, next to the last good page.
func (handler *Handler) listPosts(writer http.ResponseWriter, request *http.Request) {
	query := request.URL.Query()

	state, _, err := handler.c.Feed.Apply(request.Context(), paging.Query{
		Search: query.Get("search"),
		Tag:    query.Get("tag"),
		Sort:   query.Get("sort"),
		Page:   requestutil.QueryInt(request, "page", pagination.FirstPage),
	})
	if err == nil {
		for _, post := range state.Data.Content {
			handler.c.Likes.SeedPost(post)
			handler.c.Bookmarks.SeedPost(post)
		}
	}

	respond.OK(writer, feedView{
		Page:    state.Data,
		Index:   state.PageIndex,
		Size:    state.Size,
		Search:  state.Filter.Search,
		Tag:     state.Filter.Tag,
		Sort:    state.Filter.Sort,
		Message: state.Message,
	})
}

// # Toggles

// toggleLike handles POST /api/posts/{id}/like.
func (handler *Handler) toggleLike(writer http.ResponseWriter, request *http.Request) {
	state, err := handler.c.Likes.Toggle(request.Context(), requestutil.Param(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, state)
}

// toggleBookmark handles POST /api/posts/{id}/bookmark.
func (handler *Handler) toggleBookmark(writer http.ResponseWriter, request *http.Request) {
	bookmarked, err := handler.c.Bookmarks.Toggle(request.Context(), requestutil.Param(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, map[string]bool{"bookmarked": bookmarked})
}

// toggleFollow handles POST /api/users/{name}/follow.
func (handler *Handler) toggleFollow(writer http.ResponseWriter, request *http.Request) {
	following, err := handler.c.Follows.Toggle(request.Context(), requestutil.Param(request, "name"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, map[string]bool{"following": following})
}

// # Drafts

func draftKey(request *http.Request) (string, error) {
	context := strings.TrimSpace(requestutil.Param(request, "context"))
	switch context {
	case "":
		return "", apperr.ValidationError("Draft context is required")
	case newDraftContext:
		return autosave.KeyFor(""), nil
	default:
		return autosave.KeyFor(context), nil
	}
}

// getDraft handles GET /api/drafts/{context}.
//
// Stale and unreadable records are purged on the way and reported as 404.
func (handler *Handler) getDraft(writer http.ResponseWriter, request *http.Request) {
	key, err := draftKey(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	record, _, err := autosave.Load(request.Context(), handler.c.Drafts, key, handler.c.Clock.Now(), constants.DraftTTL)
	if errors.Is(err, autosave.ErrNoRecord) {
		respond.Error(writer, request, apperr.NotFound("Draft"))
		return
	}
	if err != nil {
		respond.Error(writer, request, apperr.Internal(err))
		return
	}

	respond.OK(writer, record)
}

// putDraft handles PUT /api/drafts/{context}.
func (handler *Handler) putDraft(writer http.ResponseWriter, request *http.Request) {
	key, err := draftKey(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var form blog.PostForm
	if err := requestutil.DecodeJSON(request, &form); err != nil {
		respond.Error(writer, request, err)
		return
	}

	record, err := autosave.Save(request.Context(), handler.c.Drafts, key, form, handler.c.Clock.Now())
	if err != nil {
		respond.Error(writer, request, apperr.Internal(err))
		return
	}

	respond.OK(writer, record)
}

// deleteDraft handles DELETE /api/drafts/{context}.
func (handler *Handler) deleteDraft(writer http.ResponseWriter, request *http.Request) {
	key, err := draftKey(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.c.Drafts.Delete(request.Context(), key); err != nil {
		respond.Error(writer, request, apperr.Internal(err))
		return
	}
	respond.NoContent(writer)
}

// # Notifications

// unreadCount handles GET /api/notifications/unread-count.
//
// ?refresh=true asks the backend first; otherwise the poller's last value is
// returned.
func (handler *Handler) unreadCount(writer http.ResponseWriter, request *http.Request) {
	count := handler.c.Unread.Count()
	if requestutil.QueryBool(request, "refresh") {
		var err error
		if count, err = handler.c.Unread.Refresh(request.Context()); err != nil {
			respond.Error(writer, request, apperr.Surface(err, "Failed to load notifications"))
			return
		}
	}
	respond.Raw(writer, map[string]int64{"count": count})
}

// # Admin

// adminPosts handles GET /api/admin/posts.
func (handler *Handler) adminPosts(writer http.ResponseWriter, request *http.Request) {
	posts, err := handler.c.Admin.AdminPosts(request.Context())
	if err != nil {
		respond.Error(writer, request, apperr.Surface(err, "Failed to load posts"))
		return
	}
	respond.OK(writer, posts)
}

// adminUsers handles GET /api/admin/users.
func (handler *Handler) adminUsers(writer http.ResponseWriter, request *http.Request) {
	users, err := handler.c.Admin.AdminUsers(request.Context())
	if err != nil {
		respond.Error(writer, request, apperr.Surface(err, "Failed to load users"))
		return
	}
	respond.OK(writer, users)
}

// adminDeletePost handles DELETE /api/admin/posts/{id}.
func (handler *Handler) adminDeletePost(writer http.ResponseWriter, request *http.Request) {
	if err := handler.c.Admin.AdminDeletePost(request.Context(), requestutil.Param(request, "id")); err != nil {
		respond.Error(writer, request, apperr.Surface(err, "Failed to delete post"))
		return
	}
	respond.NoContent(writer)
}
