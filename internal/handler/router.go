/*
 * Copyright (c) 2026 Francesco Biribo'
 *
 * Permission to use, copy, modify, and distribute this software for any purpose with or without fee is hereby granted, provided that the above copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package handler

import (
	"log/slog"
	"net/http"

	"yatube/internal/middleware"
	"yatube/internal/repository"
	"yatube/internal/service"
	"yatube/internal/view"

	"github.com/gorilla/mux"
	"github.com/gorilla/sessions"
)

// NewRouter assembles the whole route table.
// Read routes only load the session user; write routes additionally require one,
// redirecting anonymous requesters to the login page with a return path.
func NewRouter(
	feedService service.FeedService,
	postService service.PostService,
	authService service.AuthService,
	groups repository.GroupRepository,
	store *sessions.CookieStore,
	renderer *view.PageRenderer,
	logger *slog.Logger,
) http.Handler {
	feedHandler := NewFeedHandler(feedService, renderer)
	postHandler := NewPostHandler(postService, groups, renderer)
	authHandler := NewAuthHandler(authService, store, renderer)

	withUser := func(h func(http.ResponseWriter, *http.Request)) func(http.ResponseWriter, *http.Request) {
		return middleware.SessionUser(store, h)
	}
	authorOnly := func(h func(http.ResponseWriter, *http.Request)) func(http.ResponseWriter, *http.Request) {
		return middleware.SessionUser(store, middleware.LoginRequired(h))
	}

	r := mux.NewRouter()

	// Feed routes
	r.HandleFunc("/", withUser(feedHandler.Index)).Methods("GET")
	r.HandleFunc("/group/{slug}/", withUser(feedHandler.GroupPosts)).Methods("GET")
	r.HandleFunc("/profile/{username}/", withUser(feedHandler.Profile)).Methods("GET")
	r.HandleFunc("/posts/{id:[0-9]+}/", withUser(postHandler.Detail)).Methods("GET")

	// Write routes, author-gated
	r.HandleFunc("/create/", authorOnly(postHandler.Create)).Methods("GET", "POST")
	r.HandleFunc("/posts/{id:[0-9]+}/edit/", authorOnly(postHandler.Edit)).Methods("GET", "POST")
	r.HandleFunc("/posts/{id:[0-9]+}/delete/", authorOnly(postHandler.Delete)).Methods("GET", "POST")

	// Authentication routes
	r.HandleFunc("/auth/signup/", withUser(authHandler.Signup)).Methods("GET", "POST")
	r.HandleFunc("/auth/login/", withUser(authHandler.Login)).Methods("GET", "POST")
	r.HandleFunc("/auth/logout/", withUser(authHandler.Logout)).Methods("GET")

	return middleware.RequestLogger(logger, r)
}
