/*
 * Copyright (c) 2026 Francesco Biribo'
 *
 * Permission to use, copy, modify, and distribute this software for any purpose with or without fee is hereby granted, provided that the above copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package handler

import (
	"errors"
	"net/http"

	"yatube/internal/repository"
	"yatube/internal/service"
	"yatube/internal/view"

	"github.com/gorilla/mux"
)

// FeedHandler serves the three read-only feeds: index, per-group and per-author.
type FeedHandler struct {
	feedService service.FeedService
	renderer    *view.PageRenderer
}

func NewFeedHandler(feedService service.FeedService, renderer *view.PageRenderer) *FeedHandler {
	return &FeedHandler{
		feedService: feedService,
		renderer:    renderer,
	}
}

// Shows the newest posts across all groups and authors
func (h *FeedHandler) Index(w http.ResponseWriter, r *http.Request) {
	page, err := h.feedService.Index(pageNumber(r))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	user, _ := currentUser(r)
	data := map[string]interface{}{
		"User": user,
		"Page": page,
	}

	if err := h.renderer.RenderTemplate(w, "index.html", data); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// Shows the posts of one group, together with the group itself and its post count
func (h *FeedHandler) GroupPosts(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]

	feed, err := h.feedService.Group(slug, pageNumber(r))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			http.NotFound(w, r)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	user, _ := currentUser(r)
	data := map[string]interface{}{
		"User":      user,
		"Group":     feed.Group,
		"Page":      feed.Page,
		"PostCount": feed.PostCount,
	}

	if err := h.renderer.RenderTemplate(w, "group_list.html", data); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// Shows the posts of one author, together with their identity and post count
func (h *FeedHandler) Profile(w http.ResponseWriter, r *http.Request) {
	username := mux.Vars(r)["username"]

	feed, err := h.feedService.Profile(username, pageNumber(r))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			http.NotFound(w, r)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	user, _ := currentUser(r)
	data := map[string]interface{}{
		"User":      user,
		"Author":    feed.Author,
		"Page":      feed.Page,
		"PostCount": feed.PostCount,
	}

	if err := h.renderer.RenderTemplate(w, "profile.html", data); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
