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

	"yatube/internal/entity"
	"yatube/internal/form"
	"yatube/internal/repository"
	"yatube/internal/service"
	"yatube/internal/view"
)

// PostHandler is used to handle routes regarding single posts.
// These include: the detail page, creation, editing and deletion.
// Edit and delete silently redirect non-authors to the detail page instead of erroring.
type PostHandler struct {
	postService service.PostService
	groups      repository.GroupRepository
	renderer    *view.PageRenderer
}

func NewPostHandler(postService service.PostService, groups repository.GroupRepository, renderer *view.PageRenderer) *PostHandler {
	return &PostHandler{
		postService: postService,
		groups:      groups,
		renderer:    renderer,
	}
}

// Shows a single post
func (h *PostHandler) Detail(w http.ResponseWriter, r *http.Request) {
	id, err := postID(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	post, err := h.postService.Get(id)
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
		"User":    user,
		"Post":    post,
		"IsOwner": post.AuthorUUID == user.UUID,
	}

	if err := h.renderer.RenderTemplate(w, "post_details.html", data); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// renderForm shows the shared create/edit form, optionally with a field error attached.
func (h *PostHandler) renderForm(w http.ResponseWriter, user entity.User, f form.PostForm, fieldErr *form.FieldError, post *entity.Post, isEdit bool) {
	groups, err := h.groups.GetAll()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	// Templates cannot compare against a *uint, so the selected group travels flat.
	var selected uint
	if f.GroupID != nil {
		selected = *f.GroupID
	}

	data := map[string]interface{}{
		"User":          user,
		"Form":          f,
		"Groups":        groups,
		"IsEdit":        isEdit,
		"Post":          post,
		"SelectedGroup": selected,
	}
	if fieldErr != nil {
		data["FormError"] = fieldErr
	}

	if err := h.renderer.RenderTemplate(w, "create_post.html", data); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// Creates a post
// If the method is GET, an empty form is shown
// If it's POST, the form is validated and the requester becomes the author
func (h *PostHandler) Create(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	if r.Method == http.MethodGet {
		h.renderForm(w, user, form.PostForm{}, nil, nil, false)
		return
	}

	f, err := parsePostForm(r)
	if err != nil {
		http.Error(w, "Error occurred while parsing the form", http.StatusBadRequest)
		return
	}

	if _, err := h.postService.Create(&user, f); err != nil {
		var fieldErr *form.FieldError
		if errors.As(err, &fieldErr) {
			h.renderForm(w, user, f, fieldErr, nil, false)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, profilePath(user.Username), http.StatusSeeOther)
}

// Edits a post
// Only the author gets the form; everyone else is sent back to the post's detail page
func (h *PostHandler) Edit(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	id, err := postID(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	if r.Method == http.MethodGet {
		post, err := h.postService.Get(id)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				http.NotFound(w, r)
				return
			}
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		if post.AuthorUUID != user.UUID {
			http.Redirect(w, r, postDetailPath(id), http.StatusSeeOther)
			return
		}

		h.renderForm(w, user, form.PostForm{Text: post.Text, GroupID: post.GroupID}, nil, post, true)
		return
	}

	f, err := parsePostForm(r)
	if err != nil {
		http.Error(w, "Error occurred while parsing the form", http.StatusBadRequest)
		return
	}

	if _, err := h.postService.Edit(&user, id, f); err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			http.NotFound(w, r)
		case errors.Is(err, service.ErrNotOwner):
			http.Redirect(w, r, postDetailPath(id), http.StatusSeeOther)
		default:
			var fieldErr *form.FieldError
			if errors.As(err, &fieldErr) {
				h.renderForm(w, user, f, fieldErr, &entity.Post{ID: id}, true)
				return
			}
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	http.Redirect(w, r, postDetailPath(id), http.StatusSeeOther)
}

// Deletes a post
// Same ownership rule and same non-author redirect as Edit
func (h *PostHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	id, err := postID(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	if err := h.postService.Delete(&user, id); err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			http.NotFound(w, r)
		case errors.Is(err, service.ErrNotOwner):
			http.Redirect(w, r, postDetailPath(id), http.StatusSeeOther)
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	http.Redirect(w, r, profilePath(user.Username), http.StatusSeeOther)
}
