/*
 * Copyright (c) 2026 Francesco Biribo'
 *
 * Permission to use, copy, modify, and distribute this software for any purpose with or without fee is hereby granted, provided that the above copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package handler

import (
	"net/http"

	"yatube/internal/entity"
	"yatube/internal/middleware"
	"yatube/internal/service"
	"yatube/internal/view"

	"github.com/gorilla/sessions"
)

// AuthHandler helps in managing user registration and authentication
type AuthHandler struct {
	authService service.AuthService
	cookieStore *sessions.CookieStore
	renderer    *view.PageRenderer
}

func NewAuthHandler(authService service.AuthService, cookieStore *sessions.CookieStore, renderer *view.PageRenderer) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		cookieStore: cookieStore,
		renderer:    renderer,
	}
}

// startSession stores the authenticated user in the session cookie.
func (h *AuthHandler) startSession(w http.ResponseWriter, r *http.Request, user *entity.User) error {
	session, _ := h.cookieStore.Get(r, middleware.SessionName)
	session.Values["user_uuid"] = user.UUID
	session.Values["username"] = user.Username
	return sessions.Save(r, w)
}

// Registers a user
// If the method is GET, a registration form is shown
// If it's POST, it retrieves the input fields, registers the user and logs them in
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	user, _ := currentUser(r)

	if r.Method == http.MethodGet {
		data := map[string]interface{}{
			"User":     user,
			"Username": "",
		}
		if err := h.renderer.RenderTemplate(w, "signup.html", data); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Error occurred while parsing the form", http.StatusBadRequest)
		return
	}

	username := r.FormValue("username")
	password := r.FormValue("password")

	registered, err := h.authService.Register(username, password)
	if err != nil {
		data := map[string]interface{}{
			"User":     user,
			"Error":    err.Error(),
			"Username": username,
		}
		if err := h.renderer.RenderTemplate(w, "signup.html", data); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	if err := h.startSession(w, r, registered); err != nil {
		http.Error(w, "Saving cookie", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Login handles the authentication phase
// If this function got called with a GET request, it shows the login form
// Otherwise, for POST, it authenticates the user and resumes the "next" route when one
// was carried over by the login redirect
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	sessionUser, _ := currentUser(r)

	if r.Method == http.MethodGet {
		data := map[string]interface{}{
			"User":     sessionUser,
			"Username": "",
			"Next":     r.URL.Query().Get(middleware.NextParam),
		}
		if err := h.renderer.RenderTemplate(w, "login.html", data); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Error parsing form", http.StatusBadRequest)
		return
	}

	username := r.FormValue("username")
	password := r.FormValue("password")
	next := r.FormValue(middleware.NextParam)

	user, err := h.authService.Login(username, password)
	if err != nil {
		data := map[string]interface{}{
			"User":     sessionUser,
			"Error":    err.Error(),
			"Username": username,
			"Next":     next,
		}
		if err := h.renderer.RenderTemplate(w, "login.html", data); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	if err := h.startSession(w, r, user); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, safeNext(next), http.StatusSeeOther)
}

// Logout deletes the current user's session, effectively logging them out
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	session, _ := h.cookieStore.Get(r, middleware.SessionName)
	session.Options.MaxAge = -1
	if err := sessions.Save(r, w); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, middleware.LoginPath, http.StatusSeeOther)
}
