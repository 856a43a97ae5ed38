/*
 * Copyright (c) 2026 Francesco Biribo'
 *
 * Permission to use, copy, modify, and distribute this software for any purpose with or without fee is hereby granted, provided that the above copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package middleware

import (
	"context"
	"net/http"

	"yatube/internal/entity"

	"github.com/gorilla/sessions"
)

// SessionName is the cookie the whole application shares.
const SessionName = "auth-session"

// LoginPath is where anonymous requesters are sent; NextParam carries the route they
// were after, so that logging in resumes the original intent.
const (
	LoginPath = "/auth/login/"
	NextParam = "next"
)

type contextKey int

const userContextKey contextKey = iota

// UserFrom extracts the session user attached by SessionUser.
// ok is false for anonymous requests.
func UserFrom(ctx context.Context) (entity.User, bool) {
	user, ok := ctx.Value(userContextKey).(entity.User)
	return user, ok
}

// SessionUser reads the session cookie and, when a user is logged in, attaches it to the
// request context. Anonymous requests pass through untouched: public pages render for
// everyone, handlers decide what to show.
func SessionUser(store *sessions.CookieStore, next func(w http.ResponseWriter, r *http.Request)) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		session, err := store.Get(r, SessionName)
		if err != nil {
			// A stale or tampered cookie is treated as anonymous, not as a server error.
			next(w, r)
			return
		}

		userUUID, ok1 := session.Values["user_uuid"].(string)
		username, ok2 := session.Values["username"].(string)
		if ok1 && ok2 {
			user := entity.User{
				UUID:     userUUID,
				Username: username,
			}
			r = r.WithContext(context.WithValue(r.Context(), userContextKey, user))
		}

		next(w, r)
	}
}

// LoginRequired guards write routes: anonymous requesters are redirected to the login
// page with the originally requested path in the "next" parameter.
// Must run inside SessionUser.
func LoginRequired(next func(w http.ResponseWriter, r *http.Request)) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := UserFrom(r.Context()); !ok {
			http.Redirect(w, r, LoginPath+"?"+NextParam+"="+r.URL.Path, http.StatusSeeOther)
			return
		}
		next(w, r)
	}
}
