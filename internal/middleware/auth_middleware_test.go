/*
 * Copyright (c) 2026 Francesco Biribo'
 *
 * Permission to use, copy, modify, and distribute this software for any purpose with or without fee is hereby granted, provided that the above copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"yatube/internal/entity"

	"github.com/gorilla/sessions"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sessionCookie builds a valid session cookie for the given user, the same way the
// login handler does it.
func sessionCookie(t *testing.T, store *sessions.CookieStore, user entity.User) *http.Cookie {
	t.Helper()

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()

	session, err := store.Get(r, SessionName)
	require.NoError(t, err)
	session.Values["user_uuid"] = user.UUID
	session.Values["username"] = user.Username
	require.NoError(t, session.Save(r, w))

	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)
	return cookies[0]
}

func TestSessionUserAttachesLoggedInUser(t *testing.T) {
	store := sessions.NewCookieStore([]byte("test-secret"))
	want := entity.User{UUID: "some-uuid", Username: "leo"}

	var got entity.User
	var ok bool
	handler := SessionUser(store, func(w http.ResponseWriter, r *http.Request) {
		got, ok = UserFrom(r.Context())
	})

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(sessionCookie(t, store, want))
	handler(httptest.NewRecorder(), r)

	require.True(t, ok)
	assert.Equal(t, want.UUID, got.UUID)
	assert.Equal(t, want.Username, got.Username)
}

func TestSessionUserTreatsTamperedCookieAsAnonymous(t *testing.T) {
	store := sessions.NewCookieStore([]byte("test-secret"))

	var ok bool
	handler := SessionUser(store, func(w http.ResponseWriter, r *http.Request) {
		_, ok = UserFrom(r.Context())
	})

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(&http.Cookie{Name: SessionName, Value: "garbage"})
	w := httptest.NewRecorder()
	handler(w, r)

	assert.False(t, ok)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestLoginRequiredRedirectsAnonymousWithNext(t *testing.T) {
	called := false
	handler := LoginRequired(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	r := httptest.NewRequest(http.MethodGet, "/create/", nil)
	w := httptest.NewRecorder()
	handler(w, r)

	assert.False(t, called)
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/auth/login/?next=/create/", w.Header().Get("Location"))
}

func TestLoginRequiredPassesAuthenticatedRequests(t *testing.T) {
	store := sessions.NewCookieStore([]byte("test-secret"))

	called := false
	handler := SessionUser(store, LoginRequired(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	r := httptest.NewRequest(http.MethodGet, "/create/", nil)
	r.AddCookie(sessionCookie(t, store, entity.User{UUID: "some-uuid", Username: "leo"}))
	w := httptest.NewRecorder()
	handler(w, r)

	assert.True(t, called)
	assert.Equal(t, http.StatusOK, w.Code)
}
