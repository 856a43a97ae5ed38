/*
 * Copyright (c) 2026 Francesco Biribo'
 *
 * Permission to use, copy, modify, and distribute this software for any purpose with or without fee is hereby granted, provided that the above copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package handler

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"yatube/internal/entity"
	"yatube/internal/form"
	"yatube/internal/repository"
	"yatube/internal/service"
	"yatube/internal/view"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// testApp is a fully wired application on a private in-memory database,
// served over httptest.
type testApp struct {
	server *httptest.Server
	db     *gorm.DB
	posts  repository.PostRepository
	groups repository.GroupRepository
	users  repository.UserRepository
	auth   service.AuthService
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.New().String())
	db, err := repository.Open("sqlite", dsn)
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	posts := repository.NewGormPostRepository(db)
	groups := repository.NewGormGroupRepository(db)
	users := repository.NewGormUserRepository(db)

	feedService := service.NewFeedService(10, posts, groups, users, logger)
	postService := service.NewPostService(form.DefaultMinTextLength, posts, logger)
	authService := service.NewAuthService(users, logger)

	store := sessions.NewCookieStore([]byte("test-secret"))
	store.Options = &sessions.Options{Path: "/", HttpOnly: true}

	mapping, err := view.LoadTemplates("../../web/templates")
	require.NoError(t, err)
	renderer := view.NewPageRenderer(mapping)

	router := NewRouter(feedService, postService, authService, groups, store, renderer, logger)

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	return &testApp{
		server: server,
		db:     db,
		posts:  posts,
		groups: groups,
		users:  users,
		auth:   authService,
	}
}

// newClient builds a cookie-carrying client that does not follow redirects,
// so tests can assert on Location headers.
func newClient(t *testing.T) *http.Client {
	t.Helper()

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	return &http.Client{
		Jar: jar,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
}

// signup registers a user through the HTTP surface, leaving the session cookie in
// the client's jar.
func (app *testApp) signup(t *testing.T, client *http.Client, username, password string) {
	t.Helper()

	resp, err := client.PostForm(app.server.URL+"/auth/signup/", url.Values{
		"username": {username},
		"password": {password},
	})
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)
	require.Equal(t, "/", resp.Header.Get("Location"))
}

func (app *testApp) seedUser(t *testing.T, username string) *entity.User {
	t.Helper()

	user, err := app.auth.Register(username, "some test password")
	require.NoError(t, err)
	return user
}

func (app *testApp) seedPost(t *testing.T, author *entity.User, group *entity.Group, text string) *entity.Post {
	t.Helper()

	p := &entity.Post{
		Text:       text,
		PubDate:    time.Now(),
		AuthorUUID: author.UUID,
	}
	if group != nil {
		p.GroupID = &group.ID
	}
	require.NoError(t, app.posts.Create(p))
	return p
}

func (app *testApp) seedGroup(t *testing.T, slug, title string) *entity.Group {
	t.Helper()

	g := &entity.Group{Title: title, Slug: slug, Description: "Тестовое описание"}
	require.NoError(t, app.groups.Create(g))
	return g
}

func (app *testApp) get(t *testing.T, client *http.Client, path string) *http.Response {
	t.Helper()

	resp, err := client.Get(app.server.URL + path)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func (app *testApp) postForm(t *testing.T, client *http.Client, path string, values url.Values) *http.Response {
	t.Helper()

	resp, err := client.PostForm(app.server.URL+path, values)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}
