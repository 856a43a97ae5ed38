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
	"net/http"
	"net/url"
	"strings"
	"testing"

	"yatube/internal/form"
	"yatube/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnonymousWriteRoutesRedirectToLogin(t *testing.T) {
	app := newTestApp(t)
	client := newClient(t)

	paths := []string{"/create/", "/posts/1/edit/", "/posts/1/delete/"}
	for _, path := range paths {
		resp := app.get(t, client, path)
		assert.Equal(t, http.StatusSeeOther, resp.StatusCode, path)
		assert.Equal(t, "/auth/login/?next="+path, resp.Header.Get("Location"), path)
	}
}

func TestCreatePostFlow(t *testing.T) {
	app := newTestApp(t)
	group := app.seedGroup(t, "cats", "Коты")

	client := newClient(t)
	app.signup(t, client, "leo", "correct horse battery staple")

	resp := app.postForm(t, client, "/create/", url.Values{
		"text":  {"Первая запись нового автора"},
		"group": {fmt.Sprint(group.ID)},
	})
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/profile/leo/", resp.Header.Get("Location"))

	posts, err := app.posts.ListPage(repository.PostFilter{}, 1, 10)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "Первая запись нового автора", posts[0].Text)
	require.NotNil(t, posts[0].GroupID)
	assert.Equal(t, group.ID, *posts[0].GroupID)
	assert.Equal(t, "leo", posts[0].Author.Username)
}

func TestCreatePostShortTextRendersFormError(t *testing.T) {
	app := newTestApp(t)

	client := newClient(t)
	app.signup(t, client, "leo", "correct horse battery staple")

	resp := app.postForm(t, client, "/create/", url.Values{"text": {"Коротко"}})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), form.MsgTextTooShort)

	count, err := app.posts.Count(repository.PostFilter{})
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestPostDetailPage(t *testing.T) {
	app := newTestApp(t)
	author := app.seedUser(t, "leo")
	post := app.seedPost(t, author, nil, "Запись для детальной страницы")

	client := newClient(t)

	resp := app.get(t, client, fmt.Sprintf("/posts/%d/", post.ID))
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "Запись для детальной страницы")
	assert.Contains(t, string(body), "leo")
}

func TestPostDetailUnknownIDIs404(t *testing.T) {
	app := newTestApp(t)
	client := newClient(t)

	resp := app.get(t, client, "/posts/12345/")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestNonAuthorEditIsSilentlyRedirected(t *testing.T) {
	app := newTestApp(t)
	author := app.seedUser(t, "leo")
	post := app.seedPost(t, author, nil, "Исходный текст записи")

	client := newClient(t)
	app.signup(t, client, "mia", "correct horse battery staple")

	detail := fmt.Sprintf("/posts/%d/", post.ID)

	resp := app.get(t, client, detail+"edit/")
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, detail, resp.Header.Get("Location"))

	resp = app.postForm(t, client, detail+"edit/", url.Values{"text": {"Чужой текст для подмены"}})
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, detail, resp.Header.Get("Location"))

	stored, err := app.posts.GetByID(post.ID)
	require.NoError(t, err)
	assert.Equal(t, "Исходный текст записи", stored.Text)
}

func TestNonAuthorDeleteIsSilentlyRedirected(t *testing.T) {
	app := newTestApp(t)
	author := app.seedUser(t, "leo")
	post := app.seedPost(t, author, nil, "Запись, которую трогать нельзя")

	client := newClient(t)
	app.signup(t, client, "mia", "correct horse battery staple")

	detail := fmt.Sprintf("/posts/%d/", post.ID)

	resp := app.get(t, client, detail+"delete/")
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, detail, resp.Header.Get("Location"))

	_, err := app.posts.GetByID(post.ID)
	assert.NoError(t, err)
}

func TestAuthorEditFlow(t *testing.T) {
	app := newTestApp(t)

	client := newClient(t)
	app.signup(t, client, "leo", "correct horse battery staple")

	resp := app.postForm(t, client, "/create/", url.Values{"text": {"Исходный текст записи"}})
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)

	posts, err := app.posts.ListPage(repository.PostFilter{}, 1, 10)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	id := posts[0].ID
	detail := fmt.Sprintf("/posts/%d/", id)

	// The edit form comes back pre-filled for the author.
	getResp := app.get(t, client, detail+"edit/")
	assert.Equal(t, http.StatusOK, getResp.StatusCode)
	body, err := io.ReadAll(getResp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "Исходный текст записи")

	resp = app.postForm(t, client, detail+"edit/", url.Values{"text": {"Исправленный текст записи"}})
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, detail, resp.Header.Get("Location"))

	stored, err := app.posts.GetByID(id)
	require.NoError(t, err)
	assert.Equal(t, "Исправленный текст записи", stored.Text)
}

func TestAuthorDeleteFlow(t *testing.T) {
	app := newTestApp(t)

	client := newClient(t)
	app.signup(t, client, "leo", "correct horse battery staple")

	resp := app.postForm(t, client, "/create/", url.Values{"text": {"Запись на удаление"}})
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)

	posts, err := app.posts.ListPage(repository.PostFilter{}, 1, 10)
	require.NoError(t, err)
	require.Len(t, posts, 1)

	resp = app.postForm(t, client, fmt.Sprintf("/posts/%d/delete/", posts[0].ID), nil)
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/profile/leo/", resp.Header.Get("Location"))

	_, err = app.posts.GetByID(posts[0].ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestEditUnknownPostIs404(t *testing.T) {
	app := newTestApp(t)

	client := newClient(t)
	app.signup(t, client, "leo", "correct horse battery staple")

	resp := app.postForm(t, client, "/posts/12345/edit/", url.Values{"text": {"Достаточно длинный текст"}})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestDetailShowsEditLinksOnlyToAuthor(t *testing.T) {
	app := newTestApp(t)

	authorClient := newClient(t)
	app.signup(t, authorClient, "leo", "correct horse battery staple")
	resp := app.postForm(t, authorClient, "/create/", url.Values{"text": {"Запись с кнопками автора"}})
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)

	posts, err := app.posts.ListPage(repository.PostFilter{}, 1, 10)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	editLink := fmt.Sprintf("/posts/%d/edit/", posts[0].ID)

	ownerResp := app.get(t, authorClient, fmt.Sprintf("/posts/%d/", posts[0].ID))
	ownerBody, err := io.ReadAll(ownerResp.Body)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(ownerBody), editLink))

	strangerResp := app.get(t, newClient(t), fmt.Sprintf("/posts/%d/", posts[0].ID))
	strangerBody, err := io.ReadAll(strangerResp.Body)
	require.NoError(t, err)
	assert.False(t, strings.Contains(string(strangerBody), editLink))
}
