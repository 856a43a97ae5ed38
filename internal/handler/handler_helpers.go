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
	"net/http"
	"strconv"
	"strings"

	"yatube/internal/entity"
	"yatube/internal/form"
	"yatube/internal/middleware"

	"github.com/gorilla/mux"
)

func currentUser(r *http.Request) (entity.User, bool) {
	return middleware.UserFrom(r.Context())
}

// Extracts the post id from the route. The router only matches digits here,
// so a parse failure means a hand-crafted URL.
func postID(r *http.Request) (uint, error) {
	id64, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id64), nil
}

// Reads the 1-based page number from the query string; anything unusable means page 1.
func pageNumber(r *http.Request) int {
	n, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || n < 1 {
		return 1
	}
	return n
}

func postDetailPath(id uint) string {
	return fmt.Sprintf("/posts/%d/", id)
}

func profilePath(username string) string {
	return "/profile/" + username + "/"
}

// parsePostForm reads the submitted post fields. An empty group select means no group.
func parsePostForm(r *http.Request) (form.PostForm, error) {
	if err := r.ParseForm(); err != nil {
		return form.PostForm{}, err
	}

	f := form.PostForm{Text: r.FormValue("text")}
	if g := r.FormValue("group"); g != "" {
		id64, err := strconv.ParseUint(g, 10, 32)
		if err != nil {
			return form.PostForm{}, fmt.Errorf("malformed group id %q", g)
		}
		id := uint(id64)
		f.GroupID = &id
	}
	return f, nil
}

// safeNext keeps post-login redirects inside the site.
func safeNext(next string) string {
	if next == "" || !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") {
		return "/"
	}
	return next
}
