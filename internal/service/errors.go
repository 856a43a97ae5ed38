/*
 * Copyright (c) 2026 Francesco Biribo'
 *
 * Permission to use, copy, modify, and distribute this software for any purpose with or without fee is hereby granted, provided that the above copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package service

import "errors"

// ErrNotOwner is returned when a requester tries to edit or delete a post they did not write.
// Handlers turn it into a silent redirect to the post's detail page, never into an error page.
var ErrNotOwner = errors.New("requester is not the post author")

// ErrWrongCredentials is returned on login with an unknown username or a wrong password.
var ErrWrongCredentials = errors.New("wrong credentials")

// ErrUsernameTaken is returned on registration when the username already exists.
var ErrUsernameTaken = errors.New("username is already taken")
