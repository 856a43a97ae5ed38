/*
 * Copyright (c) 2026 Francesco Biribo'
 *
 * Permission to use, copy, modify, and distribute this software for any purpose with or without fee is hereby granted, provided that the above copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package form

import "unicode/utf8"

// DefaultMinTextLength is the post length threshold used when none is configured.
const DefaultMinTextLength = 10

// MsgTextTooShort is shown next to the text field when a post is too short.
const MsgTextTooShort = "Текст публикации не может быть короче 10 символов."

// FieldError is a validation failure attached to a single form field.
// It is rendered back into the submission form, never surfaced as a server error.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Message
}

// PostForm carries the client-supplied fields of the post form.
// The author is never part of it: the requester becomes the author unconditionally.
type PostForm struct {
	Text    string
	GroupID *uint
}

// Validate checks the text against the minimum length.
// Length is counted in runes, not bytes: posts are routinely written in Cyrillic.
// Pure function, the text is never altered.
func (f PostForm) Validate(minTextLength int) *FieldError {
	if utf8.RuneCountInString(f.Text) < minTextLength {
		return &FieldError{Field: "text", Message: MsgTextTooShort}
	}
	return nil
}
