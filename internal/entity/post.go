/*
 * Copyright (c) 2026 Francesco Biribo'
 *
 * Permission to use, copy, modify, and distribute this software for any purpose with or without fee is hereby granted, provided that the above copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package entity

import "time"

// A single publication.
// The author reference is mandatory and set once at creation; the group reference is
// optional and is cleared (not cascaded) when the group is deleted.
type Post struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Text       string    `gorm:"not null" json:"text"`             // Content of the publication
	PubDate    time.Time `gorm:"not null;index" json:"pub-date"`   // Time of publication, immutable after creation
	AuthorUUID string    `gorm:"not null;index" json:"author"`     // UUID of the user that wrote the post
	GroupID    *uint     `gorm:"index" json:"group"`               // Optional group the post belongs to

	Author *User  `gorm:"foreignKey:AuthorUUID;references:UUID" json:"-"`
	Group  *Group `gorm:"foreignKey:GroupID" json:"-"`
}
