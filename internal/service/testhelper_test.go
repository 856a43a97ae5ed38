/*
 * Copyright (c) 2026 Francesco Biribo'
 *
 * Permission to use, copy, modify, and distribute this software for any purpose with or without fee is hereby granted, provided that the above copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package service

import (
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"yatube/internal/entity"
	"yatube/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// newTestDB opens a private in-memory sqlite database.
// The shared-cache URI keeps every pooled connection on the same database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.New().String())
	db, err := repository.Open("sqlite", dsn)
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	return db
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestUser(t *testing.T, db *gorm.DB, username string) *entity.User {
	t.Helper()

	id := uuid.New().String()
	u := &entity.User{
		UUID:      id,
		Username:  username,
		CreatedAt: time.Now(),
		Secret: entity.UserSecret{
			UserUUID: id,
			Hash:     "irrelevant-for-these-tests",
		},
	}
	require.NoError(t, repository.NewGormUserRepository(db).Create(u))
	return u
}

func newTestGroup(t *testing.T, db *gorm.DB, slug string) *entity.Group {
	t.Helper()

	g := &entity.Group{
		Title:       "Тестовая группа",
		Slug:        slug,
		Description: "Тестовое описание",
	}
	require.NoError(t, repository.NewGormGroupRepository(db).Create(g))
	return g
}

func newTestPost(t *testing.T, db *gorm.DB, author *entity.User, group *entity.Group, text string, pubDate time.Time) *entity.Post {
	t.Helper()

	p := &entity.Post{
		Text:       text,
		PubDate:    pubDate,
		AuthorUUID: author.UUID,
	}
	if group != nil {
		p.GroupID = &group.ID
	}
	require.NoError(t, repository.NewGormPostRepository(db).Create(p))
	return p
}
