/*
 * Copyright (c) 2026 Francesco Biribo'
 *
 * Permission to use, copy, modify, and distribute this software for any purpose with or without fee is hereby granted, provided that the above copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package service

import (
	"log/slog"

	"yatube/internal/entity"
	"yatube/internal/repository"
)

// GroupFeed is the group page payload: the group itself, one page of its posts,
// and the unpaginated post count.
type GroupFeed struct {
	Group     *entity.Group
	Page      *Page
	PostCount int64
}

// ProfileFeed is the profile page payload: the author, one page of their posts,
// and the unpaginated post count.
type ProfileFeed struct {
	Author    *entity.User
	Page      *Page
	PostCount int64
}

// Service composing the three read-side feeds.
// Every feed shares the same ordering (newest first, id as the tie-break) and page size.
type FeedService interface {
	Index(pageNumber int) (*Page, error)                            // All posts
	Group(slug string, pageNumber int) (*GroupFeed, error)          // Posts of one group, resolved by slug
	Profile(username string, pageNumber int) (*ProfileFeed, error)  // Posts of one author, resolved by username
}

type feedService struct {
	pageSize int
	posts    repository.PostRepository
	groups   repository.GroupRepository
	users    repository.UserRepository
	logger   *slog.Logger
}

func NewFeedService(pageSize int, posts repository.PostRepository, groups repository.GroupRepository, users repository.UserRepository, logger *slog.Logger) FeedService {
	return &feedService{
		pageSize: pageSize,
		posts:    posts,
		groups:   groups,
		users:    users,
		logger:   logger,
	}
}

// page runs the count-then-list pair for one filter, clamping the page number
// against the real page count.
func (f *feedService) page(filter repository.PostFilter, pageNumber int) (*Page, error) {
	count, err := f.posts.Count(filter)
	if err != nil {
		return nil, err
	}

	pages := totalPages(count, f.pageSize)
	number := clampPage(pageNumber, pages)

	posts, err := f.posts.ListPage(filter, number, f.pageSize)
	if err != nil {
		return nil, err
	}

	return &Page{
		Posts:      posts,
		Number:     number,
		PageSize:   f.pageSize,
		TotalCount: count,
		TotalPages: pages,
	}, nil
}

func (f *feedService) Index(pageNumber int) (*Page, error) {
	return f.page(repository.PostFilter{}, pageNumber)
}

func (f *feedService) Group(slug string, pageNumber int) (*GroupFeed, error) {
	group, err := f.groups.GetBySlug(slug)
	if err != nil {
		return nil, err
	}

	page, err := f.page(repository.PostFilter{GroupID: &group.ID}, pageNumber)
	if err != nil {
		return nil, err
	}

	f.logger.Debug("composed group feed", "slug", slug, "page", page.Number, "posts", page.TotalCount)
	return &GroupFeed{Group: group, Page: page, PostCount: page.TotalCount}, nil
}

func (f *feedService) Profile(username string, pageNumber int) (*ProfileFeed, error) {
	author, err := f.users.GetByUsername(username)
	if err != nil {
		return nil, err
	}

	page, err := f.page(repository.PostFilter{AuthorUUID: &author.UUID}, pageNumber)
	if err != nil {
		return nil, err
	}

	f.logger.Debug("composed profile feed", "username", username, "page", page.Number, "posts", page.TotalCount)
	return &ProfileFeed{Author: author, Page: page, PostCount: page.TotalCount}, nil
}
