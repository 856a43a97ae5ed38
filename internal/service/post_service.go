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
	"time"

	"yatube/internal/entity"
	"yatube/internal/form"
	"yatube/internal/repository"
)

// Service for the write side of posts.
// The requester is always an explicit parameter: ownership (requester == author) is the
// sole basis for edit/delete authorization, re-evaluated on every call.
type PostService interface {
	Get(id uint) (*entity.Post, error)                                                // Retrieves one post with author and group
	Create(requester *entity.User, f form.PostForm) (*entity.Post, error)             // Publishes a new post, the requester becomes the author
	Edit(requester *entity.User, id uint, f form.PostForm) (*entity.Post, error)      // Rewrites text and group of the requester's own post
	Delete(requester *entity.User, id uint) error                                     // Removes the requester's own post
}

type postService struct {
	minTextLength int
	posts         repository.PostRepository
	logger        *slog.Logger
}

func NewPostService(minTextLength int, posts repository.PostRepository, logger *slog.Logger) PostService {
	return &postService{
		minTextLength: minTextLength,
		posts:         posts,
		logger:        logger,
	}
}

func (s *postService) Get(id uint) (*entity.Post, error) {
	return s.posts.GetByID(id)
}

func (s *postService) Create(requester *entity.User, f form.PostForm) (*entity.Post, error) {
	if err := f.Validate(s.minTextLength); err != nil {
		return nil, err
	}

	// The author is never client-supplied; whatever the form carried, the requester wins.
	post := &entity.Post{
		Text:       f.Text,
		PubDate:    time.Now(),
		AuthorUUID: requester.UUID,
		GroupID:    f.GroupID,
	}
	if err := s.posts.Create(post); err != nil {
		return nil, err
	}

	s.logger.Info("post created", "post_id", post.ID, "author", requester.Username)
	return post, nil
}

func (s *postService) Edit(requester *entity.User, id uint, f form.PostForm) (*entity.Post, error) {
	post, err := s.posts.GetByID(id)
	if err != nil {
		return nil, err
	}
	if post.AuthorUUID != requester.UUID {
		return nil, ErrNotOwner
	}

	if err := f.Validate(s.minTextLength); err != nil {
		return nil, err
	}

	if err := s.posts.Update(id, f.Text, f.GroupID); err != nil {
		return nil, err
	}

	s.logger.Info("post edited", "post_id", id, "author", requester.Username)
	return s.posts.GetByID(id)
}

func (s *postService) Delete(requester *entity.User, id uint) error {
	post, err := s.posts.GetByID(id)
	if err != nil {
		return err
	}
	if post.AuthorUUID != requester.UUID {
		return ErrNotOwner
	}

	if err := s.posts.Delete(id); err != nil {
		return err
	}

	s.logger.Info("post deleted", "post_id", id, "author", requester.Username)
	return nil
}
