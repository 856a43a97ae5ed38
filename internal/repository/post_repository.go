/*
 * Copyright (c) 2026 Francesco Biribo'
 *
 * Permission to use, copy, modify, and distribute this software for any purpose with or without fee is hereby granted, provided that the above copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package repository

import (
	"yatube/internal/entity"

	"gorm.io/gorm"
)

// PostFilter restricts a feed query to one group or one author.
// The zero value selects every post (the index feed).
type PostFilter struct {
	GroupID    *uint
	AuthorUUID *string
}

// This repository manipulates the posts in the system.
// Feed queries are always ordered pub_date DESC, id ASC: the secondary key keeps
// pagination stable when several posts share a publication timestamp.
type PostRepository interface {
	Create(post *entity.Post) error                                        // Inserts a post in the repository
	GetByID(id uint) (*entity.Post, error)                                 // Retrieves the post with the given id, with author and group preloaded
	Update(id uint, text string, groupID *uint) error                      // Rewrites the mutable fields of a post (text and group), nothing else
	Delete(id uint) error                                                  // Removes the post with the given id
	ListPage(filter PostFilter, page, pageSize int) ([]*entity.Post, error) // Retrieves one page of the feed selected by filter
	Count(filter PostFilter) (int64, error)                                // Counts the posts selected by filter, ignoring pagination
}

// Implementation of the repository on a gorm database
type GormPostRepository struct {
	db *gorm.DB
}

func NewGormPostRepository(db *gorm.DB) PostRepository {
	return &GormPostRepository{db}
}

func (repo *GormPostRepository) applyFilter(tx *gorm.DB, filter PostFilter) *gorm.DB {
	if filter.GroupID != nil {
		tx = tx.Where("group_id = ?", *filter.GroupID)
	}
	if filter.AuthorUUID != nil {
		tx = tx.Where("author_uuid = ?", *filter.AuthorUUID)
	}
	return tx
}

func (repo *GormPostRepository) Create(post *entity.Post) error {
	return repo.db.Create(post).Error
}

func (repo *GormPostRepository) GetByID(id uint) (*entity.Post, error) {
	var post entity.Post
	err := repo.db.Preload("Author").Preload("Group").First(&post, id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &post, nil
}

func (repo *GormPostRepository) Update(id uint, text string, groupID *uint) error {
	return repo.db.Transaction(func(tx *gorm.DB) error {
		var post entity.Post
		if err := tx.First(&post, id).Error; err != nil {
			return translate(err)
		}

		// Only text and group are mutable; pub_date and author never change after creation.
		return tx.Model(&post).Select("text", "group_id").Updates(map[string]any{
			"text":     text,
			"group_id": groupID,
		}).Error
	})
}

func (repo *GormPostRepository) Delete(id uint) error {
	return repo.db.Transaction(func(tx *gorm.DB) error {
		var post entity.Post
		if err := tx.First(&post, id).Error; err != nil {
			return translate(err)
		}
		return tx.Delete(&post).Error
	})
}

func (repo *GormPostRepository) ListPage(filter PostFilter, page, pageSize int) ([]*entity.Post, error) {
	var posts []*entity.Post
	err := repo.applyFilter(repo.db, filter).
		Preload("Author").
		Preload("Group").
		Order("pub_date DESC, id ASC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&posts).Error
	return posts, err
}

func (repo *GormPostRepository) Count(filter PostFilter) (int64, error) {
	var count int64
	err := repo.applyFilter(repo.db.Model(&entity.Post{}), filter).Count(&count).Error
	return count, err
}
