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

// This repository manipulates the groups in the system.
// Deletion is a "nullifying" contract: posts that referenced the group survive it,
// only their group reference is cleared.
type GroupRepository interface {
	Create(group *entity.Group) error               // Inserts a group in the repository
	GetByID(id uint) (*entity.Group, error)         // Retrieves the group with the given id
	GetBySlug(slug string) (*entity.Group, error)   // Retrieves the group with the given slug
	GetAll() ([]*entity.Group, error)               // Retrieves all the groups, ordered by title
	DeleteNullifying(id uint) error                 // Deletes the group after clearing the group reference on all of its posts
}

// Implementation of the repository on a gorm database
type GormGroupRepository struct {
	db *gorm.DB
}

func NewGormGroupRepository(db *gorm.DB) GroupRepository {
	return &GormGroupRepository{db}
}

func (repo *GormGroupRepository) Create(group *entity.Group) error {
	return repo.db.Create(group).Error
}

func (repo *GormGroupRepository) GetByID(id uint) (*entity.Group, error) {
	var group entity.Group
	if err := repo.db.First(&group, id).Error; err != nil {
		return nil, translate(err)
	}
	return &group, nil
}

func (repo *GormGroupRepository) GetBySlug(slug string) (*entity.Group, error) {
	var group entity.Group
	if err := repo.db.Where("slug = ?", slug).First(&group).Error; err != nil {
		return nil, translate(err)
	}
	return &group, nil
}

func (repo *GormGroupRepository) GetAll() ([]*entity.Group, error) {
	var groups []*entity.Group
	err := repo.db.Order("title ASC").Find(&groups).Error
	return groups, err
}

func (repo *GormGroupRepository) DeleteNullifying(id uint) error {
	return repo.db.Transaction(func(tx *gorm.DB) error {
		var group entity.Group
		if err := tx.First(&group, id).Error; err != nil {
			return translate(err)
		}

		if err := tx.Model(&entity.Post{}).Where("group_id = ?", id).
			Update("group_id", nil).Error; err != nil {
			return err
		}

		return tx.Delete(&group).Error
	})
}
