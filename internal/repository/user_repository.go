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

// This repository manipulates the users in the system.
// Deletion is a "cascading" contract: a user takes all of their posts down with them.
type UserRepository interface {
	Create(user *entity.User) error                     // Inserts a user (with its secret) in the repository
	GetByUUID(uuid string) (*entity.User, error)        // Retrieves the user with the given uuid
	GetByUsername(username string) (*entity.User, error) // Retrieves the user with the given username
	GetForLogin(username string) (*entity.User, error)  // Retrieves the user with its hashed password, hence, used for login
	DeleteCascading(uuid string) error                  // Deletes the user, their secret and every post they authored
}

// Implementation of the repository on a gorm database
type GormUserRepository struct {
	db *gorm.DB
}

func NewGormUserRepository(db *gorm.DB) UserRepository {
	return &GormUserRepository{db}
}

func (repo *GormUserRepository) Create(user *entity.User) error {
	return repo.db.Create(user).Error
}

func (repo *GormUserRepository) GetByUUID(uuid string) (*entity.User, error) {
	var user entity.User
	if err := repo.db.Where("uuid = ?", uuid).First(&user).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (repo *GormUserRepository) GetByUsername(username string) (*entity.User, error) {
	var user entity.User
	if err := repo.db.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (repo *GormUserRepository) GetForLogin(username string) (*entity.User, error) {
	var user entity.User
	err := repo.db.Preload("Secret").Where("username = ?", username).First(&user).Error
	if err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (repo *GormUserRepository) DeleteCascading(uuid string) error {
	return repo.db.Transaction(func(tx *gorm.DB) error {
		var user entity.User
		if err := tx.Where("uuid = ?", uuid).First(&user).Error; err != nil {
			return translate(err)
		}

		if err := tx.Where("author_uuid = ?", uuid).Delete(&entity.Post{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_uuid = ?", uuid).Delete(&entity.UserSecret{}).Error; err != nil {
			return err
		}

		return tx.Delete(&user).Error
	})
}
