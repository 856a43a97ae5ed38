/*
 * Copyright (c) 2026 Francesco Biribo'
 *
 * Permission to use, copy, modify, and distribute this software for any purpose with or without fee is hereby granted, provided that the above copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package service

import (
	"errors"
	"log/slog"
	"time"

	"yatube/internal/entity"
	"yatube/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Service used for the user registration and login phases
type AuthService interface {
	Register(username, password string) (*entity.User, error) // Tries to create a new user in the system, returning it if successful
	Login(username, password string) (*entity.User, error)    // Tries to authenticate a user via its credentials, returning the user entity if successful
}

type authService struct {
	users  repository.UserRepository
	logger *slog.Logger
}

func NewAuthService(users repository.UserRepository, logger *slog.Logger) AuthService {
	return &authService{
		users:  users,
		logger: logger,
	}
}

func (a *authService) Register(username, password string) (*entity.User, error) {
	if _, err := a.users.GetByUsername(username); err == nil {
		return nil, ErrUsernameTaken
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		a.logger.Error("could not calculate hash", "error", err)
		return nil, err
	}

	id := uuid.New().String()
	u := &entity.User{
		UUID:      id,
		Username:  username,
		CreatedAt: time.Now(),

		Secret: entity.UserSecret{
			UserUUID: id,
			Hash:     string(hash),
		},
	}
	if err := a.users.Create(u); err != nil {
		return nil, err
	}

	a.logger.Info("user registered", "username", username)
	return u, nil
}

func (a *authService) Login(username, password string) (*entity.User, error) {
	u, err := a.users.GetForLogin(username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrWrongCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Secret.Hash), []byte(password)); err != nil {
		return nil, ErrWrongCredentials
	}

	a.logger.Info("user logged in", "username", username)
	return u, nil
}
