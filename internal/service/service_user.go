// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-user-api/internal/logger"
	"github.com/MKhiriev/go-user-api/internal/store"
	"github.com/MKhiriev/go-user-api/models"
	"golang.org/x/crypto/bcrypt"
)

// userService is the concrete implementation of UserService.
type userService struct {
	userRepository store.UserRepository
	logger         *logger.Logger
}

// NewUserService constructs a UserService backed by the given repository.
func NewUserService(userRepository store.UserRepository, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		logger:         logger,
	}
}

// RegisterUser creates a new account with a bcrypt-hashed password.
//
// A fast lookup rejects an already-registered email before hashing; the
// unique index on the email column remains the authoritative guard, so a
// concurrent duplicate still surfaces as store.ErrEmailAlreadyExists from
// CreateUser.
func (s *userService) RegisterUser(ctx context.Context, email string, password string, name *string) (models.User, error) {
	log := logger.FromContext(ctx)

	if _, err := s.userRepository.FindUserByEmail(ctx, email); err == nil {
		log.Debug().Str("email", email).Msg("registration attempt for existing email")
		return models.User{}, store.ErrEmailAlreadyExists
	} else if !errors.Is(err, store.ErrNoUserWasFound) {
		return models.User{}, fmt.Errorf("user lookup failed: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	created, err := s.userRepository.CreateUser(ctx, models.User{
		Email:    email,
		Password: string(hash),
		Name:     name,
	})
	if err != nil {
		log.Err(err).Str("email", email).Msg("user creation ended with error")
		return models.User{}, err
	}

	log.Info().Int64("id", created.ID).Msg("user registered")
	return created, nil
}

// GetUserByID returns the account with the given id.
// Absence surfaces as store.ErrNoUserWasFound.
func (s *userService) GetUserByID(ctx context.Context, id int64) (models.User, error) {
	return s.userRepository.FindUserByID(ctx, id)
}

// ListUsers returns every account, newest-created-first.
func (s *userService) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.userRepository.ListUsers(ctx)
}
