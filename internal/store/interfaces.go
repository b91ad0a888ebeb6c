// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store implements the persistence gateway: a single shared
// PostgreSQL handle and the repositories request handlers use to read and
// write domain entities.
package store

import (
	"context"

	"github.com/MKhiriev/go-user-api/models"
)

// UserRepository is the data-access contract for the User entity.
//
// Failure semantics: CreateUser surfaces a uniqueness violation as
// [ErrEmailAlreadyExists]; the Find methods surface absence as
// [ErrNoUserWasFound] rather than a driver error.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, id int64) (models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
}
