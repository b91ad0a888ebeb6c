// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the business logic between HTTP handlers and the
// persistence layer: credential verification, password hashing, JWT
// issuance and parsing, and user account operations.
package service

import (
	"context"

	"github.com/MKhiriev/go-user-api/models"
)

// AuthService verifies credentials and manages the JWT lifecycle.
type AuthService interface {
	// Login authenticates by email and plain-text password. Absent account
	// and wrong password both surface as ErrInvalidCredentials so the
	// response does not reveal which part failed.
	Login(ctx context.Context, email string, password string) (models.User, error)

	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// UserService manages user accounts.
type UserService interface {
	// RegisterUser hashes the password and persists a new account.
	// A duplicate email surfaces as store.ErrEmailAlreadyExists.
	RegisterUser(ctx context.Context, email string, password string, name *string) (models.User, error)

	GetUserByID(ctx context.Context, id int64) (models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
}
