// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-user-api/internal/logger"
	"github.com/MKhiriev/go-user-api/internal/store"
	"github.com/MKhiriev/go-user-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestUserService_RegisterUser_Success(t *testing.T) {
	var persisted models.User
	repo := &mockUserRepository{
		createFn: func(ctx context.Context, user models.User) (models.User, error) {
			persisted = user
			user.ID = 1
			return user, nil
		},
	}
	users := NewUserService(repo, logger.Nop())

	name := "Alice"
	created, err := users.RegisterUser(context.Background(), "a@x.com", "plaintext", &name)
	require.NoError(t, err)

	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, "a@x.com", created.Email)
	require.NotNil(t, created.Name)
	assert.Equal(t, "Alice", *created.Name)

	// the repository must never see the plain-text password
	assert.NotEqual(t, "plaintext", persisted.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(persisted.Password), []byte("plaintext")))
}

func TestUserService_RegisterUser_NilName(t *testing.T) {
	repo := &mockUserRepository{
		createFn: func(ctx context.Context, user models.User) (models.User, error) {
			user.ID = 2
			return user, nil
		},
	}
	users := NewUserService(repo, logger.Nop())

	created, err := users.RegisterUser(context.Background(), "b@x.com", "plaintext", nil)
	require.NoError(t, err)
	assert.Nil(t, created.Name)
}

func TestUserService_RegisterUser_DuplicateEmail(t *testing.T) {
	repo := &mockUserRepository{
		findByEmailFn: func(ctx context.Context, email string) (models.User, error) {
			return models.User{ID: 1, Email: email}, nil
		},
		createFn: func(ctx context.Context, user models.User) (models.User, error) {
			t.Fatal("CreateUser must not be called when the email is taken")
			return models.User{}, nil
		},
	}
	users := NewUserService(repo, logger.Nop())

	_, err := users.RegisterUser(context.Background(), "taken@x.com", "plaintext", nil)
	assert.ErrorIs(t, err, store.ErrEmailAlreadyExists)
}

// The service pre-check can race a concurrent registration; the unique
// index violation from CreateUser must still come back as
// ErrEmailAlreadyExists.
func TestUserService_RegisterUser_ConcurrentDuplicate(t *testing.T) {
	repo := &mockUserRepository{
		createFn: func(ctx context.Context, user models.User) (models.User, error) {
			return models.User{}, store.ErrEmailAlreadyExists
		},
	}
	users := NewUserService(repo, logger.Nop())

	_, err := users.RegisterUser(context.Background(), "racing@x.com", "plaintext", nil)
	assert.ErrorIs(t, err, store.ErrEmailAlreadyExists)
}

func TestUserService_RegisterUser_LookupError(t *testing.T) {
	repo := &mockUserRepository{
		findByEmailFn: func(ctx context.Context, email string) (models.User, error) {
			return models.User{}, errors.New("connection refused")
		},
	}
	users := NewUserService(repo, logger.Nop())

	_, err := users.RegisterUser(context.Background(), "a@x.com", "plaintext", nil)
	require.Error(t, err)
	assert.NotErrorIs(t, err, store.ErrEmailAlreadyExists)
}

func TestUserService_GetUserByID(t *testing.T) {
	repo := &mockUserRepository{
		findByIDFn: func(ctx context.Context, id int64) (models.User, error) {
			if id == 7 {
				return models.User{ID: 7, Email: "a@x.com"}, nil
			}
			return models.User{}, store.ErrNoUserWasFound
		},
	}
	users := NewUserService(repo, logger.Nop())

	found, err := users.GetUserByID(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, int64(7), found.ID)

	_, err = users.GetUserByID(context.Background(), 8)
	assert.ErrorIs(t, err, store.ErrNoUserWasFound)
}

func TestUserService_ListUsers(t *testing.T) {
	repo := &mockUserRepository{
		listFn: func(ctx context.Context) ([]models.User, error) {
			return []models.User{{ID: 2}, {ID: 1}}, nil
		},
	}
	users := NewUserService(repo, logger.Nop())

	list, err := users.ListUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, int64(2), list[0].ID)
}
