// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/go-user-api/internal/store"
	"github.com/MKhiriev/go-user-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateUser_Success(t *testing.T) {
	users := &mockUserService{
		registerFn: func(ctx context.Context, email string, password string, name *string) (models.User, error) {
			return models.User{
				ID:        1,
				Email:     email,
				Password:  "$2a$10$bcrypt-hash-never-shown",
				Name:      name,
				CreatedAt: time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC),
			}, nil
		},
	}
	router := newTestRouter(&mockAuthService{}, users)

	name := "Alice"
	rec := doRequest(t, router, http.MethodPost, "/users",
		models.CreateUserRequest{Email: "a@x.com", Password: "password123", Name: &name}, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeJSONBody(t, rec)
	assert.EqualValues(t, 1, body["id"])
	assert.Equal(t, "a@x.com", body["email"])
	assert.Equal(t, "Alice", body["name"])
	assert.Equal(t, "2026-08-29T12:00:00Z", body["createdAt"])

	// no password field of any spelling may leak
	assert.NotContains(t, rec.Body.String(), "password")
	assert.NotContains(t, rec.Body.String(), "bcrypt")
}

func TestCreateUser_OptionalNameOmitted(t *testing.T) {
	users := &mockUserService{
		registerFn: func(ctx context.Context, email string, password string, name *string) (models.User, error) {
			require.Nil(t, name)
			return models.User{ID: 2, Email: email, CreatedAt: time.Now()}, nil
		},
	}
	router := newTestRouter(&mockAuthService{}, users)

	rec := doRequest(t, router, http.MethodPost, "/users",
		map[string]any{"email": "b@x.com", "password": "password123"}, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeJSONBody(t, rec)
	assert.Nil(t, body["name"])
}

func TestCreateUser_EmailAlreadyExists(t *testing.T) {
	users := &mockUserService{
		registerFn: func(ctx context.Context, email string, password string, name *string) (models.User, error) {
			return models.User{}, store.ErrEmailAlreadyExists
		},
	}
	router := newTestRouter(&mockAuthService{}, users)

	rec := doRequest(t, router, http.MethodPost, "/users",
		models.CreateUserRequest{Email: "taken@x.com", Password: "password123"}, nil)

	require.Equal(t, http.StatusConflict, rec.Code)
	assert.JSONEq(t, `{"error":"Email already exists"}`, rec.Body.String())
}

func TestCreateUser_Validation(t *testing.T) {
	router := newTestRouter(&mockAuthService{}, &mockUserService{})

	rec := doRequest(t, router, http.MethodPost, "/users",
		map[string]any{"email": "a@x.com", "password": "short"}, nil)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeJSONBody(t, rec)
	assert.Contains(t, body["message"], "password")
}

func TestListUsers(t *testing.T) {
	users := &mockUserService{
		listFn: func(ctx context.Context) ([]models.User, error) {
			name := "Bob"
			return []models.User{
				{ID: 2, Email: "b@x.com", Password: "hash-b", Name: &name, CreatedAt: time.Now()},
				{ID: 1, Email: "a@x.com", Password: "hash-a", CreatedAt: time.Now().Add(-time.Hour)},
			}, nil
		},
	}
	router := newTestRouter(&mockAuthService{}, users)

	rec := doRequest(t, router, http.MethodGet, "/users", nil, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "password")
	assert.NotContains(t, rec.Body.String(), "hash-")

	var list []models.UserResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list, 2)
	assert.EqualValues(t, 2, list[0].ID)
}

func TestListUsers_Empty(t *testing.T) {
	users := &mockUserService{
		listFn: func(ctx context.Context) ([]models.User, error) {
			return []models.User{}, nil
		},
	}
	router := newTestRouter(&mockAuthService{}, users)

	rec := doRequest(t, router, http.MethodGet, "/users", nil, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}
