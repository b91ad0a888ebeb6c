// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-user-api/internal/service"
	"github.com/MKhiriev/go-user-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogin_Success(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(ctx context.Context, email string, password string) (models.User, error) {
			return models.User{ID: 1, Email: email}, nil
		},
		createTokenFn: func(ctx context.Context, user models.User) (models.Token, error) {
			return models.Token{SignedString: "header.payload.signature"}, nil
		},
	}
	router := newTestRouter(auth, &mockUserService{})

	rec := doRequest(t, router, http.MethodPost, "/auth/login",
		models.LoginRequest{Email: "a@x.com", Password: "password123"}, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeJSONBody(t, rec)
	assert.Equal(t, "header.payload.signature", body["accessToken"])
}

// An unknown email and a wrong password must produce byte-identical 401
// responses.
func TestLogin_UniformInvalidCredentials(t *testing.T) {
	unknownEmail := &mockAuthService{
		loginFn: func(ctx context.Context, email string, password string) (models.User, error) {
			return models.User{}, service.ErrInvalidCredentials
		},
	}
	wrongPassword := &mockAuthService{
		loginFn: func(ctx context.Context, email string, password string) (models.User, error) {
			return models.User{}, service.ErrInvalidCredentials
		},
	}

	recUnknown := doRequest(t, newTestRouter(unknownEmail, &mockUserService{}),
		http.MethodPost, "/auth/login",
		models.LoginRequest{Email: "absent@x.com", Password: "password123"}, nil)
	recWrong := doRequest(t, newTestRouter(wrongPassword, &mockUserService{}),
		http.MethodPost, "/auth/login",
		models.LoginRequest{Email: "known@x.com", Password: "not-the-password"}, nil)

	assert.Equal(t, http.StatusUnauthorized, recUnknown.Code)
	assert.Equal(t, http.StatusUnauthorized, recWrong.Code)
	assert.Equal(t, recUnknown.Body.String(), recWrong.Body.String())
	assert.JSONEq(t, `{"error":"Invalid credentials"}`, recUnknown.Body.String())
}

func TestLogin_Validation(t *testing.T) {
	router := newTestRouter(&mockAuthService{}, &mockUserService{})

	tests := []struct {
		name string
		body any
	}{
		{"missing email", map[string]any{"password": "password123"}},
		{"missing password", map[string]any{"email": "a@x.com"}},
		{"malformed email", map[string]any{"email": "not-an-email", "password": "password123"}},
		{"short password", map[string]any{"email": "a@x.com", "password": "short"}},
		{"non-object body", `"just a string"`},
		{"broken JSON", `{"email":`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, router, http.MethodPost, "/auth/login", tt.body, nil)

			require.Equal(t, http.StatusBadRequest, rec.Code)
			body := decodeJSONBody(t, rec)
			assert.Equal(t, "Bad Request", body["error"])
			assert.EqualValues(t, http.StatusBadRequest, body["statusCode"])
		})
	}
}

func TestLogin_TokenCreationFailure(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(ctx context.Context, email string, password string) (models.User, error) {
			return models.User{ID: 1, Email: email}, nil
		},
		createTokenFn: func(ctx context.Context, user models.User) (models.Token, error) {
			return models.Token{}, service.ErrTokenCreationFailed
		},
	}
	router := newTestRouter(auth, &mockUserService{})

	rec := doRequest(t, router, http.MethodPost, "/auth/login",
		models.LoginRequest{Email: "a@x.com", Password: "password123"}, nil)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
