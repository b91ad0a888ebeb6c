// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package models defines the domain entities and the request/response
// shapes exchanged over the HTTP API.
package models

import "time"

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse carries the signed access token issued on successful login.
type LoginResponse struct {
	AccessToken string `json:"accessToken"`
}

// CreateUserRequest is the body of POST /users.
type CreateUserRequest struct {
	Email    string  `json:"email"`
	Password string  `json:"password"`
	Name     *string `json:"name,omitempty"`
}

// UserResponse is the public representation of a user. It deliberately has
// no password field of any kind.
type UserResponse struct {
	ID        int64   `json:"id"`
	Email     string  `json:"email"`
	Name      *string `json:"name"`
	CreatedAt string  `json:"createdAt"`
}

// NewUserResponse converts a persisted User into its public representation,
// serializing CreatedAt as an RFC 3339 timestamp.
func NewUserResponse(u User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
	}
}

// NewUserListResponse converts a slice of users preserving order.
func NewUserListResponse(users []User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, NewUserResponse(u))
	}
	return out
}

// ErrorResponse is the uniform error body returned by the API.
// Message, StatusCode and Stack are optional; the guard and the simple
// failure paths return only Error.
type ErrorResponse struct {
	Error      string `json:"error"`
	Message    string `json:"message,omitempty"`
	StatusCode int    `json:"statusCode,omitempty"`
	Stack      string `json:"stack,omitempty"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status string `json:"status"`
}
