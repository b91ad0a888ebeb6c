// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-user-api/internal/schema"
)

// Request and response schemas. Each declaration drives both runtime body
// validation and the generated OpenAPI document.

var loginRequestSchema = schema.Object{
	Name:        "LoginRequest",
	Title:       "Login Request",
	Description: "Login credentials",
	Fields: []schema.Field{
		{Name: "email", Type: schema.TypeString, Required: true, Format: schema.FormatEmail},
		{Name: "password", Type: schema.TypeString, Required: true, MinLength: 8},
	},
}

var loginResponseSchema = schema.Object{
	Name:        "LoginResponse",
	Title:       "Login Response",
	Description: "JWT access token",
	Fields: []schema.Field{
		{Name: "accessToken", Type: schema.TypeString, Required: true},
	},
}

var createUserRequestSchema = schema.Object{
	Name:        "CreateUserRequest",
	Title:       "Create User Request",
	Description: "User registration data",
	Fields: []schema.Field{
		{Name: "email", Type: schema.TypeString, Required: true, Format: schema.FormatEmail},
		{Name: "password", Type: schema.TypeString, Required: true, MinLength: 8},
		{Name: "name", Type: schema.TypeString},
	},
}

var userResponseSchema = schema.Object{
	Name:        "UserResponse",
	Title:       "User Response",
	Description: "User information",
	Fields: []schema.Field{
		{Name: "id", Type: schema.TypeInteger, Required: true},
		{Name: "email", Type: schema.TypeString, Required: true, Format: schema.FormatEmail},
		{Name: "name", Type: schema.TypeString, Required: true, Nullable: true},
		{Name: "createdAt", Type: schema.TypeString, Required: true, Format: schema.FormatDateTime},
	},
}

var errorResponseSchema = schema.Object{
	Name:        "ErrorResponse",
	Title:       "Error Response",
	Description: "Error message",
	Fields: []schema.Field{
		{Name: "error", Type: schema.TypeString, Required: true},
		{Name: "message", Type: schema.TypeString},
		{Name: "statusCode", Type: schema.TypeInteger},
		{Name: "stack", Type: schema.TypeString},
	},
}

var healthResponseSchema = schema.Object{
	Name:        "HealthResponse",
	Title:       "Health Response",
	Description: "Service liveness report",
	Fields: []schema.Field{
		{Name: "status", Type: schema.TypeString, Required: true},
	},
}

// apiRoutes is the documentation route table. Paths and methods here must
// stay in sync with Handler.Init.
var apiRoutes = []schema.Route{
	{
		Method:  http.MethodPost,
		Path:    "/auth/login",
		Summary: "Authenticate and receive a JWT access token",
		Tag:     "auth",
		Request: &loginRequestSchema,
		Responses: map[int]schema.Response{
			http.StatusOK:           {Schema: &loginResponseSchema},
			http.StatusUnauthorized: {Description: "Invalid credentials", Schema: &errorResponseSchema},
		},
	},
	{
		Method:  http.MethodPost,
		Path:    "/users",
		Summary: "Register a new user",
		Tag:     "users",
		Request: &createUserRequestSchema,
		Responses: map[int]schema.Response{
			http.StatusOK:       {Schema: &userResponseSchema},
			http.StatusConflict: {Description: "Email already exists", Schema: &errorResponseSchema},
		},
	},
	{
		Method:  http.MethodGet,
		Path:    "/users",
		Summary: "List all users, newest first",
		Tag:     "users",
		Responses: map[int]schema.Response{
			http.StatusOK: {Schema: &userResponseSchema, Array: true},
		},
	},
	{
		Method:  http.MethodGet,
		Path:    "/users/me",
		Summary: "Return the authenticated user",
		Tag:     "users",
		Secured: true,
		Responses: map[int]schema.Response{
			http.StatusOK:           {Schema: &userResponseSchema},
			http.StatusUnauthorized: {Description: "Missing or invalid token", Schema: &errorResponseSchema},
		},
	},
	{
		Method:  http.MethodGet,
		Path:    "/health",
		Summary: "Liveness check",
		Tag:     "health",
		Responses: map[int]schema.Response{
			http.StatusOK: {Schema: &healthResponseSchema},
		},
	},
}
