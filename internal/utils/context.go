// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys,
// HTTP response writing, and JWT token generation and validation.
package utils

import (
	"context"

	"github.com/MKhiriev/go-user-api/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// JwtPayloadCtxKey is the key under which the authentication guard stores
// the decoded token payload for the in-flight request.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.JwtPayloadCtxKey, payload)
var JwtPayloadCtxKey = contextKey("jwtPayload")

// GetJwtPayloadFromContext retrieves the authenticated identity from the
// context.
//
// Returns the payload and an ok flag:
//   - ok == true  — value is found and has the correct type
//   - ok == false — value is missing or has an unexpected type
func GetJwtPayloadFromContext(ctx context.Context) (models.JwtPayload, bool) {
	payload, ok := ctx.Value(JwtPayloadCtxKey).(models.JwtPayload)
	return payload, ok
}
