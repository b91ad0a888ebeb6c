// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User represents an account entity used for authentication and authorization.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// ID is the internal unique identifier of the user,
	// assigned by the database on creation.
	ID int64 `json:"id"`

	// Email is the unique user identifier used during authentication.
	// It is format-checked on input and stored as provided (not normalized).
	Email string `json:"email"`

	// Password stores the bcrypt hash of the user's password, never the
	// plaintext. It is excluded from JSON so it can never leak into a
	// response body.
	Password string `json:"-"`

	// Name is the optional display name of the user. Nullable in the
	// database, hence the pointer.
	Name *string `json:"name"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"createdAt"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
