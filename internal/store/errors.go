// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

var (
	// ErrEmailAlreadyExists signals a uniqueness violation on the users
	// email column. Handlers translate it to 409 Conflict.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrNoUserWasFound signals an explicit absence: the queried user does
	// not exist. Callers decide the status code.
	ErrNoUserWasFound = errors.New("no user was found")
)
