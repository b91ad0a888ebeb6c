// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"github.com/MKhiriev/go-user-api/models"
	"github.com/Masterminds/squirrel"
)

// psql builds queries with PostgreSQL dollar placeholders.
var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// userColumns is the canonical column list scanned into models.User.
var userColumns = []string{"id", "email", "password", "name", "created_at"}

func buildInsertUser(u models.User) (string, []any, error) {
	return psql.Insert(u.TableName()).
		Columns("email", "password", "name").
		Values(u.Email, u.Password, u.Name).
		Suffix("RETURNING id, email, password, name, created_at").
		ToSql()
}

func buildSelectUserByEmail(email string) (string, []any, error) {
	return psql.Select(userColumns...).
		From(models.User{}.TableName()).
		Where(squirrel.Eq{"email": email}).
		ToSql()
}

func buildSelectUserByID(id int64) (string, []any, error) {
	return psql.Select(userColumns...).
		From(models.User{}.TableName()).
		Where(squirrel.Eq{"id": id}).
		ToSql()
}

// buildSelectAllUsers orders newest-created-first, matching the public
// listing contract.
func buildSelectAllUsers() (string, []any, error) {
	return psql.Select(userColumns...).
		From(models.User{}.TableName()).
		OrderBy("created_at DESC").
		ToSql()
}
