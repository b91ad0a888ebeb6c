// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-user-api/internal/config"
	"github.com/MKhiriev/go-user-api/internal/logger"
	"github.com/MKhiriev/go-user-api/migrations"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib" // register the "pgx" database/sql driver
)

// DB is the shared persistence handle: one pooled connection for the process
// lifetime, used concurrently by every request. It instruments each
// operation with statement, arguments and duration through the query logger
// (a no-op logger outside the environments where tracing is enabled).
type DB struct {
	*sql.DB
	logger      *logger.Logger
	queryLogger *logger.Logger
}

// NewConnectPostgres establishes the process-wide PostgreSQL connection,
// configures the pool, verifies connectivity with a ping, and applies the
// embedded schema migrations.
//
// The returned *DB must be closed exactly once, after the HTTP listener has
// stopped accepting connections.
func NewConnectPostgres(ctx context.Context, cfg config.Storage, log, queryLog *logger.Logger) (*DB, error) {
	conn, err := sql.Open("pgx", cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error occured during database connection")
		return nil, fmt.Errorf("error occured during database connection: %w", err)
	}

	conn.SetMaxOpenConns(10)
	conn.SetMaxIdleConns(4)

	if err := conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error connecting database (ping)")
		return nil, err
	}

	if err := migrations.Migrate(conn); err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error applying migrations")
		return nil, err
	}

	log.Info().Str("func", "NewConnectPostgres").Msg("connected to database successfully")

	return &DB{
		DB:          conn,
		logger:      log,
		queryLogger: queryLog,
	}, nil
}

// QueryRowContext traces the statement and delegates to database/sql.
func (db *DB) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	start := time.Now()
	row := db.DB.QueryRowContext(ctx, query, args...)
	db.trace(query, args, time.Since(start))
	return row
}

// QueryContext traces the statement and delegates to database/sql.
func (db *DB) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	start := time.Now()
	rows, err := db.DB.QueryContext(ctx, query, args...)
	db.trace(query, args, time.Since(start))
	return rows, err
}

// ExecContext traces the statement and delegates to database/sql.
func (db *DB) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	start := time.Now()
	res, err := db.DB.ExecContext(ctx, query, args...)
	db.trace(query, args, time.Since(start))
	return res, err
}

func (db *DB) trace(query string, args []any, duration time.Duration) {
	db.queryLogger.Debug().
		Str("query", query).
		Any("params", args).
		Dur("duration", duration).
		Msg("query executed")
}

// postgresError returns the PostgreSQL error code carried by err, or an
// empty string if err did not originate from the driver.
func postgresError(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}
