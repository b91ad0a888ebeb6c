// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"
)

// minJWTSecretLength is the minimum accepted length of the token signing
// secret. Shorter secrets make HS256 brute-forceable.
const minJWTSecretLength = 32

// fieldError describes one violated configuration field. Collecting these
// instead of failing on the first violation lets the operator fix the whole
// environment in one pass.
type fieldError struct {
	field  string
	reason string
}

func (e fieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.field, e.reason)
}

// validate checks that the final merged [Config] satisfies all application
// invariants before it is used at startup.
//
// Every violation is collected and returned joined under [ErrInvalidConfig],
// so callers can print the complete list and fail fast. There is no
// partial-start mode.
func (cfg *Config) validate() error {
	var violations []error

	switch cfg.Env {
	case EnvDevelopment, EnvProduction, EnvTest:
	default:
		violations = append(violations, fieldError{"APP_ENV", fmt.Sprintf("must be one of development, production, test; got %q", cfg.Env)})
	}

	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		violations = append(violations, fieldError{"PORT", fmt.Sprintf("must be between 1 and 65535; got %d", cfg.Server.Port)})
	}

	if cfg.Server.Host == "" {
		violations = append(violations, fieldError{"HOST", "is required"})
	}

	if cfg.Storage.DSN == "" {
		violations = append(violations, fieldError{"DATABASE_URL", "is required"})
	}

	if len(cfg.App.JWTSecret) < minJWTSecretLength {
		violations = append(violations, fieldError{"JWT_SECRET", fmt.Sprintf("must be at least %d characters; got %d", minJWTSecretLength, len(cfg.App.JWTSecret))})
	}

	if cfg.App.TokenDuration <= 0 {
		violations = append(violations, fieldError{"JWT_EXPIRES_IN", "must be a positive duration"})
	}

	if _, err := zerolog.ParseLevel(cfg.Log.Level); err != nil {
		violations = append(violations, fieldError{"LOG_LEVEL", fmt.Sprintf("unknown level %q", cfg.Log.Level)})
	}

	if cfg.Log.Dir == "" {
		violations = append(violations, fieldError{"LOG_DIR", "is required"})
	}

	if cfg.Log.MaxSizeMB < 1 {
		violations = append(violations, fieldError{"LOG_MAX_SIZE_MB", "must be at least 1"})
	}

	if cfg.Log.MaxAgeDays < 0 {
		violations = append(violations, fieldError{"LOG_MAX_AGE_DAYS", "must not be negative"})
	}

	if len(violations) == 0 {
		return nil
	}

	return fmt.Errorf("%w:\n%w", ErrInvalidConfig, errors.Join(violations...))
}
