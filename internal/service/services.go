// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-user-api/internal/config"
	"github.com/MKhiriev/go-user-api/internal/logger"
	"github.com/MKhiriev/go-user-api/internal/store"
)

// Services aggregates every business-logic service the HTTP layer needs.
type Services struct {
	AuthService AuthService
	UserService UserService
}

func NewServices(userRepository store.UserRepository, cfg config.Config, logger *logger.Logger) *Services {
	return &Services{
		AuthService: NewAuthService(userRepository, cfg.App, logger),
		UserService: NewUserService(userRepository, logger),
	}
}
