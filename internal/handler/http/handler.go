// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/MKhiriev/go-user-api/internal/logger"
	"github.com/MKhiriev/go-user-api/internal/service"
)

type Handler struct {
	services *service.Services

	logger *logger.Logger

	// env controls error verbosity: stack traces are attached to 500
	// responses in every environment except production.
	env string
}

func NewHandler(services *service.Services, env string, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		logger:   logger,
		env:      env,
	}
}
