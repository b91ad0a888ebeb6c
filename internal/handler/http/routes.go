// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-user-api/internal/config"
	"github.com/MKhiriev/go-user-api/internal/logger"
	"github.com/MKhiriev/go-user-api/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()

	router.Use(h.withRequestID)
	router.Use(h.withLogging)
	router.Use(h.recoverer)

	// cross-origin requests are allowed in development only
	if h.env == config.EnvDevelopment {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
			AllowedHeaders:   []string{"*"},
			AllowCredentials: true,
		}))
	}

	router.Use(h.withBodyLimit)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/auth/login", h.login)
		r.Post("/users", h.createUser)
		r.Get("/users", h.listUsers)
		r.Get("/health", h.health)
		r.Get("/docs", h.docsPage)
		r.Get("/docs/openapi.json", h.openAPI)
	})

	// routes behind the JWT guard
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Get("/users/me", h.getMe)
	})

	router.NotFound(notFound)
	router.MethodNotAllowed(methodNotAllowed)

	return router
}

// notFound answers unknown routes with a uniform structured 404.
func notFound(w http.ResponseWriter, r *http.Request) {
	logger.FromRequest(r).Warn().
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Msg("route not found")

	writeError(w, models.ErrorResponse{
		Error:      http.StatusText(http.StatusNotFound),
		StatusCode: http.StatusNotFound,
	}, http.StatusNotFound)
}

// methodNotAllowed answers a known route hit with the wrong method.
func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeError(w, models.ErrorResponse{
		Error:      http.StatusText(http.StatusMethodNotAllowed),
		StatusCode: http.StatusMethodNotAllowed,
	}, http.StatusMethodNotAllowed)
}
