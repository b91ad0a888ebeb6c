// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"
	"runtime/debug"

	"github.com/MKhiriev/go-user-api/internal/config"
	"github.com/MKhiriev/go-user-api/internal/logger"
	"github.com/MKhiriev/go-user-api/internal/utils"
	"github.com/MKhiriev/go-user-api/models"
)

// Sentinel errors used by the authentication middleware when parsing the
// "Authorization" HTTP header. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is present but does not carry a bearer token.
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")
)

// writeError sends the uniform JSON error body.
func writeError(w http.ResponseWriter, resp models.ErrorResponse, status int) {
	_, _ = utils.WriteJSON(w, resp, status)
}

// badRequest reports a validation or decoding failure in the shape the
// documented 400 response promises.
func badRequest(w http.ResponseWriter, message string) {
	writeError(w, models.ErrorResponse{
		Error:      http.StatusText(http.StatusBadRequest),
		Message:    message,
		StatusCode: http.StatusBadRequest,
	}, http.StatusBadRequest)
}

// unauthorized sends a minimal 401 body. The guard and the login handler
// both use it so that every authentication failure looks identical.
func unauthorized(w http.ResponseWriter, message string) {
	writeError(w, models.ErrorResponse{Error: message}, http.StatusUnauthorized)
}

// serverError logs err and answers 500. The body always carries the error
// message; a stack trace is attached outside production only.
func (h *Handler) serverError(w http.ResponseWriter, r *http.Request, err error) {
	logger.FromRequest(r).Err(err).Msg("request failed with internal error")

	resp := models.ErrorResponse{
		Error:      http.StatusText(http.StatusInternalServerError),
		Message:    err.Error(),
		StatusCode: http.StatusInternalServerError,
	}
	if h.env != config.EnvProduction {
		resp.Stack = string(debug.Stack())
	}
	writeError(w, resp, http.StatusInternalServerError)
}
