// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/MKhiriev/go-user-api/internal/config"
	"github.com/MKhiriev/go-user-api/internal/logger"
	"github.com/MKhiriev/go-user-api/models"
)

// recoverer converts a panicking handler into a structured 500 response.
// The stack trace is logged always and attached to the response body
// outside production.
func (h *Handler) recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil || rec == http.ErrAbortHandler {
				if rec != nil {
					panic(rec)
				}
				return
			}

			stack := string(debug.Stack())
			logger.FromRequest(r).Error().
				Any("panic", rec).
				Str("stack", stack).
				Msg("handler panicked")

			resp := models.ErrorResponse{
				Error:      http.StatusText(http.StatusInternalServerError),
				Message:    fmt.Sprintf("%v", rec),
				StatusCode: http.StatusInternalServerError,
			}
			if h.env != config.EnvProduction {
				resp.Stack = stack
			}
			writeError(w, resp, http.StatusInternalServerError)
		}()

		next.ServeHTTP(w, r)
	})
}
