// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-user-api/internal/logger"
	"github.com/MKhiriev/go-user-api/internal/utils"
)

// auth is the JWT guard for protected routes.
//
// It extracts the bearer token from the "Authorization" header, validates it
// via [service.AuthService.ParseToken] and, on success, stores the token
// payload in the request context under [utils.JwtPayloadCtxKey] before
// delegating to the next handler.
//
// Every rejection, whether the header is missing, malformed, the token is
// expired or the signature does not verify, answers with the same 401 body
// so that a probing client learns nothing about the failure mode.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Debug().Err(ErrEmptyAuthorizationHeader).Send()
			unauthorized(w, "Unauthorized")
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Debug().Err(ErrInvalidAuthorizationHeader).Send()
			unauthorized(w, "Unauthorized")
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Debug().Err(err).Msg("token rejected")
			unauthorized(w, "Unauthorized")
			return
		}

		// Store the verified payload so downstream handlers can identify the
		// caller without re-parsing the token.
		ctx = context.WithValue(ctx, utils.JwtPayloadCtxKey, token.JwtPayload)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
