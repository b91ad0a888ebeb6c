// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-user-api/internal/logger"
	"github.com/MKhiriev/go-user-api/internal/store"
	"github.com/MKhiriev/go-user-api/internal/utils"
	"github.com/MKhiriev/go-user-api/models"
)

// createUser registers a new account and returns its public representation.
func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.CreateUserRequest
	if !h.decodeBody(w, r, createUserRequestSchema, &req) {
		return
	}

	created, err := h.services.UserService.RegisterUser(ctx, req.Email, req.Password, req.Name)
	if err != nil {
		if errors.Is(err, store.ErrEmailAlreadyExists) {
			log.Debug().Str("email", req.Email).Msg("email already exists")
			writeError(w, models.ErrorResponse{Error: "Email already exists"}, http.StatusConflict)
			return
		}
		h.serverError(w, r, err)
		return
	}

	log.Info().Int64("userId", created.ID).Msg("user created")

	_, _ = utils.WriteJSON(w, models.NewUserResponse(created), http.StatusOK)
}

// listUsers returns every account, newest first.
func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.services.UserService.ListUsers(r.Context())
	if err != nil {
		h.serverError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, models.NewUserListResponse(users), http.StatusOK)
}

// getMe returns the account identified by the verified token payload.
//
// A token that verifies but refers to a deleted account is treated as any
// other bad credential: 401, not 404.
func (h *Handler) getMe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	payload, ok := utils.GetJwtPayloadFromContext(ctx)
	if !ok {
		unauthorized(w, "Unauthorized")
		return
	}

	user, err := h.services.UserService.GetUserByID(ctx, payload.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			log.Debug().Int64("id", payload.UserID).Msg("token refers to a missing user")
			unauthorized(w, "Unauthorized")
			return
		}
		h.serverError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, models.NewUserResponse(user), http.StatusOK)
}
