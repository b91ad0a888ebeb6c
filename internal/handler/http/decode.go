// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-user-api/internal/logger"
	"github.com/MKhiriev/go-user-api/internal/schema"
	"github.com/MKhiriev/go-user-api/models"
)

// decodeBody reads the request body, validates it against obj and, if
// accepted, unmarshals it into dst.
//
// On rejection it writes the 400 (or 413, when the body-limit middleware
// cut the read short) response itself and returns false; the handler must
// simply return.
func (h *Handler) decodeBody(w http.ResponseWriter, r *http.Request, obj schema.Object, dst any) bool {
	log := logger.FromRequest(r)

	raw, err := io.ReadAll(r.Body)
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			log.Warn().Int64("limit", maxBytesErr.Limit).Msg("request body over size limit")
			writeError(w, models.ErrorResponse{
				Error:      http.StatusText(http.StatusRequestEntityTooLarge),
				StatusCode: http.StatusRequestEntityTooLarge,
			}, http.StatusRequestEntityTooLarge)
			return false
		}
		log.Err(err).Msg("failed to read request body")
		badRequest(w, "body could not be read")
		return false
	}

	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil {
		log.Debug().Err(err).Msg("request body is not a JSON object")
		badRequest(w, "body must be a JSON object")
		return false
	}

	if fieldErrors := obj.Validate(fields); len(fieldErrors) > 0 {
		messages := make([]string, 0, len(fieldErrors))
		for _, fe := range fieldErrors {
			messages = append(messages, "body/"+fe.Error())
		}
		log.Debug().Strs("violations", messages).Msg("request body rejected")
		badRequest(w, strings.Join(messages, "; "))
		return false
	}

	if err := json.Unmarshal(raw, dst); err != nil {
		log.Err(err).Msg("failed to unmarshal validated body")
		badRequest(w, "body must be a JSON object")
		return false
	}

	return true
}
