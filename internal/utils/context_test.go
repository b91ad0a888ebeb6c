// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-user-api/models"
	"github.com/stretchr/testify/assert"
)

func TestGetJwtPayloadFromContext(t *testing.T) {
	payload := models.JwtPayload{UserID: 7, Email: "a@x.com"}
	ctx := context.WithValue(context.Background(), JwtPayloadCtxKey, payload)

	got, ok := GetJwtPayloadFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, payload, got)
}

func TestGetJwtPayloadFromContext_Missing(t *testing.T) {
	_, ok := GetJwtPayloadFromContext(context.Background())
	assert.False(t, ok)
}

func TestGetJwtPayloadFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), JwtPayloadCtxKey, int64(42))
	_, ok := GetJwtPayloadFromContext(ctx)
	assert.False(t, ok)
}
