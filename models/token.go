// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// JwtPayload is the application-specific claim set carried inside every
// issued access token. Any authenticated request exposes this as the
// ambient per-request identity.
type JwtPayload struct {
	// UserID is the internal identifier of the authenticated user.
	UserID int64 `json:"userId"`

	// Email is the email the user authenticated with at token issue time.
	Email string `json:"email"`
}

// Token wraps a JWT access token with convenience accessors for
// authentication flows.
//
// It embeds [jwt.Token] for low-level token operations (signing, parsing),
// [JwtPayload] for the application claims, and [jwt.RegisteredClaims] for
// the standard claim set (iat, exp). Because it embeds both claim types it
// satisfies the jwt.Claims interface and can be passed directly to
// jwt.ParseWithClaims.
//
// SignedString holds the compact serialized form of the token
// (header.payload.signature) ready to be transmitted in HTTP headers.
type Token struct {
	// Token is the underlying JWT token used for signing and claim
	// inspection. Excluded from JSON serialization because only the compact
	// string form is meaningful outside the server process.
	*jwt.Token `json:"-"`

	// JwtPayload carries the application claims {userId, email}.
	JwtPayload

	// RegisteredClaims provides access to the standard JWT claim set
	// (exp, iat, nbf, iss, aud, jti) as defined by RFC 7519.
	jwt.RegisteredClaims

	// SignedString is the compact JWS representation of the token
	// (base64url-encoded header.payload.signature).
	SignedString string `json:"-"`
}
