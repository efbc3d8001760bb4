// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// TokenRequest is the identity a caller asks to have signed into a token.
type TokenRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// Claims is the decoded payload of an access token.
//
// Email identifies the caller; the embedded RegisteredClaims carry the
// standard iat/exp/iss values.
type Claims struct {
	Email string `json:"email"`

	jwt.RegisteredClaims
}

// Token wraps a signed access token.
type Token struct {
	// Token is the underlying JWT used for signing and claim inspection.
	// Excluded from JSON serialization because only the compact string form
	// is meaningful outside the server process.
	*jwt.Token `json:"-"`

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"token"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
