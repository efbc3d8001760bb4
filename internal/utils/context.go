// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys,
// HTTP response writing, JWT token generation and validation.
package utils

import (
	"context"

	"github.com/MKhiriev/scholarship-portal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// ClaimsCtxKey is the key under which the authentication middleware stores
// the caller's decoded token claims.
var ClaimsCtxKey = contextKey("claims")

// ObjectIDCtxKey is the key under which the identifier middleware stores the
// parsed {id} path parameter.
var ObjectIDCtxKey = contextKey("objectID")

// WithClaims returns a copy of ctx carrying claims.
func WithClaims(ctx context.Context, claims models.Claims) context.Context {
	return context.WithValue(ctx, ClaimsCtxKey, claims)
}

// GetClaimsFromContext retrieves the caller's token claims from the context.
//
// Returns ok == false when the value is missing or has an unexpected type.
func GetClaimsFromContext(ctx context.Context) (models.Claims, bool) {
	claims, ok := ctx.Value(ClaimsCtxKey).(models.Claims)
	return claims, ok
}

// WithObjectID returns a copy of ctx carrying a parsed identifier.
func WithObjectID(ctx context.Context, id primitive.ObjectID) context.Context {
	return context.WithValue(ctx, ObjectIDCtxKey, id)
}

// GetObjectIDFromContext retrieves the parsed {id} path parameter.
func GetObjectIDFromContext(ctx context.Context) (primitive.ObjectID, bool) {
	id, ok := ctx.Value(ObjectIDCtxKey).(primitive.ObjectID)
	return id, ok
}
