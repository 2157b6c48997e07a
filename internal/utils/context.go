// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, HTTP response
// writing, HTTP client initialization, session token generation and
// validation, and identifier generation.
package utils

import (
	"context"

	"github.com/MKhiriev/go-photo-album/models"
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

// ClaimsCtxKey is the key under which the auth middleware stores the
// verified token claims.
var ClaimsCtxKey = contextKey("claims")

// TraceIDCtxKey is the key under which the trace middleware stores the
// request trace id.
var TraceIDCtxKey = contextKey("traceID")

// WithClaims returns a copy of ctx carrying claims.
func WithClaims(ctx context.Context, claims models.Claims) context.Context {
	return context.WithValue(ctx, ClaimsCtxKey, claims)
}

// GetClaimsFromContext retrieves the verified token claims from the context.
//
// Returns the claims and an ok flag:
//   - ok == true: claims are present
//   - ok == false: the request was not authenticated
func GetClaimsFromContext(ctx context.Context) (models.Claims, bool) {
	claims, ok := ctx.Value(ClaimsCtxKey).(models.Claims)
	return claims, ok
}

// GetTraceIDFromContext returns the trace id or an empty string.
func GetTraceIDFromContext(ctx context.Context) string {
	traceID, _ := ctx.Value(TraceIDCtxKey).(string)
	return traceID
}
