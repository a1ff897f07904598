// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, HTTP response
// writing, JWT token generation and validation, and random file names.
package utils

import (
	"context"

	"github.com/MKhiriev/go-blog/models"
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

// PrincipalCtxKey is the key used to store the request principal in the context.
var PrincipalCtxKey = contextKey("principal")

// WithPrincipal returns a copy of ctx carrying p.
func WithPrincipal(ctx context.Context, p models.Principal) context.Context {
	return context.WithValue(ctx, PrincipalCtxKey, p)
}

// GetPrincipalFromContext retrieves the request principal from the context.
// A context without a principal yields [models.Anonymous].
func GetPrincipalFromContext(ctx context.Context) models.Principal {
	p, ok := ctx.Value(PrincipalCtxKey).(models.Principal)
	if !ok || p == nil {
		return models.Anonymous{}
	}
	return p
}

// GetUserFromContext returns the authenticated user stored in the context.
//
// Returns the user and an ok flag:
//   - ok == true: the request is authenticated
//   - ok == false: the request is anonymous
func GetUserFromContext(ctx context.Context) (models.User, bool) {
	return models.UserOf(GetPrincipalFromContext(ctx))
}
