// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, password hashing,
// HTTP response writing, identifier generation, JWT token generation
// and validation, and other common operations.
package utils

import (
	"context"

	"github.com/MKhiriev/go-shop-api/models"
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

var (
	// RouteDataCtxKey is the key under which the per-request
	// [models.RouteData] is stored.
	RouteDataCtxKey = contextKey("routeData")

	// APITokenPayloadCtxKey is the key under which the decoded
	// [models.APITokenPayload] is stored. A nil pointer stored under this key
	// means the request is unauthenticated.
	APITokenPayloadCtxKey = contextKey("apiTokenPayload")
)

// WithRouteData returns a copy of ctx carrying routeData.
func WithRouteData(ctx context.Context, routeData *models.RouteData) context.Context {
	return context.WithValue(ctx, RouteDataCtxKey, routeData)
}

// RouteDataFromContext retrieves the route data from the context.
//
// Returns ok == false if no route data is stored or the stored value is nil.
func RouteDataFromContext(ctx context.Context) (*models.RouteData, bool) {
	routeData, ok := ctx.Value(RouteDataCtxKey).(*models.RouteData)
	return routeData, ok && routeData != nil
}

// WithAPITokenPayload returns a copy of ctx carrying payload. Passing nil
// explicitly marks the request as unauthenticated, shadowing any payload
// stored by an outer context.
func WithAPITokenPayload(ctx context.Context, payload *models.APITokenPayload) context.Context {
	return context.WithValue(ctx, APITokenPayloadCtxKey, payload)
}

// APITokenPayloadFromContext retrieves the decoded API token payload.
//
// Returns the payload and an ok flag:
//   - ok == true : a non-nil payload is attached to the context
//   - ok == false: no payload, or it was explicitly reset to nil
//
// Example usage:
//
//	payload, ok := utils.APITokenPayloadFromContext(ctx)
//	if !ok {
//	    // request is unauthenticated
//	}
func APITokenPayloadFromContext(ctx context.Context) (*models.APITokenPayload, bool) {
	payload, ok := ctx.Value(APITokenPayloadCtxKey).(*models.APITokenPayload)
	return payload, ok && payload != nil
}
