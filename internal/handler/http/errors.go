// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the token extractor when parsing the
// "Authorization" HTTP header. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned when the incoming request does
	// not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is present but cannot be split into at least two space-separated
	// parts (i.e. the token value is missing entirely).
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrEmptyToken is returned when the "Authorization" header contains a
	// scheme word but the token value itself is an empty string.
	ErrEmptyToken = errors.New("empty token in `Authorization` header")
)

var (
	ErrInvalidJSON        = errors.New("invalid JSON was passed")
	ErrMalformedMultipart = errors.New("malformed multipart form")
	ErrInvalidPathParam   = errors.New("invalid path parameter")
	ErrInvalidQueryParam  = errors.New("invalid query parameter")
	ErrUnauthenticated    = errors.New("authentication required")
	ErrForbidden          = errors.New("insufficient permissions")
	ErrRouteDataMissing   = errors.New("route data is not initialized")

	errRouteNotFound = errors.New("route not found")
)
