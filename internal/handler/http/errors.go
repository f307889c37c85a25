// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the authentication and authorization middleware.
// Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the authenticate middleware
	// when the incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is present but cannot be split into at least two space-separated
	// parts (i.e. the token value is missing entirely).
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrEmptyToken is returned when the "Authorization" header contains the
	// expected scheme prefix but the token value itself is an empty string.
	ErrEmptyToken = errors.New("empty token in `Authorization` header")

	// ErrNoIdentityInContext is returned by the authorize middleware when no
	// authenticated identity was attached to the request context, i.e. the
	// authenticate middleware did not run first.
	ErrNoIdentityInContext = errors.New("no authenticated identity in request context")

	// ErrRoleNotAllowed is returned by the authorize middleware when the
	// authenticated identity's role is not a member of the allowed set.
	ErrRoleNotAllowed = errors.New("role is not allowed for this route")
)
