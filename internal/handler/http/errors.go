// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used when parsing the "Authorization" HTTP header. Callers
// can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned when the request carries no
	// "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the header is not of
	// the form "Bearer <token>".
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrEmptyToken is returned when the scheme is present but the token
	// value is empty.
	ErrEmptyToken = errors.New("empty token in `Authorization` header")
)

// OAuth callback errors. They never reach the browser as a body; the
// callback redirects with an error code instead.
var (
	errStateMismatch = errors.New("oauth state does not match the session cookie")
	errNoStateCookie = errors.New("no oauth state in the session cookie")
)
