// SPDX-License-Identifier: Apache-2.0

package http

import "errors"

// Sentinel errors raised by the transport layer itself, before a request
// reaches any service. Callers can match against them with [errors.Is].
var (
	// ErrMissingToken is returned by the auth middleware when the request
	// carries neither an "Authorization" header nor a session cookie.
	ErrMissingToken = errors.New("please log in to access this resource")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is present but cannot be split into at least two space-separated
	// parts (i.e. the token value is missing entirely).
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrEmptyToken is returned when the "Authorization" header contains the
	// expected scheme prefix but the token value itself is an empty string.
	ErrEmptyToken = errors.New("empty token in `Authorization` header")

	// ErrUnknownIdentity is returned when a well-formed, unexpired token
	// names an account that no longer exists.
	ErrUnknownIdentity = errors.New("account for this token no longer exists")

	// ErrForbidden is returned by the role middleware when the authenticated
	// account's role is not in the route's allow-list.
	ErrForbidden = errors.New("role is not allowed to access this resource")

	// ErrNotRouted is the payload of the catch-all handler for paths that
	// match no registered route.
	ErrNotRouted = errors.New("resource not found")

	// ErrInvalidJSON is returned when a request body cannot be decoded.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrInvalidForm is returned when a multipart body cannot be parsed.
	ErrInvalidForm = errors.New("invalid form data was passed")

	// ErrValidationFailed prefixes the aggregated per-field messages
	// produced by request validation.
	ErrValidationFailed = errors.New("validation failed")
)
