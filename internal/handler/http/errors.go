package http

import "errors"

var (
	// ErrEmptyAuthorizationHeader is returned when the Authorization header
	// is absent on an authenticated route.
	ErrEmptyAuthorizationHeader = errors.New("empty authorization header")
	// ErrInvalidAuthorizationHeader is returned when the header does not have
	// the "Bearer <token>" form.
	ErrInvalidAuthorizationHeader = errors.New("invalid authorization header")
	// ErrEmptyToken is returned when the bearer token part is empty.
	ErrEmptyToken = errors.New("empty token")
)
