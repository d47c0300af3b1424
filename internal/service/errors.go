package service

import "errors"

var (
	// Auth errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")

	// Tenant errors
	ErrTenantNotFound = errors.New("tenant not found")

	// Note errors
	ErrNoteNotFound = errors.New("note not found")
	ErrEmptyUpdate  = errors.New("title or content is required")

	// ErrUpstreamUnavailable wraps store failures. It is the only error in
	// this layer a caller may safely retry, and it must never be conflated
	// with a not-found.
	ErrUpstreamUnavailable = errors.New("upstream store unavailable")
)
