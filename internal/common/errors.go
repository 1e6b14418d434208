// Package common defines shared constants and sentinel errors used across
// client and server layers of Reflecta. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound     = errors.New("not found")
	ErrDuplicateKey = errors.New("duplicate key")

	// Service-level errors (generic/internal flow control).
	ErrInternal     = errors.New("internal error")
	ErrUnauthorized = errors.New("unauthorized")

	// Remote collaborator errors. The sync engine treats both identically:
	// the attempt failed, fall back to local state.
	ErrUnavailable   = errors.New("server unavailable")
	ErrRemoteFailure = errors.New("remote request failed")

	// Sync engine errors, reported as structured results rather than raised.
	ErrSyncInProgress = errors.New("Sync already in progress")
	ErrDeviceOffline  = errors.New("Device is offline")

	// Validation errors (programming errors, the only erroring input path).
	ErrInvalidEntry = errors.New("invalid entry")

	// Auth errors.
	ErrInvalidToken       = errors.New("invalid token")
	ErrTokenExpired       = errors.New("token expired")
	ErrInvalidCredentials = errors.New("invalid email/password")
	ErrEmailAlreadyTaken  = errors.New("email already registered")
)
