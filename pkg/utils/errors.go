package utils

import "errors"

var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrPermissionDenied = errors.New("permission denied")
	ErrNotFound         = errors.New("not found")
	ErrUnauthorized     = errors.New("unauthenticated")
	ErrDatabaseError    = errors.New("database error")
)

// Error codes carried in the response envelope.
const (
	CodeInvalidInput     = "INVALID_INPUT"
	CodePermissionDenied = "PERMISSION_DENIED"
	CodeNotFound         = "NOT_FOUND"
	CodeUnauthenticated  = "UNAUTHENTICATED"
	CodeInternal         = "INTERNAL"
	CodeRateLimited      = "RATE_LIMITED"
)
