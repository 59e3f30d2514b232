package domain

import "errors"

// Sentinel errors shared by all layers. Use cases wrap them with context
// (fmt.Errorf + %w); callers branch with errors.Is.
var (
	ErrNotFound           = errors.New("not found")
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrForbidden          = errors.New("access denied")
	ErrNotAuthenticated   = errors.New("authentication required")
	ErrInsufficientStock  = errors.New("insufficient stock")
	ErrInvalidToken       = errors.New("invalid token")
)
