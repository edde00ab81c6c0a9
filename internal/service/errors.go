package service

import (
	"errors"
	"fmt"
)

// Domain errors mapped to HTTP statuses at the handler boundary.
var (
	ErrUserNotFound    = errors.New("no such user")
	ErrInvalidPassword = errors.New("incorrect password")
	ErrUsernameTaken   = errors.New("username already exists")
	ErrEmailTaken      = errors.New("email already exists")
	ErrInvalidToken    = errors.New("invalid token")
	ErrProductNotFound = errors.New("product not found")
)

// ValidationError reports a missing or invalid request field. Handlers render
// its message verbatim with a 400.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func invalidf(format string, args ...any) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// SKUConflictError reports an upsert against a SKU that is already bound to a
// different product name.
type SKUConflictError struct {
	SKU          string
	ExistingName string
}

func (e *SKUConflictError) Error() string {
	return fmt.Sprintf("Product with SKU %s already exists with different name: %s", e.SKU, e.ExistingName)
}
