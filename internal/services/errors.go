// internal/services/errors.go
package services

import (
	"errors"
	"fmt"

	"github.com/shopledger/backend/internal/store"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrValidation         = errors.New("validation failed")
	ErrForbidden          = errors.New("forbidden")
	ErrOrderLocked        = errors.New("order is locked")
	ErrInvalidTransition  = errors.New("order status can only move forward")
	ErrDuplicatePayment   = errors.New("transaction code already recorded")
	ErrMalformedImport    = errors.New("malformed import payload")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrCatalogClosed      = errors.New("catalog is closed")
	ErrUserExists         = errors.New("username already taken")
	ErrPersistence        = store.ErrPersistence
)

var (
	ErrCatalogNotFound = fmt.Errorf("catalog %w", ErrNotFound)
	ErrProductNotFound = fmt.Errorf("product %w", ErrNotFound)
	ErrClientNotFound  = fmt.Errorf("client %w", ErrNotFound)
	ErrOrderNotFound   = fmt.Errorf("order %w", ErrNotFound)
	ErrUserNotFound    = fmt.Errorf("user %w", ErrNotFound)
)

func validationError(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// invalidRequest wraps a validator error so callers can still unpack the field errors.
func invalidRequest(err error) error {
	return fmt.Errorf("%w: %w", ErrValidation, err)
}
