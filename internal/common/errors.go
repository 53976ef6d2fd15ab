// Package common provides shared utilities and types used across the application.
package common

import (
	"errors"
	"fmt"
)

// Common application errors.
var (
	// Rule-set errors.
	ErrInvalidRules   = errors.New("invalid rule set")
	ErrDuplicateEntry = errors.New("duplicate entry")

	// Feed errors.
	ErrEmptyFeed  = errors.New("feed contains no products")
	ErrFeedParse  = errors.New("feed parse failed")
	ErrMissingSKU = errors.New("missing SKU")
	ErrNoProducts = errors.New("no products to classify")

	// Configuration errors.
	ErrMissingConfig = errors.New("missing configuration")
	ErrInvalidConfig = errors.New("invalid configuration")
)

// UserError represents an error that should be shown to the user.
type UserError struct {
	Err         error
	UserMessage string
}

func (e *UserError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.UserMessage, e.Err)
	}
	return e.UserMessage
}

func (e *UserError) Unwrap() error {
	return e.Err
}

// NewUserError creates a new user-friendly error.
func NewUserError(userMessage string, err error) error {
	return &UserError{
		UserMessage: userMessage,
		Err:         err,
	}
}
