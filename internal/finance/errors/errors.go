package errors

import (
	"errors"
)

// UnauthorizedError means the caller identity is missing. Handlers map it
// to HTTP 401.
type UnauthorizedError struct {
	Msg string
}

func (e *UnauthorizedError) Error() string {
	return e.Msg
}

func NewUnauthorizedError(msg string) error {
	return &UnauthorizedError{Msg: msg}
}

func IsUnauthorizedError(err error) bool {
	var unauthorizedError *UnauthorizedError
	return errors.As(err, &unauthorizedError)
}

// ValidationError means a required field is missing or invalid (HTTP 400).
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

func NewValidationError(msg string) error {
	return &ValidationError{Msg: msg}
}

func IsValidationError(err error) bool {
	var validationError *ValidationError
	return errors.As(err, &validationError)
}

// DuplicateError means a per-owner uniqueness rule was violated (HTTP 400).
type DuplicateError struct {
	Msg string
}

func (e *DuplicateError) Error() string {
	return e.Msg
}

func NewDuplicateError(msg string) error {
	return &DuplicateError{Msg: msg}
}

func IsDuplicateError(err error) bool {
	var duplicateError *DuplicateError
	return errors.As(err, &duplicateError)
}

// NotFoundError means the resource does not exist or belongs to a different
// owner (HTTP 404).
type NotFoundError struct {
	Msg string
}

func (e *NotFoundError) Error() string {
	return e.Msg
}

func NewNotFoundError(msg string) error {
	return &NotFoundError{Msg: msg}
}

func IsNotFoundError(err error) bool {
	var notFoundError *NotFoundError
	return errors.As(err, &notFoundError)
}

var (
	ErrMissingUserID       = NewUnauthorizedError("Missing userId")
	ErrMissingCategoryID   = NewValidationError("Missing category id")
	ErrCategoryNameMissing = NewValidationError("Category name is required")
	ErrDuplicateCategory   = NewDuplicateError("You already have a category with that name")
	ErrTransactionNotFound = NewNotFoundError("Transaction not found or not yours")
)
