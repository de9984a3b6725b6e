package apperrors

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound = errors.New("resource not found")

	ErrInvalidArgument = errors.New("invalid argument")

	ErrValidation = errors.New("validation failed")

	ErrBusiness = errors.New("business rule violated")

	ErrAlreadyExists = errors.New("resource already exists")

	ErrConstraint = errors.New("constraint violated")

	ErrDatabase = errors.New("database error")

	ErrInternalServer = errors.New("internal server error")

	ErrUnauthorized = errors.New("unauthorized")

	ErrForbidden = errors.New("forbidden")
)

type ValidationError struct {
	Field   string
	Message string
	Cause   error
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for field '%s': %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

func (e *ValidationError) Unwrap() error {
	return e.Cause
}

func NewValidationError(field, message string) error {

	return fmt.Errorf("%w: %w", ErrValidation, &ValidationError{Field: field, Message: message})
}

// BusinessError is the single failure kind surfaced to API callers for
// domain-rule violations. Its Error() is the exact message shown to the
// client, so constructors must not prefix or decorate it.
type BusinessError struct {
	Message string
	Cause   error
}

func (e *BusinessError) Error() string {
	return e.Message
}

func (e *BusinessError) Unwrap() []error {
	if e.Cause == nil {
		return []error{ErrBusiness}
	}
	return []error{ErrBusiness, e.Cause}
}

func NewBusinessError(message string) error {
	return &BusinessError{Message: message}
}

// WrapBusinessError keeps the cause chain intact while presenting the
// store's underlying message to the caller.
func WrapBusinessError(cause error, message string) error {
	return &BusinessError{Message: message, Cause: cause}
}

type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("[%s] %s", e.Code, e.Message)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

func WrapDatabaseError(cause error, message string) error {
	return &AppError{
		Code:    "DB_ERROR",
		Message: message,
		Cause:   fmt.Errorf("%w: %w", ErrDatabase, cause),
	}
}
