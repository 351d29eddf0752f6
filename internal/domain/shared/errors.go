// Package shared contains common domain types, errors, events, and value objects
// that are used across all domain packages. This package has zero external dependencies.
package shared

import (
	"errors"
	"fmt"
)

// Base domain errors that can be used for error checking with errors.Is().
var (
	// Entity errors
	ErrNotFound      = errors.New("entity not found")
	ErrAlreadyExists = errors.New("entity already exists")
	ErrInvalidEntity = errors.New("invalid entity")

	// Validation errors
	ErrValidation    = errors.New("validation error")
	ErrInvalidID     = errors.New("invalid ID")
	ErrInvalidInput  = errors.New("invalid input")
	ErrEmptyValue    = errors.New("value cannot be empty")
	ErrInvalidFormat = errors.New("invalid format")

	// State errors
	ErrInvalidState    = errors.New("invalid state")
	ErrStateTransition = errors.New("invalid state transition")
	ErrNotPermitted    = errors.New("operation not permitted")

	// Authorization errors
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")

	// External service errors
	ErrExternalService    = errors.New("external service error")
	ErrServiceUnavailable = errors.New("service unavailable")
	ErrTimeout            = errors.New("operation timeout")
)

// DomainError represents a domain-specific error with context.
type DomainError struct {
	Domain  string // e.g., "account", "catalog", "assistant"
	Op      string // Operation that failed, e.g., "Register", "Login"
	Kind    error  // Base error type for errors.Is() checking
	Message string // Human-readable message
	Err     error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s.%s: %s: %v", e.Domain, e.Op, e.Message, e.Err)
	}
	return fmt.Sprintf("%s.%s: %s", e.Domain, e.Op, e.Message)
}

// Unwrap returns the underlying error for errors.Unwrap().
func (e *DomainError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return e.Kind
}

// Is implements errors.Is() matching.
func (e *DomainError) Is(target error) bool {
	if e.Kind != nil && errors.Is(e.Kind, target) {
		return true
	}
	if e.Err != nil && errors.Is(e.Err, target) {
		return true
	}
	return false
}

// NewDomainError creates a new domain error.
func NewDomainError(domain, op string, kind error, message string) *DomainError {
	return &DomainError{
		Domain:  domain,
		Op:      op,
		Kind:    kind,
		Message: message,
	}
}

// WrapError wraps an existing error with domain context.
func WrapError(domain, op string, kind error, message string, err error) *DomainError {
	return &DomainError{
		Domain:  domain,
		Op:      op,
		Kind:    kind,
		Message: message,
		Err:     err,
	}
}

// Account domain errors.
// These form the user-facing taxonomy: DuplicateAccount and
// InvalidCredentials surface synchronously; NotAuthenticated is a
// defensive invariant that normal UI flow never reaches.
var (
	ErrDuplicateAccount   = NewDomainError("account", "Register", ErrAlreadyExists, "an account with this email already exists")
	ErrInvalidCredentials = NewDomainError("account", "Login", ErrUnauthorized, "invalid credentials")
	ErrNotAuthenticated   = NewDomainError("account", "RequireSession", ErrUnauthorized, "no active session")
	ErrAccountNotFound    = NewDomainError("account", "Find", ErrNotFound, "account not found")
	ErrUnenrollNotAllowed = NewDomainError("account", "Unenroll", ErrNotPermitted, "unenrolling from a course is not supported")
	ErrDeleteNotAllowed   = NewDomainError("account", "Delete", ErrNotPermitted, "account deletion is not supported")
)

// Catalog domain errors
var (
	ErrCourseNotFound = NewDomainError("catalog", "Find", ErrNotFound, "course not found")
	ErrJobNotFound    = NewDomainError("catalog", "FindJob", ErrNotFound, "job not found")
)

// Assistant errors
var (
	ErrAssistantUnavailable = NewDomainError("assistant", "Ask", ErrServiceUnavailable, "assistant is unavailable")
)

// IsNotFound checks if the error is a "not found" error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsAlreadyExists checks if the error is an "already exists" error.
func IsAlreadyExists(err error) bool {
	return errors.Is(err, ErrAlreadyExists)
}

// IsNotPermitted checks if the error marks an explicitly unsupported operation.
func IsNotPermitted(err error) bool {
	return errors.Is(err, ErrNotPermitted)
}

// IsExternalService checks if the error is from an external service.
func IsExternalService(err error) bool {
	return errors.Is(err, ErrExternalService) ||
		errors.Is(err, ErrServiceUnavailable) ||
		errors.Is(err, ErrTimeout)
}
