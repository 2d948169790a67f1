// Package domain defines the core domain models for perfconf.
package domain

import (
	"errors"
	"fmt"
)

// DomainError represents a domain error with a structured error code.
type DomainError struct {
	Code    string // Error code (e.g., "PC-KEY-4040")
	Message string // Human-readable message
	Details string // Optional additional details
	Cause   error  // Underlying error (if any)
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("[%s] %s: %s", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error for errors.Unwrap() support.
func (e *DomainError) Unwrap() error {
	return e.Cause
}

// Is implements errors.Is() support for error comparison.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// NewDomainError creates a new DomainError with the given code and message.
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// WithDetails returns a copy of the error with additional details.
func (e *DomainError) WithDetails(details string) *DomainError {
	return &DomainError{
		Code:    e.Code,
		Message: e.Message,
		Details: details,
		Cause:   e.Cause,
	}
}

// WithCause returns a copy of the error wrapping the given cause.
func (e *DomainError) WithCause(cause error) *DomainError {
	return &DomainError{
		Code:    e.Code,
		Message: e.Message,
		Details: e.Details,
		Cause:   cause,
	}
}

// Wrap wraps an error with this domain error as the cause.
func (e *DomainError) Wrap(cause error) *DomainError {
	return e.WithCause(cause)
}

// GetErrorCode extracts the error code from an error if it's a DomainError.
func GetErrorCode(err error) string {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Code
	}
	return ""
}

// ============================================================================
// Usage Errors (USAGE, TERM)
// ============================================================================

var (
	// ErrUsage indicates conflicting flags or arguments the action does not take.
	ErrUsage = NewDomainError("PC-USAGE-4000", "usage error")

	// ErrMalformedTerm indicates a query term that is not of the form section.key.
	ErrMalformedTerm = NewDomainError("PC-TERM-4001", "malformed config variable")
)

// ============================================================================
// Overlay Errors (ENTRY, KEY)
// ============================================================================

var (
	// ErrMalformedEntry indicates a collected entry without a key or a value.
	ErrMalformedEntry = NewDomainError("PC-ENTRY-4002", "malformed config entry")

	// ErrKeyNotFound indicates neither the overlay nor the defaults know the key.
	ErrKeyNotFound = NewDomainError("PC-KEY-4040", "no such key")
)

// ============================================================================
// Source and Internal Errors (SRC, INT)
// ============================================================================

var (
	// ErrSourceRead indicates a config file could not be read or parsed.
	ErrSourceRead = NewDomainError("PC-SRC-5001", "cannot read config file")

	// ErrInternal indicates an unexpected internal failure.
	ErrInternal = NewDomainError("PC-INT-5000", "internal error")
)
