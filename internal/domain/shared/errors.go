// Package shared contains common domain types and errors that are used
// across all domain packages. This package has zero external dependencies.
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

	// Record decoding errors
	ErrMalformedField   = errors.New("malformed field")
	ErrShortRecord      = errors.New("record has too few fields")
	ErrDelimiterInField = errors.New("field contains the record delimiter")

	// Validation errors
	ErrEmptyValue      = errors.New("value cannot be empty")
	ErrValueOutOfRange = errors.New("value out of range")
	ErrInvalidDate     = errors.New("invalid date")

	// Storage errors
	ErrFileUnavailable = errors.New("backing file unavailable")

	// Workflow errors
	ErrInvalidSelection = errors.New("selection out of range")
	ErrAlreadyProcessed = errors.New("already processed")
	ErrNotAssigned      = errors.New("not assigned to class")
)

// DomainError represents a domain-specific error with context.
type DomainError struct {
	Domain  string // e.g., "records", "payroll", "request"
	Op      string // Operation that failed, e.g., "LoadAll", "Resolve"
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
	return &DomainError{Domain: domain, Op: op, Kind: kind, Message: message}
}

// WrapError wraps an existing error with domain context.
func WrapError(domain, op string, kind error, message string, err error) *DomainError {
	return &DomainError{Domain: domain, Op: op, Kind: kind, Message: message, Err: err}
}

// IsNotFound checks if the error is a "not found" error. A miss on a lookup
// by id is a normal result for callers, not a reason to abort a session.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsMalformedField checks if the error is a field parse failure. The policy
// for these is skip the offending record and continue, never abort a batch.
func IsMalformedField(err error) bool {
	return errors.Is(err, ErrMalformedField)
}

// IsFileUnavailable checks if the error means a backing file is missing or
// unreadable. Callers degrade to "no records" rather than failing.
func IsFileUnavailable(err error) bool {
	return errors.Is(err, ErrFileUnavailable)
}

// IsInvalidSelection checks if the error is an out-of-range menu selection.
func IsInvalidSelection(err error) bool {
	return errors.Is(err, ErrInvalidSelection)
}
