// Package domain holds the storefront's articles, categories, accounts and
// the error kinds shared by services and adapters. Nothing here knows about
// HTTP; the dto package maps these errors to status codes.
package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for use with errors.Is().
var (
	// ErrNotFound indicates the requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrValidation indicates request input failed validation.
	ErrValidation = errors.New("validation failed")

	// ErrUpstream indicates a remote content or publisher API call failed.
	ErrUpstream = errors.New("upstream error")
)

// NotFoundError provides context for not found errors.
type NotFoundError struct {
	Entity string
	ID     string
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("%s with id %q not found", e.Entity, e.ID)
	}

	return e.Entity + " not found"
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// NewNotFoundError creates a not found error with context.
func NewNotFoundError(entity, id string) error {
	return &NotFoundError{Entity: entity, ID: id}
}

// ValidationError provides context for validation errors.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Message)
	}

	return "validation failed: " + e.Message
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// NewValidationError creates a validation error with context.
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// UpstreamError is the single failure kind raised by remote API adapters.
// Callers decide per call site whether it aborts the request or degrades.
type UpstreamError struct {
	Service string
	Message string
	Status  int
}

// Error implements the error interface.
func (e *UpstreamError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: %s", e.Service, e.Message)
	}

	return e.Service + ": request failed"
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *UpstreamError) Unwrap() error {
	return ErrUpstream
}

// NewUpstreamError creates an upstream error for the named service.
func NewUpstreamError(service, message string) error {
	return &UpstreamError{Service: service, Message: message}
}

// NewUpstreamStatusError creates an upstream error carrying the HTTP status
// the remote service answered with.
func NewUpstreamStatusError(service string, status int, message string) error {
	return &UpstreamError{Service: service, Message: message, Status: status}
}

// StoreError is a single field-level error reported by the publisher API.
type StoreError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// StoreErrorList is returned by publisher operations rejected with
// field-level validation errors. Handlers re-render the form with Errors.
type StoreErrorList struct {
	Status int
	Errors []StoreError
}

// Error implements the error interface.
func (e *StoreErrorList) Error() string {
	msgs := make([]string, 0, len(e.Errors))
	for _, se := range e.Errors {
		msgs = append(msgs, se.Message)
	}

	return "publisher rejected request: " + strings.Join(msgs, "; ")
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *StoreErrorList) Unwrap() error {
	return ErrUpstream
}

// IsNotFound checks if an error is a not found error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsValidation checks if an error is a validation error.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

// IsUpstream checks if an error is an upstream error.
func IsUpstream(err error) bool {
	return errors.Is(err, ErrUpstream)
}

// AsStoreErrorList extracts field-level publisher errors, if any.
func AsStoreErrorList(err error) (*StoreErrorList, bool) {
	var list *StoreErrorList
	if errors.As(err, &list) {
		return list, true
	}

	return nil, false
}
