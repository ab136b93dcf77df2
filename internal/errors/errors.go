package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common error conditions
var (
	// ErrCandidateLookup is returned when the id-list-producing step of a
	// search (type, generation, or region lookup, or the name-pool load)
	// fails. This is the only recoverable error surfaced to the UI.
	ErrCandidateLookup = errors.New("candidate lookup failed")

	// ErrItemFetch marks a per-candidate fetch failure; recovered locally by
	// dropping the candidate, never surfaced.
	ErrItemFetch = errors.New("item fetch failed")

	// ErrPersistence marks a recent-searches save/load failure; logged, does
	// not block search.
	ErrPersistence = errors.New("persistence failed")

	// ErrNotFound is returned when a creature is not found in the catalog.
	ErrNotFound = errors.New("creature not found")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")
)

// CandidateLookupError represents a failed candidate-list lookup with context
type CandidateLookupError struct {
	Intent string
	Cause  error
}

func (e *CandidateLookupError) Error() string {
	return fmt.Sprintf("candidate lookup for %s query failed: %v", e.Intent, e.Cause)
}

func (e *CandidateLookupError) Is(target error) bool {
	return target == ErrCandidateLookup
}

func (e *CandidateLookupError) Unwrap() error {
	return e.Cause
}

// NewCandidateLookupError creates a new CandidateLookupError
func NewCandidateLookupError(intent string, cause error) *CandidateLookupError {
	return &CandidateLookupError{Intent: intent, Cause: cause}
}

// ItemFetchError represents a failed per-candidate record fetch with context
type ItemFetchError struct {
	ID    int
	Cause error
}

func (e *ItemFetchError) Error() string {
	return fmt.Sprintf("fetch of creature %d failed: %v", e.ID, e.Cause)
}

func (e *ItemFetchError) Is(target error) bool {
	return target == ErrItemFetch
}

func (e *ItemFetchError) Unwrap() error {
	return e.Cause
}

// NewItemFetchError creates a new ItemFetchError
func NewItemFetchError(id int, cause error) *ItemFetchError {
	return &ItemFetchError{ID: id, Cause: cause}
}

// PersistenceError represents a recent-searches persistence failure with context
type PersistenceError struct {
	Op    string
	Cause error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("recent searches %s failed: %v", e.Op, e.Cause)
}

func (e *PersistenceError) Is(target error) bool {
	return target == ErrPersistence
}

func (e *PersistenceError) Unwrap() error {
	return e.Cause
}

// NewPersistenceError creates a new PersistenceError
func NewPersistenceError(op string, cause error) *PersistenceError {
	return &PersistenceError{Op: op, Cause: cause}
}

// NotFoundError represents a creature not found error with context
type NotFoundError struct {
	ID int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("creature with id %d not found", e.ID)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// NewNotFoundError creates a new NotFoundError
func NewNotFoundError(id int) *NotFoundError {
	return &NotFoundError{ID: id}
}

// ValidationError represents an input validation error with context
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error for field '%s': %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
