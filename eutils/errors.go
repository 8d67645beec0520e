package eutils

import (
	"errors"
	"fmt"
)

// Common errors returned by the eutils client.
var (
	// ErrMissingAPIKey indicates no NCBI API key was provided.
	ErrMissingAPIKey = errors.New("NCBI API key is required")

	// ErrNoKeywords indicates an empty keyword list.
	ErrNoKeywords = errors.New("at least one search keyword is required")

	// ErrMissingCustomExpr indicates CUSTOM logic was selected without a
	// boolean expression to go with it.
	ErrMissingCustomExpr = errors.New("custom logic requires a boolean expression")
)

// TransportError represents a network or HTTP-level failure against an
// E-utilities endpoint. Status is zero when the request never completed.
type TransportError struct {
	Endpoint string
	Status   int
	Err      error
}

// Error implements the error interface.
func (e *TransportError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s request failed with status %d", e.Endpoint, e.Status)
	}
	return fmt.Sprintf("%s request failed: %v", e.Endpoint, e.Err)
}

// Unwrap returns the underlying cause, if any.
func (e *TransportError) Unwrap() error { return e.Err }

// ParseError indicates a response was malformed or missing a field the
// client requires, such as the hit count or the history session tokens.
type ParseError struct {
	Endpoint string
	Field    string
	Err      error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s response: failed to parse %s: %v", e.Endpoint, e.Field, e.Err)
	}
	return fmt.Sprintf("%s response: missing %s", e.Endpoint, e.Field)
}

// Unwrap returns the underlying decode error, if any.
func (e *ParseError) Unwrap() error { return e.Err }
