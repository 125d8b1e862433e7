package services

import "fmt"

// Service errors carry enough type information for controllers to pick the
// right HTTP status without string matching.

// ValidationError reports malformed or missing input, field by field.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	for field, msg := range e.Fields {
		return fmt.Sprintf("validation failed: %s: %s", field, msg)
	}
	return "validation failed"
}

// NewValidationError builds a single-field validation error.
func NewValidationError(field, msg string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: msg}}
}

// NotFoundError names a missing resource.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	if e.ID == "" {
		return fmt.Sprintf("%s not found", e.Resource)
	}
	return fmt.Sprintf("%s %s not found", e.Resource, e.ID)
}

// ConflictError reports a request that cannot proceed against current state,
// most commonly insufficient stock.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string { return e.Message }

// ExternalError wraps a collaborator failure (mail, document rendering) so
// the request surfaces it without crashing.
type ExternalError struct {
	Service string
	Err     error
}

func (e *ExternalError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Service, e.Err)
}

func (e *ExternalError) Unwrap() error { return e.Err }
