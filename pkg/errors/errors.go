package custom_error

import "fmt"

type CustomError interface {
	Error() string
}

// NotFoundError signals that the referenced asset, employee, assignment or
// user does not exist.
type NotFoundError struct {
	Resource string
	ID       int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with id %d not found", e.Resource, e.ID)
}

func NewNotFoundError(resource string, id int) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

// ConflictError signals a business-rule violation: asset unavailable,
// already assigned, deletion guard, duplicate email or username.
type ConflictError struct {
	Reason string
}

func (e *ConflictError) Error() string {
	return e.Reason
}

func NewConflictError(reason string) *ConflictError {
	return &ConflictError{Reason: reason}
}

// ValidationError signals a field-level constraint violation.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

func NewValidationError(reason string) *ValidationError {
	return &ValidationError{Reason: reason}
}
