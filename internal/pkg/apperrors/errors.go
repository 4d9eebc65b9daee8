package apperrors

import (
	"errors"
	"fmt"
)

// Common errors
var (
	// Resource errors
	ErrResourceNotFound      = errors.New("resource not found")
	ErrResourceAlreadyExists = errors.New("resource already exists")
	ErrConflict              = errors.New("conflict")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrTokenNotFound      = errors.New("token not found")
	ErrTokenRevoked       = errors.New("token revoked")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")
)

// User errors. Not-found variants wrap ErrResourceNotFound so generic
// handling maps them to the same response.
var (
	ErrUserNotFound         = fmt.Errorf("user: %w", ErrResourceNotFound)
	ErrEmailAlreadyExists   = errors.New("email already exists")
	ErrInvalidStudentID     = errors.New("invalid student ID format")
	ErrStudentIDExists      = errors.New("student ID already registered")
	ErrInvalidFileExtension = errors.New("file extension not allowed")
)

// Club errors
var (
	ErrClubNotFound      = fmt.Errorf("club: %w", ErrResourceNotFound)
	ErrClubAlreadyExists = errors.New("club with this name already exists")
	ErrAlreadyMember     = errors.New("user is already a member of this club")
	ErrNotMember         = errors.New("user is not a member of this club")
)

// Event and enrollment errors
var (
	ErrEventNotFound     = fmt.Errorf("event: %w", ErrResourceNotFound)
	ErrAlreadyEnrolled   = errors.New("user is already enrolled in this event")
	ErrNotEnrolled       = errors.New("user is not enrolled in this event")
	ErrCapacityExhausted = errors.New("event capacity exhausted")
)

// Forum errors
var (
	ErrTopicNotFound = fmt.Errorf("forum topic: %w", ErrResourceNotFound)
)

// News errors
var (
	ErrNewsNotFound = fmt.Errorf("news item: %w", ErrResourceNotFound)
)

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
}

// Error implements the error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewResourceNotFoundError creates a not-found error with a message
func NewResourceNotFoundError(message string) error {
	return &CustomError{Err: ErrResourceNotFound, Message: message}
}

// NewConflictError creates a conflict error with a message
func NewConflictError(message string) error {
	return &CustomError{Err: ErrConflict, Message: message}
}

// NewBadRequestError creates a bad-request error with a message
func NewBadRequestError(message string) error {
	return &CustomError{Err: ErrBadRequest, Message: message}
}

// NewValidationError creates a validation error with a message
func NewValidationError(message string) error {
	return &CustomError{Err: ErrValidationFailed, Message: message}
}
