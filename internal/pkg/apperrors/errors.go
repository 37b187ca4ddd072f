package apperrors

import (
	"errors"
	"fmt"
)

// Common errors
var (
	ErrResourceNotFound = errors.New("resource not found")
	ErrConflict         = errors.New("conflict")

	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")

	// SIAKAD session errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrNotLoggedIn        = errors.New("not logged in to SIAKAD")
	ErrSyncFailed         = errors.New("schedule sync failed")
)

// Semester errors
var (
	ErrSemesterNotFound   = fmt.Errorf("semester: %w", ErrResourceNotFound)
	ErrSemesterValidation = fmt.Errorf("semester: %w", ErrValidationFailed)
)

// Course errors
var (
	ErrCourseNotFound   = fmt.Errorf("course: %w", ErrResourceNotFound)
	ErrCourseValidation = fmt.Errorf("course: %w", ErrValidationFailed)
)

// User event errors
var (
	ErrUserEventNotFound   = fmt.Errorf("event: %w", ErrResourceNotFound)
	ErrUserEventValidation = fmt.Errorf("event: %w", ErrValidationFailed)
)

// Directory errors
var (
	ErrCampusNotFound   = fmt.Errorf("campus: %w", ErrResourceNotFound)
	ErrBuildingNotFound = fmt.Errorf("building: %w", ErrResourceNotFound)
	ErrFacultyNotFound  = fmt.Errorf("faculty: %w", ErrResourceNotFound)
	ErrProgramNotFound  = fmt.Errorf("study program: %w", ErrResourceNotFound)
)

// CustomError carries a sentinel error together with a human message.
type CustomError struct {
	Err     error
	Message string
}

// Error implements the error interface.
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap.
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewBadRequestError creates a bad-request error with a message.
func NewBadRequestError(message string) error {
	return &CustomError{Err: ErrBadRequest, Message: message}
}
