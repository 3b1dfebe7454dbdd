package errors

import (
	"net/http"

	"schoolhub/internal/errors"
)

// Status classifies an AppError independently of the transport.
type Status int

const (
	StatusInternal Status = iota
	StatusBadInput
	StatusUnauthenticated
	StatusForbidden
	StatusNotFound
	StatusConflict
)

// HTTPCode maps the status onto an HTTP status code.
func (s Status) HTTPCode() int {
	switch s {
	case StatusBadInput:
		return http.StatusBadRequest
	case StatusUnauthenticated:
		return http.StatusUnauthorized
	case StatusForbidden:
		return http.StatusForbidden
	case StatusNotFound:
		return http.StatusNotFound
	case StatusConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func (s Status) String() string {
	switch s {
	case StatusBadInput:
		return "bad_input"
	case StatusUnauthenticated:
		return "unauthenticated"
	case StatusForbidden:
		return "forbidden"
	case StatusNotFound:
		return "not_found"
	case StatusConflict:
		return "conflict"
	default:
		return "internal"
	}
}

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	Status() Status    // Transport-independent category
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-safe error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	status    Status
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(status Status, errorCode, message, details string) *BaseError {
	return &BaseError{
		status:    status,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

func (e *BaseError) Status() Status {
	return e.status
}

func (e *BaseError) HTTPCode() int {
	return e.status.HTTPCode()
}

func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

func (e *BaseError) Message() string {
	return e.message
}

func (e *BaseError) Details() string {
	return e.details
}

// Is matches any BaseError carrying the same error code, so errors.Is works
// against catalog entries after WithDetails copies them.
func (e *BaseError) Is(target error) bool {
	var other *BaseError
	if !errors.As(target, &other) {
		return false
	}

	return other.errorCode == e.errorCode
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		status:    e.status,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Authentication
	ErrInvalidCredentials = NewBaseError(
		StatusBadInput,
		"INVALID_CREDENTIALS",
		"Email or password is incorrect",
		"",
	)

	ErrUnauthorized = NewBaseError(
		StatusUnauthenticated,
		"UNAUTHORIZED",
		"Authentication required",
		"",
	)

	ErrForbidden = NewBaseError(
		StatusForbidden,
		"FORBIDDEN",
		"Access denied",
		"",
	)

	// Provisioning
	ErrDuplicateAccount = NewBaseError(
		StatusConflict,
		"DUPLICATE_ACCOUNT",
		"This user already exists",
		"",
	)

	ErrClassNotFound = NewBaseError(
		StatusNotFound,
		"CLASS_NOT_FOUND",
		"Class not found",
		"",
	)

	ErrTeacherNotFound = NewBaseError(
		StatusNotFound,
		"TEACHER_NOT_FOUND",
		"Teacher not found",
		"",
	)

	ErrTeacherAlreadyHasClass = NewBaseError(
		StatusConflict,
		"TEACHER_ALREADY_HAS_CLASS",
		"This teacher already has a class",
		"",
	)

	ErrClassNameTaken = NewBaseError(
		StatusConflict,
		"CLASS_NAME_TAKEN",
		"This class already exists",
		"",
	)

	// Credential faults. All of them are internal and never reach the client verbatim.
	ErrCredentialFormat = NewBaseError(
		StatusInternal,
		"CREDENTIAL_FORMAT_ERROR",
		"Stored credential is unreadable",
		"",
	)

	ErrRandomnessUnavailable = NewBaseError(
		StatusInternal,
		"RANDOMNESS_UNAVAILABLE",
		"Secure random source unavailable",
		"",
	)

	ErrSigningUnavailable = NewBaseError(
		StatusInternal,
		"SIGNING_UNAVAILABLE",
		"Token signing unavailable",
		"",
	)

	ErrValidationFailed = NewBaseError(
		StatusBadInput,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		StatusInternal,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)

	ErrNotFound = NewBaseError(
		StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap exposes the driver error for inspection.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

func (e *DatabaseExecuteError) Status() Status {
	return StatusInternal
}

func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

func (e *DatabaseExecuteError) Message() string {
	return "Database execution failed"
}

func (e *DatabaseExecuteError) Details() string {
	return e.details
}
