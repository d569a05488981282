package errors

import (
	"net/http"

	"github.com/pkg/errors"
)

// Kind classifies an AppError independently of the transport.
type Kind string

const (
	KindNotFound     Kind = "NotFound"
	KindUnauthorized Kind = "Unauthorized"
	KindForbidden    Kind = "Forbidden"
	KindValidation   Kind = "Validation"
	KindInternal     Kind = "Internal"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	Kind() Kind        // Stable classification
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Action() string    // What the caller can do about it
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	kind      Kind
	httpCode  int
	errorCode string
	message   string
	action    string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(kind Kind, httpCode int, errorCode, message, action string) *BaseError {
	return &BaseError{
		kind:      kind,
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		action:    action,
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

// Kind returns the error classification
func (e *BaseError) Kind() Kind {
	return e.kind
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Action returns the remediation hint
func (e *BaseError) Action() string {
	return e.action
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails returns a copy carrying detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	cloned := *e
	cloned.details = details

	return &cloned
}

// WithMessage returns a copy with a different user-facing message
func (e *BaseError) WithMessage(message string) *BaseError {
	cloned := *e
	cloned.message = message

	return &cloned
}

// WithAction returns a copy with a different remediation hint
func (e *BaseError) WithAction(action string) *BaseError {
	cloned := *e
	cloned.action = action

	return &cloned
}

// Predefined error types
var (
	// NotFound
	ErrNotFound = NewBaseError(
		KindNotFound,
		http.StatusNotFound,
		"NOT_FOUND",
		"The requested resource was not found.",
		"Check the parameters sent in the request.",
	)

	ErrUserNotFound = NewBaseError(
		KindNotFound,
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"The given username was not found in the system.",
		"Check that the username is spelled correctly.",
	)

	ErrSessionNotFound = NewBaseError(
		KindNotFound,
		http.StatusNotFound,
		"SESSION_NOT_FOUND",
		"No valid session was found.",
		"Log in again to start a new session.",
	)

	ErrActivationTokenNotFound = NewBaseError(
		KindNotFound,
		http.StatusNotFound,
		"ACTIVATION_TOKEN_NOT_FOUND",
		"Activation token not found.",
		"Check that this activation token has not expired and has not been used.",
	)

	// Unauthorized
	ErrInvalidCredentials = NewBaseError(
		KindUnauthorized,
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Authentication data does not match.",
		"Check that the data sent is correct.",
	)

	ErrSessionInvalid = NewBaseError(
		KindUnauthorized,
		http.StatusUnauthorized,
		"SESSION_INVALID",
		"User does not have an active session.",
		"Check whether this user is logged in and try again.",
	)

	// Forbidden
	ErrForbidden = NewBaseError(
		KindForbidden,
		http.StatusForbidden,
		"FORBIDDEN",
		"You are not allowed to perform this action.",
		"Check that your user has the required feature.",
	)

	ErrCannotUpdateOtherUser = NewBaseError(
		KindForbidden,
		http.StatusForbidden,
		"CANNOT_UPDATE_OTHER_USER",
		"You are not allowed to update another user.",
		"Check that you have the feature required to update another user.",
	)

	ErrActivationNotAllowed = NewBaseError(
		KindForbidden,
		http.StatusForbidden,
		"ACTIVATION_NOT_ALLOWED",
		"You can no longer use activation tokens.",
		"Contact support.",
	)

	ErrLoginNotAllowed = NewBaseError(
		KindForbidden,
		http.StatusForbidden,
		"LOGIN_NOT_ALLOWED",
		"You are not allowed to log in.",
		"Contact support.",
	)

	// Validation
	ErrValidationFailed = NewBaseError(
		KindValidation,
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"The data sent is invalid.",
		"Check the fields sent in the request.",
	)

	ErrEmailInUse = NewBaseError(
		KindValidation,
		http.StatusBadRequest,
		"EMAIL_IN_USE",
		"The given email is already in use.",
		"Use another email for this operation.",
	)

	ErrUsernameInUse = NewBaseError(
		KindValidation,
		http.StatusBadRequest,
		"USERNAME_IN_USE",
		"The given username is already in use.",
		"Use another username for this operation.",
	)

	// Internal
	ErrInternal = NewBaseError(
		KindInternal,
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"An unexpected internal error occurred.",
		"Contact support.",
	)
)

// Forbidden builds the error for a caller lacking the given feature.
func Forbidden(feature string) *BaseError {
	return ErrForbidden.WithAction(`Check that your user has the feature "` + feature + `".`)
}

// Internal builds a programmer-error AppError with the violated precondition as details.
func Internal(details string) *BaseError {
	return ErrInternal.WithDetails(details)
}

// KindOf returns the Kind of the first AppError in err's chain, or KindInternal.
func KindOf(err error) Kind {
	var appErr AppError
	if errors.As(err, &appErr) {
		return appErr.Kind()
	}

	return KindInternal
}

// IsKind reports whether err carries an AppError of the given kind.
func IsKind(err error, kind Kind) bool {
	var appErr AppError
	if !errors.As(err, &appErr) {
		return false
	}

	return appErr.Kind() == kind
}

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

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap exposes the driver error
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// Kind returns the error classification
func (e *DatabaseExecuteError) Kind() Kind {
	return KindInternal
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusServiceUnavailable
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Database connection or query failed."
}

// Action returns the remediation hint
func (e *DatabaseExecuteError) Action() string {
	return "Check whether the service is available."
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
