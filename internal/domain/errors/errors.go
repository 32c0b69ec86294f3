package errors

import (
	"fmt"
	"net/http"

	"taskhub/internal/domain/entity"
	"taskhub/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
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

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Sign-up / sign-in errors
	ErrEmailOrPasswordMissing = NewBaseError(
		http.StatusBadRequest,
		"EMAIL_OR_PASSWORD_MISSING",
		"email or password missing",
		"",
	)

	ErrInvalidEmail = NewBaseError(
		http.StatusBadRequest,
		"INVALID_EMAIL",
		"email address is not valid",
		"",
	)

	ErrUserCreationFailed = NewBaseError(
		http.StatusInternalServerError,
		"USER_CREATION_FAILED",
		"error creating a new user",
		"",
	)

	ErrPasswordIncorrect = NewBaseError(
		http.StatusForbidden,
		"PASSWORD_INCORRECT",
		"password incorrect",
		"",
	)

	// Change-password errors
	ErrChangePasswordMissing = NewBaseError(
		http.StatusBadRequest,
		"PASSWORD_MISSING",
		"current password or new password missing",
		"",
	)

	ErrPasswordUnchanged = NewBaseError(
		http.StatusBadRequest,
		"PASSWORD_UNCHANGED",
		"new password cannot be same as current password",
		"",
	)

	ErrCurrentPasswordIncorrect = NewBaseError(
		http.StatusForbidden,
		"CURRENT_PASSWORD_INCORRECT",
		"current password incorrect",
		"",
	)

	ErrPasswordChangeFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_CHANGE_FAILED",
		"error changing password",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"error hashing password",
		"",
	)

	ErrTokenSignFailed = NewBaseError(
		http.StatusInternalServerError,
		"TOKEN_SIGN_FAILED",
		"error signing authentication token",
		"",
	)

	// Authentication errors
	ErrTokenMissing = NewBaseError(
		http.StatusUnauthorized,
		"TOKEN_MISSING",
		"authorization token missing or invalid",
		"",
	)

	// Todo errors
	ErrNameOrStatusMissing = NewBaseError(
		http.StatusBadRequest,
		"NAME_OR_STATUS_MISSING",
		"name or status missing",
		"",
	)

	ErrTodoIDMissing = NewBaseError(
		http.StatusBadRequest,
		"TODO_ID_MISSING",
		"todo id missing",
		"",
	)

	ErrNoTodosFound = NewBaseError(
		http.StatusNotFound,
		"NO_TODOS_FOUND",
		"no todos found",
		"",
	)

	ErrTodoCreationFailed = NewBaseError(
		http.StatusInternalServerError,
		"TODO_CREATION_FAILED",
		"error creating a new todo",
		"",
	)

	ErrTodoQueryFailed = NewBaseError(
		http.StatusInternalServerError,
		"TODO_QUERY_FAILED",
		"error finding todos",
		"",
	)

	ErrTodoUpdateFailed = NewBaseError(
		http.StatusInternalServerError,
		"TODO_UPDATE_FAILED",
		"error updating todo",
		"",
	)

	ErrTodoDeleteFailed = NewBaseError(
		http.StatusInternalServerError,
		"TODO_DELETE_FAILED",
		"error deleting todo",
		"",
	)
)

// ErrIncorrectStatus reports a status value outside the fixed enumeration,
// listing the full set of valid values in the message.
func ErrIncorrectStatus() AppError {
	return NewBaseError(
		http.StatusBadRequest,
		"INCORRECT_STATUS",
		fmt.Sprintf("incorrect status value, must be one of %s", entity.StatusEnumDescription()),
		"",
	)
}

// ErrUserEmailNotFound reports a sign-in attempt against an unknown email.
func ErrUserEmailNotFound(email string) AppError {
	return NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		fmt.Sprintf("user with an email address %s not found", email),
		"",
	)
}

// ErrUserIDNotFound reports an authenticated identity whose account no longer exists.
func ErrUserIDNotFound(id int64) AppError {
	return NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		fmt.Sprintf("user with an id %d not found", id),
		"",
	)
}

// ErrTodoNotFound reports a lookup against an absent todo id.
func ErrTodoNotFound(id int64) AppError {
	return NewBaseError(
		http.StatusNotFound,
		"TODO_NOT_FOUND",
		fmt.Sprintf("todo with an id %d not found", id),
		"",
	)
}

// ErrNotTodoOwner reports an authenticated request against a todo owned by
// a different user.
func ErrNotTodoOwner(id int64) AppError {
	return NewBaseError(
		http.StatusUnauthorized,
		"NOT_TODO_OWNER",
		fmt.Sprintf("you are not the owner of todo id %d", id),
		"",
	)
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

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
