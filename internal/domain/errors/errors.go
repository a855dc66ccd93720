// Package errors defines the application-facing error taxonomy. Business
// failures are values carrying an HTTP status and a stable business code so
// the delivery layer can render them uniformly and clients can branch on the
// code instead of parsing messages.
package errors

import (
	"net/http"

	"makan/internal/errors"
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

// Is matches any BaseError carrying the same business code, so errors.Is
// keeps recognizing a predefined error after WithDetails copies it.
func (e *BaseError) Is(target error) bool {
	var base *BaseError
	if errors.As(target, &base) {
		return e.errorCode == base.errorCode
	}

	return false
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
	// Caller errors, rejected before any state mutation.
	ErrInvalidAmount = NewBaseError(
		http.StatusBadRequest,
		"INVALID_AMOUNT",
		"Amount must be a positive value",
		"",
	)

	ErrInvalidOrder = NewBaseError(
		http.StatusBadRequest,
		"INVALID_ORDER",
		"Order is empty, has a non-positive total, or uses an unsupported payment method",
		"",
	)

	ErrInvalidPoints = NewBaseError(
		http.StatusBadRequest,
		"INVALID_POINTS",
		"Points award must be between 1 and 10",
		"",
	)

	ErrUnknownCategory = NewBaseError(
		http.StatusBadRequest,
		"UNKNOWN_CATEGORY",
		"Unknown survey category",
		"",
	)

	ErrUnknownItem = NewBaseError(
		http.StatusBadRequest,
		"UNKNOWN_ITEM",
		"One or more items do not exist in the catalog",
		"",
	)

	// Business-rule failures on the settlement path. These are normal
	// results, not faults: the client distinguishes them by code.
	ErrInsufficientBalance = NewBaseError(
		http.StatusUnprocessableEntity,
		"INSUFFICIENT_BALANCE",
		"Your points balance cannot cover this order",
		"",
	)

	ErrRailDeclined = NewBaseError(
		http.StatusPaymentRequired,
		"RAIL_DECLINED",
		"The payment provider declined the transaction",
		"",
	)

	// Refund precondition violations. Out-of-range refund amounts are
	// rejected explicitly, never clamped.
	ErrOrderNotEligible = NewBaseError(
		http.StatusConflict,
		"ORDER_NOT_ELIGIBLE",
		"Order is not in a state that allows this operation",
		"",
	)

	ErrInvalidRefundAmount = NewBaseError(
		http.StatusBadRequest,
		"INVALID_REFUND_AMOUNT",
		"Refund amount is out of bounds for this order",
		"",
	)

	ErrConcurrencyConflict = NewBaseError(
		http.StatusConflict,
		"CONCURRENCY_CONFLICT",
		"The operation conflicted with a concurrent update, please retry",
		"",
	)

	ErrOrderNotFound = NewBaseError(
		http.StatusNotFound,
		"ORDER_NOT_FOUND",
		"Order not found",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Access denied",
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
	return "Database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
