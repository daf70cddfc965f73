package domain

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
)

// AppError represents an application error
type AppError struct {
	Code       string    `json:"code"`
	Message    string    `json:"message"`
	Details    string    `json:"details,omitempty"`
	HTTPStatus int       `json:"-"`
	Timestamp  time.Time `json:"timestamp"`
	RequestID  string    `json:"request_id,omitempty"`
	UserID     string    `json:"user_id,omitempty"`
	Path       string    `json:"path,omitempty"`
	Method     string    `json:"method,omitempty"`
	Err        error     `json:"-"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s", e.Message, e.Err.Error())
	}
	return e.Message
}

// Unwrap returns the underlying error
func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new application error
func NewAppError(code, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Timestamp:  time.Now(),
		Err:        err,
	}
}

// NewInvalidAmountError rejects a non-positive or over-precise amount
func NewInvalidAmountError(message string) *AppError {
	if message == "" {
		message = "Amount must be greater than 0"
	}
	return NewAppError(ErrCodeInvalidAmount, message, http.StatusBadRequest, nil)
}

// NewInvalidInputError rejects malformed moves, wagers and identifiers
func NewInvalidInputError(field, message string) *AppError {
	return NewAppError(
		ErrCodeInvalidInput,
		fmt.Sprintf("Invalid input for field '%s': %s", field, message),
		http.StatusBadRequest,
		nil,
	)
}

// NewInsufficientBalanceError reports the missing amount only, never the balance itself.
func NewInsufficientBalanceError(shortfall decimal.Decimal) *AppError {
	err := NewAppError(
		ErrCodeInsufficientBalance,
		fmt.Sprintf("Insufficient balance: %s more required", shortfall.String()),
		http.StatusUnprocessableEntity,
		nil,
	)
	err.Details = shortfall.String()
	return err
}

// NewAlreadySettledError creates an idempotency guard error
func NewAlreadySettledError(resource, id string) *AppError {
	return NewAppError(
		ErrCodeAlreadySettled,
		fmt.Sprintf("%s %s is already settled", resource, id),
		http.StatusConflict,
		nil,
	)
}

// NewCommitmentMismatchError signals a corrupted seed or tampering
func NewCommitmentMismatchError(commitmentID string) *AppError {
	return NewAppError(
		ErrCodeCommitmentMismatch,
		fmt.Sprintf("Fairness commitment %s failed verification", commitmentID),
		http.StatusInternalServerError,
		nil,
	)
}

// NewStoreUnavailableError wraps a transient infrastructure failure
func NewStoreUnavailableError(operation string, err error) *AppError {
	return NewAppError(
		ErrCodeStoreUnavailable,
		fmt.Sprintf("Store unavailable during %s", operation),
		http.StatusServiceUnavailable,
		err,
	)
}

// NewNotFoundError creates a not found error
func NewNotFoundError(resource string) *AppError {
	return NewAppError(
		ErrCodeNotFound,
		fmt.Sprintf("%s not found", resource),
		http.StatusNotFound,
		nil,
	)
}

// NewUnauthorizedError creates an unauthorized error
func NewUnauthorizedError(message string) *AppError {
	if message == "" {
		message = "Unauthorized access"
	}
	return NewAppError(ErrCodeUnauthorized, message, http.StatusUnauthorized, nil)
}

// NewForbiddenError creates a forbidden error
func NewForbiddenError(message string) *AppError {
	if message == "" {
		message = "Access forbidden"
	}
	return NewAppError(ErrCodeForbidden, message, http.StatusForbidden, nil)
}

// NewConflictError creates a conflict error
func NewConflictError(message string) *AppError {
	return NewAppError(ErrCodeConflict, message, http.StatusConflict, nil)
}

// NewInternalError creates an internal server error
func NewInternalError(message string, err error) *AppError {
	if message == "" {
		message = "Internal server error"
	}
	return NewAppError(ErrCodeInternal, message, http.StatusInternalServerError, err)
}

// NewExternalServiceError creates an external service error
func NewExternalServiceError(service, operation string, err error) *AppError {
	return NewAppError(
		ErrCodeExternalService,
		fmt.Sprintf("External service '%s' operation '%s' failed", service, operation),
		http.StatusServiceUnavailable,
		err,
	)
}

// ErrorResponse represents the standard error response structure
type ErrorResponse struct {
	Error   *AppError `json:"error"`
	Success bool      `json:"success"`
}

// NewErrorResponse creates a new error response
func NewErrorResponse(err *AppError) ErrorResponse {
	return ErrorResponse{
		Error:   err,
		Success: false,
	}
}

// IsAppError checks if an error is an AppError
func IsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// HasCode reports whether err is an AppError carrying code
func HasCode(err error, code string) bool {
	appErr, ok := IsAppError(err)
	return ok && appErr.Code == code
}

// IsRetryable reports whether the failure is transient infrastructure trouble.
func IsRetryable(err error) bool {
	return HasCode(err, ErrCodeStoreUnavailable)
}

// Error codes for different categories of errors
const (
	ErrCodeTokenInvalid = "TOKEN_INVALID"
	ErrCodeTokenMissing = "TOKEN_MISSING"
	ErrCodeUnauthorized = "UNAUTHORIZED"
	ErrCodeForbidden    = "FORBIDDEN"

	ErrCodeInvalidAmount       = "INVALID_AMOUNT"
	ErrCodeInvalidInput        = "INVALID_INPUT"
	ErrCodeInsufficientBalance = "INSUFFICIENT_BALANCE"
	ErrCodeAlreadySettled      = "ALREADY_SETTLED"
	ErrCodeCommitmentMismatch  = "COMMITMENT_MISMATCH"
	ErrCodeStoreUnavailable    = "STORE_UNAVAILABLE"

	ErrCodeNotFound        = "NOT_FOUND"
	ErrCodeConflict        = "CONFLICT"
	ErrCodeRateLimited     = "RATE_LIMITED"
	ErrCodeTimeout         = "TIMEOUT"
	ErrCodeInternal        = "INTERNAL_ERROR"
	ErrCodeExternalService = "EXTERNAL_SERVICE_ERROR"
)
