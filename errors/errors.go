package errors

import (
	"errors"
	"fmt"
)

// ErrorCode classifies application errors
type ErrorCode string

const (
	// Auth errors
	ErrCodeUnauthorized ErrorCode = "UNAUTHORIZED"
	ErrCodeForbidden    ErrorCode = "FORBIDDEN"
	ErrCodeInvalidToken ErrorCode = "INVALID_TOKEN"
	ErrCodeMissingToken ErrorCode = "MISSING_TOKEN"
	ErrCodeUserNotFound ErrorCode = "USER_NOT_FOUND"
	ErrCodeUserExists   ErrorCode = "USER_EXISTS"
	ErrCodeInvalidEmail ErrorCode = "INVALID_EMAIL"
	ErrCodeInvalidPhone ErrorCode = "INVALID_PHONE"
	ErrCodeInvalidCode  ErrorCode = "INVALID_CODE"
	ErrCodeExpiredCode  ErrorCode = "EXPIRED_CODE"
	ErrCodeInvalidRole  ErrorCode = "INVALID_ROLE"

	// Domain errors
	ErrCodeInvalidAction ErrorCode = "INVALID_ACTION"
	ErrCodeInvalidStatus ErrorCode = "INVALID_STATUS"
	ErrCodeInvalidDates  ErrorCode = "INVALID_DATES"
	ErrCodeNotAvailable  ErrorCode = "NOT_AVAILABLE"
	ErrCodeNotOwner      ErrorCode = "NOT_OWNER"

	// Database errors
	ErrCodeDBError     ErrorCode = "DB_ERROR"
	ErrCodeDBNotFound  ErrorCode = "DB_NOT_FOUND"
	ErrCodeDBDuplicate ErrorCode = "DB_DUPLICATE"

	// Validation errors
	ErrCodeValidation    ErrorCode = "VALIDATION_ERROR"
	ErrCodeRequiredField ErrorCode = "REQUIRED_FIELD"
	ErrCodeInvalidFormat ErrorCode = "INVALID_FORMAT"
)

// AppError carries a code alongside the underlying error
type AppError struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// NewAppError builds an AppError
func NewAppError(code ErrorCode, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// IsAppError reports whether err is an AppError
func IsAppError(err error) bool {
	_, ok := err.(*AppError)
	return ok
}

// GetAppError extracts the AppError from err, or nil
func GetAppError(err error) *AppError {
	if appErr, ok := err.(*AppError); ok {
		return appErr
	}
	return nil
}

var (
	// User errors
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
	ErrInvalidPassword   = errors.New("invalid password")
	ErrUnauthorized      = errors.New("unauthorized")

	// Booking errors
	ErrBookingNotFound     = errors.New("booking not found")
	ErrBookingCancelled    = errors.New("booking already cancelled")
	ErrBookingCompleted    = errors.New("booking already completed")
	ErrBookingNotConfirmed = errors.New("booking not confirmed")
	ErrInvalidAction       = errors.New("unrecognized action")
	ErrNotAvailable        = errors.New("dates not available")

	// Property errors
	ErrPropertyNotFound = errors.New("property not found")
	ErrRoomNotFound     = errors.New("room not found")
	ErrNotOwner         = errors.New("actor does not own this property")

	// Application errors
	ErrApplicationNotFound = errors.New("application not found")
	ErrApplicationExists   = errors.New("application already submitted")
	ErrStatusTerminal      = errors.New("application status is terminal")

	// Validation errors
	ErrInvalidInput    = errors.New("invalid input")
	ErrMissingRequired = errors.New("missing required field")
	ErrInvalidFormat   = errors.New("invalid format")
)
