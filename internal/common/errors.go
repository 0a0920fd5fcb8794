package common

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError represents application-specific errors
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// Common application errors
var (
	ErrNotFound      = errors.New("resource not found")
	ErrInvalidInput  = errors.New("invalid input")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
	ErrInternal      = errors.New("internal error")
	ErrDatabase      = errors.New("database error")
	ErrValidation    = errors.New("validation failed")
	ErrQuotaExceeded = errors.New("upload quota exceeded")
	ErrNoFile        = errors.New("no file uploaded")
	ErrNormalization = errors.New("image normalization failed")
	ErrStorage       = errors.New("blob storage failed")
	ErrAnalysis      = errors.New("analysis capability failed")
)

// Error constructors
func NewAppError(code, message string, cause error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Rejection constructors for the ingestion taxonomy.

func UserNotFoundError(cause error) *AppError {
	return NewAppError("USER_NOT_FOUND", "user not found", errors.Join(ErrNotFound, cause))
}

func QuotaExceededError() *AppError {
	return NewAppError("QUOTA_EXCEEDED",
		"you have reached your free upload limit; upgrade to premium for unlimited uploads",
		ErrQuotaExceeded)
}

func NoFileError() *AppError {
	return NewAppError("NO_FILE", "no file uploaded", ErrNoFile)
}

func ValidationError(message string) *AppError {
	return NewAppError("VALIDATION_FAILED", message, ErrValidation)
}

func NormalizationError(cause error) *AppError {
	return NewAppError("NORMALIZATION_FAILED", "failed to process image", errors.Join(ErrNormalization, cause))
}

func StorageError(cause error) *AppError {
	return NewAppError("STORAGE_FAILED", "failed to store image", errors.Join(ErrStorage, cause))
}

// HTTPStatus maps an error to the status code the HTTP layer should answer with.
func HTTPStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrQuotaExceeded):
		return http.StatusForbidden
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, ErrNoFile),
		errors.Is(err, ErrValidation),
		errors.Is(err, ErrNormalization),
		errors.Is(err, ErrInvalidInput):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// PublicMessage returns the caller-facing message for an error, hiding
// internal causes behind a generic message for 5xx classes.
func PublicMessage(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	if HTTPStatus(err) >= http.StatusInternalServerError {
		return "internal error"
	}
	return err.Error()
}
