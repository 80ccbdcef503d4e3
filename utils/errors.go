package utils

import (
	"errors"
	"net/http"

	"gorm.io/gorm"
)

// AppError is an error carrying the HTTP status the handler layer should
// respond with. Services return these; handlers never pick status codes
// themselves.
type AppError struct {
	Status  int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewValidationError reports a missing or malformed field.
func NewValidationError(message string) *AppError {
	return &AppError{Status: http.StatusBadRequest, Message: message}
}

// NewConflictError reports a duplicate title/slug/email/username or a
// blocked dependent delete.
func NewConflictError(message string) *AppError {
	return &AppError{Status: http.StatusBadRequest, Message: message}
}

// NewAuthenticationError reports a missing or invalid token.
func NewAuthenticationError(message string) *AppError {
	return &AppError{Status: http.StatusUnauthorized, Message: message}
}

// NewAuthorizationError reports a role, ownership or state violation.
func NewAuthorizationError(message string) *AppError {
	return &AppError{Status: http.StatusForbidden, Message: message}
}

// NewNotFoundError reports an absent entity. Also used for blogs the caller
// is not allowed to see, so their existence is not leaked.
func NewNotFoundError(message string) *AppError {
	return &AppError{Status: http.StatusNotFound, Message: message}
}

// NewDependencyError reports a peripheral service failure (email, upload).
func NewDependencyError(message string, err error) *AppError {
	return &AppError{Status: http.StatusInternalServerError, Message: message, Err: err}
}

// StatusOf extracts the HTTP status from an error, defaulting to 500.
func StatusOf(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Status
	}
	return http.StatusInternalServerError
}

// TranslateDBError maps store errors onto the taxonomy. The unique indexes in
// the database are the authoritative uniqueness guard; a duplicated-key error
// surfacing here becomes a ConflictError instead of a 500.
func TranslateDBError(err error, notFoundMessage, conflictMessage string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return NewNotFoundError(notFoundMessage)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return NewConflictError(conflictMessage)
	default:
		return err
	}
}
