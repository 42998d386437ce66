// Package errors provides the error taxonomy of the ledger API.
// Service-layer failures are AppErrors so that handlers can render a
// consistent response without leaking internal details to clients.
package errors

import (
	"errors"
	"net/http"
)

// Kind classifies an AppError independently of its HTTP rendering.
type Kind string

const (
	// KindValidation marks malformed input or a reference to a missing person.
	KindValidation Kind = "validation"
	// KindNotFound marks an operation on an identifier absent from the store.
	KindNotFound   Kind = "not_found"
	// KindConflict marks a delete that would break referential integrity.
	KindConflict   Kind = "conflict"
	// KindStore marks a transaction or connectivity failure.
	KindStore      Kind = "store"
)

// AppError represents a structured application error with an error code,
// human-readable message, HTTP status code, and optional internal error.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Kind       Kind   `json:"-"`
	Internal   error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Wrap creates a new AppError with the same code/message/status but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: sentinel.StatusCode,
		Kind:       sentinel.Kind,
		Internal:   internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		StatusCode: sentinel.StatusCode,
		Kind:       sentinel.Kind,
		Internal:   sentinel.Internal,
	}
}

// KindOf reports the kind of err. Errors that are not AppErrors are store
// failures as far as callers are concerned.
func KindOf(err error) Kind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindStore
}

// General errors.
var (
	ErrInvalidInput   = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest, Kind: KindValidation}
	ErrInvalidBody    = &AppError{Code: "INVALID_BODY", Message: "Malformed request body", StatusCode: http.StatusUnprocessableEntity, Kind: KindValidation}
	ErrNotFound       = &AppError{Code: "NOT_FOUND", Message: "Resource not found", StatusCode: http.StatusNotFound, Kind: KindNotFound}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError, Kind: KindStore}
)

// Person errors.
var (
	ErrPersonNotFound = &AppError{Code: "PERSON_NOT_FOUND", Message: "Person not found", StatusCode: http.StatusNotFound, Kind: KindNotFound}
	ErrPersonInUse    = &AppError{Code: "PERSON_IN_USE", Message: "Cannot delete: this person is used in one or more expenses", StatusCode: http.StatusBadRequest, Kind: KindConflict}
)

// Expense errors.
var (
	ErrExpenseNotFound      = &AppError{Code: "EXPENSE_NOT_FOUND", Message: "Expense not found", StatusCode: http.StatusNotFound, Kind: KindNotFound}
	ErrPayerNotFound        = &AppError{Code: "PAYER_NOT_FOUND", Message: "paid_by person does not exist", StatusCode: http.StatusBadRequest, Kind: KindValidation}
	ErrParticipantsNotFound = &AppError{Code: "PARTICIPANTS_NOT_FOUND", Message: "One or more participants do not exist", StatusCode: http.StatusBadRequest, Kind: KindValidation}
	ErrEmptyParticipants    = &AppError{Code: "EMPTY_PARTICIPANTS", Message: "An expense needs at least one participant", StatusCode: http.StatusBadRequest, Kind: KindValidation}
	ErrDuplicateParticipant = &AppError{Code: "DUPLICATE_PARTICIPANT", Message: "A person can only appear once among the participants", StatusCode: http.StatusBadRequest, Kind: KindValidation}
)
