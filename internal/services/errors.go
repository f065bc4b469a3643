package services

import (
	"errors"
	"fmt"
)

// Error kinds returned by services. Handlers map them to HTTP status codes.
var (
	ErrNotFound           = errors.New("not found")
	ErrForbidden          = errors.New("forbidden")
	ErrConflict           = errors.New("conflict")
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrExternalService    = errors.New("external service error")
)

// Error is a service error with a message that is safe to show to clients
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Kind
}

func newError(kind error, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func notFound(entity string) *Error {
	return newError(ErrNotFound, fmt.Sprintf("%s not found", entity))
}

// Errors with fixed client-facing messages
var (
	ErrUsernameTaken        = newError(ErrConflict, "Username already taken")
	ErrWrongCredentials     = newError(ErrInvalidCredentials, "Invalid username or password")
	ErrPublicFolderAdmin    = newError(ErrForbidden, "Only admins can create public folders")
	ErrNoTelegramChannel    = newError(ErrInvalidInput, "No Telegram channel ID configured")
	ErrTelegramShareFailed  = newError(ErrExternalService, "Failed to share to Telegram")
	ErrCommentDeleteDenied  = newError(ErrForbidden, "Only the author or an admin can delete a comment")
	ErrNegativeReaction     = newError(ErrInvalidInput, "Reaction counts must not be negative")
	ErrUnsupportedMediaType = newError(ErrInvalidInput, "Unsupported audio format")
)

// FieldError describes a single invalid field of a request
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError is returned when a request payload fails validation
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "invalid request"
	}
	return fmt.Sprintf("invalid request: %s %s", e.Fields[0].Field, e.Fields[0].Message)
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}
