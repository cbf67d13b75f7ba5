package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Sentinel errors for the failure categories the API distinguishes.
// Handlers map these to HTTP status codes; services use Wrap when the
// client should see a specific message instead of the sentinel text.
var (
	ErrConflict           = errors.New("already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrNotFound           = errors.New("not found")
	ErrInvalidOTP         = errors.New("invalid OTP")
	ErrExpiredOTP         = errors.New("OTP expired")
	ErrInvalidCentreCode  = errors.New("invalid centre code: no such centre exists")
)

// ValidationError reports missing or mismatched request fields.
// Fields keeps the original field labels so the message can name
// every mismatched field, e.g. "First name, Email do not match our records."
type ValidationError struct {
	Fields  []string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("%s do not match our records.", strings.Join(e.Fields, ", "))
}

// NewValidation builds a ValidationError with a fixed message.
func NewValidation(message string) *ValidationError {
	return &ValidationError{Message: message}
}

// NewMismatch builds a ValidationError naming the mismatched fields.
func NewMismatch(fields []string) *ValidationError {
	return &ValidationError{Fields: fields}
}

// wrapped carries a user-facing message while keeping the sentinel
// reachable through errors.Is.
type wrapped struct {
	msg string
	err error
}

func (w *wrapped) Error() string { return w.msg }
func (w *wrapped) Unwrap() error { return w.err }

// Wrap attaches a user-facing message to a sentinel error.
func Wrap(err error, msg string) error {
	return &wrapped{msg: msg, err: err}
}

// StatusCode maps an error to the HTTP status the API surfaces.
// External/unknown errors fall through to 500.
func StatusCode(err error) int {
	var ve *ValidationError
	switch {
	case errors.As(err, &ve):
		return http.StatusBadRequest
	case errors.Is(err, ErrConflict),
		errors.Is(err, ErrInvalidOTP),
		errors.Is(err, ErrExpiredOTP),
		errors.Is(err, ErrInvalidCentreCode):
		return http.StatusBadRequest
	case errors.Is(err, ErrInvalidCredentials):
		// Missing user and wrong password are deliberately indistinct
		return http.StatusBadRequest
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
