package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestMismatchMessage(t *testing.T) {
	tests := []struct {
		fields []string
		want   string
	}{
		{[]string{"Email"}, "Email do not match our records."},
		{[]string{"First name", "Last name", "Email"}, "First name, Last name, Email do not match our records."},
	}
	for _, tt := range tests {
		if got := NewMismatch(tt.fields).Error(); got != tt.want {
			t.Errorf("NewMismatch(%v) = %q, want %q", tt.fields, got, tt.want)
		}
	}
}

func TestStatusCode(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{NewValidation("bad input"), http.StatusBadRequest},
		{NewMismatch([]string{"Email"}), http.StatusBadRequest},
		{ErrConflict, http.StatusBadRequest},
		{ErrInvalidCredentials, http.StatusBadRequest},
		{ErrInvalidOTP, http.StatusBadRequest},
		{ErrExpiredOTP, http.StatusBadRequest},
		{ErrInvalidCentreCode, http.StatusBadRequest},
		{ErrUnauthorized, http.StatusUnauthorized},
		{ErrForbidden, http.StatusForbidden},
		{ErrNotFound, http.StatusNotFound},
		{errors.New("driver exploded"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		if got := StatusCode(tt.err); got != tt.want {
			t.Errorf("StatusCode(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}

func TestStatusCodeUnwrapsContext(t *testing.T) {
	wrapped := fmt.Errorf("employee already exists: %w", ErrConflict)
	if got := StatusCode(wrapped); got != http.StatusBadRequest {
		t.Fatalf("wrapped conflict = %d, want 400", got)
	}
}

func TestWrapKeepsMessageAndSentinel(t *testing.T) {
	err := Wrap(ErrConflict, "Employee already exists with this email or employee ID")
	if err.Error() != "Employee already exists with this email or employee ID" {
		t.Errorf("Error() = %q, want the user-facing message", err.Error())
	}
	if !errors.Is(err, ErrConflict) {
		t.Error("Wrap should keep the sentinel reachable via errors.Is")
	}
	if got := StatusCode(err); got != http.StatusBadRequest {
		t.Errorf("StatusCode = %d, want 400", got)
	}
}
