package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"hrms-backend/internal/apperr"
	"hrms-backend/internal/auth"
	"hrms-backend/internal/models"
)

func newTestResetService(t *testing.T) (*ResetService, *mockEmployeeCredentials, *mockCentreCredentials, *captureMailer) {
	t.Helper()

	employees := newMockEmployeeCredentials()
	centres := newMockCentreCredentials()
	mailer := &captureMailer{}

	hash, err := auth.HashPassword("old-password")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	employees.Create(context.Background(), &models.EmployeeCredential{
		EmployeeID:   "EMP1",
		Email:        "emp1@example.com",
		PasswordHash: hash,
	})
	employees.Create(context.Background(), &models.EmployeeCredential{
		EmployeeID:   "EMP2",
		Email:        "emp2@example.com",
		PasswordHash: hash,
	})
	centres.Create(context.Background(), &models.CentreCredential{
		Username:     "centre1",
		Email:        "centre1@example.com",
		CentreCode:   "C1",
		PasswordHash: hash,
	})

	return NewResetService(employees, centres, newMemoryCodeStore(), mailer), employees, centres, mailer
}

func TestResetRequestAndVerify(t *testing.T) {
	svc, employees, _, mailer := newTestResetService(t)
	ctx := context.Background()

	if err := svc.RequestReset(ctx, auth.KindEmployee, "EMP1"); err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if mailer.recipient != "emp1@example.com" {
		t.Fatalf("code went to %q", mailer.recipient)
	}
	if len(mailer.code) != 6 {
		t.Fatalf("expected a 6-digit code, got %q", mailer.code)
	}

	if err := svc.VerifyReset(ctx, auth.KindEmployee, "EMP1", mailer.code, "new-password"); err != nil {
		t.Fatalf("verify failed: %v", err)
	}

	cred, _ := employees.GetByEmployeeID(ctx, "EMP1")
	if !auth.VerifyPassword(cred.PasswordHash, "new-password") {
		t.Fatal("password was not updated")
	}

	// The code is single use.
	err := svc.VerifyReset(ctx, auth.KindEmployee, "EMP1", mailer.code, "another")
	if !errors.Is(err, apperr.ErrInvalidOTP) {
		t.Fatalf("reused code = %v, want invalid OTP", err)
	}
}

func TestResetWrongCode(t *testing.T) {
	svc, _, _, mailer := newTestResetService(t)
	ctx := context.Background()

	if err := svc.RequestReset(ctx, auth.KindEmployee, "EMP1"); err != nil {
		t.Fatalf("request failed: %v", err)
	}

	wrong := "000000"
	if wrong == mailer.code {
		wrong = "000001"
	}
	err := svc.VerifyReset(ctx, auth.KindEmployee, "EMP1", wrong, "new-password")
	if !errors.Is(err, apperr.ErrInvalidOTP) {
		t.Fatalf("wrong code = %v, want invalid OTP", err)
	}
}

func TestResetExpiredCode(t *testing.T) {
	svc, _, _, mailer := newTestResetService(t)
	ctx := context.Background()

	if err := svc.RequestReset(ctx, auth.KindEmployee, "EMP1"); err != nil {
		t.Fatalf("request failed: %v", err)
	}

	// Jump past the 10 minute lifetime.
	svc.now = func() time.Time { return time.Now().Add(11 * time.Minute) }

	err := svc.VerifyReset(ctx, auth.KindEmployee, "EMP1", mailer.code, "new-password")
	if !errors.Is(err, apperr.ErrExpiredOTP) {
		t.Fatalf("expired code = %v, want expired OTP", err)
	}
}

func TestResetCodesArePerSubject(t *testing.T) {
	svc, _, _, mailer := newTestResetService(t)
	ctx := context.Background()

	if err := svc.RequestReset(ctx, auth.KindEmployee, "EMP1"); err != nil {
		t.Fatalf("request failed: %v", err)
	}
	emp1Code := mailer.code

	// EMP2's code must not unlock EMP1 and vice versa.
	err := svc.VerifyReset(ctx, auth.KindEmployee, "EMP2", emp1Code, "new-password")
	if !errors.Is(err, apperr.ErrInvalidOTP) {
		t.Fatalf("cross-subject code = %v, want invalid OTP", err)
	}
}

func TestResetOverwritesPriorCode(t *testing.T) {
	svc, _, _, mailer := newTestResetService(t)
	ctx := context.Background()

	if err := svc.RequestReset(ctx, auth.KindEmployee, "EMP1"); err != nil {
		t.Fatalf("first request failed: %v", err)
	}
	first := mailer.code

	if err := svc.RequestReset(ctx, auth.KindEmployee, "EMP1"); err != nil {
		t.Fatalf("second request failed: %v", err)
	}
	second := mailer.code

	if first != second {
		err := svc.VerifyReset(ctx, auth.KindEmployee, "EMP1", first, "new-password")
		if !errors.Is(err, apperr.ErrInvalidOTP) {
			t.Fatalf("stale code = %v, want invalid OTP", err)
		}
	}
	if err := svc.VerifyReset(ctx, auth.KindEmployee, "EMP1", second, "new-password"); err != nil {
		t.Fatalf("latest code should verify: %v", err)
	}
}

func TestResetUnknownSubject(t *testing.T) {
	svc, _, _, _ := newTestResetService(t)

	err := svc.RequestReset(context.Background(), auth.KindEmployee, "NOPE")
	if !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("unknown subject = %v, want not found", err)
	}
}

func TestDirectReset(t *testing.T) {
	svc, _, centres, _ := newTestResetService(t)
	ctx := context.Background()

	if err := svc.DirectReset(ctx, auth.KindCentre, "centre1", "brand-new"); err != nil {
		t.Fatalf("direct reset failed: %v", err)
	}
	cred, _ := centres.GetByUsername(ctx, "centre1")
	if !auth.VerifyPassword(cred.PasswordHash, "brand-new") {
		t.Fatal("password was not updated")
	}

	err := svc.DirectReset(ctx, auth.KindCentre, "ghost", "x")
	if !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("unknown centre = %v, want not found", err)
	}
}
