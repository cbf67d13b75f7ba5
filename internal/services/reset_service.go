package services

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"log"
	"math/big"
	"strconv"
	"strings"
	"time"

	"hrms-backend/internal/apperr"
	"hrms-backend/internal/auth"
	"hrms-backend/internal/cache"
	"hrms-backend/internal/mail"
	"hrms-backend/internal/timeutil"
)

const (
	// Codes stay valid for 10 minutes.
	resetCodeLifetime = 10 * time.Minute

	// Keys are retained past expiry so an expired code can be reported
	// as expired instead of unknown.
	resetCodeRetention = time.Hour
)

// CodeStore abstracts the expiring key-value store the reset flow keeps
// its codes in (Redis, with a process-local fallback).
type CodeStore interface {
	SetWithTTL(ctx context.Context, key, value string, ttl time.Duration) error
	Get(ctx context.Context, key string) (string, bool)
	Delete(ctx context.Context, key string)
}

// redisCodeStore adapts the cache package to CodeStore.
type redisCodeStore struct{}

func NewRedisCodeStore() CodeStore { return redisCodeStore{} }

func (redisCodeStore) SetWithTTL(ctx context.Context, key, value string, ttl time.Duration) error {
	return cache.SetWithTTL(ctx, key, value, ttl)
}
func (redisCodeStore) Get(ctx context.Context, key string) (string, bool) { return cache.Get(ctx, key) }
func (redisCodeStore) Delete(ctx context.Context, key string)             { cache.Delete(ctx, key) }

// ResetService implements the OTP password reset flow for employees and
// centres, plus the direct no-OTP reset the SPA still calls.
type ResetService struct {
	employees EmployeeCredentialStore
	centres   CentreCredentialStore
	codes     CodeStore
	mailer    mail.Mailer
	now       func() time.Time
}

func NewResetService(employees EmployeeCredentialStore, centres CentreCredentialStore, codes CodeStore, mailer mail.Mailer) *ResetService {
	return &ResetService{
		employees: employees,
		centres:   centres,
		codes:     codes,
		mailer:    mailer,
		now:       timeutil.Now,
	}
}

func resetKey(kind auth.Kind, subject string) string {
	return fmt.Sprintf("reset:%s:%s", kind, subject)
}

// generateCode returns a 6-digit numeric code from crypto/rand.
func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", fmt.Errorf("failed to generate reset code: %w", err)
	}
	return strconv.FormatInt(n.Int64()+100000, 10), nil
}

// RequestReset issues a fresh code for the subject, replacing any
// outstanding one, and hands it to the mailer.
func (s *ResetService) RequestReset(ctx context.Context, kind auth.Kind, subject string) error {
	if subject == "" {
		return apperr.NewValidation("identifier is required")
	}

	email, err := s.lookupEmail(ctx, kind, subject)
	if err != nil {
		return err
	}

	code, err := generateCode()
	if err != nil {
		return err
	}

	// The stored value embeds the expiry instant; the key itself is
	// retained longer so expired and unknown codes stay distinguishable.
	expires := s.now().Add(resetCodeLifetime)
	value := code + ":" + strconv.FormatInt(expires.Unix(), 10)
	if err := s.codes.SetWithTTL(ctx, resetKey(kind, subject), value, resetCodeRetention); err != nil {
		return fmt.Errorf("failed to store reset code: %w", err)
	}

	if err := s.mailer.SendResetCode(ctx, email, code); err != nil {
		return fmt.Errorf("failed to send reset code: %w", err)
	}

	log.Printf("[Reset] Issued reset code for %s %s", kind, subject)
	return nil
}

// VerifyReset checks the submitted code and, when valid and unexpired,
// replaces the subject's password and consumes the code.
func (s *ResetService) VerifyReset(ctx context.Context, kind auth.Kind, subject, code, newPassword string) error {
	if subject == "" || code == "" || newPassword == "" {
		return apperr.NewValidation("all fields are required")
	}

	key := resetKey(kind, subject)
	stored, ok := s.codes.Get(ctx, key)
	if !ok {
		return apperr.ErrInvalidOTP
	}

	storedCode, expires, err := parseStoredCode(stored)
	if err != nil {
		return apperr.ErrInvalidOTP
	}
	if storedCode != code {
		return apperr.ErrInvalidOTP
	}
	if s.now().After(expires) {
		return apperr.ErrExpiredOTP
	}

	if err := s.updatePassword(ctx, kind, subject, newPassword); err != nil {
		return err
	}

	s.codes.Delete(ctx, key)
	log.Printf("[Reset] Password reset completed for %s %s", kind, subject)
	return nil
}

// DirectReset replaces the password without an OTP check, by identifier.
func (s *ResetService) DirectReset(ctx context.Context, kind auth.Kind, subject, newPassword string) error {
	if subject == "" || newPassword == "" {
		return apperr.NewValidation("identifier and newPassword are required")
	}
	return s.updatePassword(ctx, kind, subject, newPassword)
}

func (s *ResetService) lookupEmail(ctx context.Context, kind auth.Kind, subject string) (string, error) {
	switch kind {
	case auth.KindEmployee:
		cred, err := s.employees.GetByEmployeeID(ctx, subject)
		if err != nil {
			return "", err
		}
		return cred.Email, nil
	case auth.KindCentre:
		cred, err := s.centres.GetByUsername(ctx, subject)
		if err != nil {
			return "", err
		}
		return cred.Email, nil
	default:
		return "", errors.New("unsupported principal kind for reset")
	}
}

func (s *ResetService) updatePassword(ctx context.Context, kind auth.Kind, subject, newPassword string) error {
	hash, err := auth.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	switch kind {
	case auth.KindEmployee:
		return s.employees.UpdatePassword(ctx, subject, hash)
	case auth.KindCentre:
		return s.centres.UpdatePassword(ctx, subject, hash)
	default:
		return errors.New("unsupported principal kind for reset")
	}
}

func parseStoredCode(stored string) (string, time.Time, error) {
	idx := strings.LastIndexByte(stored, ':')
	if idx < 0 {
		return "", time.Time{}, errors.New("malformed stored code")
	}
	unix, err := strconv.ParseInt(stored[idx+1:], 10, 64)
	if err != nil {
		return "", time.Time{}, err
	}
	return stored[:idx], time.Unix(unix, 0), nil
}
