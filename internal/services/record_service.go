package services

import (
	"context"
	"errors"
	"log"

	"hrms-backend/internal/apperr"
	"hrms-backend/internal/auth"
	"hrms-backend/internal/models"
)

// EmployeeRecordStore is the persistence surface for profile records.
type EmployeeRecordStore interface {
	GetByEmployeeID(ctx context.Context, employeeID string) (*models.EmployeeRecord, error)
	ListAll(ctx context.Context) ([]models.EmployeeRecord, error)
	Upsert(ctx context.Context, rec *models.EmployeeRecord) (*models.EmployeeRecord, error)
	UpdateStatus(ctx context.Context, employeeID, status, validationNote string) (*models.EmployeeRecord, error)
	DeleteWithCredential(ctx context.Context, employeeID string) error
}

// recordCredentialStore is the slice of the credential store the record
// flow needs beyond login.
type recordCredentialStore interface {
	GetByEmployeeID(ctx context.Context, employeeID string) (*models.EmployeeCredential, error)
	UpdateStatus(ctx context.Context, employeeID, status string) error
	UpdateCenterCode(ctx context.Context, employeeID, centerCode string) error
}

// centreResolver resolves a centre code to a registered centre.
type centreResolver interface {
	GetByCentreCode(ctx context.Context, centreCode string) (*models.CentreCredential, error)
	ListAll(ctx context.Context) ([]models.CentreCredential, error)
}

// RecordService owns the onboarding records: validated upserts, review
// status updates mirrored onto the credential, and the admin cascade
// delete.
type RecordService struct {
	records     EmployeeRecordStore
	credentials recordCredentialStore
	centres     centreResolver
}

func NewRecordService(records EmployeeRecordStore, credentials recordCredentialStore, centres centreResolver) *RecordService {
	return &RecordService{
		records:     records,
		credentials: credentials,
		centres:     centres,
	}
}

// Upsert validates the submitted record against the credential and
// writes it. Employees may only write their own record and only while it
// is not yet Approved; centres and admins may write any record.
func (s *RecordService) Upsert(ctx context.Context, claims *auth.Claims, rec *models.EmployeeRecord) (*models.EmployeeRecord, error) {
	key := rec.EmployeeID
	if key == "" {
		key = rec.Username
	}
	if key == "" {
		return nil, apperr.NewValidation("employeeId or username is required")
	}

	cred, err := s.credentials.GetByEmployeeID(ctx, key)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return nil, apperr.Wrap(apperr.ErrNotFound, "Employee record not found for this username or employee ID.")
		}
		return nil, err
	}

	if claims.Kind == auth.KindEmployee {
		if claims.PrincipalID != rec.EmployeeID || cred.Status == models.StatusApproved {
			return nil, apperr.Wrap(apperr.ErrForbidden, "Access denied. You cannot edit this record.")
		}
	}

	// Names and email must match what the credential was registered with.
	var mismatches []string
	if cred.FirstName != rec.FirstName {
		mismatches = append(mismatches, "First name")
	}
	if cred.LastName != rec.LastName {
		mismatches = append(mismatches, "Last name")
	}
	if cred.Email != rec.Email {
		mismatches = append(mismatches, "Email")
	}
	if len(mismatches) > 0 {
		return nil, apperr.NewMismatch(mismatches)
	}

	centerCode := rec.CenterCode
	if centerCode == "" {
		centerCode = cred.CenterCode
	}
	if centerCode != "" {
		if _, err := s.centres.GetByCentreCode(ctx, centerCode); err != nil {
			if errors.Is(err, apperr.ErrNotFound) {
				return nil, apperr.ErrInvalidCentreCode
			}
			return nil, err
		}
		rec.CenterCode = centerCode
	}

	if rec.Status == "" {
		rec.Status = models.StatusPending
	}

	saved, err := s.records.Upsert(ctx, rec)
	if err != nil {
		return nil, err
	}

	// Keep the credential's centre assignment in sync.
	if centerCode != "" && rec.EmployeeID != "" {
		if err := s.credentials.UpdateCenterCode(ctx, rec.EmployeeID, centerCode); err != nil {
			log.Printf("[Records] Failed to propagate centre code for %s: %v", rec.EmployeeID, err)
		}
	}

	return saved, nil
}

// UpdateStatus records the review outcome. Approved mirrors Approved
// onto the credential; Rejected sends the credential back to Pending so
// the employee can resubmit.
func (s *RecordService) UpdateStatus(ctx context.Context, employeeID string, req *models.UpdateStatusRequest) (*models.EmployeeRecord, error) {
	if req.Status != models.StatusApproved && req.Status != models.StatusRejected && req.Status != models.StatusPending {
		return nil, apperr.NewValidation("status must be Pending, Approved or Rejected")
	}

	rec, err := s.records.UpdateStatus(ctx, employeeID, req.Status, req.ValidationNote)
	if err != nil {
		return nil, err
	}

	if rec.EmployeeID != "" {
		switch req.Status {
		case models.StatusApproved:
			err = s.credentials.UpdateStatus(ctx, rec.EmployeeID, models.StatusApproved)
		case models.StatusRejected:
			err = s.credentials.UpdateStatus(ctx, rec.EmployeeID, models.StatusPending)
		}
		if err != nil {
			log.Printf("[Records] Failed to mirror status for %s: %v", rec.EmployeeID, err)
		}
	}

	return rec, nil
}

// Delete removes the record together with its credential.
func (s *RecordService) Delete(ctx context.Context, employeeID string) error {
	if err := s.records.DeleteWithCredential(ctx, employeeID); err != nil {
		return err
	}
	log.Printf("[Records] Deleted employee %s", employeeID)
	return nil
}

// Get returns one record by employee id or legacy username.
func (s *RecordService) Get(ctx context.Context, key string) (*models.EmployeeRecord, error) {
	return s.records.GetByEmployeeID(ctx, key)
}

// List returns every record.
func (s *RecordService) List(ctx context.Context) ([]models.EmployeeRecord, error) {
	return s.records.ListAll(ctx)
}

// OnboardingStatus reports whether a profile record exists yet.
func (s *RecordService) OnboardingStatus(ctx context.Context, employeeID string) (*models.OnboardingStatusResponse, error) {
	_, err := s.records.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return &models.OnboardingStatusResponse{Onboarded: false}, nil
		}
		return nil, err
	}
	return &models.OnboardingStatusResponse{Onboarded: true}, nil
}

// ListCentres returns every registered centre.
func (s *RecordService) ListCentres(ctx context.Context) ([]models.CentreCredential, error) {
	return s.centres.ListAll(ctx)
}
