package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"hrms-backend/internal/apperr"
	"hrms-backend/internal/auth"
	"hrms-backend/internal/models"
)

// EmployeeCredentialStore is the persistence surface the account and
// reset flows need for employees.
type EmployeeCredentialStore interface {
	Create(ctx context.Context, c *models.EmployeeCredential) (*models.EmployeeCredential, error)
	GetByEmployeeID(ctx context.Context, employeeID string) (*models.EmployeeCredential, error)
	ExistsByEmployeeIDOrEmail(ctx context.Context, employeeID, email string) (bool, error)
	UpdatePassword(ctx context.Context, employeeID, passwordHash string) error
}

// CentreCredentialStore is the persistence surface for centres.
type CentreCredentialStore interface {
	Create(ctx context.Context, c *models.CentreCredential) (*models.CentreCredential, error)
	GetByUsername(ctx context.Context, username string) (*models.CentreCredential, error)
	ExistsByUsernameEmailOrCode(ctx context.Context, username, email, centreCode string) (bool, error)
	UpdatePassword(ctx context.Context, username, passwordHash string) error
}

// AdminCredentialStore is the persistence surface for admins.
type AdminCredentialStore interface {
	Create(ctx context.Context, c *models.AdminCredential) (*models.AdminCredential, error)
	GetByAdminID(ctx context.Context, adminID string) (*models.AdminCredential, error)
	ExistsByAdminIDOrEmail(ctx context.Context, adminID, email string) (bool, error)
}

// AccountService implements registration, login and token refresh for
// the three principal kinds.
type AccountService struct {
	employees EmployeeCredentialStore
	centres   CentreCredentialStore
	admins    AdminCredentialStore
	tokens    *auth.JWTManager
}

func NewAccountService(employees EmployeeCredentialStore, centres CentreCredentialStore, admins AdminCredentialStore, tokens *auth.JWTManager) *AccountService {
	return &AccountService{
		employees: employees,
		centres:   centres,
		admins:    admins,
		tokens:    tokens,
	}
}

// RegisterEmployee creates a Pending employee credential.
func (s *AccountService) RegisterEmployee(ctx context.Context, req *models.EmployeeRegisterRequest) error {
	if req.EmployeeID == "" || req.Email == "" || req.Password == "" {
		return apperr.NewValidation("employeeId, email and password are required")
	}

	exists, err := s.employees.ExistsByEmployeeIDOrEmail(ctx, req.EmployeeID, req.Email)
	if err != nil {
		return err
	}
	if exists {
		return apperr.Wrap(apperr.ErrConflict, "Employee already exists with this email or employee ID")
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	_, err = s.employees.Create(ctx, &models.EmployeeCredential{
		EmployeeID:   req.EmployeeID,
		Email:        req.Email,
		PasswordHash: hash,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		CenterCode:   req.CenterCode,
		Role:         "employee",
		Status:       models.StatusPending,
	})
	if err != nil {
		return err
	}

	log.Printf("[Account] Registered employee %s", req.EmployeeID)
	return nil
}

// RegisterCentre creates a centre credential.
func (s *AccountService) RegisterCentre(ctx context.Context, req *models.CentreRegisterRequest) error {
	if req.Username == "" || req.Email == "" || req.Password == "" || req.CentreCode == "" {
		return apperr.NewValidation("username, email, password and centreCode are required")
	}

	exists, err := s.centres.ExistsByUsernameEmailOrCode(ctx, req.Username, req.Email, req.CentreCode)
	if err != nil {
		return err
	}
	if exists {
		return apperr.Wrap(apperr.ErrConflict, "Centre already exists with this email, username, or centre code")
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	_, err = s.centres.Create(ctx, &models.CentreCredential{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
		CentreName:   req.CentreName,
		CentreCode:   req.CentreCode,
		Role:         "centre",
	})
	if err != nil {
		return err
	}

	log.Printf("[Account] Registered centre %s (%s)", req.Username, req.CentreCode)
	return nil
}

// RegisterAdmin creates an admin credential.
func (s *AccountService) RegisterAdmin(ctx context.Context, req *models.AdminRegisterRequest) error {
	if req.AdminID == "" || req.Email == "" || req.Password == "" {
		return apperr.NewValidation("adminId, email and password are required")
	}

	exists, err := s.admins.ExistsByAdminIDOrEmail(ctx, req.AdminID, req.Email)
	if err != nil {
		return err
	}
	if exists {
		return apperr.Wrap(apperr.ErrConflict, "Admin already exists with this email or admin ID")
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	_, err = s.admins.Create(ctx, &models.AdminCredential{
		AdminID:      req.AdminID,
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         "admin",
	})
	if err != nil {
		return err
	}

	log.Printf("[Account] Registered admin %s", req.AdminID)
	return nil
}

// LoginEmployee checks the password and issues a token. A missing user
// and a wrong password return the same error on purpose.
func (s *AccountService) LoginEmployee(ctx context.Context, employeeID, password string) (*models.AuthResponse, error) {
	cred, err := s.employees.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return nil, apperr.ErrInvalidCredentials
		}
		return nil, err
	}
	if !auth.VerifyPassword(cred.PasswordHash, password) {
		return nil, apperr.ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateToken(cred.ID, cred.EmployeeID, cred.Role, auth.KindEmployee)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	return &models.AuthResponse{Token: token, User: cred.View()}, nil
}

// LoginCentre checks the password and issues a token.
func (s *AccountService) LoginCentre(ctx context.Context, username, password string) (*models.AuthResponse, error) {
	cred, err := s.centres.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return nil, apperr.ErrInvalidCredentials
		}
		return nil, err
	}
	if !auth.VerifyPassword(cred.PasswordHash, password) {
		return nil, apperr.ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateToken(cred.ID, cred.Username, cred.Role, auth.KindCentre)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	return &models.AuthResponse{Token: token, User: cred.View()}, nil
}

// LoginAdmin checks the password and issues a token.
func (s *AccountService) LoginAdmin(ctx context.Context, adminID, password string) (*models.AuthResponse, error) {
	cred, err := s.admins.GetByAdminID(ctx, adminID)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return nil, apperr.ErrInvalidCredentials
		}
		return nil, err
	}
	if !auth.VerifyPassword(cred.PasswordHash, password) {
		return nil, apperr.ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateToken(cred.ID, cred.AdminID, cred.Role, auth.KindAdmin)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	return &models.AuthResponse{Token: token, User: cred.View()}, nil
}

// Refresh re-issues a token of the given kind with a fresh expiry
// window. Any validation failure maps to Unauthorized.
func (s *AccountService) Refresh(tokenString string, kind auth.Kind) (*models.RefreshResponse, error) {
	token, err := s.tokens.Refresh(tokenString, kind)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperr.ErrUnauthorized, err)
	}
	return &models.RefreshResponse{Token: token}, nil
}

// EmployeeInfo returns the credential view for an employee id.
func (s *AccountService) EmployeeInfo(ctx context.Context, employeeID string) (*models.EmployeeUserView, error) {
	cred, err := s.employees.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	view := cred.View()
	return &view, nil
}
