package services

import (
	"context"
	"errors"
	"testing"

	"hrms-backend/internal/apperr"
	"hrms-backend/internal/auth"
	"hrms-backend/internal/models"
)

func newTestAccountService() (*AccountService, *auth.JWTManager) {
	jwtManager := auth.NewJWTManager("test-secret", "hrms-backend", 30)
	svc := NewAccountService(
		newMockEmployeeCredentials(),
		newMockCentreCredentials(),
		newMockAdminCredentials(),
		jwtManager,
	)
	return svc, jwtManager
}

func TestRegisterEmployeeDuplicate(t *testing.T) {
	svc, _ := newTestAccountService()
	ctx := context.Background()

	req := &models.EmployeeRegisterRequest{
		EmployeeID: "EMP1",
		Email:      "emp1@example.com",
		Password:   "secret",
		FirstName:  "Asha",
		LastName:   "Rao",
	}
	if err := svc.RegisterEmployee(ctx, req); err != nil {
		t.Fatalf("first registration failed: %v", err)
	}

	// Same employee id.
	if err := svc.RegisterEmployee(ctx, req); !errors.Is(err, apperr.ErrConflict) {
		t.Fatalf("duplicate id = %v, want conflict", err)
	}

	// Same email, different id.
	dup := *req
	dup.EmployeeID = "EMP2"
	if err := svc.RegisterEmployee(ctx, &dup); !errors.Is(err, apperr.ErrConflict) {
		t.Fatalf("duplicate email = %v, want conflict", err)
	}
}

func TestRegisterCentreDuplicate(t *testing.T) {
	svc, _ := newTestAccountService()
	ctx := context.Background()

	req := &models.CentreRegisterRequest{
		Username:   "centreA",
		Email:      "centrea@example.com",
		Password:   "secret",
		CentreName: "Hyderabad West",
		CentreCode: "C1",
	}
	if err := svc.RegisterCentre(ctx, req); err != nil {
		t.Fatalf("first registration failed: %v", err)
	}

	// Same username.
	if err := svc.RegisterCentre(ctx, req); !errors.Is(err, apperr.ErrConflict) {
		t.Fatalf("duplicate username = %v, want conflict", err)
	}

	// Same email, fresh username and code.
	dup := *req
	dup.Username = "centreB"
	dup.CentreCode = "C2"
	if err := svc.RegisterCentre(ctx, &dup); !errors.Is(err, apperr.ErrConflict) {
		t.Fatalf("duplicate email = %v, want conflict", err)
	}

	// Same centre code, fresh username and email.
	dup = *req
	dup.Username = "centreB"
	dup.Email = "centreb@example.com"
	if err := svc.RegisterCentre(ctx, &dup); !errors.Is(err, apperr.ErrConflict) {
		t.Fatalf("duplicate centre code = %v, want conflict", err)
	}
}

func TestRegisterEmployeeRequiresFields(t *testing.T) {
	svc, _ := newTestAccountService()

	err := svc.RegisterEmployee(context.Background(), &models.EmployeeRegisterRequest{EmployeeID: "EMP1"})
	var ve *apperr.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("missing fields = %v, want validation error", err)
	}
}

func TestLoginEmployee(t *testing.T) {
	svc, jwtManager := newTestAccountService()
	ctx := context.Background()

	svc.RegisterEmployee(ctx, &models.EmployeeRegisterRequest{
		EmployeeID: "EMP1",
		Email:      "emp1@example.com",
		Password:   "secret",
	})

	resp, err := svc.LoginEmployee(ctx, "EMP1", "secret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if resp.Token == "" {
		t.Fatal("no token issued")
	}

	claims, err := jwtManager.ValidateToken(resp.Token)
	if err != nil {
		t.Fatalf("issued token invalid: %v", err)
	}
	if claims.Kind != auth.KindEmployee || claims.PrincipalID != "EMP1" {
		t.Fatalf("claims = %+v", claims)
	}

	view, ok := resp.User.(models.EmployeeUserView)
	if !ok {
		t.Fatalf("user payload type %T", resp.User)
	}
	if view.Status != models.StatusPending || view.UserType != "employee" {
		t.Fatalf("user view = %+v", view)
	}
}

func TestLoginIndistinctFailures(t *testing.T) {
	svc, _ := newTestAccountService()
	ctx := context.Background()

	svc.RegisterEmployee(ctx, &models.EmployeeRegisterRequest{
		EmployeeID: "EMP1",
		Email:      "emp1@example.com",
		Password:   "secret",
	})

	// Unknown user and wrong password yield the exact same error.
	_, errUnknown := svc.LoginEmployee(ctx, "NOPE", "secret")
	_, errWrongPw := svc.LoginEmployee(ctx, "EMP1", "wrong")
	if !errors.Is(errUnknown, apperr.ErrInvalidCredentials) || !errors.Is(errWrongPw, apperr.ErrInvalidCredentials) {
		t.Fatalf("errors = %v / %v, want invalid credentials for both", errUnknown, errWrongPw)
	}
	if errUnknown.Error() != errWrongPw.Error() {
		t.Fatal("missing user and wrong password must be indistinguishable")
	}
}

func TestRefreshChecksKind(t *testing.T) {
	svc, _ := newTestAccountService()
	ctx := context.Background()

	svc.RegisterEmployee(ctx, &models.EmployeeRegisterRequest{
		EmployeeID: "EMP1",
		Email:      "emp1@example.com",
		Password:   "secret",
	})
	resp, err := svc.LoginEmployee(ctx, "EMP1", "secret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	if _, err := svc.Refresh(resp.Token, auth.KindEmployee); err != nil {
		t.Fatalf("refresh with matching kind failed: %v", err)
	}
	if _, err := svc.Refresh(resp.Token, auth.KindCentre); !errors.Is(err, apperr.ErrUnauthorized) {
		t.Fatalf("refresh with wrong kind = %v, want unauthorized", err)
	}
	if _, err := svc.Refresh("garbage", auth.KindEmployee); !errors.Is(err, apperr.ErrUnauthorized) {
		t.Fatalf("refresh with malformed token = %v, want unauthorized", err)
	}
}

func TestLoginCentreAndAdmin(t *testing.T) {
	svc, _ := newTestAccountService()
	ctx := context.Background()

	if err := svc.RegisterCentre(ctx, &models.CentreRegisterRequest{
		Username:   "centre1",
		Email:      "centre1@example.com",
		Password:   "secret",
		CentreName: "Hyderabad West",
		CentreCode: "C1",
	}); err != nil {
		t.Fatalf("centre registration failed: %v", err)
	}
	if err := svc.RegisterAdmin(ctx, &models.AdminRegisterRequest{
		AdminID:  "ADM1",
		Name:     "Root",
		Email:    "admin@example.com",
		Password: "secret",
	}); err != nil {
		t.Fatalf("admin registration failed: %v", err)
	}

	centreResp, err := svc.LoginCentre(ctx, "centre1", "secret")
	if err != nil {
		t.Fatalf("centre login failed: %v", err)
	}
	if view := centreResp.User.(models.CentreUserView); view.CentreCode != "C1" || view.UserType != "centre" {
		t.Fatalf("centre view = %+v", view)
	}

	adminResp, err := svc.LoginAdmin(ctx, "ADM1", "secret")
	if err != nil {
		t.Fatalf("admin login failed: %v", err)
	}
	if view := adminResp.User.(models.AdminUserView); view.AdminID != "ADM1" || view.UserType != "admin" {
		t.Fatalf("admin view = %+v", view)
	}
}
