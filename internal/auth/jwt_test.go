package auth

import (
	"testing"
	"time"
)

func TestGenerateAndValidateToken(t *testing.T) {
	m := NewJWTManager("secret", "hrms-backend", 30)

	token, err := m.GenerateToken(7, "EMP1", "employee", KindEmployee)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	claims, err := m.ValidateToken(token)
	if err != nil {
		t.Fatalf("validate failed: %v", err)
	}
	if claims.UserID != 7 || claims.PrincipalID != "EMP1" || claims.Role != "employee" || claims.Kind != KindEmployee {
		t.Fatalf("claims = %+v", claims)
	}
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	issuer := NewJWTManager("secret-a", "hrms-backend", 30)
	verifier := NewJWTManager("secret-b", "hrms-backend", 30)

	token, err := issuer.GenerateToken(1, "EMP1", "employee", KindEmployee)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if _, err := verifier.ValidateToken(token); err == nil {
		t.Fatal("token signed with another secret was accepted")
	}
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	// A negative expiry puts the token past its window at issue time.
	m := NewJWTManager("secret", "hrms-backend", -1)

	token, err := m.GenerateToken(1, "EMP1", "employee", KindEmployee)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if _, err := m.ValidateToken(token); err == nil {
		t.Fatal("expired token was accepted")
	}
}

func TestTokenExpiryBoundary(t *testing.T) {
	// 30 minute window: still valid at T+29min, rejected at T+31min.
	m := NewJWTManager("secret", "hrms-backend", 30)

	issued := time.Date(2026, 8, 28, 9, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return issued }

	token, err := m.GenerateToken(1, "EMP1", "employee", KindEmployee)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	m.now = func() time.Time { return issued.Add(29 * time.Minute) }
	if _, err := m.ValidateToken(token); err != nil {
		t.Fatalf("token at T+29min rejected: %v", err)
	}

	m.now = func() time.Time { return issued.Add(31 * time.Minute) }
	if _, err := m.ValidateToken(token); err == nil {
		t.Fatal("token at T+31min accepted")
	}
}

func TestValidateTokenOfKind(t *testing.T) {
	m := NewJWTManager("secret", "hrms-backend", 30)

	token, err := m.GenerateToken(1, "centre1", "centre", KindCentre)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	if _, err := m.ValidateTokenOfKind(token, KindCentre); err != nil {
		t.Fatalf("matching kind rejected: %v", err)
	}
	if _, err := m.ValidateTokenOfKind(token, KindAdmin); err == nil {
		t.Fatal("centre token accepted as admin")
	}
}

func TestRefreshReissuesSameClaims(t *testing.T) {
	m := NewJWTManager("secret", "hrms-backend", 30)

	token, err := m.GenerateToken(3, "EMP9", "employee", KindEmployee)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	refreshed, err := m.Refresh(token, KindEmployee)
	if err != nil {
		t.Fatalf("refresh failed: %v", err)
	}

	claims, err := m.ValidateToken(refreshed)
	if err != nil {
		t.Fatalf("refreshed token invalid: %v", err)
	}
	if claims.UserID != 3 || claims.PrincipalID != "EMP9" || claims.Kind != KindEmployee {
		t.Fatalf("refreshed claims = %+v", claims)
	}

	if _, err := m.Refresh(token, KindCentre); err == nil {
		t.Fatal("refresh accepted a kind mismatch")
	}
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("hunter2")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	if !VerifyPassword(hash, "hunter2") {
		t.Fatal("correct password rejected")
	}
	if VerifyPassword(hash, "hunter3") {
		t.Fatal("wrong password accepted")
	}
}

func TestKindValid(t *testing.T) {
	for _, k := range []Kind{KindEmployee, KindCentre, KindAdmin} {
		if !k.Valid() {
			t.Errorf("%q should be valid", k)
		}
	}
	if Kind("superuser").Valid() {
		t.Error("unknown kind accepted")
	}
}
