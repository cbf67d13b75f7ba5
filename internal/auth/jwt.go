package auth

import (
	"errors"
	"time"

	"hrms-backend/internal/timeutil"

	"github.com/golang-jwt/jwt/v5"
)

// Claims carries the identity a token asserts: the database id, the
// role-specific identifier (employeeId, centre username or adminId),
// the role string, and the principal kind.
type Claims struct {
	UserID      int    `json:"user_id"`
	PrincipalID string `json:"principal_id"`
	Role        string `json:"role"`
	Kind        Kind   `json:"user_type"`
	jwt.RegisteredClaims
}

type JWTManager struct {
	secret string
	issuer string
	expiry time.Duration
	now    func() time.Time
}

func NewJWTManager(secret, issuer string, expirationMinutes int) *JWTManager {
	return &JWTManager{
		secret: secret,
		issuer: issuer,
		expiry: time.Duration(expirationMinutes) * time.Minute,
		now:    timeutil.Now,
	}
}

// GenerateToken creates a signed token for the given principal with a
// fresh expiry window.
func (j *JWTManager) GenerateToken(userID int, principalID, role string, kind Kind) (string, error) {
	now := j.now()

	claims := &Claims{
		UserID:      userID,
		PrincipalID: principalID,
		Role:        role,
		Kind:        kind,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(j.expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    j.issuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(j.secret))
}

// ValidateToken verifies a JWT token and returns the claims
func (j *JWTManager) ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		// Verify signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return []byte(j.secret), nil
	}, jwt.WithTimeFunc(j.now))

	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	if !claims.Kind.Valid() {
		return nil, errors.New("unknown principal kind")
	}

	return claims, nil
}

// ValidateTokenOfKind verifies a token and additionally checks that its
// embedded principal kind matches the endpoint's expected kind.
func (j *JWTManager) ValidateTokenOfKind(tokenString string, kind Kind) (*Claims, error) {
	claims, err := j.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}
	if claims.Kind != kind {
		return nil, errors.New("invalid token type")
	}
	return claims, nil
}

// Refresh re-issues a token with identical claims and a fresh expiry
// window, provided the presented token is valid and of the expected kind.
func (j *JWTManager) Refresh(tokenString string, kind Kind) (string, error) {
	claims, err := j.ValidateTokenOfKind(tokenString, kind)
	if err != nil {
		return "", err
	}
	return j.GenerateToken(claims.UserID, claims.PrincipalID, claims.Role, claims.Kind)
}
