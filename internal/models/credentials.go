package models

import "time"

// Approval states for employee credentials.
const (
	StatusPending  = "Pending"
	StatusApproved = "Approved"
	StatusRejected = "Rejected"
)

// EmployeeCredential is the login record for an employee. The onboarding
// profile lives separately in EmployeeRecord.
type EmployeeCredential struct {
	ID           int       `json:"id"`
	EmployeeID   string    `json:"employeeId"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Never expose in JSON
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	CenterCode   string    `json:"centerCode"`
	Role         string    `json:"role"`
	Status       string    `json:"status"` // Pending, Approved or Rejected
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// CentreCredential is the login record for a centre.
type CentreCredential struct {
	ID           int       `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CentreName   string    `json:"centreName"`
	CentreCode   string    `json:"centreCode"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// AdminCredential is the login record for an admin.
type AdminCredential struct {
	ID           int       `json:"id"`
	AdminID      string    `json:"adminId"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// EmployeeUserView is the employee payload returned with a token.
type EmployeeUserView struct {
	ID         int    `json:"id"`
	EmployeeID string `json:"employeeId"`
	Email      string `json:"email"`
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Role       string `json:"role"`
	Status     string `json:"status"`
	UserType   string `json:"userType"`
}

func (c *EmployeeCredential) View() EmployeeUserView {
	return EmployeeUserView{
		ID:         c.ID,
		EmployeeID: c.EmployeeID,
		Email:      c.Email,
		FirstName:  c.FirstName,
		LastName:   c.LastName,
		Role:       c.Role,
		Status:     c.Status,
		UserType:   "employee",
	}
}

// CentreUserView is the centre payload returned with a token.
type CentreUserView struct {
	ID         int    `json:"id"`
	Username   string `json:"username"`
	Email      string `json:"email"`
	CentreName string `json:"centreName"`
	CentreCode string `json:"centreCode"`
	Role       string `json:"role"`
	UserType   string `json:"userType"`
}

func (c *CentreCredential) View() CentreUserView {
	return CentreUserView{
		ID:         c.ID,
		Username:   c.Username,
		Email:      c.Email,
		CentreName: c.CentreName,
		CentreCode: c.CentreCode,
		Role:       c.Role,
		UserType:   "centre",
	}
}

// AdminUserView is the admin payload returned with a token.
type AdminUserView struct {
	ID       int    `json:"id"`
	AdminID  string `json:"adminId"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	UserType string `json:"userType"`
}

func (c *AdminCredential) View() AdminUserView {
	return AdminUserView{
		ID:       c.ID,
		AdminID:  c.AdminID,
		Name:     c.Name,
		Email:    c.Email,
		Role:     c.Role,
		UserType: "admin",
	}
}

// EmployeeRegisterRequest represents the employee registration body
type EmployeeRegisterRequest struct {
	EmployeeID string `json:"employeeId"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	CenterCode string `json:"centerCode"`
}

// CentreRegisterRequest represents the centre registration body
type CentreRegisterRequest struct {
	Username   string `json:"username"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	CentreName string `json:"centreName"`
	CentreCode string `json:"centreCode"`
}

// AdminRegisterRequest represents the admin registration body
type AdminRegisterRequest struct {
	AdminID  string `json:"adminId"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest covers all three principal kinds; exactly one identifier
// field is set depending on the endpoint.
type LoginRequest struct {
	EmployeeID string `json:"employeeId,omitempty"`
	Username   string `json:"username,omitempty"`
	AdminID    string `json:"adminId,omitempty"`
	Password   string `json:"password"`
}

// AuthResponse is returned on successful login: the bearer token plus a
// kind-specific user view (password hash excluded by the model tags).
type AuthResponse struct {
	Token string      `json:"token"`
	User  interface{} `json:"user"`
}

// RefreshResponse carries only the rotated token.
type RefreshResponse struct {
	Token string `json:"token"`
}

// RequestResetRequest asks for a reset code for the given identifier.
type RequestResetRequest struct {
	EmployeeID string `json:"employeeId,omitempty"`
	Username   string `json:"username,omitempty"`
}

// VerifyResetRequest submits the code together with the new password.
type VerifyResetRequest struct {
	EmployeeID  string `json:"employeeId,omitempty"`
	Username    string `json:"username,omitempty"`
	OTP         string `json:"otp"`
	NewPassword string `json:"newPassword"`
}

// ResetPasswordRequest is the direct (no-OTP) reset body the SPA still uses.
type ResetPasswordRequest struct {
	EmployeeID  string `json:"employeeId,omitempty"`
	Username    string `json:"username,omitempty"`
	NewPassword string `json:"newPassword"`
}
