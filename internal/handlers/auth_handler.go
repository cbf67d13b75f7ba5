package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"hrms-backend/internal/auth"
	"hrms-backend/internal/models"
	"hrms-backend/internal/services"
)

// AuthHandler exposes registration, login, refresh and the password
// reset flows for all three principal kinds.
type AuthHandler struct {
	Accounts *services.AccountService
	Resets   *services.ResetService
}

func NewAuthHandler(accounts *services.AccountService, resets *services.ResetService) *AuthHandler {
	return &AuthHandler{Accounts: accounts, Resets: resets}
}

func (h *AuthHandler) RegisterEmployee(w http.ResponseWriter, r *http.Request) {
	var req models.EmployeeRegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
		return
	}
	if err := h.Accounts.RegisterEmployee(r.Context(), &req); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"message": "Employee registered successfully"})
}

func (h *AuthHandler) RegisterCentre(w http.ResponseWriter, r *http.Request) {
	var req models.CentreRegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
		return
	}
	if err := h.Accounts.RegisterCentre(r.Context(), &req); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"message": "Centre registered successfully"})
}

func (h *AuthHandler) RegisterAdmin(w http.ResponseWriter, r *http.Request) {
	var req models.AdminRegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
		return
	}
	if err := h.Accounts.RegisterAdmin(r.Context(), &req); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"message": "Admin registered successfully"})
}

func (h *AuthHandler) LoginEmployee(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
		return
	}
	resp, err := h.Accounts.LoginEmployee(r.Context(), req.EmployeeID, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *AuthHandler) LoginCentre(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
		return
	}
	resp, err := h.Accounts.LoginCentre(r.Context(), req.Username, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *AuthHandler) LoginAdmin(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
		return
	}
	resp, err := h.Accounts.LoginAdmin(r.Context(), req.AdminID, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// refresh re-issues a token of the given kind from the Authorization header.
func (h *AuthHandler) refresh(w http.ResponseWriter, r *http.Request, kind auth.Kind) {
	authHeader := r.Header.Get("Authorization")
	parts := strings.Split(authHeader, " ")
	if authHeader == "" || len(parts) != 2 || parts[0] != "Bearer" {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "No token provided"})
		return
	}

	resp, err := h.Accounts.Refresh(parts[1], kind)
	if err != nil {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "Invalid token"})
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *AuthHandler) RefreshEmployee(w http.ResponseWriter, r *http.Request) {
	h.refresh(w, r, auth.KindEmployee)
}

func (h *AuthHandler) RefreshCentre(w http.ResponseWriter, r *http.Request) {
	h.refresh(w, r, auth.KindCentre)
}

func (h *AuthHandler) RequestResetEmployee(w http.ResponseWriter, r *http.Request) {
	var req models.RequestResetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
		return
	}
	if err := h.Resets.RequestReset(r.Context(), auth.KindEmployee, req.EmployeeID); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "OTP sent to registered email (simulated)",
	})
}

func (h *AuthHandler) RequestResetCentre(w http.ResponseWriter, r *http.Request) {
	var req models.RequestResetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
		return
	}
	if err := h.Resets.RequestReset(r.Context(), auth.KindCentre, req.Username); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "OTP sent to registered email (simulated)",
	})
}

func (h *AuthHandler) VerifyResetEmployee(w http.ResponseWriter, r *http.Request) {
	var req models.VerifyResetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
		return
	}
	if err := h.Resets.VerifyReset(r.Context(), auth.KindEmployee, req.EmployeeID, req.OTP, req.NewPassword); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Password reset successful",
	})
}

func (h *AuthHandler) VerifyResetCentre(w http.ResponseWriter, r *http.Request) {
	var req models.VerifyResetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
		return
	}
	if err := h.Resets.VerifyReset(r.Context(), auth.KindCentre, req.Username, req.OTP, req.NewPassword); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Password reset successful",
	})
}

func (h *AuthHandler) ResetPasswordEmployee(w http.ResponseWriter, r *http.Request) {
	var req models.ResetPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
		return
	}
	if err := h.Resets.DirectReset(r.Context(), auth.KindEmployee, req.EmployeeID, req.NewPassword); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Password reset successful",
	})
}

func (h *AuthHandler) ResetPasswordCentre(w http.ResponseWriter, r *http.Request) {
	var req models.ResetPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
		return
	}
	if err := h.Resets.DirectReset(r.Context(), auth.KindCentre, req.Username, req.NewPassword); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Password reset successful",
	})
}

// EmployeeInfo returns the latest credential view for an employee.
func (h *AuthHandler) EmployeeInfo(w http.ResponseWriter, r *http.Request) {
	employeeID := r.URL.Query().Get("employeeId")
	if employeeID == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "employeeId is required"})
		return
	}
	view, err := h.Accounts.EmployeeInfo(r.Context(), employeeID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}
