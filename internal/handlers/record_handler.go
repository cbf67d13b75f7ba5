package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"hrms-backend/internal/middleware"
	"hrms-backend/internal/models"
	"hrms-backend/internal/services"
)

// RecordHandler exposes the employee onboarding records.
type RecordHandler struct {
	Service *services.RecordService
}

func NewRecordHandler(s *services.RecordService) *RecordHandler {
	return &RecordHandler{Service: s}
}

// Upsert validates and writes a record. Requires any valid token; the
// service enforces the employee self-edit rules.
func (h *RecordHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetClaimsFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "No token provided"})
		return
	}

	var rec models.EmployeeRecord
	if err := json.NewDecoder(r.Body).Decode(&rec); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
		return
	}

	saved, err := h.Service.Upsert(r.Context(), claims, &rec)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, saved)
}

// List returns every record (centre/admin view).
func (h *RecordHandler) List(w http.ResponseWriter, r *http.Request) {
	records, err := h.Service.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, records)
}

// Get returns one record by employeeId or username query parameter.
func (h *RecordHandler) Get(w http.ResponseWriter, r *http.Request) {
	key := r.URL.Query().Get("employeeId")
	if key == "" {
		key = r.URL.Query().Get("username")
	}
	if key == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "username or employeeId is required"})
		return
	}

	rec, err := h.Service.Get(r.Context(), key)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

// OnboardingStatus reports whether the employee has a record yet.
func (h *RecordHandler) OnboardingStatus(w http.ResponseWriter, r *http.Request) {
	employeeID := r.URL.Query().Get("employeeId")
	if employeeID == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "employeeId is required"})
		return
	}

	status, err := h.Service.OnboardingStatus(r.Context(), employeeID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, status)
}

// UpdateStatus records a review outcome (centre only, enforced in router).
func (h *RecordHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	employeeID := mux.Vars(r)["id"]

	var req models.UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
		return
	}

	rec, err := h.Service.UpdateStatus(r.Context(), employeeID, &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

// Delete removes a record and its credential (admin only, enforced in router).
func (h *RecordHandler) Delete(w http.ResponseWriter, r *http.Request) {
	employeeID := mux.Vars(r)["id"]

	if err := h.Service.Delete(r.Context(), employeeID); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Employee deleted successfully",
	})
}

// ListCentres returns all registered centres (admin only).
func (h *RecordHandler) ListCentres(w http.ResponseWriter, r *http.Request) {
	centres, err := h.Service.ListCentres(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, centres)
}
