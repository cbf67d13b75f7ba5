package handlers

import (
	"encoding/json"
	"net/http"

	"hrms-backend/internal/models"
	"hrms-backend/internal/services"
)

// LeaveHandler accepts leave submissions and lists them for review.
type LeaveHandler struct {
	Service *services.LeaveService
}

func NewLeaveHandler(s *services.LeaveService) *LeaveHandler {
	return &LeaveHandler{Service: s}
}

// Submit persists a leave request addressed to the centre manager.
func (h *LeaveHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req models.LeaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
		return
	}

	if _, err := h.Service.Submit(r.Context(), &req); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// List returns every leave request (centre/admin review view).
func (h *LeaveHandler) List(w http.ResponseWriter, r *http.Request) {
	requests, err := h.Service.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, requests)
}
