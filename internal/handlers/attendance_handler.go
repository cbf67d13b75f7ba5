package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"hrms-backend/internal/models"
	"hrms-backend/internal/services"
)

// maxCaptureBytes caps the multipart capture size (Rekognition rejects
// images above 5 MB anyway).
const maxCaptureBytes = 5 << 20

// AttendanceHandler exposes check-in validation and the ledger.
type AttendanceHandler struct {
	Service *services.AttendanceService
}

func NewAttendanceHandler(s *services.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{Service: s}
}

// Validate accepts a multipart form with the live capture ("file") and
// latitude/longitude fields, and returns the verdict. Photo store
// failures still return 200; callers inspect the verdict fields.
func (h *AttendanceHandler) Validate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxCaptureBytes); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Missing image or location data"})
		return
	}

	latStr := r.FormValue("latitude")
	lonStr := r.FormValue("longitude")
	file, _, err := r.FormFile("file")
	if latStr == "" || lonStr == "" || err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Missing image or location data"})
		return
	}
	defer file.Close()

	lat, latErr := strconv.ParseFloat(latStr, 64)
	lon, lonErr := strconv.ParseFloat(lonStr, 64)
	if latErr != nil || lonErr != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Missing image or location data"})
		return
	}

	capture, err := io.ReadAll(io.LimitReader(file, maxCaptureBytes))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Failed to read uploaded image"})
		return
	}

	verdict := h.Service.Validate(r.Context(), lat, lon, capture)
	writeJSON(w, http.StatusOK, verdict)
}

// Save appends a ledger entry.
func (h *AttendanceHandler) Save(w http.ResponseWriter, r *http.Request) {
	var req models.SaveAttendanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
		return
	}

	event, err := h.Service.Save(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, event)
}

// List returns the whole ledger.
func (h *AttendanceHandler) List(w http.ResponseWriter, r *http.Request) {
	events, err := h.Service.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, events)
}
