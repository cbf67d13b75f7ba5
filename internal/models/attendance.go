package models

import "time"

// AttendanceEvent is one check-in/out submission. Every save inserts a
// new row; same-day entries are not merged.
type AttendanceEvent struct {
	ID         int       `json:"id"`
	EmployeeID string    `json:"employeeId"`
	Date       string    `json:"date"`
	CheckIn    string    `json:"checkIn,omitempty"`
	CheckOut   string    `json:"checkOut,omitempty"`
	Status     string    `json:"status,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// SaveAttendanceRequest is the ledger save body.
type SaveAttendanceRequest struct {
	EmployeeID string `json:"employeeId"`
	Date       string `json:"date"`
	CheckIn    string `json:"checkIn,omitempty"`
	CheckOut   string `json:"checkOut,omitempty"`
	Status     string `json:"status,omitempty"`
}

// ValidationVerdict is the attendance validator's structured result.
// Callers must inspect the fields: a degraded photo store still yields
// HTTP 200 with an explanatory status string.
type ValidationVerdict struct {
	FaceMatched bool    `json:"face_matched"`
	MatchedWith *string `json:"matched_with"`
	Similarity  float64 `json:"similarity"`
	LocationOK  bool    `json:"location_ok"`
	DistanceM   float64 `json:"distance_m"`
	Status      string  `json:"status"`
	Note        string  `json:"note,omitempty"`
}
